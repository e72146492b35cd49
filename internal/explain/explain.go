package explain

import (
	"fmt"
	"sort"
)

var topics = map[string]string{
	"allocation": `Allocation runs in two passes over one award per applicant.

Each request is first capped at the ceiling. Without partial funding the whole request is the base. With partial funding the base is the minimum guaranteed amount (never more than the request) and the rest is a top-up.

Pass one funds bases in the order the tiers were entered and stops at the first base the remaining budget cannot cover. Later, cheaper requests are not considered: input order is the priority.

Pass two funds whole top-ups, smallest first, skipping any that do not fit. A top-up is never split, and it may be granted even when that award's base was not.

This is a deliberate greedy policy, not an optimiser. Reorder the tiers if a different priority is wanted.`,
	"coverage": `The coverage curve is a what-if view, separate from the actual allocation.

It sorts every award by its base amount, cheapest first, and plots cumulative base spend against the number of students covered. Reading the curve at a budget tells you how many students that budget could reach if only base amounts were paid and the cheapest requests went first.

The gap between the curve at your budget and the students actually funded shows how much the input order costs in coverage.`,
}

func Topic(name string) (string, error) {
	if text, ok := topics[name]; ok {
		return text, nil
	}
	return "", fmt.Errorf("unknown explain topic %q (want one of %v)", name, Topics())
}

func Topics() []string {
	var out []string
	for k := range topics {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
