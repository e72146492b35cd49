package scenario

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTiers reads inline tiers such as "500x20,800x15": amount, then count.
func ParseTiers(input string) ([]Tier, error) {
	var tiers []Tier
	if strings.TrimSpace(input) == "" {
		return tiers, nil
	}
	for _, pair := range strings.Split(input, ",") {
		parts := strings.SplitN(strings.ToLower(strings.TrimSpace(pair)), "x", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("invalid tier %q: want AMOUNTxCOUNT", pair)
		}
		amount, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil || amount < 0 {
			return nil, fmt.Errorf("invalid tier %q: amount must be a non-negative integer", pair)
		}
		count, err := strconv.Atoi(parts[1])
		if err != nil || count < 0 {
			return nil, fmt.Errorf("invalid tier %q: count must be a non-negative integer", pair)
		}
		tiers = append(tiers, Tier{Amount: amount, Count: count})
	}
	return tiers, nil
}

func FormatTiers(tiers []Tier) string {
	parts := make([]string, 0, len(tiers))
	for _, tier := range tiers {
		parts = append(parts, fmt.Sprintf("%dx%d", tier.Amount, tier.Count))
	}
	return strings.Join(parts, ",")
}

// Overrides replace scenario fields from the command line. Nil fields are
// left untouched.
type Overrides struct {
	Name         string
	Tiers        []Tier
	Total        *int64
	Ceiling      *int64
	AllowPartial *bool
	MinBase      *int64
}

func (s Scenario) ApplyOverrides(o Overrides) Scenario {
	out := s
	if strings.TrimSpace(o.Name) != "" {
		out.Metadata.Name = o.Name
	}
	if len(o.Tiers) > 0 {
		out.Tiers = append([]Tier(nil), o.Tiers...)
	}
	if o.Total != nil {
		out.Budget.Total = *o.Total
	}
	if o.Ceiling != nil {
		out.Budget.Ceiling = *o.Ceiling
	}
	if o.AllowPartial != nil {
		out.Budget.AllowPartial = *o.AllowPartial
	}
	if o.MinBase != nil {
		out.Budget.MinBase = *o.MinBase
	}
	return out
}
