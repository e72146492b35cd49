package allocation

import "sort"

// fundBase walks awards in expansion order and stops at the first base the
// remaining budget cannot cover.
func fundBase(awards []Award, remaining int64) (int64, Stage) {
	var stage Stage
	for i := range awards {
		if remaining < awards[i].Base {
			stage.StoppedAt = awards[i].ID
			stage.Skipped = len(awards) - i
			break
		}
		awards[i].Allocated = awards[i].Base
		remaining -= awards[i].Base
		stage.Granted++
		stage.Spend += awards[i].Base
	}
	return remaining, stage
}

// fundTopups grants whole top-ups cheapest first. An unaffordable top-up is
// skipped, not a stopping point: a later one may still fit. Whether the same
// award got its base is not considered.
func fundTopups(awards []Award, remaining int64) (int64, Stage) {
	var stage Stage
	order := topupOrder(awards)
	for _, idx := range order {
		topup := awards[idx].Topup
		if remaining < topup {
			if stage.StoppedAt == "" {
				stage.StoppedAt = awards[idx].ID
			}
			stage.Skipped++
			continue
		}
		awards[idx].Allocated += topup
		remaining -= topup
		stage.Granted++
		stage.Spend += topup
	}
	return remaining, stage
}

func topupOrder(awards []Award) []int {
	var order []int
	for i, award := range awards {
		if award.Topup > 0 {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return awards[order[i]].Topup < awards[order[j]].Topup
	})
	return order
}
