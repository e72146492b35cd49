package allocation

import "fmt"

// Expand turns tiers into one award per applicant, in tier order and then
// sequence order. The ceiling caps each request; with partial funding enabled
// MinBase becomes the per-award base, never exceeding the request itself.
func Expand(tiers []CostTier, cfg BudgetConfig) ([]Award, error) {
	total := 0
	for _, tier := range tiers {
		if tier.Count > 0 {
			total += tier.Count
		}
	}
	if total == 0 {
		return nil, ErrNoApplicants
	}

	awards := make([]Award, 0, total)
	seq := map[int64]int{}
	for _, tier := range tiers {
		requested := min(tier.Amount, cfg.Ceiling)
		base := requested
		if cfg.AllowPartial {
			base = min(requested, cfg.MinBase)
		}
		for i := 0; i < tier.Count; i++ {
			seq[requested]++
			awards = append(awards, Award{
				ID:        fmt.Sprintf("%d_%d", requested, seq[requested]),
				Requested: requested,
				Base:      base,
				Topup:     requested - base,
			})
		}
	}
	return awards, nil
}
