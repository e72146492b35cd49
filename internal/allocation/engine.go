package allocation

// Simulate expands tiers into awards, funds them and summarises the outcome.
// It returns ErrNoApplicants when the tiers describe nobody. The function is
// pure; concurrent calls share nothing.
func Simulate(tiers []CostTier, cfg BudgetConfig) (Result, error) {
	awards, err := Expand(tiers, cfg)
	if err != nil {
		return Result{}, err
	}

	remaining, base := fundBase(awards, cfg.TotalBudget)
	var topups Stage
	if cfg.AllowPartial {
		remaining, topups = fundTopups(awards, remaining)
	}

	c := tally(awards)
	if err := checkConsistency(awards, c, cfg, remaining); err != nil {
		return Result{}, err
	}

	return Result{
		Awards:               awards,
		BudgetRemaining:      remaining,
		FundedCount:          c.funded,
		FullyFundedCount:     c.full,
		PartiallyFundedCount: c.partial,
		CoverageCurve:        CoverageCurve(awards),
		BaseStage:            base,
		TopupStage:           topups,
	}, nil
}
