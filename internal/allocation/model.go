// Package allocation runs the greedy scholarship allocation: tiers are expanded
// into individual awards, base amounts are funded in input order, top-ups are
// funded cheapest first, and the outcome is summarised with a coverage curve.
package allocation

import "errors"

var (
	ErrNoApplicants = errors.New("no applicants")
	ErrInconsistent = errors.New("inconsistent allocation")
)

const (
	StatusFull     = "Full"
	StatusPartial  = "Partial"
	StatusUnfunded = "Unfunded"
)

// CostTier is a batch of applicants that all request the same amount.
type CostTier struct {
	Amount int64 `json:"amount" yaml:"amount"`
	Count  int   `json:"count" yaml:"count"`
}

type BudgetConfig struct {
	TotalBudget  int64 `json:"totalBudget"`
	Ceiling      int64 `json:"ceiling"`
	AllowPartial bool  `json:"allowPartial"`
	// MinBase is ignored unless AllowPartial is set.
	MinBase int64 `json:"minBase"`
}

type Award struct {
	ID        string `json:"id"`
	Requested int64  `json:"requested"`
	Base      int64  `json:"base"`
	Topup     int64  `json:"topup"`
	Allocated int64  `json:"allocated"`
}

// Status labels an award the way the allocation table shows it.
func (a Award) Status() string {
	switch {
	case a.Allocated <= 0:
		return StatusUnfunded
	case a.Allocated == a.Requested:
		return StatusFull
	default:
		return StatusPartial
	}
}

type CurvePoint struct {
	CumulativeBaseSpend int64 `json:"cumulativeBaseSpend"`
	StudentsFunded      int   `json:"studentsFunded"`
}

type Result struct {
	Awards               []Award      `json:"awards"`
	BudgetRemaining      int64        `json:"budgetRemaining"`
	FundedCount          int          `json:"fundedCount"`
	FullyFundedCount     int          `json:"fullyFundedCount"`
	PartiallyFundedCount int          `json:"partiallyFundedCount"`
	CoverageCurve        []CurvePoint `json:"coverageCurve"`
	BaseStage            Stage        `json:"baseStage"`
	TopupStage           Stage        `json:"topupStage"`
}

// Stage records what one funding pass did. StoppedAt is the first award the
// pass could not afford, if any.
type Stage struct {
	Granted   int    `json:"granted"`
	Skipped   int    `json:"skipped"`
	Spend     int64  `json:"spend"`
	StoppedAt string `json:"stoppedAt,omitempty"`
}

// Funded returns the awards that received any money, in expansion order.
func (r Result) Funded() []Award {
	var out []Award
	for _, award := range r.Awards {
		if award.Allocated > 0 {
			out = append(out, award)
		}
	}
	return out
}

func (r Result) TotalAllocated() int64 {
	var total int64
	for _, award := range r.Awards {
		total += award.Allocated
	}
	return total
}

func (r Result) TotalRequested() int64 {
	var total int64
	for _, award := range r.Awards {
		total += award.Requested
	}
	return total
}
