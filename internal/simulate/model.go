package simulate

import "github.com/liinajapson/budget-tool/internal/allocation"

const SchemaVersion = "1.0"

type Result struct {
	SchemaVersion string                  `json:"schemaVersion"`
	RunID         string                  `json:"runId"`
	Scenario      string                  `json:"scenario"`
	Labels        map[string]string       `json:"labels,omitempty"`
	Budget        allocation.BudgetConfig `json:"budget"`
	Status        string                  `json:"status"`
	Summary       Summary                 `json:"summary"`
	Tiers         []TierResult            `json:"tiers"`
	Awards        []AwardResult           `json:"awards"`
	Curve         []allocation.CurvePoint `json:"coverageCurve"`
	Warnings      []string                `json:"warnings"`
	Explain       *Explain                `json:"explain,omitempty"`
}

type Summary struct {
	Applicants           int     `json:"applicants"`
	FundedCount          int     `json:"fundedCount"`
	FullyFundedCount     int     `json:"fullyFundedCount"`
	PartiallyFundedCount int     `json:"partiallyFundedCount"`
	UnfundedCount        int     `json:"unfundedCount"`
	TotalBudget          int64   `json:"totalBudget"`
	TotalRequested       int64   `json:"totalRequested"`
	TotalAllocated       int64   `json:"totalAllocated"`
	BudgetRemaining      int64   `json:"budgetRemaining"`
	CoveragePercent      float64 `json:"coveragePercent"`
}

type TierResult struct {
	Amount          int64 `json:"amount"`
	Requested       int64 `json:"requested"`
	Count           int   `json:"count"`
	FundedCount     int   `json:"fundedCount"`
	FullyFunded     int   `json:"fullyFundedCount"`
	AllocatedAmount int64 `json:"allocated"`
}

type AwardResult struct {
	ID        string `json:"id"`
	Requested int64  `json:"requested"`
	Base      int64  `json:"base"`
	Topup     int64  `json:"topup"`
	Allocated int64  `json:"allocated"`
	Status    string `json:"status"`
}

type Explain struct {
	Formula string   `json:"formula"`
	Notes   []string `json:"notes"`
}

// FundedAwards is the allocation table: awards that received anything.
func (r Result) FundedAwards() []AwardResult {
	var out []AwardResult
	for _, award := range r.Awards {
		if award.Allocated > 0 {
			out = append(out, award)
		}
	}
	return out
}
