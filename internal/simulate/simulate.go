package simulate

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/rs/xid"

	"github.com/liinajapson/budget-tool/internal/allocation"
	"github.com/liinajapson/budget-tool/internal/scenario"
)

const (
	StatusCovered   = "covered"
	StatusShortfall = "shortfall"
)

type Options struct {
	OutDir string
	// OutRoot is the parent of the default OutDir; "out" when empty.
	OutRoot string
	Explain bool
	// RunID is generated when empty.
	RunID string
}

// Run validates doc, allocates its budget and shapes the outcome for
// reporting. An empty scenario yields an error wrapping
// allocation.ErrNoApplicants.
func Run(doc scenario.Scenario, opts Options) (Result, string, error) {
	if err := doc.Validate(); err != nil {
		return Result{}, "", err
	}

	runID := opts.RunID
	if runID == "" {
		runID = xid.New().String()
	}
	outDir := opts.OutDir
	if outDir == "" {
		root := opts.OutRoot
		if root == "" {
			root = "out"
		}
		outDir = filepath.Join(root, "simulate", fmt.Sprintf("%s-%s", sanitizeSegment(doc.Metadata.Name), runID))
	}

	cfg := doc.Config()
	alloc, err := allocation.Simulate(doc.CostTiers(), cfg)
	if err != nil {
		return Result{}, outDir, fmt.Errorf("simulate %s: %w", doc.Metadata.Name, err)
	}

	result := Result{
		SchemaVersion: SchemaVersion,
		RunID:         runID,
		Scenario:      doc.Metadata.Name,
		Labels:        doc.Metadata.Labels,
		Budget:        cfg,
		Summary:       summarize(alloc, cfg),
		Tiers:         tierResults(doc.Tiers, alloc.Awards),
		Curve:         alloc.CoverageCurve,
		Warnings:      doc.Advisories(),
	}
	for _, award := range alloc.Awards {
		result.Awards = append(result.Awards, AwardResult{
			ID:        award.ID,
			Requested: award.Requested,
			Base:      award.Base,
			Topup:     award.Topup,
			Allocated: award.Allocated,
			Status:    award.Status(),
		})
	}

	result.Status = StatusCovered
	if result.Summary.FullyFundedCount < result.Summary.Applicants {
		result.Status = StatusShortfall
	}
	if result.Summary.UnfundedCount > 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("%d of %d applicants received no funding", result.Summary.UnfundedCount, result.Summary.Applicants))
	}

	if opts.Explain {
		result.Explain = &Explain{
			Formula: allocationFormula(cfg.AllowPartial),
			Notes:   stageNotes(alloc, cfg),
		}
	}
	return result, outDir, nil
}

func summarize(alloc allocation.Result, cfg allocation.BudgetConfig) Summary {
	applicants := len(alloc.Awards)
	s := Summary{
		Applicants:           applicants,
		FundedCount:          alloc.FundedCount,
		FullyFundedCount:     alloc.FullyFundedCount,
		PartiallyFundedCount: alloc.PartiallyFundedCount,
		UnfundedCount:        applicants - alloc.FundedCount,
		TotalBudget:          cfg.TotalBudget,
		TotalRequested:       alloc.TotalRequested(),
		TotalAllocated:       alloc.TotalAllocated(),
		BudgetRemaining:      alloc.BudgetRemaining,
	}
	if applicants > 0 {
		s.CoveragePercent = round2(float64(alloc.FundedCount) / float64(applicants) * 100)
	}
	return s
}

// tierResults relies on awards being in expansion order: each tier owns the
// next Count awards.
func tierResults(tiers []scenario.Tier, awards []allocation.Award) []TierResult {
	var out []TierResult
	next := 0
	for _, tier := range tiers {
		item := TierResult{Amount: tier.Amount, Count: max(tier.Count, 0)}
		for i := 0; i < item.Count && next < len(awards); i++ {
			award := awards[next]
			next++
			item.Requested = award.Requested
			item.AllocatedAmount += award.Allocated
			if award.Allocated > 0 {
				item.FundedCount++
				if award.Allocated == award.Requested {
					item.FullyFunded++
				}
			}
		}
		out = append(out, item)
	}
	return out
}

func allocationFormula(partial bool) string {
	if !partial {
		return "requested = min(amount, ceiling); base = requested; fund bases in input order until one does not fit"
	}
	return "requested = min(amount, ceiling); base = min(requested, minBase); topup = requested - base; fund bases in input order until one does not fit, then every top-up that fits, cheapest first"
}

func stageNotes(alloc allocation.Result, cfg allocation.BudgetConfig) []string {
	notes := []string{
		fmt.Sprintf("base stage funded %d award(s) for %d", alloc.BaseStage.Granted, alloc.BaseStage.Spend),
	}
	if alloc.BaseStage.StoppedAt != "" {
		notes = append(notes, fmt.Sprintf("base stage stopped at %s; %d award(s) left without base funding", alloc.BaseStage.StoppedAt, alloc.BaseStage.Skipped))
	}
	if cfg.AllowPartial {
		notes = append(notes, fmt.Sprintf("top-up stage funded %d top-up(s) for %d", alloc.TopupStage.Granted, alloc.TopupStage.Spend))
		if alloc.TopupStage.Skipped > 0 {
			notes = append(notes, fmt.Sprintf("top-up stage skipped %d top-up(s), first at %s", alloc.TopupStage.Skipped, alloc.TopupStage.StoppedAt))
		}
	} else {
		notes = append(notes, "partial funding disabled; no top-up stage")
	}
	notes = append(notes, "coverage curve is base-only and cheapest first; it does not follow the actual allocation order")
	return notes
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

func sanitizeSegment(input string) string {
	var out []rune
	for _, r := range strings.ToLower(input) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			out = append(out, r)
		} else if r == '.' || r == ' ' {
			out = append(out, '-')
		}
	}
	if len(out) == 0 {
		return "scenario"
	}
	return string(out)
}
