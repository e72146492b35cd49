package sweep

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/liinajapson/budget-tool/internal/allocation"
)

const (
	DimensionBudget  = "budget"
	DimensionCeiling = "ceiling"

	DefaultSteps = 10
	maxParallel  = 8
)

type Options struct {
	Dimension string
	From      int64
	To        int64
	Steps     int
}

type Plan struct {
	Dimension string  `json:"dimension"`
	Points    []Point `json:"points"`
}

type Point struct {
	Level                int64 `json:"level"`
	FundedCount          int   `json:"fundedCount"`
	FullyFundedCount     int   `json:"fullyFundedCount"`
	PartiallyFundedCount int   `json:"partiallyFundedCount"`
	TotalAllocated       int64 `json:"totalAllocated"`
	BudgetRemaining      int64 `json:"budgetRemaining"`
	// CurveStudents is the cheapest-first coverage at this level's budget.
	CurveStudents int `json:"curveStudents"`
}

// Build reruns the allocation with one input varied across evenly spaced
// levels between From and To inclusive. Levels are evaluated concurrently;
// points come back in level order.
func Build(ctx context.Context, tiers []allocation.CostTier, cfg allocation.BudgetConfig, opts Options) (Plan, error) {
	dimension := opts.Dimension
	if dimension == "" {
		dimension = DimensionBudget
	}
	if dimension != DimensionBudget && dimension != DimensionCeiling {
		return Plan{}, fmt.Errorf("dimension must be %q or %q", DimensionBudget, DimensionCeiling)
	}
	if opts.From < 0 || opts.To < opts.From {
		return Plan{}, errors.New("sweep range must satisfy 0 <= from <= to")
	}
	steps := opts.Steps
	if steps <= 0 {
		steps = DefaultSteps
	}

	levels := Levels(opts.From, opts.To, steps)
	points := make([]Point, len(levels))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)
	for i, level := range levels {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			run := cfg
			if dimension == DimensionBudget {
				run.TotalBudget = level
			} else {
				run.Ceiling = level
			}
			result, err := allocation.Simulate(tiers, run)
			if err != nil {
				return fmt.Errorf("%s %d: %w", dimension, level, err)
			}
			points[i] = Point{
				Level:                level,
				FundedCount:          result.FundedCount,
				FullyFundedCount:     result.FullyFundedCount,
				PartiallyFundedCount: result.PartiallyFundedCount,
				TotalAllocated:       result.TotalAllocated(),
				BudgetRemaining:      result.BudgetRemaining,
				CurveStudents:        allocation.StudentsAt(result.CoverageCurve, run.TotalBudget),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Plan{}, err
	}
	return Plan{Dimension: dimension, Points: points}, nil
}

// Levels returns steps+1 evenly spaced values from from to to, deduplicated
// when the range is narrower than the step count.
func Levels(from, to int64, steps int) []int64 {
	var out []int64
	span := to - from
	for i := 0; i <= steps; i++ {
		level := from + span*int64(i)/int64(steps)
		if len(out) > 0 && out[len(out)-1] == level {
			continue
		}
		out = append(out, level)
	}
	return out
}
