package sweep

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liinajapson/budget-tool/internal/allocation"
)

var tiers = []allocation.CostTier{{Amount: 500, Count: 4}, {Amount: 1000, Count: 2}}

func TestBuildBudgetSweep(t *testing.T) {
	plan, err := Build(context.Background(), tiers, allocation.BudgetConfig{Ceiling: 1200}, Options{From: 0, To: 4000, Steps: 4})
	require.NoError(t, err)

	assert.Equal(t, DimensionBudget, plan.Dimension)
	require.Len(t, plan.Points, 5)

	funded := make([]int, len(plan.Points))
	for i, p := range plan.Points {
		funded[i] = p.FundedCount
		assert.Equal(t, p.Level, p.TotalAllocated+p.BudgetRemaining)
	}
	assert.Equal(t, []int{0, 2, 4, 5, 6}, funded)
	assert.Equal(t, 6, plan.Points[4].CurveStudents)
}

func TestBuildCeilingSweep(t *testing.T) {
	plan, err := Build(context.Background(), tiers, allocation.BudgetConfig{TotalBudget: 2400}, Options{Dimension: DimensionCeiling, From: 400, To: 1000, Steps: 2})
	require.NoError(t, err)

	require.Len(t, plan.Points, 3)
	// ceiling 400 funds all six at 400 each; 700 caps the large ones at 700.
	assert.Equal(t, 6, plan.Points[0].FundedCount)
	assert.Equal(t, int64(0), plan.Points[0].BudgetRemaining)
	assert.Equal(t, 4, plan.Points[1].FundedCount)
	assert.Equal(t, 4, plan.Points[2].FundedCount)
}

func TestBuildRejectsBadInput(t *testing.T) {
	_, err := Build(context.Background(), tiers, allocation.BudgetConfig{}, Options{Dimension: "count", To: 10})
	require.Error(t, err)

	_, err = Build(context.Background(), tiers, allocation.BudgetConfig{}, Options{From: 10, To: 5})
	require.Error(t, err)

	_, err = Build(context.Background(), nil, allocation.BudgetConfig{}, Options{To: 10})
	assert.True(t, errors.Is(err, allocation.ErrNoApplicants))
}

func TestLevels(t *testing.T) {
	assert.Equal(t, []int64{0, 250, 500, 750, 1000}, Levels(0, 1000, 4))
	assert.Equal(t, []int64{0, 1, 2}, Levels(0, 2, 10))
	assert.Equal(t, []int64{7}, Levels(7, 7, 3))
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, Plan{Dimension: DimensionBudget, Points: []Point{{Level: 1000, FundedCount: 2, FullyFundedCount: 2, TotalAllocated: 1000}}})

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Sweep over budget:\n"))
	assert.Contains(t, out, "funded")
	assert.Equal(t, 3, strings.Count(out, "\n"))
}
