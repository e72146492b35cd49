package sweep

import (
	"fmt"
	"io"
)

func Render(w io.Writer, plan Plan) {
	fmt.Fprintf(w, "Sweep over %s:\n", plan.Dimension)
	fmt.Fprintf(w, "%10s %8s %8s %8s %12s %12s %10s\n", plan.Dimension, "funded", "full", "partial", "allocated", "remaining", "curve")
	for _, p := range plan.Points {
		fmt.Fprintf(w, "%10d %8d %8d %8d %12d %12d %10d\n",
			p.Level, p.FundedCount, p.FullyFundedCount, p.PartiallyFundedCount, p.TotalAllocated, p.BudgetRemaining, p.CurveStudents)
	}
}
