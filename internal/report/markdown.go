package report

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/liinajapson/budget-tool/internal/allocation"
	"github.com/liinajapson/budget-tool/internal/simulate"
)

// Curves longer than this are resampled before they are tabulated.
const maxCurveRows = 60

var printer = message.NewPrinter(language.English)

type Options struct {
	Explain bool
	// CurveSteps controls resampling of long coverage curves.
	CurveSteps int
}

func WriteMarkdownSummary(path string, result simulate.Result, opts Options) error {
	return os.WriteFile(path, []byte(RenderMarkdown(result, opts)), 0644)
}

func RenderMarkdown(result simulate.Result, opts Options) string {
	var b strings.Builder
	s := result.Summary

	fmt.Fprintf(&b, "# Scholarship allocation: %s\n\n", result.Scenario)
	fmt.Fprintf(&b, "- Run: %s\n", result.RunID)
	fmt.Fprintf(&b, "- Status: %s\n", result.Status)
	fmt.Fprintf(&b, "- Policy: %s\n\n", describePolicy(result.Budget))

	fmt.Fprintf(&b, "| Metric | Value |\n")
	fmt.Fprintf(&b, "| --- | --- |\n")
	fmt.Fprintf(&b, "| Total budget | %s |\n", amount(s.TotalBudget))
	fmt.Fprintf(&b, "| Applicants | %d |\n", s.Applicants)
	fmt.Fprintf(&b, "| Students funded | %d |\n", s.FundedCount)
	fmt.Fprintf(&b, "| Fully funded | %d |\n", s.FullyFundedCount)
	fmt.Fprintf(&b, "| Partially funded | %d |\n", s.PartiallyFundedCount)
	fmt.Fprintf(&b, "| Budget allocated | %s |\n", amount(s.TotalAllocated))
	fmt.Fprintf(&b, "| Budget remaining | %s |\n", amount(s.BudgetRemaining))
	fmt.Fprintf(&b, "| Coverage | %.2f%% |\n", s.CoveragePercent)

	fmt.Fprintf(&b, "\n## Allocation details\n\n")
	funded := result.FundedAwards()
	if len(funded) == 0 {
		fmt.Fprintf(&b, "No student received funding.\n")
	} else {
		fmt.Fprintf(&b, "| Student | Requested | Allocated | Status |\n")
		fmt.Fprintf(&b, "| --- | --- | --- | --- |\n")
		for _, award := range funded {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", award.ID, amount(award.Requested), amount(award.Allocated), award.Status)
		}
	}

	fmt.Fprintf(&b, "\n## Tiers\n\n")
	fmt.Fprintf(&b, "| Amount | Requested | Applicants | Funded | Fully funded | Allocated |\n")
	fmt.Fprintf(&b, "| --- | --- | --- | --- | --- | --- |\n")
	for _, tier := range result.Tiers {
		fmt.Fprintf(&b, "| %s | %s | %d | %d | %d | %s |\n",
			amount(tier.Amount), amount(tier.Requested), tier.Count, tier.FundedCount, tier.FullyFunded, amount(tier.AllocatedAmount))
	}

	fmt.Fprintf(&b, "\n## Cumulative coverage curve\n\n")
	fmt.Fprintf(&b, "Base amounts only, cheapest first.\n\n")
	fmt.Fprintf(&b, "| Cumulative base spend | Students funded |\n")
	fmt.Fprintf(&b, "| --- | --- |\n")
	for _, point := range curveRows(result, opts.CurveSteps) {
		fmt.Fprintf(&b, "| %s | %d |\n", amount(point.CumulativeBaseSpend), point.StudentsFunded)
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintf(&b, "\n## Notes & assumptions\n")
		for _, warning := range result.Warnings {
			fmt.Fprintf(&b, "- %s\n", warning)
		}
	}

	if opts.Explain && result.Explain != nil {
		fmt.Fprintf(&b, "\n## How computed\n")
		fmt.Fprintf(&b, "\nFormula: %s\n\n", result.Explain.Formula)
		for _, note := range result.Explain.Notes {
			fmt.Fprintf(&b, "- %s\n", note)
		}
	}

	return b.String()
}

func curveRows(result simulate.Result, steps int) []allocation.CurvePoint {
	if len(result.Curve) <= maxCurveRows {
		return result.Curve
	}
	return allocation.Resample(result.Curve, result.Budget.TotalBudget, steps)
}

func describePolicy(cfg allocation.BudgetConfig) string {
	if !cfg.AllowPartial {
		return fmt.Sprintf("full awards only, ceiling %s", amount(cfg.Ceiling))
	}
	return fmt.Sprintf("partial awards, ceiling %s, minimum base %s", amount(cfg.Ceiling), amount(cfg.MinBase))
}

func amount(v int64) string {
	return printer.Sprintf("%d", v)
}
