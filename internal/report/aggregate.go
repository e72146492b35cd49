package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/liinajapson/budget-tool/internal/simulate"
)

type AggregateResult struct {
	SchemaVersion string              `json:"schemaVersion"`
	Inputs        []string            `json:"inputs"`
	Status        string              `json:"status"`
	Scenarios     []ScenarioAggregate `json:"scenarios"`
	Errors        []string            `json:"errors"`
}

type ScenarioAggregate struct {
	Scenario             string  `json:"scenario"`
	RunID                string  `json:"runId"`
	Status               string  `json:"status"`
	TotalBudget          int64   `json:"totalBudget"`
	Ceiling              int64   `json:"ceiling"`
	AllowPartial         bool    `json:"allowPartial"`
	Applicants           int     `json:"applicants"`
	FundedCount          int     `json:"fundedCount"`
	FullyFundedCount     int     `json:"fullyFundedCount"`
	PartiallyFundedCount int     `json:"partiallyFundedCount"`
	BudgetRemaining      int64   `json:"budgetRemaining"`
	CoveragePercent      float64 `json:"coveragePercent"`
}

func ReadResults(paths []string) ([]simulate.Result, error) {
	var results []simulate.Result
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		var result simulate.Result
		if err := json.Unmarshal(data, &result); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if result.SchemaVersion == "" {
			return nil, fmt.Errorf("missing schemaVersion in %s", path)
		}
		results = append(results, result)
	}
	return results, nil
}

// Aggregate lines up several runs for comparison. Inconsistencies between
// inputs are reported in Errors rather than failing the whole report.
func Aggregate(results []simulate.Result, inputs []string) (AggregateResult, error) {
	if len(results) == 0 {
		return AggregateResult{}, errors.New("no results to aggregate")
	}
	var errorsList []string
	seenRuns := map[string]string{}
	status := simulate.StatusCovered
	var scenarios []ScenarioAggregate
	for i, result := range results {
		input := fmt.Sprintf("input %d", i+1)
		if len(inputs) > i {
			input = inputs[i]
		}
		if result.SchemaVersion != simulate.SchemaVersion {
			errorsList = append(errorsList, fmt.Sprintf("%s: schemaVersion %s differs from %s", input, result.SchemaVersion, simulate.SchemaVersion))
		}
		if prev, ok := seenRuns[result.RunID]; ok && result.RunID != "" {
			errorsList = append(errorsList, fmt.Sprintf("run %s appears in both %s and %s", result.RunID, prev, input))
		}
		seenRuns[result.RunID] = input

		status = mergeStatus(status, result.Status)
		s := result.Summary
		scenarios = append(scenarios, ScenarioAggregate{
			Scenario:             result.Scenario,
			RunID:                result.RunID,
			Status:               result.Status,
			TotalBudget:          result.Budget.TotalBudget,
			Ceiling:              result.Budget.Ceiling,
			AllowPartial:         result.Budget.AllowPartial,
			Applicants:           s.Applicants,
			FundedCount:          s.FundedCount,
			FullyFundedCount:     s.FullyFundedCount,
			PartiallyFundedCount: s.PartiallyFundedCount,
			BudgetRemaining:      s.BudgetRemaining,
			CoveragePercent:      s.CoveragePercent,
		})
	}

	sort.SliceStable(scenarios, func(i, j int) bool {
		if scenarios[i].Scenario == scenarios[j].Scenario {
			return scenarios[i].TotalBudget < scenarios[j].TotalBudget
		}
		return scenarios[i].Scenario < scenarios[j].Scenario
	})

	return AggregateResult{
		SchemaVersion: simulate.SchemaVersion,
		Inputs:        inputs,
		Status:        status,
		Scenarios:     scenarios,
		Errors:        errorsList,
	}, nil
}

func mergeStatus(a, b string) string {
	score := func(value string) int {
		switch value {
		case simulate.StatusShortfall:
			return 2
		case simulate.StatusCovered:
			return 1
		default:
			return 0
		}
	}
	if score(b) > score(a) {
		return b
	}
	return a
}

func WriteAggregateJSON(path string, result AggregateResult) error {
	return WriteJSON(path, result)
}

func WriteAggregateMarkdown(path string, result AggregateResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# budget-tool comparison\n\n")
	fmt.Fprintf(&b, "Inputs: %d\n\n", len(result.Inputs))
	fmt.Fprintf(&b, "- Status: %s\n\n", result.Status)

	fmt.Fprintf(&b, "| Scenario | Budget | Ceiling | Partial | Applicants | Funded | Full | Partially | Remaining | Coverage | Status |\n")
	fmt.Fprintf(&b, "| --- | --- | --- | --- | --- | --- | --- | --- | --- | --- | --- |\n")
	for _, s := range result.Scenarios {
		fmt.Fprintf(&b, "| %s | %s | %s | %t | %d | %d | %d | %d | %s | %.2f%% | %s |\n",
			s.Scenario, amount(s.TotalBudget), amount(s.Ceiling), s.AllowPartial, s.Applicants,
			s.FundedCount, s.FullyFundedCount, s.PartiallyFundedCount, amount(s.BudgetRemaining), s.CoveragePercent, s.Status)
	}
	if len(result.Errors) > 0 {
		fmt.Fprintf(&b, "\n## Warnings\n")
		for _, err := range result.Errors {
			fmt.Fprintf(&b, "- %s\n", err)
		}
	}
	return os.WriteFile(path, []byte(b.String()), 0644)
}
