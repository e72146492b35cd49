package vegalite

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/liinajapson/budget-tool/internal/allocation"
	"github.com/liinajapson/budget-tool/internal/simulate"
)

const (
	outputFile = "coverage.vl.json"
	schemaURL  = "https://vega.github.io/schema/vega-lite/v5.json"
)

type Options struct {
	// Steps resamples the curve onto an even budget axis; zero keeps the
	// exact step points.
	Steps int
}

func Write(result simulate.Result, outDir string, opts Options) (string, error) {
	if outDir == "" {
		outDir = filepath.Join("out", "vega-lite")
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(Build(result, opts), "", "  ")
	if err != nil {
		return "", err
	}
	data = append(data, '\n')
	path := filepath.Join(outDir, outputFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// Build returns a layered chart: the cheapest-first coverage step line and a
// rule at the configured budget.
func Build(result simulate.Result, opts Options) map[string]interface{} {
	curve := result.Curve
	if opts.Steps > 0 {
		curve = allocation.Resample(result.Curve, result.Budget.TotalBudget, opts.Steps)
	}
	values := make([]map[string]interface{}, 0, len(curve))
	for _, point := range curve {
		values = append(values, map[string]interface{}{
			"spend":    point.CumulativeBaseSpend,
			"students": point.StudentsFunded,
		})
	}

	line := map[string]interface{}{
		"data": map[string]interface{}{"values": values},
		"mark": map[string]interface{}{
			"type":        "line",
			"interpolate": "step-after",
			"point":       opts.Steps == 0,
		},
		"encoding": map[string]interface{}{
			"x": map[string]interface{}{"field": "spend", "type": "quantitative", "title": "Cumulative base spend"},
			"y": map[string]interface{}{"field": "students", "type": "quantitative", "title": "Students funded"},
		},
	}
	budgetRule := map[string]interface{}{
		"data": map[string]interface{}{"values": []map[string]interface{}{{"budget": result.Budget.TotalBudget}}},
		"mark": map[string]interface{}{"type": "rule", "strokeDash": []int{4, 4}},
		"encoding": map[string]interface{}{
			"x": map[string]interface{}{"field": "budget", "type": "quantitative"},
		},
	}

	return map[string]interface{}{
		"$schema":     schemaURL,
		"title":       fmt.Sprintf("Cumulative coverage: %s", result.Scenario),
		"description": fmt.Sprintf("Students covered by base amounts, cheapest first; budget %d funds %d", result.Budget.TotalBudget, allocation.StudentsAt(result.Curve, result.Budget.TotalBudget)),
		"width":       600,
		"height":      300,
		"layer":       []interface{}{line, budgetRule},
	}
}
