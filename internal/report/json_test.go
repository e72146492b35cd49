package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/liinajapson/budget-tool/internal/scenario"
	"github.com/liinajapson/budget-tool/internal/simulate"
)

func goldenResult(t *testing.T) simulate.Result {
	t.Helper()
	doc := scenario.Scenario{
		APIVersion: scenario.APIVersionV1,
		Kind:       scenario.KindScholarshipScenario,
		Metadata:   scenario.Metadata{Name: "golden"},
		Budget:     scenario.Budget{Total: 1000, Ceiling: 1200},
		Tiers:      []scenario.Tier{{Amount: 500, Count: 2}},
	}
	result, _, err := simulate.Run(doc, simulate.Options{RunID: "golden-run"})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	return result
}

func TestWriteSummaryJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.json")
	if err := WriteSummaryJSON(path, goldenResult(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	golden, err := os.ReadFile("./testdata/summary.json")
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	if string(data) != string(golden) {
		t.Fatalf("json mismatch:\n%s", data)
	}
}
