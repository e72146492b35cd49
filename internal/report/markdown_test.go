package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liinajapson/budget-tool/internal/scenario"
	"github.com/liinajapson/budget-tool/internal/simulate"
)

func TestWriteMarkdownSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.md")
	require.NoError(t, WriteMarkdownSummary(path, goldenResult(t), Options{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	md := string(data)

	assert.True(t, strings.HasPrefix(md, "# Scholarship allocation: golden\n"))
	assert.Contains(t, md, "| Total budget | 1,000 |\n")
	assert.Contains(t, md, "| Students funded | 2 |\n")
	assert.Contains(t, md, "| Coverage | 100.00% |\n")
	assert.Contains(t, md, "| 500_2 | 500 | 500 | Full |\n")
	assert.Contains(t, md, "| 1,000 | 2 |\n")
	assert.NotContains(t, md, "## Notes & assumptions")
	assert.NotContains(t, md, "## How computed")
}

func TestRenderMarkdownPartialAndExplain(t *testing.T) {
	doc, err := scenario.PresetByName("partial")
	require.NoError(t, err)
	// bases take 22,500; the rest covers every 300 top-up and four 700 ones.
	doc.Budget.Total = 30000
	result, _, err := simulate.Run(doc, simulate.Options{RunID: "preset", Explain: true})
	require.NoError(t, err)

	md := RenderMarkdown(result, Options{Explain: true, CurveSteps: 10})

	assert.Contains(t, md, "- Policy: partial awards, ceiling 1,200, minimum base 500\n")
	assert.Contains(t, md, "| Partial |")
	assert.Contains(t, md, "## How computed")
	assert.Contains(t, md, "| Budget remaining | 200 |\n")
	// 45 awards stay below the resampling threshold: origin plus one row each.
	curveSection := md[strings.Index(md, "## Cumulative coverage curve"):]
	assert.Equal(t, 46+2, strings.Count(curveSection[:strings.Index(curveSection, "\n## ")], "\n| "))
}

func TestRenderMarkdownResamplesLongCurves(t *testing.T) {
	doc, err := scenario.PresetByName("default")
	require.NoError(t, err)
	doc.Tiers = []scenario.Tier{{Amount: 100, Count: 200}}
	doc.Budget.Total = 5000
	result, _, err := simulate.Run(doc, simulate.Options{RunID: "long"})
	require.NoError(t, err)

	md := RenderMarkdown(result, Options{CurveSteps: 4})
	assert.Contains(t, md, "| 20,000 | 200 |\n")
	assert.Contains(t, md, "| 5,000 | 50 |\n")
	assert.NotContains(t, md, "| 100 | 1 |\n")
}

func TestRenderMarkdownNothingFunded(t *testing.T) {
	doc, err := scenario.PresetByName("default")
	require.NoError(t, err)
	doc.Budget.Total = 100
	result, _, err := simulate.Run(doc, simulate.Options{RunID: "none"})
	require.NoError(t, err)

	md := RenderMarkdown(result, Options{})
	assert.Contains(t, md, "No student received funding.\n")
	assert.Contains(t, md, "45 of 45 applicants received no funding")
}

func TestWriteWarningsMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warnings.md")
	require.NoError(t, WriteWarningsMarkdown(path, []string{"first", "second"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Simulation warnings\n\n- first\n- second\n", string(data))
}
