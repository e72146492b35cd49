package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liinajapson/budget-tool/internal/scenario"
	"github.com/liinajapson/budget-tool/internal/simulate"
)

func do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	New(nil).ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestSimulate(t *testing.T) {
	body := `{"budget":{"total":10000,"ceiling":1200},"tiers":[{"amount":500,"count":20},{"amount":800,"count":15}]}`
	rec := do(t, http.MethodPost, "/api/v1/simulate?explain=true", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var result simulate.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "api", result.Scenario)
	assert.Equal(t, 35, result.Summary.Applicants)
	assert.Equal(t, 20, result.Summary.FundedCount)
	assert.Equal(t, int64(0), result.Summary.BudgetRemaining)
	assert.Equal(t, simulate.StatusShortfall, result.Status)
	assert.NotEmpty(t, result.RunID)
	require.NotNil(t, result.Explain)
}

func TestSimulateErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
		code int
		msg  string
	}{
		{"empty", `{"budget":{"total":100,"ceiling":50},"tiers":[]}`, http.StatusUnprocessableEntity, "no applicants"},
		{"negative", `{"budget":{"total":-1,"ceiling":50},"tiers":[{"amount":10,"count":1}]}`, http.StatusBadRequest, "budget.total must not be negative"},
		{"unknown-field", `{"budgte":{}}`, http.StatusBadRequest, "decode scenario"},
		{"malformed", `{`, http.StatusBadRequest, "decode scenario"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, http.MethodPost, "/api/v1/simulate", tc.body)
			assert.Equal(t, tc.code, rec.Code)
			var resp errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Contains(t, resp.Error, tc.msg)
		})
	}
}

func TestSimulateWrongMethod(t *testing.T) {
	rec := do(t, http.MethodGet, "/api/v1/simulate", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestPresets(t *testing.T) {
	rec := do(t, http.MethodGet, "/api/v1/presets", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []presetSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, len(scenario.PresetNames()))
	assert.Equal(t, "capped", list[0].Name)

	rec = do(t, http.MethodGet, "/api/v1/presets/default", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var doc scenario.Scenario
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "default", doc.Metadata.Name)
	assert.Equal(t, 45, doc.Applicants())

	rec = do(t, http.MethodGet, "/api/v1/presets/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "preset must be one of")
}
