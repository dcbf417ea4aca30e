package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/policyscope/policyscope/internal/analyzer"
	"github.com/policyscope/policyscope/internal/pipeline"
)

// stubRunner satisfies Runner with canned responses.
type stubRunner struct {
	report *pipeline.Report
	err    error
	mode   string
}

func (s *stubRunner) Analyze(ctx context.Context, query string) (*pipeline.Report, error) {
	return s.report, s.err
}

func (s *stubRunner) Mode(ctx context.Context) string {
	return s.mode
}

func testReport() *pipeline.Report {
	return &pipeline.Report{
		ID:          uuid.New(),
		ServiceName: "Netflix",
		Domain:      "netflix.com",
		TrustScore:  62,
		Grade:       "B",
		Mode:        pipeline.ModeHeuristic,
		AnalyzedAt:  time.Now().UTC(),
		Attributes: []analyzer.ScoredAttribute{
			{ID: "data_selling", Label: "Sells User Data", Severity: analyzer.SeverityGood, Weight: 15, PointsEarned: 15},
		},
	}
}

func doRequest(t *testing.T, runner Runner, method, path, body string) (*httptest.ResponseRecorder, Response) {
	t.Helper()

	var reqBody *strings.Reader
	if body != "" {
		reqBody = strings.NewReader(body)
	} else {
		reqBody = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reqBody)
	rec := httptest.NewRecorder()
	New(runner, nil, zap.NewNop()).Router().ServeHTTP(rec, req)

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return rec, resp
}

func TestAnalyze_Success(t *testing.T) {
	runner := &stubRunner{report: testReport(), mode: pipeline.ModeHeuristic}

	rec, resp := doRequest(t, runner, http.MethodPost, "/analyze", `{"query": "netflix"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Nil(t, resp.Error)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Netflix", data["service_name"])
	assert.Equal(t, float64(62), data["trust_score"])
	assert.Equal(t, "B", data["grade"])
}

func TestAnalyze_InvalidBody(t *testing.T) {
	rec, resp := doRequest(t, &stubRunner{}, http.MethodPost, "/analyze", "not json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "invalid_body", resp.Error.Code)
}

func TestAnalyze_EmptyQuery(t *testing.T) {
	rec, resp := doRequest(t, &stubRunner{}, http.MethodPost, "/analyze", `{"query": "   "}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "empty_query", resp.Error.Code)
}

func TestAnalyze_QueryTooLong(t *testing.T) {
	body := `{"query": "` + strings.Repeat("x", 201) + `"}`

	rec, resp := doRequest(t, &stubRunner{}, http.MethodPost, "/analyze", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "query_too_long", resp.Error.Code)
}

func TestAnalyze_UnknownService(t *testing.T) {
	runner := &stubRunner{err: pipeline.ErrUnknownService}

	rec, resp := doRequest(t, runner, http.MethodPost, "/analyze", `{"query": "obscure-app"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "unknown_service", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "obscure-app")
}

func TestAnalyze_ScrapeFailed(t *testing.T) {
	runner := &stubRunner{err: pipeline.ErrScrapeFailed}

	rec, resp := doRequest(t, runner, http.MethodPost, "/analyze", `{"query": "netflix"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "scrape_failed", resp.Error.Code)
}

func TestAnalyze_ExtractFailed(t *testing.T) {
	runner := &stubRunner{err: pipeline.ErrExtractFailed}

	rec, resp := doRequest(t, runner, http.MethodPost, "/analyze", `{"query": "netflix"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "extract_failed", resp.Error.Code)
}

func TestAnalyze_InternalError(t *testing.T) {
	runner := &stubRunner{err: context.DeadlineExceeded}

	rec, resp := doRequest(t, runner, http.MethodPost, "/analyze", `{"query": "netflix"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "internal_error", resp.Error.Code)
}

func TestHealth_HeuristicMode(t *testing.T) {
	runner := &stubRunner{mode: pipeline.ModeHeuristic}

	rec, resp := doRequest(t, runner, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "ok", data["status"])
	assert.Equal(t, pipeline.ModeHeuristic, data["mode"])
	assert.Contains(t, data["ollama"], "unavailable")
}

func TestHealth_LLMMode(t *testing.T) {
	runner := &stubRunner{mode: pipeline.ModeLLM}

	rec, resp := doRequest(t, runner, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "connected", data["ollama"])
}

func TestHistoryEndpoints_DisabledWithoutDatabase(t *testing.T) {
	paths := []string{
		"/analyses",
		"/analyses/" + uuid.NewString(),
		"/analyses/domain/netflix.com",
		"/stats",
	}

	for _, path := range paths {
		rec, resp := doRequest(t, &stubRunner{}, http.MethodGet, path, "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, path)
		require.NotNil(t, resp.Error, path)
		assert.Equal(t, "history_disabled", resp.Error.Code, path)
	}
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/analyze", nil)
	rec := httptest.NewRecorder()
	New(&stubRunner{}, nil, zap.NewNop()).Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestParsePagination(t *testing.T) {
	cases := []struct {
		query   string
		page    int
		perPage int
	}{
		{"", 1, 50},
		{"?page=3&per_page=10", 3, 10},
		{"?page=-1&per_page=0", 1, 50},
		{"?per_page=1000", 1, 50},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/analyses"+tc.query, nil)
		page, perPage := parsePagination(req)
		assert.Equal(t, tc.page, page, tc.query)
		assert.Equal(t, tc.perPage, perPage, tc.query)
	}
}
