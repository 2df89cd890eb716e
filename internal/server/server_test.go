package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anatolykoptev/go_rojgar/internal/engine"
)

func stubResponse() *engine.RecommendationResponse {
	return &engine.RecommendationResponse{
		StructuredQuery: engine.StructuredQuery{
			Skills:          []string{"python"},
			Locations:       []string{"Delhi"},
			ExperienceLevel: "entry-level",
			JobTitles:       []string{"Python Developer"},
			SearchKeywords:  []string{"python jobs delhi"},
		},
		TotalJobsFound: 2,
		BestMatches: []engine.JobListing{{
			Title:    "Python Developer",
			Company:  "Acme Analytics",
			Location: "Delhi",
			URL:      "https://example.com/jobs/1",
			Source:   "Adzuna",
		}},
		OtherJobs: []engine.JobListing{{
			Title:    "Office Assistant",
			Company:  "N/A",
			Location: "Remote",
			URL:      "#",
			Source:   "Remotive.io",
		}},
	}
}

func newTestRouter(fn RecommendFunc, ready bool) *gin.Engine {
	return NewRouter(NewHandler(fn, func() bool { return ready }))
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRecommendOK(t *testing.T) {
	var gotRaw string
	r := newTestRouter(func(_ context.Context, rawText string) (*engine.RecommendationResponse, error) {
		gotRaw = rawText
		return stubResponse(), nil
	}, true)

	w := postJSON(r, "/recommend", `{"query": "python jobs in delhi for freshers"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "python jobs in delhi for freshers", gotRaw)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var resp engine.RecommendationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.TotalJobsFound)
	require.Len(t, resp.BestMatches, 1)
	assert.Equal(t, "Python Developer", resp.BestMatches[0].Title)
	require.Len(t, resp.OtherJobs, 1)
	assert.Equal(t, "Office Assistant", resp.OtherJobs[0].Title)
	assert.Equal(t, []string{"python"}, resp.StructuredQuery.Skills)
}

func TestRecommendEmptyBuckets(t *testing.T) {
	r := newTestRouter(func(context.Context, string) (*engine.RecommendationResponse, error) {
		return &engine.RecommendationResponse{
			StructuredQuery: engine.StructuredQuery{JobTitles: []string{"Any Job"}},
			BestMatches:     []engine.JobListing{},
			OtherJobs:       []engine.JobListing{},
		}, nil
	}, true)

	w := postJSON(r, "/recommend", `{"query": "anything at all"}`)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"best_matches":[]`)
	assert.Contains(t, body, `"other_jobs":[]`)
	assert.Contains(t, body, `"total_jobs_found":0`)
}

func TestRecommendText(t *testing.T) {
	r := newTestRouter(func(context.Context, string) (*engine.RecommendationResponse, error) {
		return stubResponse(), nil
	}, true)

	w := postJSON(r, "/recommend/text", `{"query": "python jobs"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	body := w.Body.String()
	assert.Contains(t, body, "=== Job Recommendations ===")
	assert.Contains(t, body, "Python Developer - Acme Analytics (Delhi)")
	assert.Contains(t, body, "Office Assistant")
}

func TestRecommendBadRequest(t *testing.T) {
	calls := 0
	r := newTestRouter(func(context.Context, string) (*engine.RecommendationResponse, error) {
		calls++
		return stubResponse(), nil
	}, true)

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"empty body", "", "invalid request"},
		{"not json", "python jobs please", "invalid request"},
		{"missing query", `{"q": "python"}`, "invalid request"},
		{"empty query", `{"query": ""}`, "invalid request"},
		{"blank query", `{"query": "   "}`, "query must not be empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(r, "/recommend", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Contains(t, body["error"], tt.wantErr)
		})
	}
	assert.Equal(t, 0, calls, "pipeline must not run on rejected input")
}

func TestRecommendNotReady(t *testing.T) {
	r := newTestRouter(func(context.Context, string) (*engine.RecommendationResponse, error) {
		return nil, engine.ErrNotReady
	}, false)

	w := postJSON(r, "/recommend", `{"query": "any work"}`)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "not ready")
}

func TestRecommendExtractionFailure(t *testing.T) {
	r := newTestRouter(func(context.Context, string) (*engine.RecommendationResponse, error) {
		return nil, &engine.ExtractionError{Stage: "backend", Err: errors.New("upstream timeout")}
	}, true)

	w := postJSON(r, "/recommend", `{"query": "any work"}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "extract backend")
}

func TestHealth(t *testing.T) {
	for _, ready := range []bool{true, false} {
		r := newTestRouter(nil, ready)
		w := get(r, "/health")

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, ready, body["ready"])
	}
}

func TestMetrics(t *testing.T) {
	r := newTestRouter(nil, true)
	w := get(r, "/metrics")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "recommend_requests ")
	assert.Contains(t, body, "provider_errors ")
}

func TestFavicon(t *testing.T) {
	r := newTestRouter(nil, true)
	w := get(r, "/favicon.ico")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestBanner(t *testing.T) {
	r := newTestRouter(nil, true)
	w := get(r, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "POST /recommend")
}
