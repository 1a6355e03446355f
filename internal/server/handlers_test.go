package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewithprachi/jdscore/internal/server/ratelimit"
	"github.com/hirewithprachi/jdscore/internal/types"
)

// newTestServer builds a server without a database; analyses still run,
// nothing is cached or persisted.
func newTestServer() *Server {
	return &Server{
		cfg:         Config{MaxJobChars: 10000, FetchTimeout: 5 * time.Second},
		rateLimiter: ratelimit.NewLimiter(&ratelimit.Config{Enabled: false}),
	}
}

const validResume = `{
	"profile": {"name": "Asha", "email": "asha@example.com", "location": "Pune"},
	"experience": [{"role": "Engineer", "company": "Acme", "start": "Jan 2022", "bullets": [
		"Built data pipelines in Python that cut report latency from hours down to minutes",
		"Ran AWS infrastructure for three product teams and kept costs flat year over year"
	]}],
	"skills": {"core": ["Python", "AWS", "Docker", "SQL", "Linux"]}
}`

func analyzeBody(t *testing.T, fields map[string]any) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(fields)
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func doRequest(s *Server, method, target string, body *bytes.Buffer) *httptest.ResponseRecorder {
	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, target, body)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)
	return rec
}

func TestHandleAnalyze(t *testing.T) {
	s := newTestServer()
	rec := doRequest(s, http.MethodPost, "/analyze", analyzeBody(t, map[string]any{
		"resumeData": json.RawMessage(validResume),
		"jd":         "Looking for a Python developer with AWS and Docker experience. Must have strong communication skills.",
	}))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "miss", rec.Header().Get("X-Cache"))
	assert.Empty(t, rec.Header().Get("X-Analysis-Id"))

	var result types.AnalysisResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Greater(t, result.Score, 0)
	assert.NotEmpty(t, result.MatchedKeywords)
	assert.Greater(t, result.KeywordMatch.Total, 0)
}

func TestHandleAnalyze_Validation(t *testing.T) {
	s := newTestServer()

	cases := []struct {
		name   string
		fields map[string]any
	}{
		{"missing resumeData", map[string]any{"jd": "Python"}},
		{"missing jd and jobUrl", map[string]any{"resumeData": json.RawMessage(validResume)}},
		{"jd and jobUrl together", map[string]any{
			"resumeData": json.RawMessage(validResume),
			"jd":         "Python",
			"jobUrl":     "https://example.com/job",
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(s, http.MethodPost, "/analyze", analyzeBody(t, tc.fields))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleAnalyze_BadBody(t *testing.T) {
	s := newTestServer()
	rec := doRequest(s, http.MethodPost, "/analyze", bytes.NewBufferString("{not json"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyze_InvalidResume(t *testing.T) {
	s := newTestServer()
	rec := doRequest(s, http.MethodPost, "/analyze", analyzeBody(t, map[string]any{
		"resumeData": json.RawMessage(`{"summary": "no profile"}`),
		"jd":         "Python",
	}))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "profile")
}

func TestHandleAnalyze_JobTextTooLong(t *testing.T) {
	s := newTestServer()
	s.cfg.MaxJobChars = 20

	rec := doRequest(s, http.MethodPost, "/analyze", analyzeBody(t, map[string]any{
		"resumeData": json.RawMessage(validResume),
		"jd":         "This posting is well over the twenty character limit.",
	}))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "20")
}

func TestHandleAnalyze_JobURL(t *testing.T) {
	posting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><main><p>Requirements:</p><p>Python and AWS required.</p></main></body></html>`)
	}))
	defer posting.Close()

	s := newTestServer()
	rec := doRequest(s, http.MethodPost, "/analyze", analyzeBody(t, map[string]any{
		"resumeData": json.RawMessage(validResume),
		"jobUrl":     posting.URL,
	}))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result types.AnalysisResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Greater(t, result.KeywordMatch.Total, 0)
}

func TestHandleAnalyze_JobURLFetchFails(t *testing.T) {
	posting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer posting.Close()

	s := newTestServer()
	rec := doRequest(s, http.MethodPost, "/analyze", analyzeBody(t, map[string]any{
		"resumeData": json.RawMessage(validResume),
		"jobUrl":     posting.URL,
	}))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer()
	rec := doRequest(s, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

func TestAnalysesEndpointsWithoutDatabase(t *testing.T) {
	s := newTestServer()
	id := "0f2d8f0e-9d84-4f63-bb5a-0c2d55cf8e11"

	cases := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/analyses"},
		{http.MethodGet, "/analyses/" + id},
		{http.MethodDelete, "/analyses/" + id},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.target, func(t *testing.T) {
			rec := doRequest(s, tc.method, tc.target, nil)
			assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		})
	}
}

func TestAnalyzeRequest_Validate(t *testing.T) {
	valid := AnalyzeRequest{ResumeData: json.RawMessage(`{}`), JD: "Python"}
	assert.NoError(t, valid.Validate())

	missing := AnalyzeRequest{JD: "Python"}
	err := missing.Validate()
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(&ErrAnalysisNotFound{}))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrValidation{}))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrJobTextTooLong{Limit: 10}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(fmt.Errorf("boom")))
}
