package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/phonics/internal/cmudict"
	"github.com/f3rmion/phonics/internal/phonics"
)

func testHandler(t *testing.T) http.Handler {
	t.Helper()
	dict := cmudict.New()
	dict.Add("window", []string{"W", "IH1", "N", "D", "OW0"})
	svc := phonics.NewService(dict, phonics.NewRegistry(), zerolog.Nop())
	return New(svc, zerolog.Nop()).Handler()
}

func postAnalyze(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeEndpoint(t *testing.T) {
	h := testHandler(t)

	rec := postAnalyze(t, h, `{"word": "window"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp phonics.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "window", resp.Word)
	assert.Equal(t, []string{"w", "ˈɪ", "n", "d", "oʊ"}, resp.FullPhonetic)
	require.Len(t, resp.Syllables, 2)
	assert.Equal(t, "win", resp.Syllables[0].Text)
	assert.NotEmpty(t, resp.NaturalReading)
}

func TestAnalyzeEndpointErrors(t *testing.T) {
	h := testHandler(t)

	tests := []struct {
		name string
		body string
		code int
	}{
		{"empty word", `{"word": ""}`, http.StatusBadRequest},
		{"blank word", `{"word": "   "}`, http.StatusBadRequest},
		{"unknown word", `{"word": "zzzqx"}`, http.StatusNotFound},
		{"malformed body", `{word`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postAnalyze(t, h, tt.body)
			assert.Equal(t, tt.code, rec.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp["error"])
		})
	}
}

func TestAnalyzeEndpointRequiresPost(t *testing.T) {
	h := testHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/analyze", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	h := testHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/analyze", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestHealthEndpoint(t *testing.T) {
	h := testHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Status string `json:"status"`
		Words  int    `json:"words"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 1, resp.Words)
}
