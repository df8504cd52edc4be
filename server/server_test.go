package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code_error_explainer/explainer"
)

func newTestServer(t *testing.T) (*Server, explainer.Config) {
	t.Helper()
	tmp := t.TempDir()
	cfg := explainer.Config{
		InputDir:   filepath.Join(tmp, "in"),
		ReportPath: filepath.Join(tmp, "out", "report.md"),
	}
	bot, err := explainer.NewBot(explainer.MockLLM{})
	require.NoError(t, err)
	srv, err := New(bot, cfg)
	require.NoError(t, err)
	return srv, cfg
}

func TestNew_RequiresBot(t *testing.T) {
	_, err := New(nil, explainer.Config{})
	require.Error(t, err)
}

func TestHandleExplain(t *testing.T) {
	srv, _ := newTestServer(t)

	body := strings.NewReader(`{"code": "if True\n    pass", "error_message": ""}`)
	req := httptest.NewRequest(http.MethodPost, "/api/explain", body)
	w := httptest.NewRecorder()
	srv.Routes().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		OK          bool   `json:"ok"`
		Explanation string `json:"explanation"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Contains(t, resp.Explanation, "## Error Analysis")
}

func TestHandleExplain_MethodNotAllowed(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/explain", nil)
	w := httptest.NewRecorder()
	srv.Routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestHandleBatch_WritesReport(t *testing.T) {
	srv, cfg := newTestServer(t)
	require.NoError(t, os.MkdirAll(cfg.InputDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.InputDir, "oops.py"), []byte("x = "), 0o644))

	req := httptest.NewRequest(http.MethodPost, "/api/batch", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	srv.Routes().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Status     string `json:"status"`
		Cases      int    `json:"cases"`
		ReportPath string `json:"report_path"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 1, resp.Cases)

	data, err := os.ReadFile(cfg.ReportPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "## Case 1: oops.py")
}

func TestHandleBatch_MissingDirectory(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/batch", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	srv.Routes().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Status string `json:"status"`
		Cases  int    `json:"cases"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "input directory not found", resp.Status)
	assert.Zero(t, resp.Cases)
}

func TestHandleReport(t *testing.T) {
	srv, cfg := newTestServer(t)

	// No report yet.
	req := httptest.NewRequest(http.MethodGet, "/api/report", nil)
	w := httptest.NewRecorder()
	srv.Routes().ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	require.NoError(t, os.MkdirAll(filepath.Dir(cfg.ReportPath), 0o755))
	require.NoError(t, os.WriteFile(cfg.ReportPath, []byte("# Report\n\n## Case 1: oops.py\n"), 0o644))

	req = httptest.NewRequest(http.MethodGet, "/api/report", nil)
	w = httptest.NewRecorder()
	srv.Routes().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "<h2")
	assert.Contains(t, w.Body.String(), "oops.py")
}

func TestIndexPageServed(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	srv.Routes().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Code Error Explanation Bot")
}
