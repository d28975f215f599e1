package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmatsumo/resume-screener/internal/lifecycle"
	"github.com/jmatsumo/resume-screener/internal/llm"
	"github.com/jmatsumo/resume-screener/internal/pdfpage"
)

// stubClient is an llm.Client returning a canned response
type stubClient struct {
	output string
	err    error
}

func (c *stubClient) Complete(_ context.Context, _ string, _ ...llm.Attachment) (string, error) {
	return c.output, c.err
}

func (c *stubClient) Close() error { return nil }

// stubExtractor is a pdfpage.Extractor returning a canned page
type stubExtractor struct {
	page pdfpage.Page
	err  error
}

func (e *stubExtractor) FirstPage(_ string) (pdfpage.Page, error) {
	return e.page, e.err
}

// newTestServer builds a server over temp storage with a stub model client
// and a stub page extractor.
func newTestServer(t *testing.T, client llm.Client) *Server {
	t.Helper()
	root := t.TempDir()
	tempDir := filepath.Join(root, "temp")
	savedDir := filepath.Join(root, "saved")
	require.NoError(t, os.MkdirAll(tempDir, 0o755))
	require.NoError(t, os.MkdirAll(savedDir, 0o755))

	s, err := New(Config{
		Port:         8080,
		FrontendURL:  "http://localhost:3000",
		TempDir:      tempDir,
		SavedDir:     savedDir,
		MetadataPath: filepath.Join(root, "resumes_metadata.json"),
		Client:       client,
	})
	require.NoError(t, err)

	// Real page extraction needs genuine PDF input; tests feed fabricated
	// files, so swap in a canned extractor.
	s.manager = lifecycle.New(tempDir, savedDir, s.store, client,
		&stubExtractor{page: pdfpage.Page{Text: "first page text"}})

	return s
}

// TestNew_RequiresClient tests constructor validation
func TestNew_RequiresClient(t *testing.T) {
	_, err := New(Config{Port: 8080})
	assert.Error(t, err)
}

// TestCORS tests origin headers and preflight handling
func TestCORS(t *testing.T) {
	s := newTestServer(t, &stubClient{})
	handler := s.withCORS(s.routes())

	req := httptest.NewRequest(http.MethodOptions, "/api/jd_options", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/jd_options", nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

// TestRoutes_MethodNotAllowed tests method restrictions on the mux patterns
func TestRoutes_MethodNotAllowed(t *testing.T) {
	s := newTestServer(t, &stubClient{})
	mux := s.routes()

	req := httptest.NewRequest(http.MethodGet, "/api/parse_resume", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
