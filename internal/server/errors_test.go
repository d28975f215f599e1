package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmatsumo/resume-screener/internal/lifecycle"
)

// TestHTTPStatus tests the lifecycle error to status code mapping
func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"no upload", &lifecycle.ErrNoUpload{}, http.StatusBadRequest},
		{"empty filename", &lifecycle.ErrEmptyFilename{}, http.StatusBadRequest},
		{"file not found", &lifecycle.ErrFileNotFound{Name: "x.pdf"}, http.StatusNotFound},
		{"temp file missing", &lifecycle.ErrTempFileMissing{Name: "x.pdf"}, http.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("context: %w", &lifecycle.ErrFileNotFound{Name: "x.pdf"}), http.StatusNotFound},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
