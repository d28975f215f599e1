// Package server provides the HTTP REST API for the resume screener.
package server

import (
	"errors"
	"net/http"

	"github.com/jmatsumo/resume-screener/internal/lifecycle"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
//
// Missing uploads and unusable filenames are client input errors; a saved
// file that cannot be resolved is a 404; a temp file missing at
// confirmation time is a server-side consistency failure.
func HTTPStatus(err error) int {
	var (
		noUpload      *lifecycle.ErrNoUpload
		emptyFilename *lifecycle.ErrEmptyFilename
		notFound      *lifecycle.ErrFileNotFound
		tempMissing   *lifecycle.ErrTempFileMissing
	)
	switch {
	case errors.As(err, &noUpload), errors.As(err, &emptyFilename):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &tempMissing):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
