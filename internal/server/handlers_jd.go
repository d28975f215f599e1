package server

import (
	"encoding/json"
	"net/http"

	"github.com/jmatsumo/resume-screener/internal/jd"
)

// JDTextRequest represents the request body for /jd_text
type JDTextRequest struct {
	Role string `json:"role"`
}

// handleJDOptions returns the available job-role labels
func (s *Server) handleJDOptions(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, jd.Roles())
}

// handleJDDefault returns the default job-description text
func (s *Server) handleJDDefault(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, jd.Default())
}

// handleJDText returns the job-description text for a role. The
// "Custom Input" sentinel yields an empty string so the client can present
// a free-form field.
func (s *Server) handleJDText(w http.ResponseWriter, r *http.Request) {
	var req JDTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, jd.Text(req.Role))
}
