package server

import (
	"encoding/json"
	"net/http"
)

// AnalysisRequest represents the request body shared by the analysis
// endpoints. resume_text is the cached candidate data or raw resume text;
// jd_text is ignored by endpoints that do not need it.
type AnalysisRequest struct {
	ResumeText string `json:"resume_text"`
	JDText     string `json:"jd_text,omitempty"`
}

// AnalysisResponse represents the response of every analysis endpoint.
// Model failures arrive here as the output text, not as an HTTP error.
type AnalysisResponse struct {
	Output string `json:"output"`
}

// TableRequest represents the request body for /generate_resume_table
type TableRequest struct {
	ResumeTextCache string `json:"resume_text_cache"`
}

// handleResumeCheck reviews resume text for red flags
func (s *Server) handleResumeCheck(w http.ResponseWriter, r *http.Request) {
	var req AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	out := s.analyses.Check(r.Context(), req.ResumeText)
	s.jsonResponse(w, http.StatusOK, AnalysisResponse{Output: out})
}

// handleJDMatch returns the skill-match table for resume vs. JD
func (s *Server) handleJDMatch(w http.ResponseWriter, r *http.Request) {
	var req AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	out := s.analyses.Match(r.Context(), req.ResumeText, req.JDText)
	s.jsonResponse(w, http.StatusOK, AnalysisResponse{Output: out})
}

// handleGenerateQuestions returns interview questions with model answers
func (s *Server) handleGenerateQuestions(w http.ResponseWriter, r *http.Request) {
	var req AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	out := s.analyses.Questions(r.Context(), req.ResumeText, req.JDText)
	s.jsonResponse(w, http.StatusOK, AnalysisResponse{Output: out})
}

// handleFitScore returns the fit-score analysis
func (s *Server) handleFitScore(w http.ResponseWriter, r *http.Request) {
	var req AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	out := s.analyses.FitScore(r.Context(), req.ResumeText, req.JDText)
	s.jsonResponse(w, http.StatusOK, AnalysisResponse{Output: out})
}

// handleGenerateResumeTable renders cached candidate data to a Markdown
// table. Rendering never hard-fails; degraded output is still a 200.
func (s *Server) handleGenerateResumeTable(w http.ResponseWriter, r *http.Request) {
	var req TableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	out := s.renderer.Render(r.Context(), req.ResumeTextCache)
	s.jsonResponse(w, http.StatusOK, AnalysisResponse{Output: out})
}
