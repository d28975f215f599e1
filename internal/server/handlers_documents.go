package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/jmatsumo/resume-screener/internal/lifecycle"
	"github.com/jmatsumo/resume-screener/internal/metadata"
)

// maxUploadSize bounds multipart resume uploads.
const maxUploadSize = 10 << 20 // 10MB

// ParseResumeResponse represents the response for /parse_resume
type ParseResumeResponse struct {
	DisplayOutput     string `json:"display_output"`
	RawParsedText     string `json:"raw_parsed_text"`
	OriginalFilename  string `json:"original_filename"`
	TempSavedFilename string `json:"temp_saved_filename"`
	ExtractedName     string `json:"extracted_name"`
}

// ConfirmDocumentRequest represents the request body for /confirm_document.
// Every field except timestamp is required; a missing field aborts the
// confirmation with no state mutated.
type ConfirmDocumentRequest struct {
	ResumeTextCache   string `json:"resume_text_cache" validate:"required"`
	JDText            string `json:"jd_text" validate:"required"`
	FitScoreOutput    string `json:"fit_score_output" validate:"required"`
	InterviewQAOutput string `json:"interview_qa_output" validate:"required"`
	SelectedJDRole    string `json:"selected_jd_role" validate:"required"`
	OriginalFileName  string `json:"original_file_name" validate:"required"`
	TempSavedFilename string `json:"temp_saved_filename" validate:"required"`
	ParsedResumeName  string `json:"parsed_resume_name" validate:"required"`
	Timestamp         string `json:"timestamp"`
}

// ConfirmDocumentResponse represents the response for /confirm_document
type ConfirmDocumentResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// QAResponse represents the response for /get_interview_qa
type QAResponse struct {
	QAContent string `json:"qa_content"`
}

// handleParseResume stores an uploaded resume in the temp area and parses
// it via the external model. Parsing failures degrade into the response
// body; the temp file survives either way for a later confirmation.
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "No resume file provided")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		s.errorResponse(w, http.StatusBadRequest, "No selected file")
		return
	}

	handle, err := s.manager.ReceiveUpload(header.Filename, file)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result := s.manager.Parse(r.Context(), handle.TempFilename)

	s.jsonResponse(w, http.StatusOK, ParseResumeResponse{
		DisplayOutput:     result.DisplayOutput,
		RawParsedText:     result.RawParsedText,
		OriginalFilename:  handle.OriginalFilename,
		TempSavedFilename: handle.TempFilename,
		ExtractedName:     result.ExtractedName,
	})
}

// handleConfirmDocument promotes a parsed resume to permanent storage
func (s *Server) handleConfirmDocument(w http.ResponseWriter, r *http.Request) {
	var req ConfirmDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing required data for confirmation")
		return
	}

	entryID, err := s.manager.Confirm(lifecycle.ConfirmRequest{
		TempSavedFilename: req.TempSavedFilename,
		OriginalFileName:  req.OriginalFileName,
		PersonName:        req.ParsedResumeName,
		JDRole:            req.SelectedJDRole,
		FitScore:          req.FitScoreOutput,
		InterviewQA:       req.InterviewQAOutput,
		Timestamp:         req.Timestamp,
	})
	if err != nil {
		var tempMissing *lifecycle.ErrTempFileMissing
		if errors.As(err, &tempMissing) {
			s.errorResponse(w, http.StatusInternalServerError,
				"Temporary resume file not found on server. Please re-upload and try again.")
			return
		}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ConfirmDocumentResponse{
		Message: "Document confirmed and saved!",
		ID:      entryID,
	})
}

// handleGetSavedResumes lists saved metadata, optionally filtered by role
// and sorted. Defaults match the original UI: newest first by timestamp.
func (s *Server) handleGetSavedResumes(w http.ResponseWriter, r *http.Request) {
	roleFilter := r.URL.Query().Get("role")
	sortKey := r.URL.Query().Get("sort_key")
	if sortKey == "" {
		sortKey = metadata.SortByTimestamp
	}
	sortOrder := metadata.SortOrder(r.URL.Query().Get("sort_order"))
	if sortOrder == "" {
		sortOrder = metadata.Descending
	}

	entries, err := s.store.Load()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load saved resumes: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, metadata.Query(entries, roleFilter, sortKey, sortOrder))
}

// handleDownloadResume serves a saved resume file as an attachment
func (s *Server) handleDownloadResume(w http.ResponseWriter, r *http.Request) {
	path, err := s.manager.SavedFilePath(r.PathValue("filename"))
	if err != nil {
		s.errorResponse(w, http.StatusNotFound, "Resume file not found")
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", lifecycle.SanitizeFilename(r.PathValue("filename"))))
	http.ServeFile(w, r, path)
}

// handleGetInterviewQA returns the content of a saved Q&A markdown file
func (s *Server) handleGetInterviewQA(w http.ResponseWriter, r *http.Request) {
	content, err := s.manager.InterviewQA(r.PathValue("filename"))
	if err != nil {
		s.errorResponse(w, http.StatusNotFound, "QA file not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, QAResponse{QAContent: content})
}

// handleClearAllData deletes all temp and saved files and resets the store
func (s *Server) handleClearAllData(w http.ResponseWriter, r *http.Request) {
	if err := s.manager.ClearAll(); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to clear all data: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "All data cleared successfully!"})
}
