package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jmatsumo/resume-screener/internal/analysis"
	"github.com/jmatsumo/resume-screener/internal/lifecycle"
	"github.com/jmatsumo/resume-screener/internal/llm"
	"github.com/jmatsumo/resume-screener/internal/metadata"
	"github.com/jmatsumo/resume-screener/internal/rendering"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	frontendURL string
	client      llm.Client
	store       metadata.Store
	manager     *lifecycle.Manager
	analyses    *analysis.Service
	renderer    *rendering.Renderer
	validate    *validator.Validate
}

// Config holds server configuration
type Config struct {
	Port         int
	FrontendURL  string
	TempDir      string
	SavedDir     string
	MetadataPath string
	Client       llm.Client
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Client == nil {
		return nil, fmt.Errorf("llm client is required")
	}

	store := metadata.NewFileStore(cfg.MetadataPath)

	s := &Server{
		frontendURL: cfg.FrontendURL,
		client:      cfg.Client,
		store:       store,
		manager:     lifecycle.New(cfg.TempDir, cfg.SavedDir, store, cfg.Client, nil),
		analyses:    analysis.New(cfg.Client),
		renderer:    rendering.New(cfg.Client),
		validate:    validator.New(),
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Long timeout for model calls
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the API router.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	// Job description catalog
	mux.HandleFunc("GET /api/jd_options", s.handleJDOptions)
	mux.HandleFunc("GET /api/jd_default", s.handleJDDefault)
	mux.HandleFunc("POST /api/jd_text", s.handleJDText)

	// Parsing and analyses
	mux.HandleFunc("POST /api/parse_resume", s.handleParseResume)
	mux.HandleFunc("POST /api/resume_check", s.handleResumeCheck)
	mux.HandleFunc("POST /api/jd_match", s.handleJDMatch)
	mux.HandleFunc("POST /api/generate_questions", s.handleGenerateQuestions)
	mux.HandleFunc("POST /api/fit_score", s.handleFitScore)
	mux.HandleFunc("POST /api/generate_resume_table", s.handleGenerateResumeTable)

	// Saved documents
	mux.HandleFunc("POST /api/confirm_document", s.handleConfirmDocument)
	mux.HandleFunc("GET /api/get_saved_resumes", s.handleGetSavedResumes)
	mux.HandleFunc("GET /api/download_resume/{filename}", s.handleDownloadResume)
	mux.HandleFunc("GET /api/get_interview_qa/{filename}", s.handleGetInterviewQA)
	mux.HandleFunc("POST /api/clear_all_data", s.handleClearAllData)

	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if err := s.client.Close(); err != nil {
		log.Printf("Error closing model client: %v", err)
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers for the configured frontend origin
func (s *Server) withCORS(next http.Handler) http.Handler {
	origin := s.frontendURL
	if origin == "" {
		origin = "*"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
