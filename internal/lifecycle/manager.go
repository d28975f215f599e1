// Package lifecycle orchestrates the document lifecycle: temporary upload
// storage, model-backed parsing, promotion to permanent storage with a
// metadata record on confirmation, and bulk clearing.
//
// The confirm step moves the resume file and then appends the metadata
// record; the pair is deliberately not transactional. A crash between the
// two leaves an orphaned permanent file with no record, which is acceptable
// under this design's failure model.
package lifecycle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jmatsumo/resume-screener/internal/candidate"
	"github.com/jmatsumo/resume-screener/internal/llm"
	"github.com/jmatsumo/resume-screener/internal/metadata"
	"github.com/jmatsumo/resume-screener/internal/pdfpage"
	"github.com/jmatsumo/resume-screener/internal/prompts"
)

// Manager owns the storage areas and drives a document from upload through
// confirmation.
type Manager struct {
	tempDir   string
	savedDir  string
	store     metadata.Store
	client    llm.Client
	extractor pdfpage.Extractor
}

// New creates a lifecycle manager. The extractor may be nil, in which case
// a pdfcpu-based trim extractor writing transient artifacts to tempDir is
// used.
func New(tempDir, savedDir string, store metadata.Store, client llm.Client, extractor pdfpage.Extractor) *Manager {
	if extractor == nil {
		extractor = pdfpage.NewTrimExtractor(tempDir)
	}
	return &Manager{
		tempDir:   tempDir,
		savedDir:  savedDir,
		store:     store,
		client:    client,
		extractor: extractor,
	}
}

// UploadHandle pairs the client's original filename with the unique name
// the upload is stored under in the temp area.
type UploadHandle struct {
	OriginalFilename string
	TempFilename     string
}

// ReceiveUpload stores an uploaded document in the temp area under a newly
// generated unique name.
func (m *Manager) ReceiveUpload(originalFilename string, payload io.Reader) (UploadHandle, error) {
	if payload == nil {
		return UploadHandle{}, &ErrNoUpload{}
	}
	sanitized := SanitizeFilename(originalFilename)
	if sanitized == "" {
		return UploadHandle{}, &ErrEmptyFilename{}
	}

	tempName := fmt.Sprintf("%s_%s", uuid.New(), sanitized)
	tempPath := filepath.Join(m.tempDir, tempName)

	f, err := os.Create(tempPath)
	if err != nil {
		return UploadHandle{}, fmt.Errorf("failed to store upload: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, payload); err != nil {
		os.Remove(tempPath)
		return UploadHandle{}, fmt.Errorf("failed to store upload: %w", err)
	}

	return UploadHandle{OriginalFilename: sanitized, TempFilename: tempName}, nil
}

// ParseResult is the outcome of a parse request. Failures degrade into the
// result rather than erroring: DisplayOutput carries an error block,
// RawParsedText stays valid JSON, and ExtractedName signals the condition.
type ParseResult struct {
	DisplayOutput string
	RawParsedText string
	ExtractedName string
}

// Parse extracts structured candidate data from a temp upload via the
// external model. The temp file is never deleted here, success or failure;
// it must survive for a possible later confirmation. Transient page
// artifacts are cleaned up by the extractor in all cases.
func (m *Manager) Parse(ctx context.Context, tempFilename string) ParseResult {
	tempName := SanitizeFilename(tempFilename)
	if tempName == "" {
		return parseProcessError(fmt.Errorf("invalid temp filename"))
	}
	path := filepath.Join(m.tempDir, tempName)

	page, err := m.extractor.FirstPage(path)
	if err != nil {
		return parseProcessError(err)
	}

	prompt := prompts.MustGet("parsing.json", "resume_extract")
	var attachment llm.Attachment
	if page.PDF != nil {
		attachment = llm.BlobAttachment(pdfpage.PDFMIMEType, page.PDF)
	} else {
		attachment = llm.TextAttachment(page.Text)
	}

	raw, err := m.client.Complete(ctx, prompt, attachment)
	if err != nil {
		return parseProcessError(err)
	}

	return decodeModelOutput(raw)
}

// decodeModelOutput turns raw model text into a ParseResult, degrading to a
// raw-fallback record when the output is not a valid candidate JSON object.
func decodeModelOutput(raw string) ParseResult {
	cleaned := llm.CleanJSONBlock(raw)

	rec, err := candidate.Decode(cleaned)
	if err != nil {
		fallback, encErr := candidate.RawFallback(raw).Encode()
		if encErr != nil {
			return parseProcessError(encErr)
		}
		return ParseResult{
			DisplayOutput: fmt.Sprintf("```plain\nError parsing LLM JSON output: %v\nRaw LLM Output:\n%s\n```", err, raw),
			RawParsedText: fallback,
			ExtractedName: candidate.UnknownPersonParseError,
		}
	}

	// Shape drift is tolerated by the renderer, so schema violations are
	// advisory only.
	if err := candidate.ValidateSchema(cleaned); err != nil {
		log.Printf("Parsed candidate record deviates from schema: %v", err)
	}

	compact, err := rec.Encode()
	if err != nil {
		return parseProcessError(err)
	}
	indented, err := rec.EncodeIndented()
	if err != nil {
		return parseProcessError(err)
	}

	return ParseResult{
		DisplayOutput: fmt.Sprintf("```json\n%s\n```", indented),
		RawParsedText: compact,
		ExtractedName: rec.Name(),
	}
}

// parseProcessError builds the degraded result for a failure anywhere in
// the parse pipeline. RawParsedText remains valid JSON.
func parseProcessError(err error) ParseResult {
	errJSON, _ := json.Marshal(map[string]string{"error": err.Error()})
	return ParseResult{
		DisplayOutput: fmt.Sprintf("```plain\nError during resume parsing process: %v\n```", err),
		RawParsedText: string(errJSON),
		ExtractedName: "Error",
	}
}

// ConfirmRequest carries everything needed to promote a parsed document to
// permanent storage.
type ConfirmRequest struct {
	TempSavedFilename string
	OriginalFileName  string
	PersonName        string
	JDRole            string
	FitScore          string
	InterviewQA       string
	Timestamp         string
}

// Confirm moves the temp upload into permanent storage, best-effort writes
// the interview Q&A file, and appends the metadata record. The temp file
// must still exist; its absence fails the confirmation with nothing
// written. Returns the new entry id.
func (m *Manager) Confirm(req ConfirmRequest) (string, error) {
	tempName := SanitizeFilename(req.TempSavedFilename)
	tempPath := filepath.Join(m.tempDir, tempName)
	if tempName == "" {
		return "", &ErrTempFileMissing{Name: req.TempSavedFilename}
	}
	if _, err := os.Stat(tempPath); err != nil {
		return "", &ErrTempFileMissing{Name: tempName}
	}

	entryID := uuid.New().String()

	sanitized := SanitizeFilename(req.OriginalFileName)
	if sanitized == "" {
		sanitized = "resume" + filepath.Ext(tempName)
	}
	resumeFilename := fmt.Sprintf("%s_%s", entryID, sanitized)
	resumePath := filepath.Join(m.savedDir, resumeFilename)

	if err := moveFile(tempPath, resumePath); err != nil {
		return "", fmt.Errorf("failed to save resume file permanently: %w", err)
	}

	// Q&A write is best-effort: a failure is logged and the metadata record
	// simply omits the Q&A reference.
	qaFilename := fmt.Sprintf("%s_qa.md", entryID)
	qaPath := filepath.Join(m.savedDir, qaFilename)
	if err := os.WriteFile(qaPath, []byte(req.InterviewQA), 0o644); err != nil {
		log.Printf("Error saving QA file for entry %s: %v", entryID, err)
		qaFilename = ""
	}

	entry := metadata.Entry{
		ID:             entryID,
		PersonName:     req.PersonName,
		JDRole:         req.JDRole,
		FitScore:       req.FitScore,
		ResumeFilename: resumeFilename,
		QAFilename:     qaFilename,
		Timestamp:      req.Timestamp,
	}
	if err := m.store.Append(entry); err != nil {
		return "", fmt.Errorf("failed to record metadata: %w", err)
	}

	return entryID, nil
}

// SavedFilePath resolves a user-supplied filename to a path inside the
// permanent storage area. Names that sanitize away or do not exist yield
// ErrFileNotFound.
func (m *Manager) SavedFilePath(filename string) (string, error) {
	name := SanitizeFilename(filename)
	if name == "" {
		return "", &ErrFileNotFound{Name: filename}
	}
	path := filepath.Join(m.savedDir, name)
	if _, err := os.Stat(path); err != nil {
		return "", &ErrFileNotFound{Name: name}
	}
	return path, nil
}

// InterviewQA reads a saved Q&A markdown file.
func (m *Manager) InterviewQA(filename string) (string, error) {
	path, err := m.SavedFilePath(filename)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read QA file: %w", err)
	}
	return string(data), nil
}

// ClearAll deletes every file in both storage areas and resets the metadata
// store. Partial failures are collected and reported, not swallowed.
func (m *Manager) ClearAll() error {
	var errs []error
	if err := clearDir(m.tempDir); err != nil {
		errs = append(errs, err)
	}
	if err := clearDir(m.savedDir); err != nil {
		errs = append(errs, err)
	}
	if err := m.store.Save(nil); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// SweepTemp removes temp uploads older than maxAge and returns how many
// were removed. Unconfirmed uploads have no other expiry.
func (m *Manager) SweepTemp(maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(m.tempDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read temp directory: %w", err)
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	var errs []error
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(m.tempDir, entry.Name())); err != nil {
			errs = append(errs, err)
			continue
		}
		removed++
	}
	return removed, errors.Join(errs...)
}

// moveFile renames src to dst, falling back to copy-then-remove when the
// two live on different filesystems.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	} else if !isCrossDevice(err) {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return err
	}
	return os.Remove(src)
}

func isCrossDevice(err error) bool {
	var linkErr *os.LinkError
	return errors.As(err, &linkErr) && strings.Contains(linkErr.Err.Error(), "cross-device")
}

func clearDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var errs []error
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
