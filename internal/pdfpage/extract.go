// Package pdfpage extracts the first page of an uploaded resume document so
// it can be sent to the external model for vision extraction. The primary
// path trims the document to a standalone single-page PDF; when that fails
// (encrypted or malformed files) the text layer of the first page is
// extracted instead. Rasterization proper is delegated to the model, which
// accepts PDF page blobs directly.
package pdfpage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// PDFMIMEType is the MIME type of the page blob sent to the model.
const PDFMIMEType = "application/pdf"

// Page is the first page of a document in whichever form extraction
// produced: a single-page PDF blob, or its plain-text layer.
type Page struct {
	PDF  []byte
	Text string
}

// Extractor produces the first page of a document for model consumption.
// It is an interface so tests and alternative rasterizers can be swapped in.
type Extractor interface {
	FirstPage(path string) (Page, error)
}

// TrimExtractor implements Extractor with pdfcpu page trimming plus a
// text-layer fallback. Transient page artifacts are written under tempDir
// and removed before returning, success or not.
type TrimExtractor struct {
	tempDir string
}

// NewTrimExtractor creates an extractor writing transient artifacts to
// tempDir (the OS temp dir when empty).
func NewTrimExtractor(tempDir string) *TrimExtractor {
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &TrimExtractor{tempDir: tempDir}
}

// FirstPage extracts the first page of the document at path.
func (e *TrimExtractor) FirstPage(path string) (Page, error) {
	blob, trimErr := e.trimFirstPage(path)
	if trimErr == nil {
		return Page{PDF: blob}, nil
	}

	text, textErr := extractTextLayer(path)
	if textErr != nil {
		return Page{}, fmt.Errorf("page extraction failed: trim: %v; text layer: %v", trimErr, textErr)
	}
	if strings.TrimSpace(text) == "" {
		return Page{}, fmt.Errorf("page extraction failed: trim: %v; text layer is empty", trimErr)
	}
	return Page{Text: text}, nil
}

// trimFirstPage writes a transient single-page PDF containing page 1 and
// returns its bytes. The artifact is removed in all cases.
func (e *TrimExtractor) trimFirstPage(path string) ([]byte, error) {
	pageCount, err := api.PageCountFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read page count: %w", err)
	}
	if pageCount < 1 {
		return nil, fmt.Errorf("document has no pages")
	}

	outPath := filepath.Join(e.tempDir, fmt.Sprintf("%s_resume_page.pdf", uuid.New()))
	defer os.Remove(outPath)

	if err := api.TrimFile(path, outPath, []string{"1"}, nil); err != nil {
		return nil, fmt.Errorf("failed to trim document to first page: %w", err)
	}

	blob, err := os.ReadFile(outPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read trimmed page: %w", err)
	}
	return blob, nil
}

// extractTextLayer pulls the plain text of the first page.
func extractTextLayer(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}
	defer f.Close()

	if reader.NumPage() < 1 {
		return "", fmt.Errorf("document has no pages")
	}
	page := reader.Page(1)
	if page.V.IsNull() {
		return "", fmt.Errorf("first page is empty")
	}
	text, err := page.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("failed to extract text layer: %w", err)
	}
	return text, nil
}
