// Package metadata persists one record per confirmed resume in a single
// JSON array file, and answers filtered/sorted listing queries over it.
package metadata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Entry is one durable record describing a confirmed, permanently stored
// resume and its analysis outputs. Entries are immutable once written and
// are destroyed only by a full-store clear.
type Entry struct {
	ID             string `json:"id"`
	PersonName     string `json:"person_name"`
	JDRole         string `json:"jd_role"`
	FitScore       string `json:"fit_score"`
	ResumeFilename string `json:"resume_filename"`
	// QAFilename is absent when the Q&A file write failed at confirm time.
	QAFilename string `json:"qa_filename,omitempty"`
	// Timestamp is caller-supplied and treated as an opaque ordering value.
	Timestamp string `json:"timestamp"`
}

// Store is the repository over the metadata collection. It is an interface
// so a future swap to a real database needs no change in the query service
// or the lifecycle manager.
type Store interface {
	// Load returns all entries in stored order. A missing or empty backing
	// file yields an empty slice, not an error.
	Load() ([]Entry, error)
	// Save replaces the entire store contents with entries, in order.
	Save(entries []Entry) error
	// Append adds one entry at the end of the store.
	Append(entry Entry) error
}

// FileStore is a Store backed by a single JSON file.
//
// Writes go through a temp-file rename so readers never observe a partial
// file. The load-modify-save cycle in Append is serialized in-process by a
// mutex; across processes it is last-writer-wins, a documented limitation
// of this design rather than a guarantee.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store backed by the JSON file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load implements Store.
func (s *FileStore) Load() ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Save implements Store.
func (s *FileStore) Save(entries []Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(entries)
}

// Append implements Store.
func (s *FileStore) Append(entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}
	return s.save(append(entries, entry))
}

func (s *FileStore) load() ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata store: %w", err)
	}
	if len(data) == 0 {
		return []Entry{}, nil
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse metadata store: %w", err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

func (s *FileStore) save(entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode metadata store: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create metadata directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".metadata-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp metadata file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write metadata store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close metadata store: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace metadata store: %w", err)
	}
	return nil
}
