// Package store persists artifact records across runs.
//
// The store is an append-only journal: Put appends a record and Get
// answers with the newest record for a name. Earlier records are kept, so
// consecutive CI runs leave an inspectable trail of what they produced.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/zerr"

	"github.com/access-ci/nvport/internal/core/domain"
)

// Store implements ports.ArtifactStore as a JSON journal file.
type Store struct {
	path    string
	mu      sync.Mutex
	records []domain.ArtifactInfo
}

// NewStore opens the journal at path, creating an empty one on first use.
func NewStore(path string) (*Store, error) {
	s := &Store{path: filepath.Clean(path)}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, zerr.Wrap(err, "failed to read artifact journal")
	}
	if len(data) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(data, &s.records); err != nil {
		return nil, zerr.Wrap(err, "failed to decode artifact journal")
	}
	return s, nil
}

// Get returns the newest record for name, or nil when none exists.
func (s *Store) Get(name string) (*domain.ArtifactInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(s.records) - 1; i >= 0; i-- {
		if s.records[i].Name == name {
			rec := s.records[i]
			return &rec, nil
		}
	}
	return nil, nil
}

// Put appends a record and flushes the journal.
func (s *Store) Put(info domain.ArtifactInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, info)
	return s.flush()
}

// History returns every record for name, oldest first.
func (s *Store) History(name string) []domain.ArtifactInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.ArtifactInfo
	for _, rec := range s.records {
		if rec.Name == name {
			out = append(out, rec)
		}
	}
	return out
}

// flush writes the journal to disk. Callers hold the mutex.
func (s *Store) flush() error {
	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to encode artifact journal")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for artifact journal")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write artifact journal")
	}
	return nil
}
