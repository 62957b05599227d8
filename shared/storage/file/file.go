// Package file persists the board as a single JSON file on local disk.
package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nhb-dev/helpboard/shared/domain"
	"github.com/nhb-dev/helpboard/shared/logger"
	"github.com/nhb-dev/helpboard/shared/storage"
)

type Store struct {
	path string
}

// Ensure Store implements the interface at compile time.
var _ storage.Store = (*Store)(nil)

func New(path string) (*Store, error) {
	p := filepath.Clean(path)

	if dir := filepath.Dir(p); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory %s: %w", dir, err)
		}
	}

	return &Store{path: p}, nil
}

// LoadAll reads the persisted collection. A missing file means a fresh
// board; an unparsable file is treated the same way so a damaged data
// file can never take the board down.
func (s *Store) LoadAll() []domain.Post {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Log.Warn("failed to read board data", "path", s.path, "error", err)
		}
		return nil
	}

	var posts []domain.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		logger.Log.Warn("discarding corrupt board data", "path", s.path, "error", err)
		return nil
	}
	return posts
}

// SaveAll replaces the stored collection. The write goes through a temp
// file and a rename so a crash mid-write leaves the previous contents
// intact.
func (s *Store) SaveAll(posts []domain.Post) error {
	data, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("failed to serialize board data: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write board data: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp) // best effort
		return fmt.Errorf("failed to replace board data: %w", err)
	}
	return nil
}
