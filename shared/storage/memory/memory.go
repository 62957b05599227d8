// Package memory keeps the board in process memory. It backs tests and
// embedders that want a throwaway board.
package memory

import (
	"encoding/json"
	"sync"

	"github.com/nhb-dev/helpboard/shared/domain"
	"github.com/nhb-dev/helpboard/shared/logger"
	"github.com/nhb-dev/helpboard/shared/storage"
)

// Store holds the serialized collection, mirroring the single key-value
// entry the file store persists. Going through the codec on every call
// gives callers the same value isolation a durable store would.
type Store struct {
	mu   sync.RWMutex
	data []byte
}

var _ storage.Store = (*Store)(nil)

func New() *Store {
	return &Store{}
}

func (s *Store) LoadAll() []domain.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.data) == 0 {
		return nil
	}
	var posts []domain.Post
	if err := json.Unmarshal(s.data, &posts); err != nil {
		logger.Log.Warn("discarding corrupt board data", "error", err)
		return nil
	}
	return posts
}

func (s *Store) SaveAll(posts []domain.Post) error {
	data, err := json.Marshal(posts)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	return nil
}

// Corrupt overwrites the stored entry with a payload that cannot be
// decoded. Test helper for the fail-soft read path.
func (s *Store) Corrupt() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = []byte("{not json")
}
