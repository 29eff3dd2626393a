package credstore

import (
	"context"
	"sync"
)

// MemoryStore keeps records in process memory. It is meant for tests and
// local development; everything is lost on restart.
type MemoryStore struct {
	mu      sync.Mutex
	records []Record
}

// NewMemoryStore returns a store preloaded with records, in order.
func NewMemoryStore(records ...Record) *MemoryStore {
	s := &MemoryStore{}
	for _, rec := range records {
		s.records = append(s.records, normalize(rec))
	}
	return s
}

func (s *MemoryStore) Load(ctx context.Context) (map[string]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return index(s.records), nil
}

func (s *MemoryStore) Append(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, normalize(rec))
	return nil
}

// Records returns a copy of every appended record, duplicates included.
func (s *MemoryStore) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

func (s *MemoryStore) Close() error {
	return nil
}
