package progress

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store for tests and ephemeral sessions.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]*Record
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*Record)}
}

func (s *MemoryStore) record(subject string) *Record {
	rec, ok := s.records[subject]
	if !ok {
		rec = NewRecord()
		s.records[subject] = rec
	}
	return rec
}

func (s *MemoryStore) Load(_ context.Context, subject string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record(subject).Snapshot(), nil
}

func (s *MemoryStore) MarkCompleted(_ context.Context, subject, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(subject).Completed[itemID] = true
	return nil
}

func (s *MemoryStore) SaveAnswer(_ context.Context, subject, itemID string, questionIdx int, choice string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(subject).Answers[AnswerKey(itemID, questionIdx)] = choice
	return nil
}

func (s *MemoryStore) SaveResult(_ context.Context, subject, itemID string, res Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(subject).Results[itemID] = res
	return nil
}

func (s *MemoryStore) ClearQuiz(_ context.Context, subject, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.record(subject)
	for key := range rec.Answers {
		id, _, ok := ParseAnswerKey(key)
		if ok && id == itemID {
			delete(rec.Answers, key)
		}
	}
	delete(rec.Results, itemID)
	return nil
}

func (s *MemoryStore) Close() error { return nil }
