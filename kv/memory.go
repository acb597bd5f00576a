package kv

import "sync"

// MemoryStore is an in-process Store used by tests and the "memory"
// database type. Values are copied on the way in and out so callers can
// never alias the store's internal state.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[Key][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[Key][]byte)}
}

func (s *MemoryStore) Get(key Key) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (s *MemoryStore) Apply(batch *Batch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range batch.Entries() {
		v := make([]byte, len(e.Value))
		copy(v, e.Value)
		s.data[e.Key] = v
	}
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

// Len reports the number of stored keys. Test helper.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
