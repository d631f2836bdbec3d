package store

import "sync"

// MemoryStore is an in-process Store. Tests inject one per case so each gets
// an isolated state.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (s *MemoryStore) Load(name string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	payload, found := s.data[name]
	return payload, found, nil
}

func (s *MemoryStore) Save(name, payload string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[name] = payload
	return nil
}

func (s *MemoryStore) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, name)
	return nil
}
