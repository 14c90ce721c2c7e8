package override

import (
	"sync"
)

// Store is a thread-safe key/value store of property overrides.
// The zero value is ready to use.
type Store struct {
	mu     sync.Mutex
	values map[string]any
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{values: make(map[string]any)}
}

// Set stores value under key unless the key is already present.
// It reports whether the value was stored.
func (s *Store) Set(key string, value any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.values[key]; ok {
		return false
	}

	if s.values == nil {
		s.values = make(map[string]any)
	}

	s.values[key] = value

	return true
}

// GetOrAdd returns the value stored under key. When the key is absent it calls
// fallback, stores the result and returns it. fallback runs at most once per key
// and must not call back into the Store.
func (s *Store) GetOrAdd(key string, fallback func() any) any {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.values[key]; ok {
		return v
	}

	v := fallback()

	if s.values == nil {
		s.values = make(map[string]any)
	}

	s.values[key] = v

	return v
}

// Lookup returns the value stored under key.
func (s *Store) Lookup(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.values[key]

	return v, ok
}

// Len returns the number of stored keys.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.values)
}
