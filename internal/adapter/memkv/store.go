// Package memkv is an in-process key-value store with the same contract as
// the SQL kv repository.
package memkv

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"
)

// Store keeps values in memory. Safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	values map[string][]byte

	failWrites error
}

// New creates an empty store.
func New() *Store {
	return &Store{values: make(map[string][]byte)}
}

// FailWrites makes subsequent writes return err; nil restores normal writes.
func (s *Store) FailWrites(err error) {
	s.mu.Lock()
	s.failWrites = err
	s.mu.Unlock()
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(v), true, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrites != nil {
		return s.failWrites
	}
	s.values[key] = slices.Clone(value)
	return nil
}

func (s *Store) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrites != nil {
		return s.failWrites
	}
	delete(s.values, key)
	return nil
}

// Keys returns every key starting with prefix, ascending.
func (s *Store) Keys(_ context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := []string{}
	for _, k := range slices.Sorted(maps.Keys(s.values)) {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}
