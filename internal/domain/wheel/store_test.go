//go:build unit

package wheel_test

import (
	"context"
	"errors"
	"sync"
)

type mapStore struct {
	mu      sync.Mutex
	values  map[string]string
	sets    int
	deletes int
	setErr  error
	// runs once, after a conditional delete has been requested but before it applies
	beforeDelete func()
}

func newMapStore() *mapStore {
	return &mapStore{values: map[string]string{}}
}

func (s *mapStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *mapStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	s.sets++
	s.values[key] = value
	return nil
}

func (s *mapStore) DeleteIf(_ context.Context, key, expected string) (bool, error) {
	s.mu.Lock()
	hook := s.beforeDelete
	s.beforeDelete = nil
	s.mu.Unlock()
	if hook != nil {
		hook()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.values[key]; !ok || v != expected {
		return false, nil
	}
	s.deletes++
	delete(s.values, key)
	return true, nil
}

func (s *mapStore) onNextDelete(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.beforeDelete = fn
}

func (s *mapStore) has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.values[key]
	return ok
}

func (s *mapStore) setCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sets
}

var errStoreDown = errors.New("store down")
