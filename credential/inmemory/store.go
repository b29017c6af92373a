// Package inmemory provides a thread-safe in-memory implementation of
// [credential.Store].
//
// It is intended for use in tests, prototyping and single-process tools that
// only need a credential for the lifetime of the process.
package inmemory

import (
	"context"
	"sync"

	"github.com/hasbyte1/go-secure-hash/credential"
)

// Store is a thread-safe in-memory implementation of [credential.Store].
type Store struct {
	mu      sync.RWMutex
	records map[string]credential.Record // keyed by record ID
}

// New creates an empty [Store].
func New() *Store {
	return &Store{records: make(map[string]credential.Record)}
}

// Put stores r, replacing any existing record with the same ID.
func (s *Store) Put(_ context.Context, r credential.Record) error {
	if err := r.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[r.ID] = r
	return nil
}

// Get retrieves a record by ID. Returns [credential.ErrNotFound] when absent.
func (s *Store) Get(_ context.Context, id string) (credential.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.records[id]
	if !ok {
		return credential.Record{}, credential.ErrNotFound
	}
	return r, nil
}

// Delete removes the record with the given ID. Returns [credential.ErrNotFound] when absent.
func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return credential.ErrNotFound
	}
	delete(s.records, id)
	return nil
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
