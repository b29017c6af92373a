// Package leveldb provides a [credential.Store] backed by an embedded
// LevelDB database on local disk.
package leveldb

import (
	"context"
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/hasbyte1/go-secure-hash/credential"
)

// keyPrefix namespaces credential records inside the database.
const keyPrefix = "cred:"

// Store is a [credential.Store] backed by goleveldb. Writes are synced to
// disk before Put returns, and the salt and digest are written as a single
// value so they never drift apart.
type Store struct {
	db *leveldb.DB
}

// Open opens (or creates) the database at path.
func Open(path string) (*Store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("credential/leveldb: open %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores r, replacing any existing record with the same ID.
func (s *Store) Put(ctx context.Context, r credential.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.Validate(); err != nil {
		return err
	}
	b, err := credential.MarshalRecord(r)
	if err != nil {
		return err
	}
	if err := s.db.Put(key(r.ID), b, &opt.WriteOptions{Sync: true}); err != nil {
		return fmt.Errorf("credential/leveldb: put %q: %w", r.ID, err)
	}
	return nil
}

// Get retrieves a record by ID. Returns [credential.ErrNotFound] when absent.
func (s *Store) Get(ctx context.Context, id string) (credential.Record, error) {
	if err := ctx.Err(); err != nil {
		return credential.Record{}, err
	}
	b, err := s.db.Get(key(id), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return credential.Record{}, credential.ErrNotFound
	}
	if err != nil {
		return credential.Record{}, fmt.Errorf("credential/leveldb: get %q: %w", id, err)
	}
	return credential.UnmarshalRecord(b)
}

// Delete removes the record with the given ID. Returns [credential.ErrNotFound] when absent.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ok, err := s.db.Has(key(id), nil)
	if err != nil {
		return fmt.Errorf("credential/leveldb: has %q: %w", id, err)
	}
	if !ok {
		return credential.ErrNotFound
	}
	if err := s.db.Delete(key(id), &opt.WriteOptions{Sync: true}); err != nil {
		return fmt.Errorf("credential/leveldb: delete %q: %w", id, err)
	}
	return nil
}

func key(id string) []byte {
	return []byte(keyPrefix + id)
}
