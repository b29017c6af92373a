// Package redis provides a [credential.Store] backed by Redis.
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/hasbyte1/go-secure-hash/credential"
)

// DefaultPrefix is the key prefix used when none is configured.
const DefaultPrefix = "securehash:cred:"

// Store is a [credential.Store] backed by a Redis client. Each record is one
// string key holding the JSON-encoded record, so salt and digest are always
// written together.
type Store struct {
	client goredis.UniversalClient
	prefix string
}

// New returns a Store using client. An empty prefix selects [DefaultPrefix].
func New(client goredis.UniversalClient, prefix string) *Store {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Store{client: client, prefix: prefix}
}

// Dial parses a redis:// URL, connects and pings the server.
func Dial(ctx context.Context, url, prefix string) (*Store, error) {
	opt, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("credential/redis: parse url: %w", err)
	}
	client := goredis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("credential/redis: ping: %w", err)
	}
	return New(client, prefix), nil
}

// Close closes the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}

// Put stores r, replacing any existing record with the same ID.
func (s *Store) Put(ctx context.Context, r credential.Record) error {
	if err := r.Validate(); err != nil {
		return err
	}
	b, err := credential.MarshalRecord(r)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key(r.ID), b, 0).Err(); err != nil {
		return fmt.Errorf("credential/redis: set %q: %w", r.ID, err)
	}
	return nil
}

// Get retrieves a record by ID. Returns [credential.ErrNotFound] when absent.
func (s *Store) Get(ctx context.Context, id string) (credential.Record, error) {
	b, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return credential.Record{}, credential.ErrNotFound
	}
	if err != nil {
		return credential.Record{}, fmt.Errorf("credential/redis: get %q: %w", id, err)
	}
	return credential.UnmarshalRecord(b)
}

// Delete removes the record with the given ID. Returns [credential.ErrNotFound] when absent.
func (s *Store) Delete(ctx context.Context, id string) error {
	n, err := s.client.Del(ctx, s.key(id)).Result()
	if err != nil {
		return fmt.Errorf("credential/redis: del %q: %w", id, err)
	}
	if n == 0 {
		return credential.ErrNotFound
	}
	return nil
}

func (s *Store) key(id string) string {
	return s.prefix + id
}
