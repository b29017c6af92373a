// Package postgres provides a [credential.Store] backed by PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hasbyte1/go-secure-hash/credential"
	"github.com/hasbyte1/go-secure-hash/hashing"
)

// DefaultTable is the table used when none is configured.
const DefaultTable = "credentials"

// Store is a [credential.Store] backed by a pgx connection pool. Each record
// is one row, so salt and digest are updated in a single statement.
type Store struct {
	pool  *pgxpool.Pool
	table string // sanitized identifier
}

// New returns a Store using pool. An empty table selects [DefaultTable].
func New(pool *pgxpool.Pool, table string) *Store {
	if table == "" {
		table = DefaultTable
	}
	return &Store{pool: pool, table: pgx.Identifier{table}.Sanitize()}
}

// Connect creates a pool for url and pings the server.
func Connect(ctx context.Context, url, table string) (*Store, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("credential/postgres: connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("credential/postgres: ping: %w", err)
	}
	return New(pool, table), nil
}

// Close closes the pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

// EnsureSchema creates the credential table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	q := `CREATE TABLE IF NOT EXISTS ` + s.table + ` (
		id         TEXT PRIMARY KEY,
		salt       TEXT NOT NULL DEFAULT '',
		digest     CHAR(64) NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`
	if _, err := s.pool.Exec(ctx, q); err != nil {
		return fmt.Errorf("credential/postgres: ensure schema: %w", err)
	}
	return nil
}

// Put stores r, replacing any existing record with the same ID.
func (s *Store) Put(ctx context.Context, r credential.Record) error {
	if err := r.Validate(); err != nil {
		return err
	}
	q := `INSERT INTO ` + s.table + ` (id, salt, digest, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET salt = EXCLUDED.salt, digest = EXCLUDED.digest, updated_at = EXCLUDED.updated_at`
	if _, err := s.pool.Exec(ctx, q, r.ID, string(r.Salt), r.Digest, r.UpdatedAt); err != nil {
		return fmt.Errorf("credential/postgres: upsert %q: %w", r.ID, err)
	}
	return nil
}

// Get retrieves a record by ID. Returns [credential.ErrNotFound] when absent.
func (s *Store) Get(ctx context.Context, id string) (credential.Record, error) {
	q := `SELECT id, salt, digest, updated_at FROM ` + s.table + ` WHERE id = $1`

	var (
		r    credential.Record
		salt string
	)
	err := s.pool.QueryRow(ctx, q, id).Scan(&r.ID, &salt, &r.Digest, &r.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return credential.Record{}, credential.ErrNotFound
	}
	if err != nil {
		return credential.Record{}, fmt.Errorf("credential/postgres: select %q: %w", id, err)
	}
	r.Salt = hashing.Salt(salt)
	if err := r.Validate(); err != nil {
		return credential.Record{}, err
	}
	return r, nil
}

// Delete removes the record with the given ID. Returns [credential.ErrNotFound] when absent.
func (s *Store) Delete(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM `+s.table+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("credential/postgres: delete %q: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return credential.ErrNotFound
	}
	return nil
}
