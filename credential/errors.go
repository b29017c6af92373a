// Package credential stores and checks password credentials built on the
// [hashing] package.
//
// It is storage-agnostic: persistence is delegated to a [Store]. Four
// implementations ship as sub-packages:
//
//   - credential/inmemory: a map guarded by a mutex, for tests and prototyping.
//   - credential/leveldb: an embedded on-disk store (goleveldb).
//   - credential/redis: a Redis-backed store (go-redis).
//   - credential/postgres: a PostgreSQL-backed store (pgx).
//
// A [Record] keeps the salt and the digest together, so a stored credential
// can always be re-verified. The [Service] layers the password workflow on
// top: set with confirmation, verify, delete.
package credential

import "errors"

var (
	// ErrNotFound is returned by a [Store] when no record exists for an ID.
	ErrNotFound = errors.New("credential: not found")

	// ErrNoStoredHash is returned by [Service.Verify] when no credential has
	// been stored for the ID yet.
	ErrNoStoredHash = errors.New("credential: no stored hash; set a password first")

	// ErrEmptyID is returned when an operation is called with an empty ID.
	ErrEmptyID = errors.New("credential: id must not be empty")

	// ErrEmptyPassword is returned when a password, confirmation or candidate
	// is empty.
	ErrEmptyPassword = errors.New("credential: password must not be empty")

	// ErrPasswordMismatch is returned by [Service.SetPassword] when the
	// password and its confirmation differ.
	ErrPasswordMismatch = errors.New("credential: passwords do not match")

	// ErrCorruptRecord is returned when a persisted record cannot be decoded
	// or holds a malformed salt or digest.
	ErrCorruptRecord = errors.New("credential: corrupt record")
)
