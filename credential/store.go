package credential

import (
	"context"
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"

	"github.com/hasbyte1/go-secure-hash/hashing"
)

// Record is a stored credential: the salt and digest for one ID.
type Record struct {
	// ID identifies the owner of the credential (a user or session ID).
	ID string `json:"id"`

	// Salt is the salt the digest was produced with. Empty for unsalted
	// credentials.
	Salt hashing.Salt `json:"salt"`

	// Digest is the lowercase hex SHA-256 digest of password+salt.
	Digest string `json:"digest"`

	// UpdatedAt is when the credential was last set.
	UpdatedAt time.Time `json:"updated_at"`
}

// Credential returns the (Salt, Digest) pair held by r.
func (r Record) Credential() hashing.Credential {
	return hashing.Credential{Salt: r.Salt, Digest: r.Digest}
}

// Validate checks that r has an ID and a well-formed credential.
// Returns [ErrEmptyID] or [ErrCorruptRecord].
func (r Record) Validate() error {
	if r.ID == "" {
		return ErrEmptyID
	}
	if _, err := hashing.ParseCredential(r.Credential().String()); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrCorruptRecord, r.ID, err)
	}
	return nil
}

// Store defines the persistence operations for [Record] values.
// Implementations must be safe for concurrent use and must write the salt and
// digest of a record atomically.
type Store interface {
	// Put stores r, replacing any previous record with the same ID.
	Put(ctx context.Context, r Record) error

	// Get retrieves the record for id.
	// Returns [ErrNotFound] when no matching record exists.
	Get(ctx context.Context, id string) (Record, error)

	// Delete removes the record for id.
	// Returns [ErrNotFound] if no such record exists.
	Delete(ctx context.Context, id string) error
}

// MarshalRecord encodes r as JSON for key-value stores.
func MarshalRecord(r Record) ([]byte, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("credential: encode record %q: %w", r.ID, err)
	}
	return b, nil
}

// UnmarshalRecord decodes a record produced by [MarshalRecord] and validates
// it. Returns [ErrCorruptRecord] on malformed input.
func UnmarshalRecord(b []byte) (Record, error) {
	var r Record
	if err := json.Unmarshal(b, &r); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}
	if err := r.Validate(); err != nil {
		if errors.Is(err, ErrEmptyID) {
			return Record{}, fmt.Errorf("%w: missing id", ErrCorruptRecord)
		}
		return Record{}, err
	}
	return r, nil
}
