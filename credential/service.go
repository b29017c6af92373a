package credential

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hasbyte1/go-secure-hash/hashing"
)

// Option configures a [Service].
type Option func(*Service)

// WithSaltBytes sets the number of random salt bytes generated per password.
// Values outside [hashing.MinSaltBytes, hashing.MaxSaltBytes] make
// [Service.SetPassword] fail with [hashing.ErrInvalidOption].
func WithSaltBytes(n int) Option {
	return func(s *Service) {
		s.saltBytes = n
	}
}

// WithoutSalt stores bare, unsalted digests.
func WithoutSalt() Option {
	return func(s *Service) {
		s.saltBytes = 0
	}
}

// WithLogger sets the logger used for audit events. Passwords and digests
// are never logged.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the time source used for [Record.UpdatedAt].
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// Service implements the set/verify password workflow on top of a [Store].
// It holds no credential state itself and is safe for concurrent use.
type Service struct {
	store     Store
	saltBytes int
	logger    *zap.Logger
	now       func() time.Time
}

// NewService constructs a [Service] backed by store. By default every
// password gets a fresh [hashing.DefaultSaltBytes] salt.
func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store:     store,
		saltBytes: hashing.DefaultSaltBytes,
		logger:    zap.NewNop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetPassword hashes password and stores the credential for id, overwriting
// any previous one. confirm must equal password.
//
// Returns [ErrEmptyID], [ErrEmptyPassword] or [ErrPasswordMismatch] on
// invalid input.
func (s *Service) SetPassword(ctx context.Context, id, password, confirm string) (Record, error) {
	if id == "" {
		return Record{}, ErrEmptyID
	}
	if password == "" || confirm == "" {
		return Record{}, ErrEmptyPassword
	}
	if password != confirm {
		return Record{}, ErrPasswordMismatch
	}

	cred := hashing.UnsaltedCredential(password)
	if s.saltBytes != 0 {
		var err error
		cred, err = hashing.NewCredential(password, s.saltBytes)
		if err != nil {
			return Record{}, fmt.Errorf("credential: hash password: %w", err)
		}
	}

	rec := Record{
		ID:        id,
		Salt:      cred.Salt,
		Digest:    cred.Digest,
		UpdatedAt: s.now().UTC(),
	}
	if err := s.store.Put(ctx, rec); err != nil {
		return Record{}, fmt.Errorf("credential: persist %q: %w", id, err)
	}

	s.logger.Info("credential stored", zap.String("id", id), zap.Bool("salted", cred.Salted()))
	return rec, nil
}

// Verify reports whether candidate matches the credential stored for id.
//
// Returns [ErrNoStoredHash] when nothing has been stored for id, and
// [ErrEmptyPassword] when candidate is empty.
func (s *Service) Verify(ctx context.Context, id, candidate string) (bool, error) {
	if id == "" {
		return false, ErrEmptyID
	}
	if candidate == "" {
		return false, ErrEmptyPassword
	}

	rec, err := s.store.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, ErrNoStoredHash
	}
	if err != nil {
		return false, fmt.Errorf("credential: load %q: %w", id, err)
	}

	ok := rec.Credential().Verify(candidate)
	s.logger.Info("credential verified", zap.String("id", id), zap.Bool("match", ok))
	return ok, nil
}

// Lookup returns the stored record for id, or [ErrNoStoredHash].
func (s *Service) Lookup(ctx context.Context, id string) (Record, error) {
	if id == "" {
		return Record{}, ErrEmptyID
	}
	rec, err := s.store.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return Record{}, ErrNoStoredHash
	}
	if err != nil {
		return Record{}, fmt.Errorf("credential: load %q: %w", id, err)
	}
	return rec, nil
}

// Delete removes the credential stored for id.
// Returns [ErrNotFound] if nothing is stored.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("credential: delete %q: %w", id, err)
	}
	s.logger.Info("credential deleted", zap.String("id", id))
	return nil
}
