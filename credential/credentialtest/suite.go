// Package credentialtest provides a conformance suite that every
// [credential.Store] implementation must pass.
package credentialtest

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-secure-hash/credential"
	"github.com/hasbyte1/go-secure-hash/hashing"
)

// NewRecord returns a valid salted record for id and password.
func NewRecord(t testing.TB, id, password string) credential.Record {
	t.Helper()
	cred, err := hashing.NewCredential(password, hashing.DefaultSaltBytes)
	require.NoError(t, err)
	return credential.Record{
		ID:        id,
		Salt:      cred.Salt,
		Digest:    cred.Digest,
		UpdatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

// RunStoreTests exercises the [credential.Store] contract against stores
// returned by newStore. newStore must return an empty store each call.
func RunStoreTests(t *testing.T, newStore func(t *testing.T) credential.Store) {
	t.Run("PutAndGet", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		rec := NewRecord(t, "u1", "secret")

		require.NoError(t, s.Put(ctx, rec))

		got, err := s.Get(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, rec.ID, got.ID)
		assert.Equal(t, rec.Salt, got.Salt)
		assert.Equal(t, rec.Digest, got.Digest)
		assert.True(t, rec.UpdatedAt.Equal(got.UpdatedAt), "UpdatedAt %v != %v", got.UpdatedAt, rec.UpdatedAt)
		assert.True(t, got.Credential().Verify("secret"))
	})

	t.Run("PutUnsalted", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		rec := credential.Record{ID: "plain", Digest: hashing.Digest("abc"), UpdatedAt: time.Now().UTC()}

		require.NoError(t, s.Put(ctx, rec))

		got, err := s.Get(ctx, "plain")
		require.NoError(t, err)
		assert.False(t, got.Credential().Salted())
		assert.True(t, got.Credential().Verify("abc"))
	})

	t.Run("PutOverwrites", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.Put(ctx, NewRecord(t, "u1", "old")))
		require.NoError(t, s.Put(ctx, NewRecord(t, "u1", "new")))

		got, err := s.Get(ctx, "u1")
		require.NoError(t, err)
		assert.True(t, got.Credential().Verify("new"))
		assert.False(t, got.Credential().Verify("old"))
	})

	t.Run("PutRejectsInvalidRecord", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		err := s.Put(ctx, credential.Record{Digest: hashing.Digest("x")})
		assert.ErrorIs(t, err, credential.ErrEmptyID)

		err = s.Put(ctx, credential.Record{ID: "bad", Digest: "not-a-digest"})
		assert.ErrorIs(t, err, credential.ErrCorruptRecord)
	})

	t.Run("GetNotFound", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Get(context.Background(), "missing")
		assert.ErrorIs(t, err, credential.ErrNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		require.NoError(t, s.Put(ctx, NewRecord(t, "u1", "pw")))

		require.NoError(t, s.Delete(ctx, "u1"))

		_, err := s.Get(ctx, "u1")
		assert.ErrorIs(t, err, credential.ErrNotFound)
	})

	t.Run("DeleteNotFound", func(t *testing.T) {
		s := newStore(t)
		err := s.Delete(context.Background(), "missing")
		assert.ErrorIs(t, err, credential.ErrNotFound)
	})

	t.Run("IsolatesIDs", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		require.NoError(t, s.Put(ctx, NewRecord(t, "alice", "pw-a")))
		require.NoError(t, s.Put(ctx, NewRecord(t, "bob", "pw-b")))

		a, err := s.Get(ctx, "alice")
		require.NoError(t, err)
		b, err := s.Get(ctx, "bob")
		require.NoError(t, err)

		assert.True(t, a.Credential().Verify("pw-a"))
		assert.False(t, a.Credential().Verify("pw-b"))
		assert.True(t, b.Credential().Verify("pw-b"))
	})

	t.Run("ConcurrentPutGet", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		const goroutines = 16

		var wg sync.WaitGroup
		wg.Add(goroutines)
		errs := make(chan error, goroutines)
		for i := 0; i < goroutines; i++ {
			go func(i int) {
				defer wg.Done()
				id := fmt.Sprintf("user-%d", i)
				pw := fmt.Sprintf("pw-%d", i)
				cred, err := hashing.NewCredential(pw, hashing.DefaultSaltBytes)
				if err != nil {
					errs <- err
					return
				}
				rec := credential.Record{ID: id, Salt: cred.Salt, Digest: cred.Digest, UpdatedAt: time.Now().UTC()}
				if err := s.Put(ctx, rec); err != nil {
					errs <- err
					return
				}
				got, err := s.Get(ctx, id)
				if err != nil {
					errs <- err
					return
				}
				if !got.Credential().Verify(pw) {
					errs <- fmt.Errorf("%s: stored credential does not verify", id)
				}
			}(i)
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			t.Error(err)
		}
	})
}
