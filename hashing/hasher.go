package hashing

import "fmt"

// Hasher is the interface satisfied by the digest drivers in this package.
//
// All implementations must be safe for concurrent use by multiple goroutines.
type Hasher interface {
	// Make hashes a plaintext password and returns the encoded hash string.
	Make(password string) (string, error)

	// Check verifies that password matches the previously encoded hash.
	// Returns (true, nil) on match, (false, nil) on mismatch, or
	// (false, err) if the hash is structurally invalid.
	Check(password, hash string) (bool, error)

	// Info extracts metadata from an encoded hash string without verifying it.
	Info(hash string) (HashInfo, error)
}

// HashInfo carries metadata parsed from an encoded hash string.
type HashInfo struct {
	// Algorithm is always [Algorithm].
	Algorithm string

	// Length is the number of hex characters in the digest.
	Length int

	// Bits is the size of the hash value in bits.
	Bits int

	// Salted reports whether a salt is stored with the digest.
	Salted bool

	// SaltLength is the number of hex characters in the salt, or 0.
	SaltLength int
}

// InfoOf returns the [HashInfo] for cred.
func InfoOf(cred Credential) HashInfo {
	return HashInfo{
		Algorithm:  Algorithm,
		Length:     len(cred.Digest),
		Bits:       DigestBits,
		Salted:     cred.Salted(),
		SaltLength: len(cred.Salt),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// SHA256Hasher
// ──────────────────────────────────────────────────────────────────────────────

// SHA256Hasher produces bare, unsalted digests. Make returns the output of
// [Digest] and Check is [Verify] preceded by a format check.
//
// SHA256Hasher has no state and is safe for concurrent use.
type SHA256Hasher struct{}

// NewSHA256Hasher returns an unsalted [Hasher].
func NewSHA256Hasher() *SHA256Hasher { return &SHA256Hasher{} }

// Make returns Digest(password). It never fails.
func (h *SHA256Hasher) Make(password string) (string, error) {
	return Digest(password), nil
}

// Check verifies password against a bare digest.
// Returns [ErrInvalidHash] if hash is not 64 lowercase hex characters.
func (h *SHA256Hasher) Check(password, hash string) (bool, error) {
	if !IsDigest(hash) {
		return false, fmt.Errorf("%w: hash must be %d lowercase hex characters", ErrInvalidHash, DigestLength)
	}
	return Verify(password, hash), nil
}

// Info returns the metadata of a bare digest.
func (h *SHA256Hasher) Info(hash string) (HashInfo, error) {
	if !IsDigest(hash) {
		return HashInfo{}, fmt.Errorf("%w: hash must be %d lowercase hex characters", ErrInvalidHash, DigestLength)
	}
	return InfoOf(Credential{Digest: hash}), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// SaltedHasher
// ──────────────────────────────────────────────────────────────────────────────

// SaltedHasher produces credential strings ("sha256$<salt>$<digest>") with a
// fresh random salt per call, so two calls with the same password produce
// different outputs.
//
// SaltedHasher is immutable after construction and safe for concurrent use.
type SaltedHasher struct {
	saltBytes int
}

// NewSaltedHasher constructs a SaltedHasher that generates saltBytes random
// bytes per hash. Returns [ErrInvalidOption] if saltBytes is outside
// [MinSaltBytes, MaxSaltBytes].
func NewSaltedHasher(saltBytes int) (*SaltedHasher, error) {
	if saltBytes < MinSaltBytes || saltBytes > MaxSaltBytes {
		return nil, fmt.Errorf("%w: salt length %d must be in [%d, %d]",
			ErrInvalidOption, saltBytes, MinSaltBytes, MaxSaltBytes)
	}
	return &SaltedHasher{saltBytes: saltBytes}, nil
}

// SaltBytes returns the configured salt length in bytes.
func (h *SaltedHasher) SaltBytes() int { return h.saltBytes }

// Make hashes password with a fresh salt and returns the encoded credential.
func (h *SaltedHasher) Make(password string) (string, error) {
	cred, err := NewCredential(password, h.saltBytes)
	if err != nil {
		return "", err
	}
	return cred.String(), nil
}

// Check verifies password against an encoded credential. Bare digests are
// accepted and checked without a salt.
func (h *SaltedHasher) Check(password, hash string) (bool, error) {
	cred, err := ParseCredential(hash)
	if err != nil {
		return false, err
	}
	return cred.Verify(password), nil
}

// Info parses the credential and returns its metadata.
func (h *SaltedHasher) Info(hash string) (HashInfo, error) {
	cred, err := ParseCredential(hash)
	if err != nil {
		return HashInfo{}, err
	}
	return InfoOf(cred), nil
}
