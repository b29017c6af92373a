package hashing

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

const (
	// DefaultSaltBytes is the default number of random bytes in a salt.
	// Eight bytes render as a 16-character hex string.
	DefaultSaltBytes = 8

	// MinSaltBytes is the smallest salt accepted by [GenerateSalt].
	MinSaltBytes = 4

	// MaxSaltBytes is the largest salt accepted by [GenerateSalt].
	MaxSaltBytes = 64

	// credentialTag identifies the algorithm in an encoded [Credential].
	credentialTag = "sha256"
)

// Salt is a lowercase hex string mixed into the plaintext before hashing.
type Salt string

// GenerateSalt returns n cryptographically random bytes as a lowercase hex
// [Salt] of 2n characters. Returns [ErrInvalidOption] if n is outside
// [MinSaltBytes, MaxSaltBytes].
func GenerateSalt(n int) (Salt, error) {
	if n < MinSaltBytes || n > MaxSaltBytes {
		return "", fmt.Errorf("%w: salt length %d must be in [%d, %d]",
			ErrInvalidOption, n, MinSaltBytes, MaxSaltBytes)
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return "", fmt.Errorf("hashing: failed to generate salt: %w", err)
	}
	return Salt(hex.EncodeToString(b)), nil
}

// DigestSalted returns the [Digest] of text followed by salt.
// An empty salt yields the same value as Digest(text).
func DigestSalted(text string, salt Salt) string {
	return Digest(text + string(salt))
}

// Credential is a stored hash together with the salt that produced it.
// A Credential with an empty Salt is an unsalted [Digest].
//
// The encoded form returned by [Credential.String] is:
//
//	sha256$<salt>$<digest>
//
// so both values travel together wherever the credential is persisted.
type Credential struct {
	Salt   Salt
	Digest string
}

// NewCredential generates a fresh salt of saltBytes random bytes and returns
// the salted credential for password.
func NewCredential(password string, saltBytes int) (Credential, error) {
	salt, err := GenerateSalt(saltBytes)
	if err != nil {
		return Credential{}, err
	}
	return Credential{Salt: salt, Digest: DigestSalted(password, salt)}, nil
}

// UnsaltedCredential wraps the plain [Digest] of password.
func UnsaltedCredential(password string) Credential {
	return Credential{Digest: Digest(password)}
}

// Salted reports whether the credential carries a salt.
func (c Credential) Salted() bool { return c.Salt != "" }

// Verify reports whether candidate produces the stored digest under the
// stored salt.
func (c Credential) Verify(candidate string) bool {
	return Verify(candidate+string(c.Salt), c.Digest)
}

// String encodes the credential as "sha256$<salt>$<digest>".
func (c Credential) String() string {
	return credentialTag + "$" + string(c.Salt) + "$" + c.Digest
}

// ParseCredential decodes a string produced by [Credential.String].
// A bare 64-character digest is accepted as an unsalted credential.
//
// Returns [ErrInvalidHash] when the string is malformed.
func ParseCredential(s string) (Credential, error) {
	if IsDigest(s) {
		return Credential{Digest: s}, nil
	}

	parts := strings.Split(s, "$")
	if len(parts) != 3 {
		return Credential{}, fmt.Errorf("%w: expected 3-segment credential, got %d segments",
			ErrInvalidHash, len(parts))
	}
	if parts[0] != credentialTag {
		return Credential{}, fmt.Errorf("%w: unknown algorithm tag %q", ErrInvalidHash, parts[0])
	}
	if !isLowerHex(parts[1]) || len(parts[1])%2 != 0 {
		return Credential{}, fmt.Errorf("%w: salt is not lowercase hex", ErrInvalidHash)
	}
	if !IsDigest(parts[2]) {
		return Credential{}, fmt.Errorf("%w: digest must be %d lowercase hex characters",
			ErrInvalidHash, DigestLength)
	}
	return Credential{Salt: Salt(parts[1]), Digest: parts[2]}, nil
}
