package hashing

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"unicode/utf8"
)

const (
	// Algorithm is the human-readable name of the digest algorithm.
	Algorithm = "SHA-256"

	// DigestLength is the length of a hex-encoded digest in characters.
	DigestLength = sha256.Size * 2 // 64

	// DigestBits is the size of the underlying hash value in bits.
	DigestBits = sha256.Size * 8 // 256
)

// Digest returns the lowercase hex SHA-256 digest of the UTF-8 bytes of text.
//
// The empty string is valid input:
//
//	hashing.Digest("") // "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
//
// Go strings are byte sequences, so Digest hashes the bytes exactly as they
// are held. Use [DigestStrict] to reject input that is not valid UTF-8.
func Digest(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// DigestBytes returns the lowercase hex SHA-256 digest of b.
func DigestBytes(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// DigestStrict is like [Digest] but returns [ErrInvalidEncoding] when text is
// not valid UTF-8. Invalid sequences are never replaced or dropped.
func DigestStrict(text string) (string, error) {
	if !utf8.ValidString(text) {
		return "", fmt.Errorf("%w: %d bytes", ErrInvalidEncoding, len(text))
	}
	return Digest(text), nil
}

// Verify reports whether the digest of candidate equals stored exactly.
//
// stored must be a value previously produced by [Digest]. Comparison is
// case-sensitive: an upper-case hex string never matches. Callers must not
// call Verify when no stored digest exists.
func Verify(candidate, stored string) bool {
	computed := Digest(candidate)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(stored)) == 1
}

// IsDigest reports whether s has the shape of a [Digest] result: exactly
// [DigestLength] characters from 0-9a-f.
func IsDigest(s string) bool {
	return isLowerHex(s) && len(s) == DigestLength
}

// isLowerHex reports whether every byte of s is a lowercase hex digit.
// The empty string is considered lowercase hex.
func isLowerHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
