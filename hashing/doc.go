// Package hashing provides SHA-256 digests of text and verification of a
// candidate secret against a previously stored digest.
//
// # Architecture
//
// The core is two pure functions:
//
//   - [Digest] maps text to a 64-character lowercase hex SHA-256 digest.
//   - [Verify] recomputes the digest of a candidate and compares it with a
//     stored digest.
//
// Both are deterministic, hold no state and are safe for concurrent use.
// Text is hashed as its UTF-8 bytes on every platform, so a digest produced
// here matches the one produced by any other UTF-8 SHA-256 implementation.
//
// On top of the core sits an optional salting extension. [GenerateSalt]
// returns a random hex salt, [DigestSalted] hashes text followed by the salt,
// and [Credential] keeps the (Salt, Digest) pair together so it can be
// re-verified later. Salting is the caller's responsibility: a digest
// without its salt cannot be re-verified.
//
// [SHA256Hasher] and [SaltedHasher] expose the same operations behind the
// [Hasher] interface for callers that prefer dependency injection.
//
// # Quick start
//
//	stored := hashing.Digest("my-secret-password")
//	ok := hashing.Verify("my-secret-password", stored) // true
//
//	cred, _ := hashing.NewCredential("my-secret-password", hashing.DefaultSaltBytes)
//	persist(userID, cred.String()) // "sha256$<salt>$<digest>"
//
// # Security notes
//
// SHA-256 is fast. It is not a password key-derivation function and this
// package performs no stretching. Use it where a plain, portable digest is
// what the surrounding system expects.
package hashing
