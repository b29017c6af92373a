package hashing

import "errors"

// Sentinel errors returned by hashing operations.
//
// Use [errors.Is] for comparisons:
//
//	cred, err := hashing.ParseCredential(stored)
//	if errors.Is(err, hashing.ErrInvalidHash) {
//	    // stored value is malformed
//	}
var (
	// ErrInvalidEncoding is returned by [DigestStrict] when the input is not
	// valid UTF-8 and therefore has no well-defined byte encoding.
	ErrInvalidEncoding = errors.New("hashing: input is not valid UTF-8")

	// ErrInvalidHash is returned when a digest or credential string cannot be
	// parsed because it has the wrong length, a non-hex character, an
	// unknown algorithm tag or a missing segment.
	ErrInvalidHash = errors.New("hashing: invalid or unrecognised hash string")

	// ErrInvalidOption is returned when a constructor is called with a
	// parameter value that falls outside the allowed range (e.g., a salt
	// length below [MinSaltBytes]).
	ErrInvalidOption = errors.New("hashing: invalid option value")
)
