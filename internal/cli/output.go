package cli

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/hasbyte1/go-secure-hash/hashing"
)

// digestResult is the machine-readable form of a digest.
type digestResult struct {
	Algorithm  string `json:"algorithm"`
	Digest     string `json:"digest"`
	Salt       string `json:"salt,omitempty"`
	Credential string `json:"credential"`
	Length     int    `json:"length"`
	Bits       int    `json:"bits"`
}

func newDigestResult(cred hashing.Credential) digestResult {
	info := hashing.InfoOf(cred)
	return digestResult{
		Algorithm:  info.Algorithm,
		Digest:     cred.Digest,
		Salt:       string(cred.Salt),
		Credential: cred.String(),
		Length:     info.Length,
		Bits:       info.Bits,
	}
}

// verifyResult is the machine-readable outcome of a verification.
type verifyResult struct {
	ID    string `json:"id,omitempty"`
	Match bool   `json:"match"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
