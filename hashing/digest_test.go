package hashing_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/hasbyte1/go-secure-hash/hashing"
)

// Known SHA-256 vectors (hex of the UTF-8 bytes).
const (
	emptyDigest      = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	abcDigest        = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	helloWorldDigest = "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
	passwordDigest   = "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8"
)

func assertDigestShape(t *testing.T, d string) {
	t.Helper()
	if len(d) != hashing.DigestLength {
		t.Fatalf("len = %d, want %d (%q)", len(d), hashing.DigestLength, d)
	}
	for _, c := range d {
		if !strings.ContainsRune("0123456789abcdef", c) {
			t.Fatalf("unexpected character %q in digest %q", c, d)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Digest
// ──────────────────────────────────────────────────────────────────────────────

func TestDigest_KnownVectors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", emptyDigest},
		{"abc", "abc", abcDigest},
		{"hello world", "hello world", helloWorldDigest},
		{"password", "password", passwordDigest},
		{"Hello World", "Hello World", "a591a6d40bf420404a011733cfb7b190d62c65bf0bcda32b57b277d9ad9f146e"},
		{"non-ascii", "héllo", "3c48591d8d098a4538f5e013dfcf406e948eac4d3277b10bf614e295d6068179"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hashing.Digest(tt.in); got != tt.want {
				t.Errorf("Digest(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestDigest_Deterministic(t *testing.T) {
	for _, in := range []string{"", "a", "same input", strings.Repeat("x", 10_000)} {
		if hashing.Digest(in) != hashing.Digest(in) {
			t.Errorf("Digest(%q) is not deterministic", in)
		}
	}
}

func TestDigest_Shape(t *testing.T) {
	for _, in := range []string{"", "a", "Password123", "admin", "test@email.com", strings.Repeat("☃", 500)} {
		assertDigestShape(t, hashing.Digest(in))
	}
}

func TestDigest_DistinctInputs(t *testing.T) {
	if hashing.Digest("a") == hashing.Digest("b") {
		t.Error(`Digest("a") == Digest("b")`)
	}
}

func TestDigest_CaseSensitive(t *testing.T) {
	if hashing.Digest("Password") == hashing.Digest("password") {
		t.Error(`Digest("Password") == Digest("password")`)
	}
}

func TestDigestBytes_MatchesDigest(t *testing.T) {
	if got := hashing.DigestBytes([]byte("abc")); got != abcDigest {
		t.Errorf("DigestBytes(abc) = %s, want %s", got, abcDigest)
	}
	if got := hashing.DigestBytes(nil); got != emptyDigest {
		t.Errorf("DigestBytes(nil) = %s, want %s", got, emptyDigest)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// DigestStrict
// ──────────────────────────────────────────────────────────────────────────────

func TestDigestStrict_ValidUTF8(t *testing.T) {
	got, err := hashing.DigestStrict("abc")
	if err != nil {
		t.Fatalf("DigestStrict: %v", err)
	}
	if got != abcDigest {
		t.Errorf("got %s, want %s", got, abcDigest)
	}
}

func TestDigestStrict_Empty(t *testing.T) {
	got, err := hashing.DigestStrict("")
	if err != nil || got != emptyDigest {
		t.Errorf("DigestStrict(\"\") = %q, %v", got, err)
	}
}

func TestDigestStrict_InvalidUTF8(t *testing.T) {
	got, err := hashing.DigestStrict("bad\xff\xfe")
	if !errors.Is(err, hashing.ErrInvalidEncoding) {
		t.Errorf("expected ErrInvalidEncoding, got %v", err)
	}
	if got != "" {
		t.Errorf("expected empty digest on error, got %q", got)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Verify
// ──────────────────────────────────────────────────────────────────────────────

func TestVerify_Correct(t *testing.T) {
	for _, in := range []string{"", "abc", "correct-horse-battery-staple", "héllo"} {
		if !hashing.Verify(in, hashing.Digest(in)) {
			t.Errorf("Verify(%q, Digest(%q)) = false", in, in)
		}
	}
}

func TestVerify_Wrong(t *testing.T) {
	stored := hashing.Digest("secret")
	for _, in := range []string{"", "Secret", "secret ", "secre", "wrong"} {
		if hashing.Verify(in, stored) {
			t.Errorf("Verify(%q) matched digest of \"secret\"", in)
		}
	}
}

func TestVerify_KnownVector(t *testing.T) {
	if !hashing.Verify("abc", abcDigest) {
		t.Error("Verify(abc, known vector) = false")
	}
}

func TestVerify_UpperCaseStoredDoesNotMatch(t *testing.T) {
	if hashing.Verify("abc", strings.ToUpper(abcDigest)) {
		t.Error("upper-case stored digest should not match")
	}
}

func TestVerify_MalformedStored(t *testing.T) {
	for _, stored := range []string{"", "abc", abcDigest[:63], abcDigest + "0"} {
		if hashing.Verify("abc", stored) {
			t.Errorf("Verify matched malformed stored value %q", stored)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// IsDigest
// ──────────────────────────────────────────────────────────────────────────────

func TestIsDigest(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{abcDigest, true},
		{emptyDigest, true},
		{strings.ToUpper(abcDigest), false},
		{abcDigest[:63], false},
		{abcDigest + "a", false},
		{strings.Repeat("g", 64), false},
		{"", false},
	}
	for _, tt := range tests {
		if got := hashing.IsDigest(tt.in); got != tt.want {
			t.Errorf("IsDigest(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrency
// ──────────────────────────────────────────────────────────────────────────────

func TestDigestVerify_Concurrent(t *testing.T) {
	const goroutines = 32
	var wg sync.WaitGroup
	wg.Add(goroutines)
	errs := make(chan error, goroutines)

	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			d := hashing.Digest("concurrent-pw")
			if d != hashing.Digest("concurrent-pw") {
				errs <- errors.New("digest changed between calls")
				return
			}
			if !hashing.Verify("concurrent-pw", d) {
				errs <- errors.New("Verify returned false for correct password")
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
