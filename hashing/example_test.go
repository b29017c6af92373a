package hashing_test

import (
	"fmt"
	"log"

	json "github.com/goccy/go-json"

	"github.com/hasbyte1/go-secure-hash/hashing"
)

// Example_digestAndVerify demonstrates the two core operations.
func Example_digestAndVerify() {
	stored := hashing.Digest("abc")
	fmt.Println(stored)
	fmt.Println(hashing.Verify("abc", stored))
	fmt.Println(hashing.Verify("ABC", stored))
	// Output:
	// ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad
	// true
	// false
}

// Example_emptyInput shows that the empty string hashes like any other input.
func Example_emptyInput() {
	fmt.Println(hashing.Digest(""))
	// Output: e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855
}

// Example_saltedCredential stores the salt alongside the digest so that the
// credential can be re-verified later.
func Example_saltedCredential() {
	cred, err := hashing.NewCredential("my-secret-password", hashing.DefaultSaltBytes)
	if err != nil {
		log.Fatal(err)
	}

	encoded := cred.String() // persist this
	restored, err := hashing.ParseCredential(encoded)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(restored.Verify("my-secret-password"))
	fmt.Println(len(restored.Salt))
	// Output:
	// true
	// 16
}

// Example_hashInfo shows the metadata of a digest.
func Example_hashInfo() {
	info := hashing.InfoOf(hashing.UnsaltedCredential("inspect-me"))

	out, _ := json.Marshal(map[string]any{
		"algorithm": info.Algorithm,
		"length":    info.Length,
		"bits":      info.Bits,
	})
	fmt.Println(string(out))
	// Output: {"algorithm":"SHA-256","bits":256,"length":64}
}

// ExampleHasher_interface shows using the Hasher interface for dependency
// injection: callers accept a hashing.Hasher and remain independent of
// whether a salt is used.
func ExampleHasher_interface() {
	storePassword := func(h hashing.Hasher, password string) string {
		hash, _ := h.Make(password)
		return hash
	}
	verifyPassword := func(h hashing.Hasher, password, hash string) bool {
		ok, _ := h.Check(password, hash)
		return ok
	}

	plain := hashing.NewSHA256Hasher()
	hash := storePassword(plain, "demo")
	fmt.Println(verifyPassword(plain, "demo", hash))

	salted, _ := hashing.NewSaltedHasher(hashing.DefaultSaltBytes)
	hash = storePassword(salted, "demo")
	fmt.Println(verifyPassword(salted, "demo", hash))

	// Output:
	// true
	// true
}
