package hashing

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"
)

// Scheme is the interface satisfied by every key-derivation scheme.
//
// All implementations must be safe for concurrent use by multiple goroutines.
type Scheme interface {
	// Name returns the record tag written by this scheme.
	Name() SchemeName

	// Make derives a key from password under a fresh random salt and returns
	// the resulting record. A nil password yields [ErrNilPassword].
	Make(password []byte) (Record, error)

	// Check re-derives a key from password using the parameters and salt
	// embedded in r and compares it with r.Hash in constant time.
	// Returns (true, nil) on match, (false, nil) on mismatch and (false, err)
	// when r cannot be verified by this scheme.
	Check(password []byte, r Record) (bool, error)

	// NeedsRehash reports whether r was produced with parameters that differ
	// from the scheme's current configuration.
	NeedsRehash(r Record) (bool, error)
}

// HashInfo carries metadata parsed from a stored record.
type HashInfo struct {
	// Scheme is the key-derivation scheme that produced the record.
	Scheme SchemeName

	// Params holds scheme-specific parameters.
	//
	// For argon2id:
	//   "memory"      → uint32 (KiB)
	//   "iterations"  → uint32
	//   "parallelism" → uint8
	//   "salt_len"    → int
	//   "key_len"     → int
	//
	// For pbkdf2:
	//   "iterations"  → uint32
	//   "salt_len"    → int
	//   "key_len"     → int
	Params map[string]any
}

// InfoOf parses stored and returns its embedded parameters without verifying
// any password against it.
func InfoOf(stored string) (HashInfo, error) {
	r, err := ParseRecord(stored)
	if err != nil {
		return HashInfo{}, err
	}
	params := map[string]any{
		"iterations": r.Iterations,
		"salt_len":   len(r.Salt),
		"key_len":    len(r.Hash),
	}
	if r.Scheme == SchemeArgon2id {
		params["memory"] = r.Memory
		params["parallelism"] = r.Parallelism
	}
	return HashInfo{Scheme: r.Scheme, Params: params}, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Shared helpers
// ──────────────────────────────────────────────────────────────────────────────

// randomSalt returns n random bytes read from r.
func randomSalt(r io.Reader, n uint32) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("hashing: failed to generate salt: %w", err)
	}
	return b, nil
}

func readerOrDefault(r io.Reader) io.Reader {
	if r == nil {
		return rand.Reader
	}
	return r
}

// equal compares derived and expected in time that depends only on their
// lengths. Differing lengths fail without inspecting content.
func equal(derived, expected []byte) bool {
	return subtle.ConstantTimeCompare(derived, expected) == 1
}

func schemeMismatch(got, want SchemeName) error {
	return fmt.Errorf("%w: record is %s, not %s", ErrSchemeMismatch, got, want)
}
