package hashing

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultPBKDF2Iterations is the default HMAC-SHA-256 iteration count
	// (OWASP 2023 guidance for PBKDF2-HMAC-SHA256).
	DefaultPBKDF2Iterations uint32 = 600_000

	// DefaultPBKDF2KeyLen is the default derived key length in bytes.
	DefaultPBKDF2KeyLen uint32 = 32

	// DefaultPBKDF2SaltLen is the default random salt length in bytes.
	DefaultPBKDF2SaltLen uint32 = 16

	// MaxPBKDF2Iterations bounds the iteration count accepted from a stored
	// record.
	MaxPBKDF2Iterations uint32 = 100_000_000

	// maxPBKDF2KeyLen bounds the derived length accepted from a stored record.
	maxPBKDF2KeyLen = 1024
)

// PBKDF2Options configures a [PBKDF2Hasher].
type PBKDF2Options struct {
	// Iterations is the HMAC-SHA-256 iteration count.
	// Minimum: 1. Default: [DefaultPBKDF2Iterations].
	Iterations uint32

	// KeyLen is the derived key length in bytes. Minimum: 4.
	KeyLen uint32

	// SaltLen is the random salt length in bytes. Minimum: 8.
	SaltLen uint32

	// Rand is the salt source. Nil selects crypto/rand.
	Rand io.Reader
}

// DefaultPBKDF2Options returns PBKDF2Options with the recommended defaults.
func DefaultPBKDF2Options() PBKDF2Options {
	return PBKDF2Options{
		Iterations: DefaultPBKDF2Iterations,
		KeyLen:     DefaultPBKDF2KeyLen,
		SaltLen:    DefaultPBKDF2SaltLen,
	}
}

func validatePBKDF2Options(opts PBKDF2Options) error {
	if opts.Iterations < 1 || opts.Iterations > MaxPBKDF2Iterations {
		return fmt.Errorf("%w: pbkdf2 iterations must be in [1, %d], got %d",
			ErrInvalidOption, MaxPBKDF2Iterations, opts.Iterations)
	}
	if opts.KeyLen < 4 || opts.KeyLen > maxPBKDF2KeyLen {
		return fmt.Errorf("%w: pbkdf2 key_len must be in [4, %d], got %d",
			ErrInvalidOption, maxPBKDF2KeyLen, opts.KeyLen)
	}
	if opts.SaltLen < 8 {
		return fmt.Errorf("%w: pbkdf2 salt_len must be ≥ 8, got %d", ErrInvalidOption, opts.SaltLen)
	}
	return nil
}

// PBKDF2Hasher derives keys with PBKDF2-HMAC-SHA256 and writes pbkdf2 records.
//
// It exists mainly to verify records written by older systems; prefer
// [Argon2idHasher] for new records.
type PBKDF2Hasher struct {
	opts PBKDF2Options
}

var _ Scheme = (*PBKDF2Hasher)(nil)

// NewPBKDF2Hasher constructs a PBKDF2Hasher with the given options.
func NewPBKDF2Hasher(opts PBKDF2Options) (*PBKDF2Hasher, error) {
	if err := validatePBKDF2Options(opts); err != nil {
		return nil, err
	}
	opts.Rand = readerOrDefault(opts.Rand)
	return &PBKDF2Hasher{opts: opts}, nil
}

// Name returns [SchemePBKDF2].
func (h *PBKDF2Hasher) Name() SchemeName { return SchemePBKDF2 }

// Options returns the configured parameter set.
func (h *PBKDF2Hasher) Options() PBKDF2Options { return h.opts }

// Make derives a key under a fresh salt and returns the pbkdf2 record.
func (h *PBKDF2Hasher) Make(password []byte) (Record, error) {
	if password == nil {
		return Record{}, ErrNilPassword
	}
	salt, err := randomSalt(h.opts.Rand, h.opts.SaltLen)
	if err != nil {
		return Record{}, err
	}
	return Record{
		Scheme:     SchemePBKDF2,
		Iterations: h.opts.Iterations,
		Salt:       salt,
		Hash:       pbkdf2.Key(password, salt, int(h.opts.Iterations), int(h.opts.KeyLen), sha256.New),
	}, nil
}

// Check re-derives using the iteration count and salt stored in r.
func (h *PBKDF2Hasher) Check(password []byte, r Record) (bool, error) {
	if password == nil {
		return false, ErrNilPassword
	}
	if r.Scheme != SchemePBKDF2 {
		return false, schemeMismatch(r.Scheme, SchemePBKDF2)
	}
	switch {
	case r.Iterations < 1 || r.Iterations > MaxPBKDF2Iterations:
		return false, fmt.Errorf("%w: pbkdf2 iterations %d out of range", ErrInvalidRecord, r.Iterations)
	case len(r.Salt) == 0 || len(r.Hash) == 0 || len(r.Hash) > maxPBKDF2KeyLen:
		return false, fmt.Errorf("%w: pbkdf2 salt or hash length out of range", ErrInvalidRecord)
	}
	derived := pbkdf2.Key(password, r.Salt, int(r.Iterations), len(r.Hash), sha256.New)
	return equal(derived, r.Hash), nil
}

// NeedsRehash returns true if the iteration count or key length stored in r
// differs from the hasher's configuration.
func (h *PBKDF2Hasher) NeedsRehash(r Record) (bool, error) {
	if r.Scheme != SchemePBKDF2 {
		return false, schemeMismatch(r.Scheme, SchemePBKDF2)
	}
	return r.Iterations != h.opts.Iterations || uint32(len(r.Hash)) != h.opts.KeyLen, nil
}
