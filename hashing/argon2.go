package hashing

import (
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// ──────────────────────────────────────────────────────────────────────────────
// Options
// ──────────────────────────────────────────────────────────────────────────────

const (
	// DefaultArgon2Memory is the default memory cost in KiB (64 MiB).
	DefaultArgon2Memory uint32 = 64 * 1024

	// DefaultArgon2Iterations is the default number of passes over memory.
	DefaultArgon2Iterations uint32 = 3

	// DefaultArgon2Parallelism is the default degree of parallelism.
	DefaultArgon2Parallelism uint8 = 1

	// DefaultArgon2KeyLen is the default derived key length in bytes.
	DefaultArgon2KeyLen uint32 = 32

	// DefaultArgon2SaltLen is the default random salt length in bytes.
	DefaultArgon2SaltLen uint32 = 16

	// MaxArgon2Memory bounds the memory cost accepted from a stored record
	// (4 GiB). Records asking for more are rejected as invalid rather than
	// allowed to exhaust the verifying process.
	MaxArgon2Memory uint32 = 4 * 1024 * 1024

	// MaxArgon2Iterations bounds the iteration count accepted from a stored
	// record.
	MaxArgon2Iterations uint32 = 1 << 10
)

// Argon2Options configures an [Argon2idHasher].
//
// Memory, Iterations and Parallelism are written into every record, so
// changing them only affects newly produced records; existing records remain
// verifiable.
type Argon2Options struct {
	// Memory is the memory cost in KiB.
	// Minimum: 8 * Parallelism. Default: [DefaultArgon2Memory] (64 MiB).
	Memory uint32

	// Iterations is the number of passes over memory.
	// Minimum: 1. Default: [DefaultArgon2Iterations] (3).
	Iterations uint32

	// Parallelism is the degree of parallelism.
	// Minimum: 1. Default: [DefaultArgon2Parallelism] (1).
	Parallelism uint8

	// KeyLen is the length of the derived key in bytes.
	// Minimum: 4. Default: [DefaultArgon2KeyLen] (32).
	KeyLen uint32

	// SaltLen is the length of the random salt in bytes.
	// Minimum: 8. Default: [DefaultArgon2SaltLen] (16).
	SaltLen uint32

	// Rand is the salt source. Nil selects crypto/rand.
	Rand io.Reader
}

// DefaultArgon2Options returns the fixed production parameters:
// 64 MiB, 3 iterations, parallelism 1, 16-byte salt, 32-byte key.
func DefaultArgon2Options() Argon2Options {
	return Argon2Options{
		Memory:      DefaultArgon2Memory,
		Iterations:  DefaultArgon2Iterations,
		Parallelism: DefaultArgon2Parallelism,
		KeyLen:      DefaultArgon2KeyLen,
		SaltLen:     DefaultArgon2SaltLen,
	}
}

func validateArgon2Options(opts Argon2Options) error {
	if opts.Iterations < 1 || opts.Iterations > MaxArgon2Iterations {
		return fmt.Errorf("%w: argon2 iterations must be in [1, %d], got %d",
			ErrInvalidOption, MaxArgon2Iterations, opts.Iterations)
	}
	if opts.Parallelism < 1 {
		return fmt.Errorf("%w: argon2 parallelism must be ≥ 1, got %d", ErrInvalidOption, opts.Parallelism)
	}
	if opts.Memory < 8*uint32(opts.Parallelism) || opts.Memory > MaxArgon2Memory {
		return fmt.Errorf("%w: argon2 memory (%d KiB) must be in [8×parallelism, %d]",
			ErrInvalidOption, opts.Memory, MaxArgon2Memory)
	}
	if opts.KeyLen < 4 {
		return fmt.Errorf("%w: argon2 key_len must be ≥ 4, got %d", ErrInvalidOption, opts.KeyLen)
	}
	if opts.SaltLen < 8 {
		return fmt.Errorf("%w: argon2 salt_len must be ≥ 8, got %d", ErrInvalidOption, opts.SaltLen)
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Argon2idHasher
// ──────────────────────────────────────────────────────────────────────────────

// Argon2idHasher derives keys with Argon2id and writes argon2id records.
//
// # Thread safety
//
// Argon2idHasher is immutable after construction and safe for concurrent use.
type Argon2idHasher struct {
	opts Argon2Options
}

var _ Scheme = (*Argon2idHasher)(nil)

// NewArgon2idHasher constructs an Argon2idHasher with the given options.
// Use [DefaultArgon2Options] for the production defaults.
func NewArgon2idHasher(opts Argon2Options) (*Argon2idHasher, error) {
	if err := validateArgon2Options(opts); err != nil {
		return nil, err
	}
	opts.Rand = readerOrDefault(opts.Rand)
	return &Argon2idHasher{opts: opts}, nil
}

// Name returns [SchemeArgon2id].
func (h *Argon2idHasher) Name() SchemeName { return SchemeArgon2id }

// Options returns the configured parameter set.
func (h *Argon2idHasher) Options() Argon2Options { return h.opts }

// Make derives a key under a fresh salt and returns the argon2id record.
func (h *Argon2idHasher) Make(password []byte) (Record, error) {
	if password == nil {
		return Record{}, ErrNilPassword
	}
	salt, err := randomSalt(h.opts.Rand, h.opts.SaltLen)
	if err != nil {
		return Record{}, err
	}
	return Record{
		Scheme:      SchemeArgon2id,
		Memory:      h.opts.Memory,
		Iterations:  h.opts.Iterations,
		Parallelism: h.opts.Parallelism,
		Salt:        salt,
		Hash:        argon2.IDKey(password, salt, h.opts.Iterations, h.opts.Memory, h.opts.Parallelism, h.opts.KeyLen),
	}, nil
}

// Raw derives a key under a fresh salt and returns only the derived bytes,
// for callers that manage their own storage format. The salt is discarded.
func (h *Argon2idHasher) Raw(password []byte) ([]byte, error) {
	r, err := h.Make(password)
	if err != nil {
		return nil, err
	}
	return r.Hash, nil
}

// Check re-derives using the memory, iterations, parallelism and salt stored
// in r, with the same output length as r.Hash.
//
// The hasher's own options play no part in verification, so records written
// under older parameters keep verifying after a configuration change.
func (h *Argon2idHasher) Check(password []byte, r Record) (bool, error) {
	if password == nil {
		return false, ErrNilPassword
	}
	if r.Scheme != SchemeArgon2id {
		return false, schemeMismatch(r.Scheme, SchemeArgon2id)
	}
	if err := checkArgon2Record(r); err != nil {
		return false, err
	}
	derived := argon2.IDKey(password, r.Salt, r.Iterations, r.Memory, r.Parallelism, uint32(len(r.Hash)))
	return equal(derived, r.Hash), nil
}

// NeedsRehash returns true if any cost parameter or the key length stored in
// r differs from the hasher's configuration.
func (h *Argon2idHasher) NeedsRehash(r Record) (bool, error) {
	if r.Scheme != SchemeArgon2id {
		return false, schemeMismatch(r.Scheme, SchemeArgon2id)
	}
	return r.Memory != h.opts.Memory ||
		r.Iterations != h.opts.Iterations ||
		r.Parallelism != h.opts.Parallelism ||
		uint32(len(r.Hash)) != h.opts.KeyLen, nil
}

// checkArgon2Record rejects parameters that would make argon2 panic or run
// unbounded.
func checkArgon2Record(r Record) error {
	switch {
	case r.Iterations < 1 || r.Iterations > MaxArgon2Iterations:
		return fmt.Errorf("%w: argon2id iterations %d out of range", ErrInvalidRecord, r.Iterations)
	case r.Parallelism < 1:
		return fmt.Errorf("%w: argon2id parallelism must be ≥ 1", ErrInvalidRecord)
	case r.Memory < 1 || r.Memory > MaxArgon2Memory:
		return fmt.Errorf("%w: argon2id memory %d KiB out of range", ErrInvalidRecord, r.Memory)
	case len(r.Salt) == 0 || len(r.Hash) == 0:
		return fmt.Errorf("%w: argon2id salt and hash must not be empty", ErrInvalidRecord)
	}
	return nil
}
