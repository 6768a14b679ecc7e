package hashing_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/hasbyte1/go-passkit/hashing"
)

// fastArgon2Opts returns minimal Argon2 parameters for unit tests.
// These are intentionally weak; do NOT use in production.
func fastArgon2Opts() hashing.Argon2Options {
	return hashing.Argon2Options{
		Memory:      8,
		Iterations:  1,
		Parallelism: 1,
		KeyLen:      16,
		SaltLen:     8,
	}
}

func newTestArgon2idHasher(t *testing.T) *hashing.Argon2idHasher {
	t.Helper()
	h, err := hashing.NewArgon2idHasher(fastArgon2Opts())
	if err != nil {
		t.Fatalf("NewArgon2idHasher: %v", err)
	}
	return h
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("no entropy") }

// ──────────────────────────────────────────────────────────────────────────────
// Constructor validation
// ──────────────────────────────────────────────────────────────────────────────

func TestNewArgon2idHasher_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts hashing.Argon2Options
	}{
		{"iterations=0", hashing.Argon2Options{Memory: 64, Iterations: 0, Parallelism: 1, KeyLen: 16, SaltLen: 8}},
		{"iterations too high", hashing.Argon2Options{Memory: 64, Iterations: hashing.MaxArgon2Iterations + 1, Parallelism: 1, KeyLen: 16, SaltLen: 8}},
		{"parallelism=0", hashing.Argon2Options{Memory: 64, Iterations: 1, Parallelism: 0, KeyLen: 16, SaltLen: 8}},
		{"memory too low", hashing.Argon2Options{Memory: 1, Iterations: 1, Parallelism: 2, KeyLen: 16, SaltLen: 8}},
		{"memory too high", hashing.Argon2Options{Memory: hashing.MaxArgon2Memory + 1, Iterations: 1, Parallelism: 1, KeyLen: 16, SaltLen: 8}},
		{"key_len<4", hashing.Argon2Options{Memory: 64, Iterations: 1, Parallelism: 1, KeyLen: 3, SaltLen: 8}},
		{"salt_len<8", hashing.Argon2Options{Memory: 64, Iterations: 1, Parallelism: 1, KeyLen: 16, SaltLen: 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := hashing.NewArgon2idHasher(tt.opts)
			if !errors.Is(err, hashing.ErrInvalidOption) {
				t.Errorf("expected ErrInvalidOption, got %v", err)
			}
		})
	}
}

func TestDefaultArgon2Options(t *testing.T) {
	opts := hashing.DefaultArgon2Options()
	if opts.Memory != 65536 {
		t.Errorf("Memory = %d, want 65536", opts.Memory)
	}
	if opts.Iterations != 3 {
		t.Errorf("Iterations = %d, want 3", opts.Iterations)
	}
	if opts.Parallelism != 1 {
		t.Errorf("Parallelism = %d, want 1", opts.Parallelism)
	}
	if opts.KeyLen != 32 {
		t.Errorf("KeyLen = %d, want 32", opts.KeyLen)
	}
	if opts.SaltLen != 16 {
		t.Errorf("SaltLen = %d, want 16", opts.SaltLen)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Make / Raw / Check / NeedsRehash
// ──────────────────────────────────────────────────────────────────────────────

func TestArgon2idHasher_Make_RecordLayout(t *testing.T) {
	h := newTestArgon2idHasher(t)
	r, err := h.Make([]byte("password"))
	if err != nil {
		t.Fatal(err)
	}
	stored := r.String()
	if !strings.HasPrefix(stored, "argon2id$8$1$1$") {
		t.Errorf("unexpected record prefix: %q", stored)
	}
	if got := strings.Count(stored, "$"); got != 5 {
		t.Errorf("record has %d separators, want 5", got)
	}
	if len(r.Salt) != 8 || len(r.Hash) != 16 {
		t.Errorf("salt/hash lengths = %d/%d, want 8/16", len(r.Salt), len(r.Hash))
	}
}

func TestArgon2idHasher_Make_UniqueSalts(t *testing.T) {
	h := newTestArgon2idHasher(t)
	r1, _ := h.Make([]byte("same"))
	r2, _ := h.Make([]byte("same"))
	if bytes.Equal(r1.Salt, r2.Salt) || r1.String() == r2.String() {
		t.Error("two Make calls must produce different records (different salts)")
	}
}

func TestArgon2idHasher_Make_NilPassword(t *testing.T) {
	h, err := hashing.NewArgon2idHasher(hashing.Argon2Options{
		Memory: 8, Iterations: 1, Parallelism: 1, KeyLen: 16, SaltLen: 8,
		Rand: failingReader{},
	})
	if err != nil {
		t.Fatal(err)
	}
	// The nil check must win over the (failing) salt source.
	if _, err := h.Make(nil); !errors.Is(err, hashing.ErrNilPassword) {
		t.Errorf("expected ErrNilPassword, got %v", err)
	}
	if _, err := h.Raw(nil); !errors.Is(err, hashing.ErrNilPassword) {
		t.Errorf("Raw: expected ErrNilPassword, got %v", err)
	}
}

func TestArgon2idHasher_Make_SaltFailure(t *testing.T) {
	opts := fastArgon2Opts()
	opts.Rand = failingReader{}
	h, _ := hashing.NewArgon2idHasher(opts)
	if _, err := h.Make([]byte("pw")); err == nil {
		t.Error("expected salt generation error")
	}
}

func TestArgon2idHasher_Make_DeterministicSalt(t *testing.T) {
	opts := fastArgon2Opts()
	opts.Rand = bytes.NewReader(bytes.Repeat([]byte{0x42}, 16))
	h, _ := hashing.NewArgon2idHasher(opts)
	r1, err := h.Make([]byte("pw"))
	if err != nil {
		t.Fatal(err)
	}
	r2, err := h.Make([]byte("pw"))
	if err != nil {
		t.Fatal(err)
	}
	if r1.String() != r2.String() {
		t.Error("same salt and password must derive the same record")
	}
}

func TestArgon2idHasher_Raw(t *testing.T) {
	h := newTestArgon2idHasher(t)
	raw, err := h.Raw([]byte("pw"))
	if err != nil {
		t.Fatal(err)
	}
	if len(raw) != 16 {
		t.Errorf("len(raw) = %d, want 16", len(raw))
	}
}

func TestArgon2idHasher_Check(t *testing.T) {
	h := newTestArgon2idHasher(t)
	r, _ := h.Make([]byte("secret"))

	ok, err := h.Check([]byte("secret"), r)
	if err != nil || !ok {
		t.Fatalf("correct password: ok=%v err=%v", ok, err)
	}
	ok, err = h.Check([]byte("Secret"), r)
	if err != nil || ok {
		t.Fatalf("wrong password: ok=%v err=%v", ok, err)
	}
}

func TestArgon2idHasher_Check_EmptyPassword(t *testing.T) {
	h := newTestArgon2idHasher(t)
	r, _ := h.Make([]byte{})
	ok, err := h.Check([]byte{}, r)
	if err != nil || !ok {
		t.Fatalf("empty password round-trip: ok=%v err=%v", ok, err)
	}
}

func TestArgon2idHasher_Check_UsesRecordParams(t *testing.T) {
	writer := newTestArgon2idHasher(t)
	r, _ := writer.Make([]byte("pw"))

	opts := fastArgon2Opts()
	opts.Memory, opts.Iterations, opts.KeyLen = 32, 2, 32
	reader, _ := hashing.NewArgon2idHasher(opts)

	ok, err := reader.Check([]byte("pw"), r)
	if err != nil || !ok {
		t.Fatalf("record from older params must verify: ok=%v err=%v", ok, err)
	}
}

func TestArgon2idHasher_Check_InvalidParams(t *testing.T) {
	h := newTestArgon2idHasher(t)
	good, _ := h.Make([]byte("pw"))

	tests := []struct {
		name   string
		mutate func(*hashing.Record)
	}{
		{"zero iterations", func(r *hashing.Record) { r.Iterations = 0 }},
		{"zero parallelism", func(r *hashing.Record) { r.Parallelism = 0 }},
		{"zero memory", func(r *hashing.Record) { r.Memory = 0 }},
		{"memory above limit", func(r *hashing.Record) { r.Memory = hashing.MaxArgon2Memory + 1 }},
		{"empty hash", func(r *hashing.Record) { r.Hash = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := good
			tt.mutate(&r)
			ok, err := h.Check([]byte("pw"), r)
			if ok || !errors.Is(err, hashing.ErrInvalidRecord) {
				t.Errorf("ok=%v err=%v, want false/ErrInvalidRecord", ok, err)
			}
		})
	}
}

func TestArgon2idHasher_Check_WrongScheme(t *testing.T) {
	h := newTestArgon2idHasher(t)
	_, err := h.Check([]byte("pw"), hashing.Record{Scheme: hashing.SchemePBKDF2})
	if !errors.Is(err, hashing.ErrSchemeMismatch) {
		t.Errorf("expected ErrSchemeMismatch, got %v", err)
	}
}

func TestArgon2idHasher_NeedsRehash(t *testing.T) {
	h := newTestArgon2idHasher(t)
	r, _ := h.Make([]byte("pw"))

	needs, err := h.NeedsRehash(r)
	if err != nil || needs {
		t.Errorf("same params: needs=%v err=%v", needs, err)
	}

	opts := fastArgon2Opts()
	opts.Iterations = 2
	h2, _ := hashing.NewArgon2idHasher(opts)
	needs, err = h2.NeedsRehash(r)
	if err != nil || !needs {
		t.Errorf("different iterations: needs=%v err=%v", needs, err)
	}

	opts = fastArgon2Opts()
	opts.KeyLen = 32
	h3, _ := hashing.NewArgon2idHasher(opts)
	if needs, _ := h3.NeedsRehash(r); !needs {
		t.Error("different key length must need rehash")
	}
}

func TestArgon2idHasher_Name(t *testing.T) {
	h := newTestArgon2idHasher(t)
	if h.Name() != hashing.SchemeArgon2id {
		t.Errorf("Name() = %q", h.Name())
	}
}
