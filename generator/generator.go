// Package generator draws passwords from a charset using a cryptographically
// secure random source.
//
// Every symbol is drawn independently and uniformly with replacement. Indices
// are produced by [crypto/rand.Int], which rejects out-of-range samples
// instead of reducing them modulo the charset size, so charsets whose size is
// not a power of two carry no modulo bias.
//
// Failure to read randomness is treated as a broken security primitive: the
// package-level helpers panic with an error wrapping [ErrRandomness].
package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/hasbyte1/go-passkit/charset"
)

// ErrRandomness wraps any failure of the underlying random source.
var ErrRandomness = errors.New("generator: random source failed")

// Generator draws symbols from a charset using an injectable random source.
// A Generator is safe for concurrent use when its reader is.
type Generator struct {
	rand io.Reader
}

// New returns a Generator reading from r. A nil r selects [crypto/rand.Reader].
func New(r io.Reader) *Generator {
	if r == nil {
		r = rand.Reader
	}
	return &Generator{rand: r}
}

var defaultGenerator = New(nil)

// Generate returns a password of length symbols drawn from cs.
//
// It returns "" when length ≤ 0 or cs is empty. Symbols are runes, so a
// charset containing multi-byte characters yields length runes, not bytes.
func (g *Generator) Generate(length int, cs string) (string, error) {
	if length <= 0 || cs == "" {
		return "", nil
	}

	symbols := []rune(cs)
	upper := big.NewInt(int64(len(symbols)))

	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		n, err := rand.Int(g.rand, upper)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrRandomness, err)
		}
		b.WriteRune(symbols[n.Int64()])
	}
	return b.String(), nil
}

// Generate draws a password from cs using crypto/rand. It panics if the
// system random source fails.
func Generate(length int, cs string) string {
	pw, err := defaultGenerator.Generate(length, cs)
	if err != nil {
		panic(err)
	}
	return pw
}

// FromOptions builds the charset described by opts and draws a password of
// the given length from it.
func FromOptions(length int, opts charset.Options) string {
	return Generate(length, charset.Build(opts))
}
