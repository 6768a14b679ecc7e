// Package strength computes the combinatorial search space of a password and
// a normalized strength score relative to a target bit-strength.
//
// All counting uses arbitrary-precision integers, so very large search spaces
// never overflow. Floating point appears only in the final normalized score,
// which is always clamped to [0, 1].
package strength

import (
	"math"
	"math/big"
	"unicode/utf8"

	"github.com/hasbyte1/go-passkit/charset"
)

// DefaultTargetBits is the bit-strength at which a password scores 1.0.
const DefaultTargetBits = 128.0

// Combinations returns charsetSize^length, or zero when either operand is ≤ 0.
func Combinations(length, charsetSize int) *big.Int {
	if length <= 0 || charsetSize <= 0 {
		return new(big.Int)
	}
	return new(big.Int).Exp(big.NewInt(int64(charsetSize)), big.NewInt(int64(length)), nil)
}

// CombinationsOf returns the search space of password, using [charset.SizeOf]
// for the charset size and the rune count as the length.
func CombinationsOf(password string) *big.Int {
	return Combinations(utf8.RuneCountInString(password), charset.SizeOf(password))
}

// Bits returns log2(combinations), or 0 for combinations ≤ 1.
func Bits(combinations *big.Int) float64 {
	if combinations == nil || combinations.Cmp(big.NewInt(1)) <= 0 {
		return 0
	}
	f := new(big.Float).SetInt(combinations)
	mant := new(big.Float)
	exp := f.MantExp(mant)
	m, _ := mant.Float64()
	return float64(exp) + math.Log2(m)
}

// Score returns clamp(log2(combinations)/targetBits, 0, 1). Combinations ≤ 1
// score 0. A non-positive targetBits selects [DefaultTargetBits].
func Score(combinations *big.Int, targetBits float64) float64 {
	return normalize(Bits(combinations), targetBits)
}

// ScoreFor returns clamp(length·log2(charsetSize)/targetBits, 0, 1). It agrees
// with Score(Combinations(length, charsetSize), targetBits) within floating
// point tolerance without materializing the power.
func ScoreFor(charsetSize, length int, targetBits float64) float64 {
	if charsetSize <= 1 || length <= 0 {
		return 0
	}
	return normalize(float64(length)*math.Log2(float64(charsetSize)), targetBits)
}

// OfPassword scores password against [DefaultTargetBits] using its inferred
// charset size.
func OfPassword(password string) float64 {
	return ScoreFor(charset.SizeOf(password), utf8.RuneCountInString(password), DefaultTargetBits)
}

func normalize(bits, targetBits float64) float64 {
	if targetBits <= 0 || math.IsNaN(targetBits) {
		targetBits = DefaultTargetBits
	}
	s := bits / targetBits
	if math.IsNaN(s) || s < 0 {
		return 0
	}
	return math.Min(s, 1)
}
