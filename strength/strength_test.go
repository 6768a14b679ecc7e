package strength_test

import (
	"math"
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-passkit/strength"
)

func TestCombinations(t *testing.T) {
	tests := []struct {
		length, size int
		want         string
	}{
		{4, 10, "10000"},
		{1, 1, "1"},
		{0, 10, "0"},
		{4, 0, "0"},
		{-1, 10, "0"},
		{10, -5, "0"},
		{20, 94, "2901062411314618233730627546741369470976"},
	}
	for _, tt := range tests {
		got := strength.Combinations(tt.length, tt.size)
		assert.Equal(t, tt.want, got.String(), "Combinations(%d, %d)", tt.length, tt.size)
	}
}

func TestCombinations_ZeroIffOperandZero(t *testing.T) {
	assert.Zero(t, strength.Combinations(0, 0).Sign())
	assert.Equal(t, 1, strength.Combinations(1, 1).Sign())
}

func TestCombinationsOf(t *testing.T) {
	assert.Equal(t, "2176782336", strength.CombinationsOf("abc123").String()) // 36^6
	assert.Equal(t, "0", strength.CombinationsOf("").String())
	assert.Equal(t, "0", strength.CombinationsOf("äöü").String())
}

func TestBits(t *testing.T) {
	assert.Equal(t, 0.0, strength.Bits(nil))
	assert.Equal(t, 0.0, strength.Bits(big.NewInt(0)))
	assert.Equal(t, 0.0, strength.Bits(big.NewInt(1)))
	assert.Equal(t, 1.0, strength.Bits(big.NewInt(2)))
	assert.InDelta(t, math.Log2(10000), strength.Bits(big.NewInt(10000)), 1e-12)

	huge := new(big.Int).Lsh(big.NewInt(1), 4096)
	assert.Equal(t, 4096.0, strength.Bits(huge))
}

func TestScore(t *testing.T) {
	two128 := new(big.Int).Lsh(big.NewInt(1), 128)
	assert.Equal(t, 1.0, strength.Score(two128, strength.DefaultTargetBits))
	assert.Equal(t, 0.0, strength.Score(big.NewInt(1), strength.DefaultTargetBits))
	assert.Equal(t, 0.0, strength.Score(big.NewInt(0), strength.DefaultTargetBits))
	assert.Equal(t, 0.0, strength.Score(big.NewInt(-7), strength.DefaultTargetBits))

	two64 := new(big.Int).Lsh(big.NewInt(1), 64)
	assert.Equal(t, 0.5, strength.Score(two64, strength.DefaultTargetBits))
	assert.Equal(t, 1.0, strength.Score(two64, 64))

	above := new(big.Int).Lsh(big.NewInt(1), 1000)
	assert.Equal(t, 1.0, strength.Score(above, strength.DefaultTargetBits), "clamped at 1")
}

func TestScore_NonPositiveTargetUsesDefault(t *testing.T) {
	two64 := new(big.Int).Lsh(big.NewInt(1), 64)
	assert.Equal(t, 0.5, strength.Score(two64, 0))
	assert.Equal(t, 0.5, strength.Score(two64, -1))
}

func TestScoreFor(t *testing.T) {
	assert.Equal(t, 0.0, strength.ScoreFor(1, 100, 128))
	assert.Equal(t, 0.0, strength.ScoreFor(0, 10, 128))
	assert.Equal(t, 0.0, strength.ScoreFor(10, 0, 128))
	assert.Equal(t, 0.5, strength.ScoreFor(2, 64, 128))
	assert.Equal(t, 1.0, strength.ScoreFor(94, 100, 128))
}

func TestScoreForms_Agree(t *testing.T) {
	rng := rand.New(rand.NewPCG(20261019, 7))
	for i := 0; i < 200; i++ {
		size := rng.IntN(200)
		length := rng.IntN(64)
		target := []float64{strength.DefaultTargetBits, 64, 256}[i%3]

		direct := strength.ScoreFor(size, length, target)
		viaCount := strength.Score(strength.Combinations(length, size), target)
		require.InDelta(t, direct, viaCount, 1e-9, "size=%d length=%d target=%v", size, length, target)
		require.True(t, direct >= 0 && direct <= 1)
	}
}

func TestOfPassword(t *testing.T) {
	assert.Equal(t, 0.0, strength.OfPassword(""))
	want := 6 * math.Log2(36) / strength.DefaultTargetBits
	assert.InDelta(t, want, strength.OfPassword("abc123"), 1e-12)
}
