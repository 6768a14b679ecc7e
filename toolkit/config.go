package toolkit

import (
	"github.com/hasbyte1/go-passkit/cracktime"
	"github.com/hasbyte1/go-passkit/strength"
)

// Config holds the estimation settings of a [Toolkit].
type Config struct {
	// Attacker is the assumed guessing throughput. Defaults to
	// [cracktime.DefaultAttacker] when GuessesPerSecond is zero.
	Attacker cracktime.Attacker

	// Algorithm is the hashing cost model the attacker faces. Defaults to
	// [cracktime.DefaultAlgorithm] when Cost is zero.
	Algorithm cracktime.Algorithm

	// TargetBits is the bit-strength that scores 1.0.
	// Defaults to 128 if zero or negative.
	TargetBits float64

	// UserInputs are extra words fed to the pattern analyser, e.g. the
	// account name or site the password is for.
	UserInputs []string
}

// DefaultConfig returns a [Config] populated with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Attacker:   cracktime.DefaultAttacker,
		Algorithm:  cracktime.DefaultAlgorithm,
		TargetBits: strength.DefaultTargetBits,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Attacker.GuessesPerSecond == 0 {
		c.Attacker = d.Attacker
	}
	if c.Algorithm.Cost == 0 {
		c.Algorithm = d.Algorithm
	}
	if c.TargetBits <= 0 {
		c.TargetBits = d.TargetBits
	}
	return c
}
