package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"golang.org/x/text/language"

	"github.com/hasbyte1/go-passkit/cracktime"
	"github.com/hasbyte1/go-passkit/hashing"
	"github.com/hasbyte1/go-passkit/toolkit"
)

// MaxLength bounds generate.length.
const MaxLength = 4096

// Validate checks every section and returns all problems joined. Each
// problem wraps ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.Generate.Length < 1 || c.Generate.Length > MaxLength {
		invalid("generate.length must be in [1, %d], got %d", MaxLength, c.Generate.Length)
	}

	if _, err := c.Manager(); err != nil {
		errs = append(errs, err)
	}

	if _, err := c.Attacker(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Algorithm(); err != nil {
		errs = append(errs, err)
	}
	if c.Estimate.TargetBits <= 0 {
		invalid("estimate.target_bits must be positive, got %v", c.Estimate.TargetBits)
	}
	if _, err := c.Language(); err != nil {
		errs = append(errs, err)
	}

	if c.Wordlists.Timeout < 0 {
		invalid("wordlists.timeout must not be negative, got %s", c.Wordlists.Timeout)
	}

	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Attacker resolves estimate.attacker against the attacker table.
func (c Config) Attacker() (cracktime.Attacker, error) {
	a, ok := cracktime.AttackerByName(c.Estimate.Attacker)
	if !ok {
		return a, fmt.Errorf("%w: unknown estimate.attacker %q", ErrInvalidConfig, c.Estimate.Attacker)
	}
	return a, nil
}

// Algorithm resolves estimate.algorithm against the cost table.
func (c Config) Algorithm() (cracktime.Algorithm, error) {
	a, ok := cracktime.AlgorithmByName(c.Estimate.Algorithm)
	if !ok {
		return a, fmt.Errorf("%w: unknown estimate.algorithm %q", ErrInvalidConfig, c.Estimate.Algorithm)
	}
	return a, nil
}

// Language parses estimate.locale as a BCP 47 tag.
func (c Config) Language() (language.Tag, error) {
	tag, err := language.Parse(c.Estimate.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("%w: estimate.locale %q: %v", ErrInvalidConfig, c.Estimate.Locale, err)
	}
	return tag, nil
}

// LogLevel parses log.level.
func (c Config) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	return lvl, nil
}

// Argon2Options converts the argon2 section. Rand is left nil.
func (c Config) Argon2Options() hashing.Argon2Options {
	a := c.Hashing.Argon2
	return hashing.Argon2Options{
		Memory:      a.Memory,
		Iterations:  a.Iterations,
		Parallelism: a.Parallelism,
		KeyLen:      a.KeyLen,
		SaltLen:     a.SaltLen,
	}
}

// PBKDF2Options converts the pbkdf2 section. Rand is left nil.
func (c Config) PBKDF2Options() hashing.PBKDF2Options {
	p := c.Hashing.PBKDF2
	return hashing.PBKDF2Options{
		Iterations: p.Iterations,
		KeyLen:     p.KeyLen,
		SaltLen:    p.SaltLen,
	}
}

// Manager builds a hashing manager with both schemes registered and
// hashing.scheme as the default.
func (c Config) Manager() (*hashing.Manager, error) {
	m, err := hashing.NewManagerWith(c.Argon2Options(), c.PBKDF2Options())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := m.SetDefaultScheme(hashing.SchemeName(c.Hashing.Scheme)); err != nil {
		return nil, fmt.Errorf("%w: hashing.scheme: %w", ErrInvalidConfig, err)
	}
	return m, nil
}

// GenerateRequest converts the generate section.
func (c Config) GenerateRequest() toolkit.GenerateRequest {
	g := c.Generate
	return toolkit.GenerateRequest{
		Length:  g.Length,
		Upper:   g.Upper,
		Lower:   g.Lower,
		Digits:  g.Digits,
		Special: g.Special,
		Include: g.Include,
		Exclude: g.Exclude,
	}
}

// Toolkit converts the estimate section.
func (c Config) Toolkit() (toolkit.Config, error) {
	a, err := c.Attacker()
	if err != nil {
		return toolkit.Config{}, err
	}
	alg, err := c.Algorithm()
	if err != nil {
		return toolkit.Config{}, err
	}
	return toolkit.Config{
		Attacker:   a,
		Algorithm:  alg,
		TargetBits: c.Estimate.TargetBits,
		UserInputs: c.Estimate.UserInputs,
	}, nil
}
