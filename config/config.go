// Package config loads passkit settings from defaults, a YAML file,
// PASSKIT_* environment variables and command-line flags, in increasing order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete passkit configuration.
type Config struct {
	Generate  GenerateConfig  `mapstructure:"generate" yaml:"generate"`
	Hashing   HashingConfig   `mapstructure:"hashing" yaml:"hashing"`
	Estimate  EstimateConfig  `mapstructure:"estimate" yaml:"estimate"`
	Wordlists WordlistsConfig `mapstructure:"wordlists" yaml:"wordlists"`
	Log       LogConfig       `mapstructure:"log" yaml:"log"`
}

// GenerateConfig holds the default generation request.
type GenerateConfig struct {
	Length  int    `mapstructure:"length" yaml:"length"`
	Upper   bool   `mapstructure:"upper" yaml:"upper"`
	Lower   bool   `mapstructure:"lower" yaml:"lower"`
	Digits  bool   `mapstructure:"digits" yaml:"digits"`
	Special bool   `mapstructure:"special" yaml:"special"`
	Include string `mapstructure:"include" yaml:"include"`
	Exclude string `mapstructure:"exclude" yaml:"exclude"`
}

// HashingConfig selects the scheme for new records and its cost parameters.
type HashingConfig struct {
	Scheme string       `mapstructure:"scheme" yaml:"scheme"`
	Argon2 Argon2Config `mapstructure:"argon2" yaml:"argon2"`
	PBKDF2 PBKDF2Config `mapstructure:"pbkdf2" yaml:"pbkdf2"`
}

type Argon2Config struct {
	Memory      uint32 `mapstructure:"memory" yaml:"memory"`
	Iterations  uint32 `mapstructure:"iterations" yaml:"iterations"`
	Parallelism uint8  `mapstructure:"parallelism" yaml:"parallelism"`
	KeyLen      uint32 `mapstructure:"key_len" yaml:"key_len"`
	SaltLen     uint32 `mapstructure:"salt_len" yaml:"salt_len"`
}

type PBKDF2Config struct {
	Iterations uint32 `mapstructure:"iterations" yaml:"iterations"`
	KeyLen     uint32 `mapstructure:"key_len" yaml:"key_len"`
	SaltLen    uint32 `mapstructure:"salt_len" yaml:"salt_len"`
}

// EstimateConfig controls crack-time estimation and report formatting.
type EstimateConfig struct {
	Attacker   string   `mapstructure:"attacker" yaml:"attacker"`
	Algorithm  string   `mapstructure:"algorithm" yaml:"algorithm"`
	TargetBits float64  `mapstructure:"target_bits" yaml:"target_bits"`
	Locale     string   `mapstructure:"locale" yaml:"locale"`
	UserInputs []string `mapstructure:"user_inputs" yaml:"user_inputs"`
}

// WordlistsConfig points at the line-delimited wordlist files. Empty paths
// disable the corresponding list. Timeout bounds how long a command waits for
// the lists before classifying without them; zero waits indefinitely.
type WordlistsConfig struct {
	Common  string        `mapstructure:"common" yaml:"common"`
	Names   string        `mapstructure:"names" yaml:"names"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// Defaults returns the default value of every configuration key.
func Defaults() map[string]any {
	return map[string]any{
		"generate.length":  16,
		"generate.upper":   true,
		"generate.lower":   true,
		"generate.digits":  true,
		"generate.special": true,
		"generate.include": "",
		"generate.exclude": "",

		"hashing.scheme":             "argon2id",
		"hashing.argon2.memory":      65536,
		"hashing.argon2.iterations":  3,
		"hashing.argon2.parallelism": 1,
		"hashing.argon2.key_len":     32,
		"hashing.argon2.salt_len":    16,
		"hashing.pbkdf2.iterations":  600000,
		"hashing.pbkdf2.key_len":     32,
		"hashing.pbkdf2.salt_len":    16,

		"estimate.attacker":    "Medium",
		"estimate.algorithm":   "RawHash",
		"estimate.target_bits": 128.0,
		"estimate.locale":      "en",
		"estimate.user_inputs": []string{},

		"wordlists.common":  "",
		"wordlists.names":   "",
		"wordlists.timeout": "2s",

		"log.level": "info",
	}
}

// Default returns the configuration produced by Defaults alone.
func Default() Config {
	v := viper.New()
	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		panic(fmt.Sprintf("config: defaults do not decode: %v", err))
	}
	return c
}

// DefaultPath returns the per-user configuration file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}
	return filepath.Join(dir, "passkit", "passkit.yaml"), nil
}

// Load builds a Config. When path is empty, passkit.yaml is searched for in
// the user config directory and the working directory, and a missing file is
// not an error. An explicit path must exist.
//
// flags maps flag names of cmd to configuration keys, e.g.
// {"length": "generate.length"}. Only flags the user actually set override
// file and environment values. cmd may be nil.
func Load(cmd *cobra.Command, path string, flags map[string]string) (Config, error) {
	var c Config
	v := viper.New()

	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	v.SetConfigName("passkit")
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		if p, err := DefaultPath(); err == nil {
			v.AddConfigPath(filepath.Dir(p))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return c, fmt.Errorf("config: read: %w", err)
		}
	}

	v.SetEnvPrefix("passkit")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		for name, key := range flags {
			f := cmd.Flags().Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return c, fmt.Errorf("config: bind flag %q: %w", name, err)
			}
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("config: decode: %w", err)
	}
	return c, nil
}

// Write stores c as YAML at path, creating parent directories. The file is
// written with mode 0600.
func Write(path string, c Config) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", dir, err)
	}
	return os.WriteFile(path, data, 0o600)
}
