// Package toolkit is the caller-facing surface of passkit: it generates
// passwords from a request, estimates the strength of a password, and hashes
// and verifies credentials.
//
//	tk, err := toolkit.New(toolkit.DefaultConfig())
//	if err != nil { ... }
//	pw := tk.Generate(toolkit.GenerateRequest{Length: 20, Upper: true, Lower: true, Digits: true})
//	fmt.Println(tk.Estimate(pw).Summary())
package toolkit

import (
	"fmt"

	"github.com/hasbyte1/go-passkit/charset"
	"github.com/hasbyte1/go-passkit/generator"
	"github.com/hasbyte1/go-passkit/hashing"
	"github.com/hasbyte1/go-passkit/wordlist"
)

// Option is a functional option for configuring a [Toolkit].
type Option func(*Toolkit)

// WithManager replaces the default hashing manager.
func WithManager(m *hashing.Manager) Option {
	return func(t *Toolkit) {
		t.hasher = m
	}
}

// WithGenerator replaces the crypto/rand backed generator.
func WithGenerator(g *generator.Generator) Option {
	return func(t *Toolkit) {
		t.gen = g
	}
}

// WithWordlists sets the wordlists consulted by Estimate. Until the future
// completes, classification behaves as if both lists were empty.
func WithWordlists(f *wordlist.Future) Option {
	return func(t *Toolkit) {
		t.lists = f
	}
}

// WithEventListener registers a listener that will be called on every
// credential event.
func WithEventListener(l EventListener) Option {
	return func(t *Toolkit) {
		t.listeners = append(t.listeners, l)
	}
}

// Toolkit bundles generation, estimation and credential hashing. It is safe
// for concurrent use.
type Toolkit struct {
	config    Config
	gen       *generator.Generator
	hasher    *hashing.Manager
	lists     *wordlist.Future
	listeners []EventListener
}

// New constructs a Toolkit. Zero fields of cfg take their defaults. When no
// manager is supplied, argon2id and pbkdf2 are registered with their
// recommended parameters and argon2id is the default scheme.
func New(cfg Config, opts ...Option) (*Toolkit, error) {
	t := &Toolkit{config: cfg.withDefaults()}
	for _, opt := range opts {
		opt(t)
	}
	if t.gen == nil {
		t.gen = generator.New(nil)
	}
	if t.hasher == nil {
		m, err := hashing.NewDefaultManager()
		if err != nil {
			return nil, fmt.Errorf("toolkit: %w", err)
		}
		t.hasher = m
	}
	return t, nil
}

// Config returns the effective configuration.
func (t *Toolkit) Config() Config { return t.config }

// GenerateRequest describes the password to generate.
type GenerateRequest struct {
	Length  int    `json:"length" yaml:"length"`
	Upper   bool   `json:"upper" yaml:"upper"`
	Lower   bool   `json:"lower" yaml:"lower"`
	Digits  bool   `json:"digits" yaml:"digits"`
	Special bool   `json:"special" yaml:"special"`
	Include string `json:"include" yaml:"include"`
	Exclude string `json:"exclude" yaml:"exclude"`
}

// Charset returns the charset the request draws from.
func (r GenerateRequest) Charset() string {
	return charset.Build(charset.Options{
		Upper:   r.Upper,
		Lower:   r.Lower,
		Digits:  r.Digits,
		Special: r.Special,
		Include: r.Include,
		Exclude: r.Exclude,
	})
}

// Generate returns a password for req, or "" when the length is not positive
// or the charset is empty. A failing random source is unrecoverable and
// panics.
func (t *Toolkit) Generate(req GenerateRequest) string {
	pw, err := t.gen.Generate(req.Length, req.Charset())
	if err != nil {
		panic(err)
	}
	return pw
}

// Hash returns a stored record for password under the default scheme.
func (t *Toolkit) Hash(password string) (string, error) {
	stored, err := t.hasher.Make(password)
	if err != nil {
		return "", err
	}
	t.emit(Event{Type: EventHashed, Scheme: t.hasher.DefaultScheme()})
	return stored, nil
}

// Verify reports whether password matches stored. Malformed records and
// unknown schemes yield false.
func (t *Toolkit) Verify(password, stored string) bool {
	scheme, _ := hashing.DetectScheme(stored)
	ok, err := t.hasher.Check(password, stored)
	if ok {
		t.emit(Event{Type: EventVerified, Scheme: scheme})
		return true
	}
	t.emit(Event{Type: EventVerifyFailed, Scheme: scheme, Err: err})
	return false
}

// VerifyAndRehash verifies password against stored and, on success, returns
// a fresh record when stored was made with a different scheme or parameters
// than the current default. upgraded is "" when no rehash was needed.
func (t *Toolkit) VerifyAndRehash(password, stored string) (ok bool, upgraded string, err error) {
	if !t.Verify(password, stored) {
		return false, "", nil
	}
	needs, err := t.hasher.NeedsRehash(stored)
	if err != nil || !needs {
		return true, "", err
	}
	upgraded, err = t.hasher.Make(password)
	if err != nil {
		return true, "", err
	}
	t.emit(Event{Type: EventRehashed, Scheme: t.hasher.DefaultScheme()})
	return true, upgraded, nil
}
