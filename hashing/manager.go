package hashing

import (
	"fmt"
	"sync"
)

// Manager is a thread-safe scheme registry and dispatcher.
//
// Register one or more [Scheme] implementations, nominate a default scheme
// for new records, and verify stored records through the Manager: the record
// tag selects the scheme, so argon2id and pbkdf2 records can coexist in one
// credential store.
//
// # Thread safety
//
// All Manager methods are safe for concurrent use by multiple goroutines.
// A [sync.RWMutex] serialises writes (RegisterScheme, SetDefaultScheme) while
// allowing concurrent reads (Make, Check, etc.).
type Manager struct {
	mu      sync.RWMutex
	schemes map[SchemeName]Scheme
	def     SchemeName
}

// NewManager creates an empty Manager with the given default scheme name.
// Schemes must be registered with [Manager.RegisterScheme] before use.
func NewManager(defaultScheme SchemeName) *Manager {
	return &Manager{
		schemes: make(map[SchemeName]Scheme),
		def:     defaultScheme,
	}
}

// NewDefaultManager creates a Manager with argon2id and pbkdf2 registered
// using their recommended options. The default scheme is [SchemeArgon2id].
func NewDefaultManager() (*Manager, error) {
	return NewManagerWith(DefaultArgon2Options(), DefaultPBKDF2Options())
}

// NewManagerWith creates a Manager with argon2id and pbkdf2 registered using
// the supplied options. The default scheme is [SchemeArgon2id].
func NewManagerWith(a Argon2Options, p PBKDF2Options) (*Manager, error) {
	argonH, err := NewArgon2idHasher(a)
	if err != nil {
		return nil, fmt.Errorf("hashing: failed to create argon2id hasher: %w", err)
	}
	pbkdfH, err := NewPBKDF2Hasher(p)
	if err != nil {
		return nil, fmt.Errorf("hashing: failed to create pbkdf2 hasher: %w", err)
	}

	m := NewManager(SchemeArgon2id)
	_ = m.RegisterScheme(argonH)
	_ = m.RegisterScheme(pbkdfH)
	return m, nil
}

// RegisterScheme adds or replaces a scheme under its own name.
func (m *Manager) RegisterScheme(s Scheme) error {
	if s == nil {
		return ErrNilScheme
	}
	name := s.Name()
	if name == "" {
		return ErrEmptySchemeName
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.schemes[name] = s
	return nil
}

// Scheme returns the [Scheme] registered under name, or [ErrSchemeNotFound].
func (m *Manager) Scheme(name SchemeName) (Scheme, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.schemes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSchemeNotFound, name)
	}
	return s, nil
}

// SetDefaultScheme changes the scheme used by [Manager.Make] and
// [Manager.NeedsRehash]. The named scheme must already be registered.
func (m *Manager) SetDefaultScheme(name SchemeName) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.schemes[name]; !ok {
		return fmt.Errorf("%w: %q is not registered; call RegisterScheme first",
			ErrSchemeNotFound, name)
	}
	m.def = name
	return nil
}

// DefaultScheme returns the name of the currently configured default scheme.
func (m *Manager) DefaultScheme() SchemeName {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.def
}

// HasScheme reports whether a scheme with the given name is registered.
func (m *Manager) HasScheme(name SchemeName) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.schemes[name]
	return ok
}

// Make hashes password with the default scheme and returns the stored record.
func (m *Manager) Make(password string) (string, error) {
	return m.MakeBytes([]byte(password))
}

// MakeBytes is like [Manager.Make] but takes the password as bytes.
// A nil slice yields [ErrNilPassword].
func (m *Manager) MakeBytes(password []byte) (string, error) {
	if password == nil {
		return "", ErrNilPassword
	}
	s, err := m.resolveDefault()
	if err != nil {
		return "", err
	}
	r, err := s.Make(password)
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

// Check verifies password against a stored record, dispatching on the
// record's scheme tag. Unlike [Manager.Verify] it reports why a record could
// not be verified.
func (m *Manager) Check(password, stored string) (bool, error) {
	r, err := ParseRecord(stored)
	if err != nil {
		return false, err
	}
	s, err := m.Scheme(r.Scheme)
	if err != nil {
		return false, err
	}
	return s.Check([]byte(password), r)
}

// Verify reports whether password matches stored. Every failure, including a
// malformed record, an unknown scheme or an unregistered scheme, is false.
func (m *Manager) Verify(password, stored string) bool {
	ok, err := m.Check(password, stored)
	return err == nil && ok
}

// NeedsRehash reports whether stored should be re-hashed.
//
// It returns true when the record was produced by a different scheme than the
// current default, or by the default scheme with different parameters.
func (m *Manager) NeedsRehash(stored string) (bool, error) {
	r, err := ParseRecord(stored)
	if err != nil {
		return false, err
	}

	m.mu.RLock()
	def := m.def
	m.mu.RUnlock()

	if r.Scheme != def {
		return true, nil
	}
	s, err := m.Scheme(r.Scheme)
	if err != nil {
		return false, err
	}
	return s.NeedsRehash(r)
}

// Info extracts metadata from stored. See [InfoOf].
func (m *Manager) Info(stored string) (HashInfo, error) {
	return InfoOf(stored)
}

func (m *Manager) resolveDefault() (Scheme, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.schemes[m.def]
	if !ok {
		return nil, fmt.Errorf("%w: default scheme %q has not been registered",
			ErrSchemeNotFound, m.def)
	}
	return s, nil
}
