package hashing

import "sync"

var defaults = sync.OnceValues(func() (*Argon2idHasher, *Manager) {
	h, err := NewArgon2idHasher(DefaultArgon2Options())
	if err != nil {
		panic(err)
	}
	m, err := NewDefaultManager()
	if err != nil {
		panic(err)
	}
	return h, m
})

// Hash derives an Argon2id key from password with the default parameters
// and returns the stored record:
//
//	argon2id$65536$3$1$<saltBase64>$<hashBase64>
func Hash(password string) (string, error) {
	return HashBytes([]byte(password))
}

// HashBytes is like [Hash] but takes the password as bytes. A nil slice
// yields [ErrNilPassword] before any salt is drawn.
func HashBytes(password []byte) (string, error) {
	h, _ := defaults()
	r, err := h.Make(password)
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

// HashRaw performs the same derivation as [HashBytes] and returns only the
// 32 derived bytes.
func HashRaw(password []byte) ([]byte, error) {
	h, _ := defaults()
	return h.Raw(password)
}

// Verify reports whether password matches a stored argon2id or pbkdf2
// record. It never panics and never returns an error: a corrupt record, an
// unknown scheme tag or a mismatching password all yield false.
func Verify(password, stored string) bool {
	_, m := defaults()
	return m.Verify(password, stored)
}
