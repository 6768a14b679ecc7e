package hashing

import "errors"

// Sentinel errors returned by hashing operations.
//
// Use [errors.Is] for comparisons:
//
//	ok, err := m.Check(password, stored)
//	if errors.Is(err, hashing.ErrInvalidRecord) {
//	    // stored record is malformed
//	}
//
// [Verify] and [Manager.Verify] never surface these errors; they collapse every
// failure into false.
var (
	// ErrNilPassword is returned when a nil password slice is passed to a
	// hashing operation. It is a caller programming error and is detected
	// before any salt is drawn or key is derived.
	ErrNilPassword = errors.New("hashing: password must not be nil")

	// ErrInvalidRecord is returned when a stored record cannot be parsed: wrong
	// field count, non-canonical or non-numeric cost fields, invalid base64, or
	// cost parameters outside the accepted range.
	ErrInvalidRecord = errors.New("hashing: invalid stored hash record")

	// ErrUnknownScheme is returned when a record's scheme tag is not one of the
	// supported key-derivation schemes.
	ErrUnknownScheme = errors.New("hashing: unknown scheme")

	// ErrInvalidOption is returned when a constructor is called with a
	// parameter value that falls outside the allowed range.
	ErrInvalidOption = errors.New("hashing: invalid option value")

	// ErrSchemeNotFound is returned by [Manager.Scheme] or indirectly by
	// [Manager.Make] / [Manager.Check] when the requested scheme has not been
	// registered.
	ErrSchemeNotFound = errors.New("hashing: scheme not found")

	// ErrEmptySchemeName is returned by [Manager.RegisterScheme] when the
	// supplied scheme name is an empty string.
	ErrEmptySchemeName = errors.New("hashing: scheme name must not be empty")

	// ErrNilScheme is returned by [Manager.RegisterScheme] when a nil [Scheme]
	// is supplied.
	ErrNilScheme = errors.New("hashing: scheme must not be nil")

	// ErrSchemeMismatch is returned by a [Scheme]'s Check or NeedsRehash method
	// when the record was produced by a different scheme.
	ErrSchemeMismatch = errors.New("hashing: record was produced by a different scheme")
)
