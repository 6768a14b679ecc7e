package hashing

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// SchemeName identifies a key-derivation scheme and is the first field of
// every stored record.
type SchemeName string

const (
	// SchemeArgon2id selects Argon2id (RFC 9106). Default for new records.
	SchemeArgon2id SchemeName = "argon2id"
	// SchemePBKDF2 selects PBKDF2 with HMAC-SHA-256.
	SchemePBKDF2 SchemeName = "pbkdf2"
)

const recordSep = "$"

// Record is the parsed form of a stored hash record.
//
// Two layouts are supported, both '$'-delimited with standard padded base64
// for binary fields:
//
//	argon2id$<memoryKiB>$<iterations>$<parallelism>$<saltBase64>$<hashBase64>
//	pbkdf2$<iterations>$<saltBase64>$<hashBase64>
//
// Memory and Parallelism are only meaningful for [SchemeArgon2id].
// The format is persisted by callers and must stay stable.
type Record struct {
	Scheme      SchemeName
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	Salt        []byte
	Hash        []byte
}

// String encodes r in its stored form. Parsing the result with [ParseRecord]
// yields an equal Record, and re-encoding a parsed record reproduces the
// input string exactly.
func (r Record) String() string {
	salt := base64.StdEncoding.EncodeToString(r.Salt)
	hash := base64.StdEncoding.EncodeToString(r.Hash)
	if r.Scheme == SchemePBKDF2 {
		return strings.Join([]string{
			string(r.Scheme),
			strconv.FormatUint(uint64(r.Iterations), 10),
			salt,
			hash,
		}, recordSep)
	}
	return strings.Join([]string{
		string(r.Scheme),
		strconv.FormatUint(uint64(r.Memory), 10),
		strconv.FormatUint(uint64(r.Iterations), 10),
		strconv.FormatUint(uint64(r.Parallelism), 10),
		salt,
		hash,
	}, recordSep)
}

// DetectScheme returns the scheme tag of a stored record without validating
// the remaining fields. The second return value is false when the tag is not
// a supported scheme.
func DetectScheme(stored string) (SchemeName, bool) {
	tag, _, _ := strings.Cut(stored, recordSep)
	switch SchemeName(tag) {
	case SchemeArgon2id:
		return SchemeArgon2id, true
	case SchemePBKDF2:
		return SchemePBKDF2, true
	default:
		return "", false
	}
}

// ParseRecord decodes a stored record.
//
// Parsing is strict so that decode/encode is an exact round trip: numeric
// fields must be canonical unsigned decimals (no sign, no leading zeros) and
// binary fields must be canonical padded standard base64. It checks format
// only; cost ranges are enforced by the scheme that verifies the record.
func ParseRecord(stored string) (Record, error) {
	parts := strings.Split(stored, recordSep)
	scheme, ok := DetectScheme(stored)
	if !ok {
		return Record{}, fmt.Errorf("%w: %q", ErrUnknownScheme, parts[0])
	}

	var (
		r   = Record{Scheme: scheme}
		err error
	)
	switch scheme {
	case SchemeArgon2id:
		if len(parts) != 6 {
			return Record{}, fmt.Errorf("%w: argon2id record needs 6 fields, got %d",
				ErrInvalidRecord, len(parts))
		}
		if r.Memory, err = parseUint32(parts[1], "memory"); err != nil {
			return Record{}, err
		}
		if r.Iterations, err = parseUint32(parts[2], "iterations"); err != nil {
			return Record{}, err
		}
		var p uint64
		if p, err = parseUint(parts[3], "parallelism", 8); err != nil {
			return Record{}, err
		}
		r.Parallelism = uint8(p)
		parts = parts[4:]

	case SchemePBKDF2:
		if len(parts) != 4 {
			return Record{}, fmt.Errorf("%w: pbkdf2 record needs 4 fields, got %d",
				ErrInvalidRecord, len(parts))
		}
		if r.Iterations, err = parseUint32(parts[1], "iterations"); err != nil {
			return Record{}, err
		}
		parts = parts[2:]
	}

	if r.Salt, err = decodeField(parts[0], "salt"); err != nil {
		return Record{}, err
	}
	if r.Hash, err = decodeField(parts[1], "hash"); err != nil {
		return Record{}, err
	}
	return r, nil
}

func parseUint32(s, field string) (uint32, error) {
	v, err := parseUint(s, field, 32)
	return uint32(v), err
}

// parseUint accepts only the canonical decimal form so that re-encoding is
// byte-for-byte identical.
func parseUint(s, field string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidRecord, field, err)
	}
	if strconv.FormatUint(v, 10) != s {
		return 0, fmt.Errorf("%w: %s: non-canonical number %q", ErrInvalidRecord, field, s)
	}
	return v, nil
}

func decodeField(s, field string) ([]byte, error) {
	b, err := base64.StdEncoding.Strict().DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s base64: %v", ErrInvalidRecord, field, err)
	}
	// The decoder skips CR/LF, which would break the round trip.
	if base64.StdEncoding.EncodeToString(b) != s {
		return nil, fmt.Errorf("%w: %s: non-canonical base64", ErrInvalidRecord, field)
	}
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: %s must not be empty", ErrInvalidRecord, field)
	}
	return b, nil
}
