// Package wordlist holds the common-password and name lists consulted by the
// classifier.
//
// A [Lists] value is immutable once built and safe for concurrent use. The
// nil *Lists behaves as empty, which is also the state a [Future] reports
// before its load has completed.
package wordlist

import (
	"bufio"
	"io"
	"strings"
)

// Lists is a pair of case-folded lookup sets.
type Lists struct {
	common map[string]struct{}
	names  map[string]struct{}
}

// New builds Lists from raw entries. Entries are trimmed and lower-cased;
// blank entries are skipped.
func New(common, names []string) *Lists {
	return &Lists{common: toSet(common), names: toSet(names)}
}

// Empty returns Lists with no entries.
func Empty() *Lists {
	return &Lists{}
}

// IsCommon reports whether password is in the common-password list,
// ignoring case.
func (l *Lists) IsCommon(password string) bool {
	if l == nil {
		return false
	}
	_, ok := l.common[fold(password)]
	return ok
}

// IsName reports whether password equals a listed name, ignoring case.
func (l *Lists) IsName(password string) bool {
	if l == nil {
		return false
	}
	_, ok := l.names[fold(password)]
	return ok
}

// CommonCount is the number of distinct common passwords.
func (l *Lists) CommonCount() int {
	if l == nil {
		return 0
	}
	return len(l.common)
}

// NameCount is the number of distinct names.
func (l *Lists) NameCount() int {
	if l == nil {
		return 0
	}
	return len(l.names)
}

// Read parses a line-delimited UTF-8 list, one entry per line. A leading
// byte-order mark and CRLF line endings are tolerated.
func Read(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	first := true
	for sc.Scan() {
		line := sc.Text()
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out, sc.Err()
}

func toSet(entries []string) map[string]struct{} {
	set := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if k := fold(strings.TrimSpace(e)); k != "" {
			set[k] = struct{}{}
		}
	}
	return set
}

func fold(s string) string {
	return strings.ToLower(s)
}
