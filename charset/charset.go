package charset

import "strings"

const (
	// Upper is the upper-case ASCII alphabet.
	Upper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// Lower is the lower-case ASCII alphabet.
	Lower = "abcdefghijklmnopqrstuvwxyz"

	// Digits are the decimal digits.
	Digits = "0123456789"

	// Special is the printable ASCII punctuation set (32 symbols).
	Special = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Options selects the categories and extra symbols that make up a charset.
type Options struct {
	Upper   bool
	Lower   bool
	Digits  bool
	Special bool

	// Include is prepended verbatim before any category.
	Include string

	// Exclude is removed from the assembled charset as a contiguous substring.
	// Every non-overlapping occurrence is removed.
	Exclude string
}

// Empty reports whether opts can only ever produce an empty charset.
func (opts Options) Empty() bool {
	return opts.Include == "" && !opts.Upper && !opts.Lower && !opts.Digits && !opts.Special
}

// Build assembles the charset described by opts.
//
// It returns "" when no category is enabled and Include is empty. The result
// may contain repeated symbols; see the package documentation.
func Build(opts Options) string {
	if opts.Empty() {
		return ""
	}

	var b strings.Builder
	b.Grow(len(opts.Include) + len(Upper) + len(Lower) + len(Digits) + len(Special))
	b.WriteString(opts.Include)
	if opts.Upper {
		b.WriteString(Upper)
	}
	if opts.Lower {
		b.WriteString(Lower)
	}
	if opts.Digits {
		b.WriteString(Digits)
	}
	if opts.Special {
		b.WriteString(Special)
	}

	cs := b.String()
	if opts.Exclude != "" {
		cs = strings.ReplaceAll(cs, opts.Exclude, "")
	}
	return cs
}

// SizeOf infers the size of the charset that likely produced password.
//
// It adds 26 when a lower-case letter is present, 26 for an upper-case letter,
// 10 for a digit and len(Special) when at least one special symbol is present.
// Symbols outside these classes contribute nothing.
func SizeOf(password string) int {
	size := 0
	if strings.ContainsAny(password, Lower) {
		size += len(Lower)
	}
	if strings.ContainsAny(password, Upper) {
		size += len(Upper)
	}
	if strings.ContainsAny(password, Digits) {
		size += len(Digits)
	}
	if strings.ContainsAny(password, Special) {
		size += len(Special)
	}
	return size
}
