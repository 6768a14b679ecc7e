// Package charset assembles the symbol universe used for password generation
// and infers the likely symbol universe behind an arbitrary password.
//
// # Building a charset
//
//	cs := charset.Build(charset.Options{
//	    Upper:   true,
//	    Lower:   true,
//	    Digits:  true,
//	    Include: "äö",
//	    Exclude: "XYZ",
//	})
//
// Composition order is fixed: Include verbatim, then upper-case letters,
// lower-case letters, digits and the special-symbol set, each only when its
// flag is set. Exclude is then removed as a whole substring of the assembled
// charset, not character by character:
//
//	charset.Build(charset.Options{Digits: true, Exclude: "345"}) // "0126789"
//	charset.Build(charset.Options{Digits: true, Exclude: "35"})  // "0123456789"
//
// No deduplication is performed. A symbol supplied through Include that is
// also part of an enabled category appears twice and is drawn twice as often.
//
// # Inferring a charset size
//
// [SizeOf] estimates how large the charset behind an existing password was
// by checking which character classes it contains. It is an estimate used for
// entropy scoring, not a reconstruction.
package charset
