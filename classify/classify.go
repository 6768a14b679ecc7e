// Package classify turns a strength score and wordlist membership into a
// short descriptive phrase such as "is Medium" or "contains a name".
//
// Phrases are written to follow "The password", e.g. "The password is Safe".
package classify

import (
	"github.com/hasbyte1/go-passkit/wordlist"
)

const (
	CommonPassword            = "is one of the most common passwords"
	CommonPasswordContainName = CommonPassword + " and contains a name"
	ContainsName              = "contains a name"
	VerySimplePattern         = "is very weak since it follows a very simple pattern"
	SimplePattern             = "is weak since it follows a very simple pattern"
)

// Score bands, ascending. A score s falls in the first band whose upper
// bound it is below; the last two bands split at 0.9 inclusive.
const (
	VeryWeak    = "is Very Weak"
	Weak        = "is Weak"
	Bad         = "is Bad"
	NotGood     = "is Not Good"
	Medium      = "is Medium"
	Okay        = "is Okay"
	Safe        = "is Safe"
	VerySafe    = "is Very Safe"
	ExtremeSafe = "is Extreme Safe"
	UltraSafe   = "is Ultra Safe"
)

var bands = []struct {
	below float64
	label string
}{
	{0.1, VeryWeak},
	{0.2, Weak},
	{0.3, Bad},
	{0.4, NotGood},
	{0.5, Medium},
	{0.6, Okay},
	{0.7, Safe},
	{0.8, VerySafe},
}

// Classify describes password. Wordlist hits take precedence, then
// passwords built from very few distinct characters, then the score band.
// A nil or not yet loaded lists value is treated as empty.
func Classify(password string, score float64, lists *wordlist.Lists) string {
	isName := lists.IsName(password)
	switch {
	case lists.IsCommon(password) && isName:
		return CommonPasswordContainName
	case lists.IsCommon(password):
		return CommonPassword
	case isName:
		return ContainsName
	}

	switch n := DistinctChars(password); {
	case n <= 2:
		return VerySimplePattern
	case n <= 3:
		return SimplePattern
	}

	return Band(score)
}

// Band maps a score in [0, 1] to its label.
func Band(score float64) string {
	for _, b := range bands {
		if score < b.below {
			return b.label
		}
	}
	if score <= 0.9 {
		return ExtremeSafe
	}
	return UltraSafe
}

// DistinctChars counts the distinct runes in password.
func DistinctChars(password string) int {
	seen := make(map[rune]struct{}, len(password))
	for _, r := range password {
		seen[r] = struct{}{}
	}
	return len(seen)
}
