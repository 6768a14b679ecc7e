package strength

import (
	zxcvbn "github.com/ccojocar/zxcvbn-go"
)

// maxPatternLen bounds the input handed to zxcvbn, whose matching is
// superlinear in the password length.
const maxPatternLen = 256

// PatternResult is a pattern-aware view of a password, complementing the
// purely combinatorial [Score]. Dictionary words, keyboard walks, dates and
// repeats lower Entropy far below what the charset size suggests.
type PatternResult struct {
	// Entropy is the minimum-entropy match sequence, in bits.
	Entropy float64 `json:"entropy" yaml:"entropy"`

	// Score is the zxcvbn score from 0 (too guessable) to 4 (very unguessable).
	Score int `json:"score" yaml:"score"`

	// CrackTime is zxcvbn's own crack-time estimate in seconds.
	CrackTime float64 `json:"crack_time_seconds" yaml:"crack_time_seconds"`

	// CrackTimeDisplay renders CrackTime, e.g. "instant" or "3 centuries".
	CrackTimeDisplay string `json:"crack_time_display" yaml:"crack_time_display"`
}

// Pattern analyses password with zxcvbn. userInputs are additional words
// (user name, e-mail, site name) treated as known dictionary entries.
// Only the first maxPatternLen bytes are analysed.
func Pattern(password string, userInputs ...string) PatternResult {
	if password == "" {
		return PatternResult{CrackTimeDisplay: "instant"}
	}
	if len(password) > maxPatternLen {
		password = password[:maxPatternLen]
	}
	m := zxcvbn.PasswordStrength(password, userInputs)
	return PatternResult{
		Entropy:          m.Entropy,
		Score:            m.Score,
		CrackTime:        m.CrackTime,
		CrackTimeDisplay: m.CrackTimeDisplay,
	}
}
