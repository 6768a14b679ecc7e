package toolkit

import (
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/hasbyte1/go-passkit/charset"
	"github.com/hasbyte1/go-passkit/classify"
	"github.com/hasbyte1/go-passkit/cracktime"
	"github.com/hasbyte1/go-passkit/strength"
)

// Estimate is the strength report for one password.
type Estimate struct {
	Length      int `json:"length" yaml:"length"`
	CharsetSize int `json:"charset_size" yaml:"charset_size"`

	// Combinations is the exact search space, CharsetSize^Length.
	Combinations *big.Int `json:"-" yaml:"-"`
	// Exact is Combinations in decimal.
	Exact string `json:"combinations" yaml:"combinations"`
	// Formatted is Combinations scaled for humans, e.g. "1.5 Thousand".
	Formatted string `json:"combinations_formatted" yaml:"combinations_formatted"`

	Bits  float64 `json:"bits" yaml:"bits"`
	Score float64 `json:"score" yaml:"score"`

	Attacker  string             `json:"attacker" yaml:"attacker"`
	Algorithm string             `json:"algorithm" yaml:"algorithm"`
	Duration  cracktime.Duration `json:"-" yaml:"-"`
	CrackTime string             `json:"crack_time" yaml:"crack_time"`

	Classification string `json:"classification" yaml:"classification"`

	Pattern strength.PatternResult `json:"pattern" yaml:"pattern"`
}

// Estimate scores password, estimates its crack time under the configured
// attacker and cost model, and classifies it against the wordlists.
func (t *Toolkit) Estimate(password string) Estimate {
	cfg := t.config

	length := utf8.RuneCountInString(password)
	size := charset.SizeOf(password)
	comb := strength.Combinations(length, size)
	score := strength.Score(comb, cfg.TargetBits)
	d := cracktime.Estimate(comb, cfg.Attacker, cfg.Algorithm)

	return Estimate{
		Length:         length,
		CharsetSize:    size,
		Combinations:   comb,
		Exact:          comb.String(),
		Formatted:      cracktime.FormattedValue(comb),
		Bits:           strength.Bits(comb),
		Score:          score,
		Attacker:       cfg.Attacker.Name,
		Algorithm:      cfg.Algorithm.Name,
		Duration:       d,
		CrackTime:      d.String(),
		Classification: classify.Classify(password, score, t.lists.Lists()),
		Pattern:        strength.Pattern(password, cfg.UserInputs...),
	}
}

// Summary renders the estimate as a sentence, e.g.
// "The password is Medium. Possible Combinations 1.5 Thousand, it would take
// 2 seconds to crack the password".
func (e Estimate) Summary() string {
	return fmt.Sprintf("The password %s. Possible Combinations %s, it would take %s to crack the password",
		e.Classification, e.Formatted, e.CrackTime)
}
