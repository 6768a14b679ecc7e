// Package cracktime converts a brute-force search space into an estimated
// time to crack, given an attacker throughput and an algorithm cost model.
//
// The estimate assumes the average case: half of the search space must be
// tried before the password is found. Attempts are counted with
// arbitrary-precision integers, so the years component is unbounded.
//
//	d := cracktime.Estimate(strength.CombinationsOf(pw), cracktime.Fast, cracktime.Argon2id64MBt3)
//	fmt.Println(d) // e.g. "3.5 Million years, 12 days, 4 hours"
package cracktime

import (
	"fmt"
	"math/big"
	"strings"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	secondsPerYear   = 365 * secondsPerDay
)

// Duration is a decomposed crack time. All components are non-negative.
// Milliseconds holds the sub-second remainder and is rendered as a fraction
// of Seconds.
type Duration struct {
	// Attempts is the average number of guesses, ceil(combinations/2).
	Attempts *big.Int

	// Rate is the effective guesses per second after applying the cost model.
	Rate uint64

	Years        *big.Int
	Days         int64
	Hours        int64
	Minutes      int64
	Seconds      int64
	Milliseconds int64
}

// EffectiveRate returns max(1, floor(attacker / cost)). A zero cost is
// treated as 1.
func EffectiveRate(a Attacker, alg Algorithm) uint64 {
	cost := alg.Cost
	if cost == 0 {
		cost = 1
	}
	return max(a.GuessesPerSecond/cost, 1)
}

// Estimate decomposes the average time needed to search combinations.
// A nil or non-positive combinations yields a zero Duration that renders as
// "0 seconds".
func Estimate(combinations *big.Int, a Attacker, alg Algorithm) Duration {
	d := Duration{
		Attempts: new(big.Int),
		Rate:     EffectiveRate(a, alg),
		Years:    new(big.Int),
	}
	if combinations == nil || combinations.Sign() <= 0 {
		return d
	}

	d.Attempts.Add(combinations, big.NewInt(1))
	d.Attempts.Rsh(d.Attempts, 1)

	rate := new(big.Int).SetUint64(d.Rate)
	total, rem := new(big.Int).QuoRem(d.Attempts, rate, new(big.Int))
	if rem.Sign() > 0 {
		rem.Mul(rem, thousand)
		d.Milliseconds = rem.Quo(rem, rate).Int64()
	}

	left := new(big.Int)
	d.Years.QuoRem(total, big.NewInt(secondsPerYear), left)
	s := left.Int64()
	d.Days, s = s/secondsPerDay, s%secondsPerDay
	d.Hours, s = s/secondsPerHour, s%secondsPerHour
	d.Minutes, d.Seconds = s/secondsPerMinute, s%secondsPerMinute
	return d
}

// Required is Estimate rendered as a phrase.
func Required(combinations *big.Int, a Attacker, alg Algorithm) string {
	return Estimate(combinations, a, alg).String()
}

// IsZero reports whether there was nothing to search.
func (d Duration) IsZero() bool {
	return d.Attempts == nil || d.Attempts.Sign() == 0
}

// String renders the duration as a comma-joined list of its non-zero
// components, e.g. "2 hours, 5 seconds" or "1 minute, 1.25 seconds".
func (d Duration) String() string {
	if d.IsZero() {
		return "0 seconds"
	}

	var parts []string
	if d.Years != nil && d.Years.Sign() > 0 {
		parts = append(parts, plural(FormattedValue(d.Years), "year", d.Years.IsInt64() && d.Years.Int64() == 1))
	}
	for _, c := range []struct {
		v    int64
		unit string
	}{{d.Days, "day"}, {d.Hours, "hour"}, {d.Minutes, "minute"}} {
		if c.v > 0 {
			parts = append(parts, plural(fmt.Sprint(c.v), c.unit, c.v == 1))
		}
	}

	secs := d.secondsText()
	if len(parts) == 0 {
		if d.Seconds == 0 && d.Milliseconds == 0 {
			return "less than 1 millisecond"
		}
		return plural(secs, "second", secs == "1")
	}
	if d.Seconds > 0 || d.Milliseconds > 0 {
		parts = append(parts, plural(secs, "second", secs == "1"))
	}
	return strings.Join(parts, ", ")
}

func (d Duration) secondsText() string {
	if d.Milliseconds <= 0 {
		return fmt.Sprint(d.Seconds)
	}
	return strings.TrimRight(fmt.Sprintf("%d.%03d", d.Seconds, d.Milliseconds), "0")
}

func plural(value, unit string, one bool) string {
	if one {
		return value + " " + unit
	}
	return value + " " + unit + "s"
}
