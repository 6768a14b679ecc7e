package cracktime

import (
	"math/big"
	"strconv"
	"strings"
)

var scales = []struct {
	limit  *big.Int
	div    *big.Int
	suffix string
}{
	{pow10(6), pow10(3), "Thousand"},
	{pow10(9), pow10(6), "Million"},
	{pow10(12), pow10(9), "Billion"},
	{pow10(15), pow10(12), "Trillion"},
}

var thousand = big.NewInt(1000)

// FormattedValue renders a large count for humans. Values below 1,000 are
// printed as-is. Up to the trillions the value is scaled and suffixed
// ("1.5 Thousand", "123.46 Billion") with at most two decimals, rounded half
// away from zero. Larger values use scientific notation with up to three
// mantissa decimals ("3.403E+38"). A nil value formats as "0".
func FormattedValue(n *big.Int) string {
	if n == nil {
		return "0"
	}
	if n.Cmp(thousand) < 0 {
		return n.String()
	}
	for _, s := range scales {
		if n.Cmp(s.limit) < 0 {
			hundredths := roundDiv(new(big.Int).Mul(n, big.NewInt(100)), s.div)
			return decimal(hundredths, 2) + " " + s.suffix
		}
	}
	return scientific(n)
}

func scientific(n *big.Int) string {
	digits := len(n.String())
	exp := digits - 1
	// four significant digits: one before the point, three after
	m := roundDiv(n, pow10(digits-4))
	if m.Cmp(big.NewInt(10_000)) >= 0 {
		m.Quo(m, big.NewInt(10))
		exp++
	}
	return decimal(m, 3) + "E+" + strconv.Itoa(exp)
}

// decimal renders v / 10^places, dropping trailing fractional zeros.
func decimal(v *big.Int, places int) string {
	q, r := new(big.Int).QuoRem(v, pow10(places), new(big.Int))
	if r.Sign() == 0 {
		return q.String()
	}
	frac := r.String()
	frac = strings.Repeat("0", places-len(frac)) + frac
	return q.String() + "." + strings.TrimRight(frac, "0")
}

// roundDiv returns v/d rounded half away from zero for non-negative v.
func roundDiv(v, d *big.Int) *big.Int {
	half := new(big.Int).Rsh(d, 1)
	return new(big.Int).Quo(new(big.Int).Add(v, half), d)
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
