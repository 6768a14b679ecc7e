package main

import (
	"fmt"
	"io"
	"math/big"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hasbyte1/go-passkit/cracktime"
	"github.com/hasbyte1/go-passkit/toolkit"
)

// writeReport prints e as an aligned table followed by the summary
// sentence. Numbers are formatted for tag.
func writeReport(w io.Writer, tag language.Tag, e toolkit.Estimate, tc toolkit.Config) error {
	p := message.NewPrinter(tag)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	p.Fprintf(tw, "Length\t%d\n", e.Length)
	p.Fprintf(tw, "Charset size\t%d\n", e.CharsetSize)
	fmt.Fprintf(tw, "Combinations\t%s (%s)\n", groupDigits(p, e.Combinations), e.Formatted)
	p.Fprintf(tw, "Entropy\t%.2f bits\n", e.Bits)
	p.Fprintf(tw, "Score\t%.3f of %.0f bits\n", e.Score, tc.TargetBits)
	p.Fprintf(tw, "Pattern entropy\t%.2f bits (score %d/4, %s)\n", e.Pattern.Entropy, e.Pattern.Score, e.Pattern.CrackTimeDisplay)
	p.Fprintf(tw, "Attacker\t%s, %d guesses/s against %s (cost ×%d): %d guesses/s\n",
		tc.Attacker.Name, tc.Attacker.GuessesPerSecond, tc.Algorithm.Name, tc.Algorithm.Cost,
		cracktime.EffectiveRate(tc.Attacker, tc.Algorithm))
	fmt.Fprintf(tw, "Crack time\t%s\n", e.CrackTime)
	fmt.Fprintf(tw, "Classification\t%s\n", strings.TrimPrefix(e.Classification, "is "))
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%s\n", e.Summary())
	return err
}

// groupDigits renders n with the thousands separator of p's locale. The
// separator is taken from how p prints 1000, so it follows the locale
// without a table of its own.
func groupDigits(p *message.Printer, n *big.Int) string {
	if n == nil {
		return "0"
	}
	sep := strings.Trim(p.Sprintf("%d", 1000), "0123456789")
	digits := n.String()
	if sep == "" || len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
