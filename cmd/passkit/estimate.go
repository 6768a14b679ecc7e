package main

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-passkit/config"
	"github.com/hasbyte1/go-passkit/toolkit"
)

func newEstimateCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "estimate [password]",
		Short: "Estimate the strength and crack time of a password",
		Long: `Estimate computes the brute-force search space of a password from the
character classes it uses, a strength score relative to a target
bit-strength, and the average time an attacker needs to find it. The
password is also checked against the common-password and name lists.

Without an argument the password is read from the terminal without echo.`,
		Example: `  passkit estimate --attacker fast --algorithm argon2id_64mb_t3
  echo 'hunter2' | passkit estimate -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch output {
			case "text", "json", "yaml":
			default:
				return fmt.Errorf("unknown --output %q: want text, json or yaml", output)
			}

			lists := loadWordlists(cmd.Context(), a.cfg.Wordlists, a.log)

			pw, err := readPassword(cmd, args, 0, "Password: ")
			if err != nil {
				return err
			}

			tc, err := a.cfg.Toolkit()
			if err != nil {
				return err
			}
			tk, err := toolkit.New(tc, toolkit.WithWordlists(lists))
			if err != nil {
				return err
			}

			awaitWordlists(cmd.Context(), lists, a.cfg.Wordlists.Timeout, a.log)
			e := tk.Estimate(pw)

			w := cmd.OutOrStdout()
			switch output {
			case "json":
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(e)
			case "yaml":
				b, err := yaml.Marshal(e)
				if err != nil {
					return err
				}
				_, err = w.Write(b)
				return err
			}
			tag, _ := a.cfg.Language()
			return writeReport(w, tag, e, tc)
		},
	}

	d := config.Default()
	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", "text", `output format ("text", "json", "yaml")`)
	f.String("attacker", d.Estimate.Attacker, "attacker profile (VerySlow, Slow, Medium, Fast, VeryFast, UltraFast, Insane)")
	f.String("algorithm", d.Estimate.Algorithm, "hashing cost model (RawHash, PBKDF2Medium, PBKDF2High, Bcrypt12, Argon2id64MBt3, Argon2id512MBt4)")
	f.Float64("target-bits", d.Estimate.TargetBits, "bit-strength that scores 1.0")
	f.String("locale", d.Estimate.Locale, "locale for number formatting in text output")
	f.StringSlice("user-input", nil, "words the password should not be built from (repeatable)")
	f.String("common", d.Wordlists.Common, "common-password list, one entry per line")
	f.String("names", d.Wordlists.Names, "name list, one entry per line")
	f.Duration("wordlist-timeout", d.Wordlists.Timeout, "how long to wait for the wordlists")
	return cmd
}
