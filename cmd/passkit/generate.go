package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-passkit/config"
	"github.com/hasbyte1/go-passkit/toolkit"
)

func newGenerateCmd(a *app) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random passwords",
		Long: `Generate draws each character independently and uniformly from the
selected charset. The charset is --include followed by the enabled
categories; --exclude then removes every occurrence of its whole value,
not each of its characters.`,
		Example: `  passkit generate -n 24
  passkit generate -n 6 --upper=false --lower=false --special=false -c 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", count)
			}
			req := a.cfg.GenerateRequest()
			if req.Charset() == "" {
				return errors.New("charset is empty: enable a category or use --include")
			}

			tk, err := toolkit.New(toolkit.DefaultConfig())
			if err != nil {
				return err
			}
			a.log.Debug("generating", "length", req.Length, "charset_size", len([]rune(req.Charset())), "count", count)
			for i := 0; i < count; i++ {
				fmt.Fprintln(cmd.OutOrStdout(), tk.Generate(req))
			}
			return nil
		},
	}

	d := config.Default().Generate
	f := cmd.Flags()
	f.IntP("length", "n", d.Length, "password length")
	f.Bool("upper", d.Upper, "include uppercase letters")
	f.Bool("lower", d.Lower, "include lowercase letters")
	f.Bool("digits", d.Digits, "include digits")
	f.Bool("special", d.Special, "include special symbols")
	f.String("include", d.Include, "extra characters placed first in the charset")
	f.String("exclude", d.Exclude, "substring removed from the assembled charset")
	f.IntVarP(&count, "count", "c", 1, "number of passwords to generate")
	return cmd
}
