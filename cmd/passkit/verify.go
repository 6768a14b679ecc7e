package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// errMismatch makes the process exit with status 1 without an error message.
var errMismatch = errors.New("password does not match")

func newVerifyCmd(a *app) *cobra.Command {
	var rehash bool

	cmd := &cobra.Command{
		Use:   "verify RECORD [password]",
		Short: "Check a password against a stored record",
		Long: `Verify re-derives the key with the parameters embedded in RECORD and
compares it in constant time. It prints "ok" and exits 0 on a match, and
prints "mismatch" and exits 1 otherwise. A malformed record is a mismatch.

With --rehash, a matching record made with another scheme or other
parameters than the configured ones is re-hashed and the new record is
printed on a second line.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			stored := args[0]
			pw, err := readPassword(cmd, args, 1, "Password: ")
			if err != nil {
				return err
			}
			tk, err := a.newToolkit()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !rehash {
				if !tk.Verify(pw, stored) {
					fmt.Fprintln(out, "mismatch")
					return errMismatch
				}
				fmt.Fprintln(out, "ok")
				return nil
			}

			ok, upgraded, err := tk.VerifyAndRehash(pw, stored)
			if !ok {
				fmt.Fprintln(out, "mismatch")
				return errMismatch
			}
			fmt.Fprintln(out, "ok")
			if err != nil {
				a.log.Warn("could not re-hash record", "err", err)
				return nil
			}
			if upgraded != "" {
				fmt.Fprintln(out, upgraded)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&rehash, "rehash", false, "print an upgraded record when parameters are outdated")
	return cmd
}
