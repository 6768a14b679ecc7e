package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-passkit/config"
	"github.com/hasbyte1/go-passkit/toolkit"
)

// newToolkit builds a Toolkit whose hashing manager follows the hashing
// section and whose credential events are logged at debug level.
func (a *app) newToolkit() (*toolkit.Toolkit, error) {
	m, err := a.cfg.Manager()
	if err != nil {
		return nil, err
	}
	tc, err := a.cfg.Toolkit()
	if err != nil {
		return nil, err
	}
	return toolkit.New(tc,
		toolkit.WithManager(m),
		toolkit.WithEventListener(func(e toolkit.Event) {
			a.log.Debug("credential event", "type", e.Type, "scheme", e.Scheme, "err", e.Err)
		}),
	)
}

func newHashCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash [password]",
		Short: "Hash a password into a self-describing record",
		Long: `Hash derives a key from the password with a fresh random salt and prints
the stored record:

  argon2id$<memoryKiB>$<iterations>$<parallelism>$<saltBase64>$<hashBase64>
  pbkdf2$<iterations>$<saltBase64>$<hashBase64>

Without an argument the password is read from the terminal without echo.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := readPassword(cmd, args, 0, "Password: ")
			if err != nil {
				return err
			}
			tk, err := a.newToolkit()
			if err != nil {
				return err
			}
			stored, err := tk.Hash(pw)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), stored)
			return nil
		},
	}
	cmd.Flags().String("scheme", config.Default().Hashing.Scheme, `scheme for the new record ("argon2id", "pbkdf2")`)
	return cmd
}
