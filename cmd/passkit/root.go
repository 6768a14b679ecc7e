package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-passkit/config"
)

// flagKeys maps flag names to configuration keys. A command binds only the
// flags it declares.
var flagKeys = map[string]string{
	"length":  "generate.length",
	"upper":   "generate.upper",
	"lower":   "generate.lower",
	"digits":  "generate.digits",
	"special": "generate.special",
	"include": "generate.include",
	"exclude": "generate.exclude",

	"scheme": "hashing.scheme",

	"attacker":    "estimate.attacker",
	"algorithm":   "estimate.algorithm",
	"target-bits": "estimate.target_bits",
	"locale":      "estimate.locale",
	"user-input":  "estimate.user_inputs",

	"common":           "wordlists.common",
	"names":            "wordlists.names",
	"wordlist-timeout": "wordlists.timeout",

	"log-level": "log.level",
}

// app is the state shared by all subcommands of one root command.
type app struct {
	cfgFile string
	cfg     config.Config
	log     *log.Logger
}

// newRootCmd creates the root command and all subcommands. Each call returns
// an independent tree, so tests can run commands in isolation.
func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "passkit",
		Short: "Generate, assess and hash passwords",
		Long: `passkit generates passwords from a cryptographically secure source,
estimates how long a brute-force attack on a password would take, and
hashes or verifies credentials as argon2id or pbkdf2 records.

Settings are read from passkit.yaml, PASSKIT_* environment variables and
flags, in increasing order of precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	cmd.Version = version

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/passkit/passkit.yaml or ./passkit.yaml)")
	cmd.PersistentFlags().String("log-level", "info", `log level ("debug", "info", "warn", "error")`)

	cmd.AddCommand(
		newGenerateCmd(a),
		newEstimateCmd(a),
		newHashCmd(a),
		newVerifyCmd(a),
		newConfigCmd(a),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	a.log = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "passkit"})

	cfg, err := config.Load(cmd, a.cfgFile, flagKeys)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	lvl, _ := cfg.LogLevel()
	a.log.SetLevel(lvl)
	a.log.Debug("configuration loaded", "file", a.cfgFile, "scheme", cfg.Hashing.Scheme, "attacker", cfg.Estimate.Attacker)
	return nil
}
