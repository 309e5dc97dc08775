package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const envPrefix = "BORNOMALA"

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, errReported) {
			os.Exit(1)
		}
		fatal(err)
	}
}

// newRootCmd builds the command tree. Each call returns independent
// commands with their own configuration, which keeps tests isolated.
func newRootCmd() *cobra.Command {
	cfg := viper.New()

	root := &cobra.Command{
		Use:   "bornomala [file]",
		Short: "Run programs written with Bengali keywords",
		Long: `bornomala runs programs written with Bengali keywords and numerals.

With a file argument, --code or --stdin, the program is run once. With no
input and an interactive terminal, each line typed is run as its own program.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(cfg); err != nil {
				return err
			}
			processGlobalFlags(cfg)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHandler(cmd, cfg, args)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default is $HOME/.bornomala.yaml)")
	pf.Bool("no-color", false, "disable colored output")
	pf.String("log-level", "warn", "log level (trace, debug, info, warn, error)")

	f := root.Flags()
	f.StringP("code", "c", "", "code to run")
	f.Bool("stdin", false, "read code from stdin")
	f.Bool("no-repl", false, "never start the interactive prompt")
	f.Bool("timing", false, "show execution time")
	f.StringToInt64("var", nil, "set a variable before running (name=value)")
	f.String("syntax", "full", "restrict the language (full, no-loops, calculator)")
	f.Int("max-steps", 0, "stop after this many statements (0 = no limit)")
	f.Duration("timeout", 0, "stop after this long (0 = no limit)")

	_ = cfg.BindPFlags(pf)
	_ = cfg.BindPFlags(f)

	root.AddCommand(
		newTokensCmd(cfg),
		newAstCmd(cfg),
		newSamplesCmd(cfg),
		newDocsCmd(cfg),
		newLintCmd(cfg),
		newVersionCmd(cfg),
	)
	return root
}

// initConfig reads the config file and environment variables.
func initConfig(cfg *viper.Viper) error {
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()

	if file := cfg.GetString("config"); file != "" {
		cfg.SetConfigFile(file)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return err
		}
		cfg.AddConfigPath(home)
		cfg.SetConfigType("yaml")
		cfg.SetConfigName(".bornomala")
	}

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}
