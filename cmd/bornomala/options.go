package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bornomala-lang/bornomala"
	"github.com/bornomala-lang/bornomala/syntax"
)

const stdinFilename = "<stdin>"

var syntaxPresets = map[string]syntax.SyntaxConfig{
	"full":       syntax.FullLanguage,
	"no-loops":   syntax.NoLoops,
	"calculator": syntax.Calculator,
}

func getEvalOptions(cmd *cobra.Command, cfg *viper.Viper, logger zerolog.Logger) ([]bornomala.Option, error) {
	opts := []bornomala.Option{
		bornomala.WithOutput(cmd.OutOrStdout()),
		bornomala.WithLogger(logger),
		bornomala.WithMaxSteps(cfg.GetInt("max-steps")),
	}
	if vars, err := cmd.Flags().GetStringToInt64("var"); err == nil && len(vars) > 0 {
		opts = append(opts, bornomala.WithVariables(vars))
	}
	if name := cfg.GetString("syntax"); name != "" {
		preset, ok := syntaxPresets[name]
		if !ok {
			return nil, fmt.Errorf("unknown syntax preset %q", name)
		}
		opts = append(opts, bornomala.WithSyntax(preset))
	}
	return opts, nil
}

func shouldRunRepl(cmd *cobra.Command, cfg *viper.Viper, args []string) bool {
	if cfg.GetBool("no-repl") || cfg.GetBool("stdin") {
		return false
	}
	if f := cmd.Flags().Lookup("code"); f != nil && f.Changed {
		return false
	}
	if len(args) > 0 {
		return false
	}
	return isTerminalIO()
}

// getCode returns the program to run and the filename to report it under.
// There are three sources: --code, --stdin and a path in args[0]. With none
// of them the program is read from stdin.
func getCode(cmd *cobra.Command, args []string) (string, string, error) {
	var codeFlagSet bool
	if f := cmd.Flags().Lookup("code"); f != nil && f.Changed {
		codeFlagSet = true
	}
	var stdinFlagSet bool
	if f := cmd.Flags().Lookup("stdin"); f != nil && f.Changed {
		stdinFlagSet = true
	}
	pathSupplied := len(args) > 0
	if pathSupplied && (codeFlagSet || stdinFlagSet) {
		return "", "", errors.New("multiple input sources specified")
	} else if codeFlagSet && stdinFlagSet {
		return "", "", errors.New("multiple input sources specified")
	}
	switch {
	case codeFlagSet:
		code, err := cmd.Flags().GetString("code")
		return code, "", err
	case pathSupplied:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", err
		}
		return string(data), args[0], nil
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", err
		}
		return string(data), stdinFilename, nil
	}
}
