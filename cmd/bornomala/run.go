package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bornomala-lang/bornomala"
)

const historyFile = ".bornomala_history"

// errReported means the failure was already shown to the user and only the
// exit status remains to be set.
var errReported = errors.New("error reported")

func runHandler(cmd *cobra.Command, cfg *viper.Viper, args []string) error {
	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	opts, err := getEvalOptions(cmd, cfg, logger)
	if err != nil {
		return err
	}
	if shouldRunRepl(cmd, cfg, args) {
		return runRepl(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), historyPath(), logger, opts)
	}

	code, filename, err := getCode(cmd, args)
	if err != nil {
		return err
	}

	if timeout := cfg.GetDuration("timeout"); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if filename != "" {
		opts = append(opts, bornomala.WithFilename(filename))
	}

	start := time.Now()
	_, err = bornomala.Eval(ctx, code, opts...)
	if cfg.GetBool("timing") {
		fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", time.Since(start))
	}
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), formatError(err, useColor(cfg)))
		return errReported
	}
	return nil
}

func historyPath() string {
	home, err := homedir.Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}
