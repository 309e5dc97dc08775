package main

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/bornomala-lang/bornomala/errors"
	"github.com/bornomala-lang/bornomala/syntax"
)

var red = color.New(color.FgRed).SprintFunc()

func fatal(msg interface{}) {
	var s string
	switch msg := msg.(type) {
	case string:
		s = msg
	case error:
		s = msg.Error()
	default:
		s = fmt.Sprintf("%v", msg)
	}
	fmt.Fprintf(os.Stderr, "%s\n", red(s))
	os.Exit(1)
}

func isTerminalIO() bool {
	stdin := os.Stdin.Fd()
	stdout := os.Stdout.Fd()
	inTerm := isatty.IsTerminal(stdin) || isatty.IsCygwinTerminal(stdin)
	outTerm := isatty.IsTerminal(stdout) || isatty.IsCygwinTerminal(stdout)
	return inTerm && outTerm
}

var outputFormatsCompletion = []string{"json", "text"}

func getOutputJSON(cfg *viper.Viper, v any) ([]byte, error) {
	if cfg.GetBool("no-color") {
		return json.MarshalIndent(v, "", "  ")
	}
	return prettyjson.Marshal(v)
}

// Reads global flags from Viper and adjusts the environment accordingly.
func processGlobalFlags(cfg *viper.Viper) {
	if cfg.GetBool("no-color") {
		color.NoColor = true
	}
}

func useColor(cfg *viper.Viper) bool {
	return !cfg.GetBool("no-color") && !color.NoColor
}

// newLogger returns a console logger on w at the configured level. An
// unknown level is reported rather than silently ignored.
func newLogger(cfg *viper.Viper, w io.Writer) (zerolog.Logger, error) {
	name := strings.ToLower(cfg.GetString("log-level"))
	if name == "" {
		name = "warn"
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q", name)
	}
	out := zerolog.ConsoleWriter{Out: w, NoColor: !useColor(cfg)}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

// formatError renders err for the terminal, with source context when the
// error carries a location.
func formatError(err error, colored bool) string {
	var verrs *syntax.ValidationErrors
	if stderrors.As(err, &verrs) {
		return strings.TrimRight(errors.NewFormatter(colored).FormatMultiple(verrs.Formatted()), "\n")
	}
	var fe errors.FormattableError
	if stderrors.As(err, &fe) {
		return strings.TrimRight(errors.NewFormatter(colored).Format(fe.ToFormatted()), "\n")
	}
	return err.Error()
}
