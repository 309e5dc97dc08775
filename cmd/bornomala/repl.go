package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bornomala-lang/bornomala"
	"github.com/bornomala-lang/bornomala/samples"
)

const (
	replIntro   = "আপনার বাংলা কোড লিখুন:"
	replExample = "উদাহরণ: লেখ দুই যোগ তিন;"
	replPrompt  = "ইনপুট: "
	replResult  = "ফলাফল:"
	replGoodbye = "প্রোগ্রাম শেষ।"
)

// runRepl reads one program per line from in and runs each in a fresh
// environment. It returns when in is exhausted, ctx is cancelled or the
// user types :quit. :history lists earlier input. History file problems are
// logged and otherwise ignored.
func runRepl(ctx context.Context, in io.Reader, out io.Writer, historyPath string, logger zerolog.Logger, opts []bornomala.Option) error {
	fmt.Fprintf(out, "\n%s\n%s\n", replIntro, replExample)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, replPrompt)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case ":quit", ":exit":
			fmt.Fprintf(out, "\n%s\n", replGoodbye)
			return nil
		case ":history":
			for i, h := range loadHistory(historyPath) {
				fmt.Fprintf(out, "%4d  %s\n", i+1, h)
			}
			continue
		}
		if err := appendToHistory(historyPath, line); err != nil {
			logger.Debug().Err(err).Str("path", historyPath).Msg("failed to save history")
		}

		fmt.Fprintf(out, "\n%s\n", replResult)
		if _, err := bornomala.Eval(ctx, line, opts...); err != nil {
			fmt.Fprintf(out, "%s%s\n", samples.ErrorLabel, err)
		}
		if ctx.Err() != nil {
			break
		}
	}
	fmt.Fprintf(out, "\n%s\n", replGoodbye)
	if err := scanner.Err(); err != nil {
		return err
	}
	return nil
}

func loadHistory(path string) []string {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	lines := strings.Split(string(data), "\n")
	history := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != "" {
			history = append(history, line)
		}
	}
	return history
}

func appendToHistory(path, line string) error {
	if path == "" || line == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(line + "\n"); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
