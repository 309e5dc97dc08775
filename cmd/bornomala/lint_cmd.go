package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bornomala-lang/bornomala"
	"github.com/bornomala-lang/bornomala/syntax"
)

type lintReport struct {
	File   string         `json:"file"`
	Issues []syntax.Issue `json:"issues"`
	Errors int            `json:"errors"`
	Warns  int            `json:"warnings"`
}

func newLintCmd(cfg *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint [file]",
		Short: "Report likely mistakes in a program",
		Example: `  bornomala lint program.bn
  bornomala lint -o json -c 'যদি (x) লেখ x;'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, filename, err := getCode(cmd, args)
			if err != nil {
				return err
			}
			if filename == "" {
				filename = stdinFilename
			}
			format, _ := cmd.Flags().GetString("output")

			report := lintReport{File: filename, Issues: []syntax.Issue{}}
			program, err := bornomala.Parse(cmd.Context(), code, bornomala.WithFilename(filename))
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), formatError(err, useColor(cfg)))
				return errReported
			}
			report.Issues = append(report.Issues, syntax.Lint(program.AST(), code)...)
			for _, issue := range report.Issues {
				if issue.Level == syntax.LevelError {
					report.Errors++
				} else {
					report.Warns++
				}
			}

			switch strings.ToLower(format) {
			case "", "text":
				printLintResults(cmd.OutOrStdout(), report)
			case "json":
				data, err := getOutputJSON(cfg, report)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			default:
				return fmt.Errorf("unknown output format: %s", format)
			}
			if report.Errors > 0 {
				return errReported
			}
			return nil
		},
	}
	cmd.Flags().StringP("code", "c", "", "code to lint")
	cmd.Flags().Bool("stdin", false, "read code from stdin")
	cmd.Flags().StringP("output", "o", "text", "output format (text, json)")
	_ = cmd.RegisterFlagCompletionFunc("output", cobra.FixedCompletions(outputFormatsCompletion, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

var (
	warnColor = color.New(color.FgYellow).SprintFunc()
	errColor  = color.New(color.FgRed).SprintFunc()
	fileColor = color.New(color.FgCyan).SprintFunc()
	ruleColor = color.New(color.FgMagenta).SprintFunc()
	okColor   = color.New(color.FgGreen).SprintFunc()
)

func printLintResults(w io.Writer, report lintReport) {
	if len(report.Issues) == 0 {
		fmt.Fprintf(w, "%s: %s\n", fileColor(report.File), okColor("OK"))
		return
	}
	for _, issue := range report.Issues {
		level := warnColor(issue.Level)
		if issue.Level == syntax.LevelError {
			level = errColor(issue.Level)
		}
		fmt.Fprintf(w, "%s %s %s %s\n",
			fileColor(fmt.Sprintf("%s:%d:%d:", report.File, issue.Line, issue.Column)),
			level,
			ruleColor("["+issue.Rule+"]"),
			issue.Message)
	}
	fmt.Fprintln(w)
	if report.Errors > 0 {
		fmt.Fprintln(w, errColor(fmt.Sprintf("%d error(s), %d warning(s)", report.Errors, report.Warns)))
	} else {
		fmt.Fprintln(w, warnColor(fmt.Sprintf("%d warning(s)", report.Warns)))
	}
}
