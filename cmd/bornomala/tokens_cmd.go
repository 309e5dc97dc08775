package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bornomala-lang/bornomala"
	"github.com/bornomala-lang/bornomala/token"
)

type tokenJSON struct {
	Type    string `json:"type"`
	Literal string `json:"literal"`
	Value   *int64 `json:"value,omitempty"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

func newTokensCmd(cfg *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the tokens of a program",
		Example: `  bornomala tokens -c 'লেখ দুই যোগ তিন;'
  bornomala tokens -o json program.bn`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, filename, err := getCode(cmd, args)
			if err != nil {
				return err
			}
			tokens := bornomala.Tokenize(code, bornomala.WithFilename(filename))
			format, _ := cmd.Flags().GetString("output")
			return printTokens(cmd.OutOrStdout(), cfg, tokens, format)
		},
	}
	cmd.Flags().StringP("code", "c", "", "code to tokenize")
	cmd.Flags().Bool("stdin", false, "read code from stdin")
	cmd.Flags().StringP("output", "o", "text", "output format (text, json)")
	_ = cmd.RegisterFlagCompletionFunc("output", cobra.FixedCompletions(outputFormatsCompletion, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

func printTokens(w io.Writer, cfg *viper.Viper, tokens []token.Token, format string) error {
	switch strings.ToLower(format) {
	case "", "text":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, tok := range tokens {
			pos := tok.StartPosition
			fmt.Fprintf(tw, "%d:%d\t%s\t%q", pos.LineNumber(), pos.ColumnNumber(), tok.Type, tok.Literal)
			if tok.Type == token.NUM {
				fmt.Fprintf(tw, "\t%d", tok.Value)
			}
			fmt.Fprintln(tw)
		}
		return tw.Flush()
	case "json":
		out := make([]tokenJSON, 0, len(tokens))
		for _, tok := range tokens {
			tj := tokenJSON{
				Type:    string(tok.Type),
				Literal: tok.Literal,
				Line:    tok.StartPosition.LineNumber(),
				Column:  tok.StartPosition.ColumnNumber(),
			}
			if tok.Type == token.NUM {
				v := tok.Value
				tj.Value = &v
			}
			out = append(out, tj)
		}
		data, err := getOutputJSON(cfg, out)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
