package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bornomala-lang/bornomala"
)

var docsCategories = []string{"keywords", "numerals", "syntax", "errors"}

func newDocsCmd(cfg *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs [category|topic]",
		Short: "Print the language reference as JSON",
		Example: `  bornomala docs
  bornomala docs keywords
  bornomala docs যতক্ষণ
  bornomala docs --all`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: docsCategories,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			var opts []bornomala.DocsOption
			switch {
			case all:
				opts = append(opts, bornomala.DocsAll())
			case len(args) == 1 && isDocsCategory(args[0]):
				opts = append(opts, bornomala.DocsCategory(args[0]))
			case len(args) == 1:
				opts = append(opts, bornomala.DocsTopic(args[0]))
			}
			data, err := getOutputJSON(cfg, bornomala.Docs(opts...).Data())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	cmd.Flags().Bool("all", false, "print the complete reference")
	return cmd
}

func isDocsCategory(s string) bool {
	for _, c := range docsCategories {
		if c == s {
			return true
		}
	}
	return false
}
