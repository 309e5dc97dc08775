package main

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bornomala-lang/bornomala"
	"github.com/bornomala-lang/bornomala/ast"
)

// ASTNode represents a node in the JSON AST output
type ASTNode struct {
	Type     string     `json:"type"`
	Value    any        `json:"value,omitempty"`
	Line     int        `json:"line,omitempty"`
	Column   int        `json:"column,omitempty"`
	Children []*ASTNode `json:"children,omitempty"`
}

func newAstCmd(cfg *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ast [file]",
		Short: "Print the syntax tree of a program",
		Example: `  bornomala ast -c 'যদি (x > 1) লেখ x;'
  bornomala ast -o json program.bn`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, filename, err := getCode(cmd, args)
			if err != nil {
				return err
			}
			var opts []bornomala.Option
			if filename != "" {
				opts = append(opts, bornomala.WithFilename(filename))
			}
			program, err := bornomala.Parse(cmd.Context(), code, opts...)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), formatError(err, useColor(cfg)))
				return errReported
			}
			format, _ := cmd.Flags().GetString("output")
			switch strings.ToLower(format) {
			case "", "text":
				printAST(cmd.OutOrStdout(), program.AST())
				return nil
			case "json":
				data, err := getOutputJSON(cfg, nodeToJSON(program.AST()))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			default:
				return fmt.Errorf("unknown output format: %s", format)
			}
		},
	}
	cmd.Flags().StringP("code", "c", "", "code to parse")
	cmd.Flags().Bool("stdin", false, "read code from stdin")
	cmd.Flags().StringP("output", "o", "text", "output format (text, json)")
	_ = cmd.RegisterFlagCompletionFunc("output", cobra.FixedCompletions(outputFormatsCompletion, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

var (
	nodeColor  = color.New(color.FgCyan).SprintFunc()
	valueColor = color.New(color.FgYellow).SprintFunc()
)

// treePrinter prints one line per node, indented by depth.
type treePrinter struct {
	w     io.Writer
	depth int
}

func (p *treePrinter) Visit(node ast.Node) ast.Visitor {
	line := nodeColor(nodeTypeName(node))
	if v := nodeValue(node); v != nil {
		line += " " + valueColor(fmt.Sprint(v))
	}
	fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", p.depth), line)
	return &treePrinter{w: p.w, depth: p.depth + 1}
}

func printAST(w io.Writer, program *ast.Program) {
	ast.Walk(&treePrinter{w: w}, program)
}

func nodeToJSON(node ast.Node) *ASTNode {
	if node == nil {
		return nil
	}
	result := &ASTNode{Type: nodeTypeName(node), Value: nodeValue(node)}
	if _, ok := node.(*ast.Program); !ok {
		pos := node.Pos()
		result.Line = pos.LineNumber()
		result.Column = pos.ColumnNumber()
	}
	for _, child := range ast.Children(node) {
		result.Children = append(result.Children, nodeToJSON(child))
	}
	return result
}

func nodeTypeName(node ast.Node) string {
	t := reflect.TypeOf(node)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// nodeValue returns the payload shown next to a node's type, or nil.
func nodeValue(node ast.Node) any {
	switch n := node.(type) {
	case *ast.Int:
		return n.Value
	case *ast.String:
		return n.Value
	case *ast.Ident:
		return n.Name
	case *ast.Infix:
		return n.Literal
	case *ast.Compare:
		return string(n.Op)
	case *ast.Assign:
		return n.Name.Name
	}
	return nil
}
