package samples

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Report labels.
const (
	caseLabel   = "পরীক্ষা"
	inputLabel  = "ইনপুট: "
	outputLabel = "আউটপুট:"
	separator   = "-------------------"
)

// OutputConfig configures output formatting.
type OutputConfig struct {
	// Writer is where output is written.
	Writer io.Writer

	// Verbose prints the full transcript of every case, not only of the
	// cases that did not pass.
	Verbose bool

	// UseColor enables ANSI color codes.
	UseColor bool
}

// Output handles formatting and printing sample results.
type Output struct {
	w        io.Writer
	verbose  bool
	useColor bool
}

// NewOutput creates a new Output formatter.
func NewOutput(cfg OutputConfig) *Output {
	return &Output{
		w:        cfg.Writer,
		verbose:  cfg.Verbose,
		useColor: cfg.UseColor,
	}
}

var (
	green  = forced(color.FgGreen)
	red    = forced(color.FgRed)
	yellow = forced(color.FgYellow)
	faint  = forced(color.FgHiBlack)
)

func forced(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// colorize applies color if enabled.
func (o *Output) colorize(c *color.Color, s string) string {
	if o.useColor {
		return c.Sprint(s)
	}
	return s
}

// Banner prints the introduction shown before the built-in samples.
func (o *Output) Banner() {
	fmt.Fprint(o.w, Banner)
}

// Transcript prints a case in the classic layout: number and description,
// the input, then everything the program printed.
func (o *Output) Transcript(n int, r *Result) {
	desc := r.Case.Description
	if desc == "" {
		desc = r.Case.Name
	}
	fmt.Fprintf(o.w, "\n%s %d: %s\n", caseLabel, n, desc)
	fmt.Fprintf(o.w, "%s%s\n", inputLabel, strings.TrimRight(r.Case.Source, "\n"))
	fmt.Fprintln(o.w, outputLabel)
	fmt.Fprintln(o.w, separator)
	fmt.Fprint(o.w, r.Output)
	if r.Err != nil {
		fmt.Fprintln(o.w, o.colorize(red, ErrorLabel+r.Err.Error()))
	}
}

// EndCase prints the result line for a case (--- PASS, --- FAIL, etc.).
func (o *Output) EndCase(r *Result) {
	var statusStr string
	switch r.Status {
	case StatusPassed:
		statusStr = o.colorize(green, "--- PASS:")
	case StatusFailed:
		statusStr = o.colorize(red, "--- FAIL:")
	case StatusError:
		statusStr = o.colorize(red, "--- ERROR:")
	default:
		statusStr = fmt.Sprintf("--- %s:", r.Status)
	}
	fmt.Fprintf(o.w, "%s %s (%.3fs)\n", statusStr, r.Case.Name, r.Duration.Seconds())

	if r.Status == StatusFailed {
		o.printMismatch(r)
	}
}

func (o *Output) printMismatch(r *Result) {
	fmt.Fprintf(o.w, "    %s\n", o.colorize(yellow, "output mismatch"))
	for _, line := range splitLines(r.Transcript()) {
		fmt.Fprintf(o.w, "        %s:  %s\n", o.colorize(red, "got"), line)
	}
	for _, line := range splitLines(r.Case.Expected) {
		fmt.Fprintf(o.w, "        %s: %s\n", o.colorize(green, "want"), line)
	}
}

// Summary prints the final summary line.
func (o *Output) Summary(summary *Summary) {
	fmt.Fprintln(o.w)
	if summary.Success() {
		fmt.Fprintln(o.w, o.colorize(green, "PASS"))
	} else {
		fmt.Fprintln(o.w, o.colorize(red, "FAIL"))
	}

	parts := []string{}
	if summary.Passed > 0 {
		parts = append(parts, o.colorize(green, fmt.Sprintf("%d passed", summary.Passed)))
	}
	if summary.Failed > 0 {
		parts = append(parts, o.colorize(red, fmt.Sprintf("%d failed", summary.Failed)))
	}
	if summary.Errors > 0 {
		parts = append(parts, o.colorize(red, fmt.Sprintf("%d errors", summary.Errors)))
	}
	if len(parts) > 0 {
		fmt.Fprintln(o.w, strings.Join(parts, ", "))
	}
	fmt.Fprintln(o.w, o.colorize(faint, fmt.Sprintf("(%.3fs)", summary.Duration.Seconds())))
}

// PrintResults prints every case followed by the summary. Transcripts are
// shown for all cases when verbose, otherwise only for cases that did not
// pass.
func (o *Output) PrintResults(summary *Summary) {
	for i, r := range summary.Results {
		if o.verbose || r.Status != StatusPassed {
			o.Transcript(i+1, r)
		}
		o.EndCase(r)
	}
	o.Summary(summary)
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}
