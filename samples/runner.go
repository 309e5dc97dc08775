package samples

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"github.com/bornomala-lang/bornomala"
)

// ErrorLabel prefixes the error line of a failed program in a transcript.
const ErrorLabel = "ত্রুটি: "

// Config holds configuration for running samples.
type Config struct {
	// Patterns specifies files or directories to search for samples. When
	// empty, the built-in samples are run.
	Patterns []string

	// RunPattern filters cases to run by name regex.
	RunPattern string

	// Timeout bounds each case. Zero means no timeout.
	Timeout time.Duration

	// MaxSteps bounds the statements executed by each case. Zero means no
	// limit.
	MaxSteps int

	// Logger receives per-case trace output.
	Logger *zerolog.Logger
}

// Status is the outcome of a case.
type Status int

const (
	StatusPassed Status = iota
	StatusFailed
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "PASS"
	case StatusFailed:
		return "FAIL"
	case StatusError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Result is the outcome of running one case.
type Result struct {
	Case     Case
	Status   Status
	Output   string // what the program printed
	Err      error  // parse or runtime error, if any
	Duration time.Duration
}

// Transcript returns the output followed by the error line, if any, in the
// form compared against expected output.
func (r *Result) Transcript() string {
	if r.Err == nil {
		return r.Output
	}
	return r.Output + ErrorLabel + r.Err.Error() + "\n"
}

// Summary aggregates the results of a run.
type Summary struct {
	Results  []*Result
	Passed   int
	Failed   int
	Errors   int
	Duration time.Duration
}

// ComputeTotals recounts the per-status totals from Results.
func (s *Summary) ComputeTotals() {
	s.Passed, s.Failed, s.Errors = 0, 0, 0
	for _, r := range s.Results {
		switch r.Status {
		case StatusPassed:
			s.Passed++
		case StatusFailed:
			s.Failed++
		case StatusError:
			s.Errors++
		}
	}
}

// Success returns true if no case failed or errored.
func (s *Summary) Success() bool {
	return s.Failed == 0 && s.Errors == 0
}

// Err returns an error describing every case that did not pass, or nil.
func (s *Summary) Err() error {
	var result *multierror.Error
	for _, r := range s.Results {
		switch r.Status {
		case StatusFailed:
			result = multierror.Append(result, fmt.Errorf("%s: output mismatch", r.Case.Name))
		case StatusError:
			result = multierror.Append(result, fmt.Errorf("%s: %w", r.Case.Name, r.Err))
		}
	}
	return result.ErrorOrNil()
}

// Run executes samples according to the given configuration.
func Run(ctx context.Context, cfg *Config) (*Summary, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	cases := Builtin()
	if len(cfg.Patterns) > 0 {
		var err error
		cases, err = Discover(cfg.Patterns)
		if err != nil {
			return nil, err
		}
	}

	if cfg.RunPattern != "" {
		runRe, err := regexp.Compile(cfg.RunPattern)
		if err != nil {
			return nil, fmt.Errorf("invalid run pattern: %w", err)
		}
		var filtered []Case
		for _, c := range cases {
			if runRe.MatchString(c.Name) {
				filtered = append(filtered, c)
			}
		}
		cases = filtered
	}
	return RunCases(ctx, cases, cfg), nil
}

// RunCases runs the given cases in order. Each case gets its own lexer,
// parser and evaluator, so a failure in one case cannot affect another.
func RunCases(ctx context.Context, cases []Case, cfg *Config) *Summary {
	if cfg == nil {
		cfg = &Config{}
	}
	summary := &Summary{}
	start := time.Now()
	for _, c := range cases {
		summary.Results = append(summary.Results, RunCase(ctx, c, cfg))
	}
	summary.Duration = time.Since(start)
	summary.ComputeTotals()
	return summary
}

// RunCase runs a single case and classifies the result. A case with expected
// output passes when its transcript matches exactly, errors included. A case
// without expected output passes when it runs without error.
func RunCase(ctx context.Context, c Case, cfg *Config) *Result {
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = cfg.Logger.With().Str("sample", c.Name).Logger()
	}

	var out bytes.Buffer
	opts := []bornomala.Option{
		bornomala.WithOutput(&out),
		bornomala.WithLogger(logger),
		bornomala.WithMaxSteps(cfg.MaxSteps),
	}
	if c.File != "" {
		opts = append(opts, bornomala.WithFilename(c.File))
	}

	start := time.Now()
	_, err := bornomala.Eval(ctx, c.Source, opts...)
	result := &Result{
		Case:     c,
		Output:   out.String(),
		Err:      err,
		Duration: time.Since(start),
	}

	switch {
	case c.HasExpected && result.Transcript() == c.Expected:
		result.Status = StatusPassed
	case c.HasExpected && err == nil:
		result.Status = StatusFailed
	case err != nil:
		result.Status = StatusError
	default:
		result.Status = StatusPassed
	}
	logger.Debug().Str("status", result.Status.String()).Dur("duration", result.Duration).Msg("sample finished")
	return result
}
