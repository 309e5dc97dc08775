package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bornomala-lang/bornomala/samples"
)

func newSamplesCmd(cfg *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "samples [patterns...]",
		Short: "Run sample programs and compare their output",
		Long: `Run sample programs and compare their output.

With no patterns the built-in demonstrations are run. Otherwise each pattern
names a *.bn file, a directory, a glob, or a directory followed by /... to
search recursively. A sibling *.bn.out file holds a program's expected output.`,
		Example: `  bornomala samples
  bornomala samples ./examples/...
  bornomala samples -v -r 'loop$'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			verbose, _ := flags.GetBool("verbose")
			runPattern, _ := flags.GetString("run")
			timeout, _ := flags.GetDuration("timeout")
			maxSteps, _ := flags.GetInt("max-steps")

			summary, err := samples.Run(cmd.Context(), &samples.Config{
				Patterns:   args,
				RunPattern: runPattern,
				Timeout:    timeout,
				MaxSteps:   maxSteps,
				Logger:     &logger,
			})
			if err != nil {
				return err
			}

			out := samples.NewOutput(samples.OutputConfig{
				Writer:   cmd.OutOrStdout(),
				Verbose:  verbose || len(args) == 0,
				UseColor: useColor(cfg),
			})
			if len(args) == 0 {
				out.Banner()
			}
			out.PrintResults(summary)
			if !summary.Success() {
				return errReported
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.BoolP("verbose", "v", false, "print the transcript of every sample")
	flags.StringP("run", "r", "", "run only samples whose name matches this regex")
	flags.Duration("timeout", 0, "time limit per sample (0 = no limit)")
	flags.Int("max-steps", 100000, "statement limit per sample (0 = no limit)")
	return cmd
}
