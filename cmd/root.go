package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/modelstep/modelstep/runner"
)

var (
	// CLI flags for the step harness
	fixturePath   string // Path to the YAML step fixture describing one batch
	slidingWindow int    // Sliding attention window in tokens (0 = unclipped)
	logLevel      string // Log verbosity level
	steps         int    // Number of times to execute the fixture batch (decode reuse)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "modelstep",
	Short: "Batch assembly and sampling-index resolution for a generation serving step",
}

// runCmd executes one or more steps over a fixture batch using the stub
// model and host device, then logs the assembled shapes and sampled tokens.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a serving step over a YAML batch fixture",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if fixturePath == "" {
			logrus.Fatalf("No fixture provided. Exiting.")
		}

		fixture, err := LoadStepFixture(fixturePath)
		if err != nil {
			logrus.Fatalf("unable to read step fixture: %v", err)
		}
		batch, err := fixture.Build()
		if err != nil {
			logrus.Fatalf("invalid step fixture: %v", err)
		}

		model := runner.StubModel{}
		r := runner.NewRunner(
			runner.Config{SlidingWindow: slidingWindow},
			runner.HostDevice{},
			model,
		)

		logrus.Infof("Running %d step(s) over a %s batch of %d request(s), sliding window %d",
			steps, batch.Kind, len(batch.Requests), slidingWindow)

		for step := 0; step < steps; step++ {
			in, meta := r.PrepareInputs(batch)
			logrus.Infof("[step %d] tokens %dx%d, %d block ids, %d selected indices",
				step, in.Tokens.Rows, in.Tokens.Cols, len(in.BlockIDs),
				len(meta.SelectedTokenIndices))
			for t, bucket := range meta.CategorizedSampleIndices {
				if len(bucket) > 0 {
					logrus.Infof("[step %d]   %s bucket: %v", step, runner.SamplingType(t), bucket)
				}
			}

			hidden, err := model.Forward(in)
			if err != nil {
				logrus.Fatalf("step %d forward pass failed: %v", step, err)
			}
			out, err := model.Sample(hidden, meta)
			if err != nil {
				logrus.Fatalf("step %d sampling failed: %v", step, err)
			}
			for i, reqOut := range out.Outputs {
				req := batch.Requests[i]
				for _, sample := range reqOut.Samples {
					logrus.Infof("[step %d] request %s seq %d -> token %d",
						step, req.ID, sample.SeqID, sample.TokenID)
					// Feed the sampled token back so a multi-step decode run
					// exercises generator reuse the way the scheduler would.
					if batch.Kind == runner.BatchDecode {
						req.SeqData[sample.SeqID].Append(sample.TokenID)
					}
				}
			}
		}

		logrus.Info("Step run complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&fixturePath, "fixture", "", "Path to a YAML step fixture")
	runCmd.Flags().IntVar(&slidingWindow, "sliding-window", 0, "Sliding attention window in tokens (0 = unclipped)")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().IntVar(&steps, "steps", 1, "Number of steps to execute over the fixture batch")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
