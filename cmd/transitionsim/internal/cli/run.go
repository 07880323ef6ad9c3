package cli

import (
	"fmt"
	"time"

	"github.com/go-drift/transition/cmd/transitionsim/internal/scenario"
	"github.com/go-drift/transition/pkg/logger"
	"github.com/spf13/cobra"
)

var frameInterval time.Duration

var runCmd = &cobra.Command{
	Use:   "run <scenario.yaml>...",
	Short: "Replay scenarios and print their timelines",
	Long: `Replay one or more scenario files on a simulated clock.

The clock advances one frame at a time, so completions land on the first
frame at or after their deadline.

Examples:
  transitionsim run toggle.yaml
  transitionsim run --frame 1ms list.yaml menu.yaml
  transitionsim run -v --presets presets.yaml toggle.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		presets, err := loadPresets(cmd)
		if err != nil {
			return err
		}
		if frameInterval <= 0 {
			return fmt.Errorf("--frame must be positive, got %v", frameInterval)
		}
		runner := &scenario.Runner{Presets: presets, Frame: frameInterval}
		if verbose {
			runner.Logger = logger.Default()
		}

		out := cmd.OutOrStdout()
		for i, path := range args {
			s, err := scenario.Load(path)
			if err != nil {
				return err
			}
			res, err := runner.Run(s)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if i > 0 {
				fmt.Fprintln(out)
			}
			printResult(out, res)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().DurationVar(&frameInterval, "frame", scenario.DefaultFrame, "simulated frame interval")
}
