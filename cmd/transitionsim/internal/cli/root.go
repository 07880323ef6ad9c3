// Package cli implements the transitionsim commands.
package cli

import (
	"fmt"
	"os"

	"github.com/go-drift/transition/pkg/config"
	drifterrors "github.com/go-drift/transition/pkg/errors"
	"github.com/go-drift/transition/pkg/logger"
	"github.com/spf13/cobra"
)

// Global flags
var (
	presetsPath string
	verbose     bool
	noColor     bool
)

var rootCmd = &cobra.Command{
	Use:   "transitionsim",
	Short: "Replay transition scenarios on a simulated clock",
	Long: `transitionsim drives a transition controller or group through a scripted
scenario and prints every status change with its time offset.

Scenarios are YAML files. Presets referenced with "use" are read from the
file given by --presets (default transitions.yaml, optional).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logger.WarnLevel
		if verbose {
			level = logger.DebugLevel
		}
		l := logger.New(cmd.ErrOrStderr(), level)
		logger.ReplaceDefault(l)
		drifterrors.SetHandler(&drifterrors.LogHandler{Logger: l, Verbose: verbose})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&presetsPath, "presets", "transitions.yaml", "preset file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every transition event")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle().Render("error: ")+err.Error())
		os.Exit(1)
	}
}

// loadPresets reads the preset file. A missing default file is not an
// error; a missing file named explicitly is.
func loadPresets(cmd *cobra.Command) (*config.File, error) {
	if cmd.Flags().Changed("presets") {
		return config.Load(presetsPath)
	}
	return config.LoadOptional(presetsPath)
}
