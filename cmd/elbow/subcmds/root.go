// Package subcmds defines the elbow CLI: its subcommands, their flags and
// their behavior.
//
// PersistentPreRun on the root initializes the logger from the shared
// verbosity flags; the subcommands do their work in RunE.
package subcmds

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"elbow/logging"
)

const (
	formatFlag     = "format"
	outputFileFlag = "output"
	logFileFlag    = "log-file"
	quietFlag      = "quiet"
	verboseFlag    = "verbose"
)

// inArgs holds parsed flag values shared across subcommands.
type inArgs struct {
	format     string
	outputFile string
	logFile    string
	quiet      bool
	verbose    bool
}

func NewRootCommand() *cobra.Command {
	args := &inArgs{}

	rootCmd := &cobra.Command{
		Use:   "elbow",
		Short: "elbow is an interactive editor for routed connector geometry",
		Long: `elbow edits scenes of shapes and the wires routed between them: drag,
insert, duplicate and merge wire points from the terminal, with grid
snapping and undo.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			verbosity := logging.MediumVerbosity
			if args.quiet {
				verbosity = logging.LowVerbosity
			} else if args.verbose {
				verbosity = logging.HighVerbosity
			}
			logging.Init(verbosity)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&args.quiet, quietFlag, "q", false, "runs quietly, reports only severe errors")
	rootCmd.PersistentFlags().BoolVarP(&args.verbose, verboseFlag, "v", false, "runs with more informative messages printed to log")
	rootCmd.MarkFlagsMutuallyExclusive(quietFlag, verboseFlag)
	rootCmd.PersistentFlags().SortFlags = false

	rootCmd.AddCommand(NewEditCommand(args))
	rootCmd.AddCommand(NewExportCommand(args))
	rootCmd.AddCommand(NewSampleCommand(args))
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true}) // disable help command. should use --help flag instead

	return rootCmd
}

func mustBeOneOf(values []string) string {
	return fmt.Sprintf("must be one of [%s]", strings.Join(values, ", "))
}
