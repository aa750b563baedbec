package subcmds

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"elbow/logging"
	"elbow/tui"
)

func NewEditCommand(args *inArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <scene.json>",
		Short: "Edit a scene's wires interactively",
		Long: `edit opens the scene in the terminal editor. Drag wire points with the
mouse, press on a segment to insert a point, shift-press a point to
duplicate it; u and r undo and redo, s saves, q quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, posArgs []string) error {
			// The editor owns the terminal, so the log moves elsewhere for
			// the duration.
			if args.logFile != "" {
				f, err := os.OpenFile(args.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				logging.SetOutput(f)
			} else {
				logging.SetOutput(io.Discard)
			}
			return tui.Run(posArgs[0])
		},
	}
	cmd.PersistentFlags().StringVar(&args.logFile, logFileFlag, "", "file receiving the log while the editor owns the terminal")
	return cmd
}
