package subcmds

import (
	"github.com/spf13/cobra"

	"elbow/logging"
	"elbow/scene"
)

func NewSampleCommand(_ *inArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "sample <scene.json>",
		Short: "Write a small starter scene",
		Long:  `sample writes a two-shape starter scene to the given path, ready for edit.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, posArgs []string) error {
			if err := scene.Save(posArgs[0], scene.Sample()); err != nil {
				return err
			}
			logging.Infof("wrote sample scene to %s", posArgs[0])
			return nil
		},
	}
}
