package subcmds

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"elbow/export"
	"elbow/logging"
	"elbow/scene"
)

func NewExportCommand(args *inArgs) *cobra.Command {
	formats := make([]string, 0, len(export.GetAvailableFormats()))
	for _, f := range export.GetAvailableFormats() {
		formats = append(formats, string(f))
	}

	cmd := &cobra.Command{
		Use:   "export <scene.json>",
		Short: "Export a scene to an image or data format",
		Long:  `export renders the scene to the chosen format and writes it next to the scene file, or to --output.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, posArgs []string) error {
			format, err := export.ParseFormat(args.format)
			if err != nil {
				return err
			}
			exporter, err := export.NewExporter(format)
			if err != nil {
				return err
			}

			sc, err := scene.Load(posArgs[0])
			if err != nil {
				return err
			}
			data, err := exporter.Export(sc)
			if err != nil {
				return err
			}

			out := args.outputFile
			if out == "" {
				out = strings.TrimSuffix(posArgs[0], filepath.Ext(posArgs[0])) + exporter.GetFileExtension()
			}
			if err := os.WriteFile(out, data, 0644); err != nil {
				return err
			}
			logging.Infof("exported %s as %s to %s", posArgs[0], exporter.GetFormatName(), out)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&args.format, formatFlag, "f", "svg", "export format; "+mustBeOneOf(formats))
	cmd.PersistentFlags().StringVarP(&args.outputFile, outputFileFlag, "o", "", "file path to store the export")
	return cmd
}
