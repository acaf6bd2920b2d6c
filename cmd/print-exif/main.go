// Package main implements print-exif, which pretty-prints exiftool metadata.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/taigrr/cli-commands/internal/exif"
	"github.com/taigrr/cli-commands/internal/logging"
	"github.com/taigrr/cli-commands/internal/types"
	"github.com/taigrr/cli-commands/internal/version"
)

type options struct {
	exiftool string
	format   string
	verbose  bool
}

// extractorFactory builds the metadata extractor once flags are parsed.
type extractorFactory func(binary string, logger *log.Logger) exif.Extractor

func newExifTool(binary string, logger *log.Logger) exif.Extractor {
	return exif.NewExifTool(binary, logger)
}

// usageError is returned when the argument count is wrong.
type usageError struct {
	name string
}

func (e usageError) Error() string {
	return "Usage: " + e.name + " <path_to_image_or_video>"
}

func main() {
	cmd := newRootCmd(newExifTool)

	if err := fang.Execute(
		context.Background(),
		cmd,
		fang.WithVersion(version.Version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(newExtractor extractorFactory) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "print-exif <path_to_image_or_video>",
		Short: "Print the metadata of an image or video",
		Long: `print-exif runs exiftool on a single file and prints its metadata
as indented JSON. Tag names are grouped (EXIF:Make) and values are
numeric rather than human readable.`,
		Example: `print-exif IMG_0001.jpg
print-exif --format yaml clip.mov`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageError{name: cmd.Name()}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewWithWriter(cmd.ErrOrStderr(), "print-exif", opts.verbose)
			extractor := newExtractor(opts.exiftool, logger)
			return exif.Print(cmd.Context(), cmd.OutOrStdout(), extractor, args[0], types.MetadataFormat(opts.format))
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.exiftool, "exiftool", exif.DefaultBinary, "Path of the exiftool executable")
	flags.StringVarP(&opts.format, "format", "f", string(types.FormatJSON), "Output format: json or yaml")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}
