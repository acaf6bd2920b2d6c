// Package main implements print-tree, which draws a directory tree.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/taigrr/cli-commands/internal/config"
	"github.com/taigrr/cli-commands/internal/filesystem"
	"github.com/taigrr/cli-commands/internal/logging"
	"github.com/taigrr/cli-commands/internal/pathfilter"
	"github.com/taigrr/cli-commands/internal/tree"
	"github.com/taigrr/cli-commands/internal/version"
)

type options struct {
	only       []string
	avoid      []string
	omit       []string
	output     string
	configPath string
	verbose    bool
}

func main() {
	cmd := newRootCmd(afero.NewOsFs())

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

func newRootCmd(afs afero.Fs) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "print-tree <directory>",
		Short: "Print a directory tree",
		Long: `print-tree prints the directory tree rooted at <directory>.

Defaults for --avoid and --omit are read from print_tree_config.json in
the current directory, a JSON object with optional "avoid" and
"omit_extensions" string arrays. Values given on the command line are
added to the configured ones.`,
		Example: `print-tree . --avoid .git,node_modules --omit log
print-tree src --only go --output ~/tree.txt`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(cmd, afs, opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVar(&opts.only, "only", nil, "Only include files with these extensions, without leading dot. Example: --only py,txt")
	flags.StringSliceVar(&opts.avoid, "avoid", nil, "Additional directories to avoid. Example: --avoid .git,.vscode")
	flags.StringSliceVar(&opts.omit, "omit", nil, "Additional file extensions to omit, without leading dot. Example: --omit log,tmp")
	flags.StringVarP(&opts.output, "output", "o", "", "Output file path. Example: --output output.txt")
	flags.StringVar(&opts.configPath, "config", config.DefaultPath, "Path of the JSON config file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func runTree(cmd *cobra.Command, afs afero.Fs, opts *options, directory string) error {
	logger := logging.NewWithWriter(cmd.ErrOrStderr(), "print-tree", opts.verbose)

	cfg := config.Load(afs, opts.configPath, logger)
	filters := config.Merge(cfg, opts.avoid, opts.omit, opts.only)
	logger.Debug("effective filters",
		"avoid", filters.Avoid,
		"omit", filters.OmitExtensions,
		"only", filters.OnlyExtensions,
	)

	fileSystem := filesystem.New(afs)
	renderer := tree.New(fileSystem, pathfilter.New(&filters))

	if opts.output == "" {
		return render(renderer, cmd.OutOrStdout(), directory)
	}

	f, err := fileSystem.CreateOutput(opts.output)
	if err != nil {
		return err
	}
	if err := render(renderer, f, directory); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	logger.Debug("wrote tree", "output", opts.output)
	return nil
}

// render writes the tree through a buffer. Lines rendered before a failure
// are still flushed.
func render(renderer *tree.Renderer, out io.Writer, directory string) error {
	w := bufio.NewWriter(out)
	err := renderer.Render(w, directory)
	flushErr := w.Flush()
	if err != nil {
		return fmt.Errorf("failed to print tree: %w", err)
	}
	return flushErr
}
