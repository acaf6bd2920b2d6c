// Package main implements an MCP server exposing print-tree and print-exif.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/taigrr/cli-commands/internal/config"
	"github.com/taigrr/cli-commands/internal/exif"
	"github.com/taigrr/cli-commands/internal/filesystem"
	"github.com/taigrr/cli-commands/internal/logging"
	"github.com/taigrr/cli-commands/internal/types"
	"github.com/taigrr/cli-commands/internal/version"
)

var (
	fileSystem   *filesystem.Service
	extractor    exif.Extractor
	treeDefaults types.TreeConfig
)

type options struct {
	exiftool   string
	configPath string
	verbose    bool
}

func main() {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "cli-commands-mcp",
		Short: "MCP bridge for print-tree and print-exif",
		Long: `cli-commands-mcp is a Model Context Protocol (MCP) server that
exposes the print-tree and print-exif commands as tools over stdio.
The print-tree config file is read once at startup.`,
		Example: `cli-commands-mcp --config ~/print_tree_config.json`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.exiftool, "exiftool", exif.DefaultBinary, "Path of the exiftool executable")
	flags.StringVar(&opts.configPath, "config", config.DefaultPath, "Path of the print-tree JSON config file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

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

func runServer(cmd *cobra.Command, opts *options) error {
	// stdout carries the protocol, so logs go to stderr only
	logger := logging.New("cli-commands-mcp", opts.verbose)

	configPath, err := filesystem.ExpandHome(opts.configPath)
	if err != nil {
		return err
	}

	// Initialize services
	afs := afero.NewOsFs()
	fileSystem = filesystem.New(afs)
	extractor = exif.NewExifTool(opts.exiftool, logger)
	treeDefaults = config.Load(afs, configPath, logger)

	// Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "cli-commands-mcp",
		Version: version.Version,
	}, nil)

	registerTools(server)

	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("error running server: %w", err)
	}

	return nil
}
