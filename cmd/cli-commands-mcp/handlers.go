package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/taigrr/cli-commands/internal/config"
	"github.com/taigrr/cli-commands/internal/exif"
	"github.com/taigrr/cli-commands/internal/pathfilter"
	"github.com/taigrr/cli-commands/internal/tree"
)

func handleTree(ctx context.Context, req *mcp.CallToolRequest, input TreeInput) (*mcp.CallToolResult, TreeOutput, error) {
	directory := strings.TrimSpace(input.Directory)
	if directory == "" {
		return &mcp.CallToolResult{IsError: true}, TreeOutput{}, fmt.Errorf("directory cannot be empty")
	}

	filters := config.Merge(treeDefaults, input.Avoid, input.Omit, input.Only)
	renderer := tree.New(fileSystem, pathfilter.New(&filters))

	text, err := renderer.String(directory)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, TreeOutput{}, err
	}

	return nil, TreeOutput{
		Tree:  text,
		Lines: strings.Count(text, "\n"),
	}, nil
}

func handleExif(ctx context.Context, req *mcp.CallToolRequest, input ExifInput) (*mcp.CallToolResult, ExifOutput, error) {
	path := strings.TrimSpace(input.Path)
	if path == "" {
		return &mcp.CallToolResult{IsError: true}, ExifOutput{}, fmt.Errorf("path cannot be empty")
	}

	raw, err := extractor.Extract(ctx, path)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ExifOutput{}, err
	}

	records, err := exif.Decode(raw)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ExifOutput{}, err
	}
	if records == nil {
		records = []map[string]any{}
	}

	return nil, ExifOutput{Records: records}, nil
}
