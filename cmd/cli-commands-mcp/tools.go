package main

import "github.com/modelcontextprotocol/go-sdk/mcp"

type (
	// TreeInput contains parameters for printing a directory tree.
	TreeInput struct {
		Directory string   `json:"directory" jsonschema:"Root directory of the tree"`
		Only      []string `json:"only,omitempty" jsonschema:"Only include files with these extensions, without leading dot"`
		Avoid     []string `json:"avoid,omitempty" jsonschema:"Additional directory names to skip entirely"`
		Omit      []string `json:"omit,omitempty" jsonschema:"Additional file extensions to hide, without leading dot"`
	}

	// TreeOutput contains the rendered tree.
	TreeOutput struct {
		Tree  string `json:"tree"`
		Lines int    `json:"lines"`
	}

	// ExifInput contains parameters for reading file metadata.
	ExifInput struct {
		Path string `json:"path" jsonschema:"Path of the image or video"`
	}

	// ExifOutput contains the metadata exiftool reported, one record per file.
	ExifOutput struct {
		Records []map[string]any `json:"records"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "tree",
		Description: "Print the directory tree rooted at a directory. Directories are listed before files at each level. Configured avoid/omit defaults are extended by the given lists; only restricts output to files with those extensions and the directories leading to them.",
	}, handleTree)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "exif",
		Description: "Read the metadata of an image or video with exiftool. Tag names are grouped (EXIF:Make) and values are numeric.",
	}, handleExif)
}
