// Package types defines the data structures shared by the commands.
package types

type (
	// DirectoryListing contains the immediate children of a directory,
	// partitioned and sorted by name.
	DirectoryListing struct {
		Files       []string `json:"files"`
		Directories []string `json:"directories"`
	}

	// FilterConfig contains the effective filters applied while rendering a tree.
	FilterConfig struct {
		Avoid          []string `json:"avoid"`
		OmitExtensions []string `json:"omitExtensions"`
		OnlyExtensions []string `json:"onlyExtensions"`
	}

	// TreeConfig contains the defaults read from the config file.
	TreeConfig struct {
		Avoid          []string `json:"avoid" mapstructure:"avoid"`
		OmitExtensions []string `json:"omit_extensions" mapstructure:"omit_extensions"`
	}
)
