package types

// MetadataFormat selects how extracted metadata is written.
type MetadataFormat string

const (
	FormatJSON MetadataFormat = "json"
	FormatYAML MetadataFormat = "yaml"
)
