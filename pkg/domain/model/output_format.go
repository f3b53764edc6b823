package model

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"
)

// OutputFormat selects how the directory is rendered
type OutputFormat string

const (
	OutputFormatTable    OutputFormat = "table"
	OutputFormatJSON     OutputFormat = "json"
	OutputFormatHTML     OutputFormat = "html"
	OutputFormatCSV      OutputFormat = "csv"
	OutputFormatMarkdown OutputFormat = "markdown"
	OutputFormatYAML     OutputFormat = "yaml"
)

// DefaultOutputFormat is used when no format is given
const DefaultOutputFormat = OutputFormatTable

// outputFormatTokens maps accepted command line tokens to formats.
// Matching is case sensitive.
var outputFormatTokens = map[string]OutputFormat{
	"table":    OutputFormatTable,
	"json":     OutputFormatJSON,
	"html":     OutputFormatHTML,
	"csv":      OutputFormatCSV,
	"markdown": OutputFormatMarkdown,
	"md":       OutputFormatMarkdown,
	"yaml":     OutputFormatYAML,
	"yml":      OutputFormatYAML,
}

// AllOutputFormats returns every supported format
func AllOutputFormats() []OutputFormat {
	return []OutputFormat{
		OutputFormatTable,
		OutputFormatJSON,
		OutputFormatHTML,
		OutputFormatCSV,
		OutputFormatMarkdown,
		OutputFormatYAML,
	}
}

// ParseOutputFormat converts a command line token into an OutputFormat.
// An empty token selects the default format.
func ParseOutputFormat(token string) (OutputFormat, error) {
	if token == "" {
		return DefaultOutputFormat, nil
	}
	format, ok := outputFormatTokens[token]
	if !ok {
		return "", goerr.New(fmt.Sprintf("invalid output format: %s", token),
			goerr.T(ErrTagInvalidOutputFormat),
			goerr.V("format", token))
	}
	return format, nil
}

// String returns the string representation of the format
func (f OutputFormat) String() string {
	return string(f)
}

// IsValid checks if the format is one of the supported formats
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatHTML,
		OutputFormatCSV, OutputFormatMarkdown, OutputFormatYAML:
		return true
	default:
		return false
	}
}
