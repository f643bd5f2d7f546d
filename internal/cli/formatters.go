package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// TableFormatter helps format tabular output
type TableFormatter struct {
	writer *tabwriter.Writer
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	return &TableFormatter{writer: tw}
}

// Header writes the table header
func (t *TableFormatter) Header(columns ...string) {
	fmt.Fprintln(t.writer, strings.Join(columns, "\t"))
	fmt.Fprintln(t.writer, strings.Repeat("-", 80))
}

// Row writes a table row
func (t *TableFormatter) Row(values ...string) {
	fmt.Fprintln(t.writer, strings.Join(values, "\t"))
}

// Flush writes the buffered table to output
func (t *TableFormatter) Flush() {
	t.writer.Flush()
}

// OutputResults formats and outputs results based on the specified format
func OutputResults(w io.Writer, format string, data interface{}) error {
	switch OutputFormat(format) {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)

	case FormatYAML:
		yamlData, err := yaml.Marshal(data)
		if err != nil {
			return err
		}
		fmt.Fprint(w, string(yamlData))
		return nil

	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// PrintSuccess prints a success message to stdout
func PrintSuccess(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}

// PrintInfo prints an informational message to stdout
func PrintInfo(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}

// PrintError prints an error message to stderr
func PrintError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// Truncate shortens s to max characters, appending an ellipsis.
func Truncate(s string, max int) string {
	if max <= 3 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
