package formatter

import (
	"fmt"

	"github.com/yildizm/SortVis/internal/driver"
)

// Formatter defines the interface for output formatting
type Formatter interface {
	Format(reports []*driver.Report) ([]byte, error)
}

// Formats lists the supported output formats
func Formats() []string {
	return []string{"text", "json", "csv", "markdown"}
}

// New returns the formatter for format
func New(format string, color bool) (Formatter, error) {
	switch format {
	case "text", "":
		return NewTerminal(color), nil
	case "json":
		return NewJSON(), nil
	case "csv":
		return NewCSV(), nil
	case "markdown", "md":
		return NewMarkdown(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
