package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/yildizm/SortVis/internal/driver"
)

// markdownFormatter formats output as Markdown
type markdownFormatter struct {
	now func() time.Time
}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown() Formatter {
	return &markdownFormatter{now: time.Now}
}

func (f *markdownFormatter) Format(reports []*driver.Report) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# Sort Run Report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", f.now().Format("2006-01-02 15:04:05"))

	b.WriteString("## Runs\n\n")
	b.WriteString(newRunTable(reports).RenderMarkdown())
	b.WriteString("\n")

	var failures []*driver.Report
	for _, r := range reports {
		if r.Error != "" {
			failures = append(failures, r)
		}
	}
	if len(failures) > 0 {
		b.WriteString("\n## Errors\n\n")
		for _, r := range failures {
			fmt.Fprintf(&b, "- **%s** (`%s`): %s\n", r.Algorithm, r.RunID, r.Error)
		}
	}

	return []byte(b.String()), nil
}
