package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/yildizm/SortVis/internal/driver"
)

// csvFormatter writes one row per run
type csvFormatter struct{}

// NewCSV creates a new CSV formatter
func NewCSV() Formatter {
	return &csvFormatter{}
}

func (f *csvFormatter) Format(reports []*driver.Report) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	headers := []string{
		"Run ID",
		"Algorithm",
		"Arrangement",
		"Size",
		"Outcome",
		"Steps",
		"Comparisons",
		"Accesses",
		"Sortedness",
		"Duration (ms)",
		"Error",
	}

	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, r := range reports {
		record := []string{
			r.RunID,
			r.Algorithm,
			r.Arrangement,
			strconv.Itoa(r.Size),
			outcome(r),
			strconv.FormatInt(r.Metrics.Steps, 10),
			strconv.FormatInt(r.Metrics.Comparisons, 10),
			strconv.FormatInt(r.Metrics.Accesses, 10),
			strconv.FormatFloat(r.Sortedness, 'f', 4, 64),
			strconv.FormatFloat(float64(r.Duration.Microseconds())/1000, 'f', 3, 64),
			escapeCSVString(r.Error),
		}

		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return b.Bytes(), nil
}

// escapeCSVString flattens newlines and truncates long messages
func escapeCSVString(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")

	if len(s) > 100 {
		s = s[:97] + "..."
	}

	return s
}
