package formatter

import (
	"encoding/json"

	"github.com/yildizm/SortVis/internal/driver"
)

// jsonFormatter formats output as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

// JSONOutput is the document written by the JSON formatter
type JSONOutput struct {
	Summary *SummaryOutput `json:"summary"`
	Runs    []*RunOutput   `json:"runs"`
}

// SummaryOutput aggregates every run in the document
type SummaryOutput struct {
	Runs        int   `json:"runs"`
	Sorted      int   `json:"sorted"`
	Steps       int64 `json:"steps"`
	Comparisons int64 `json:"comparisons"`
	Accesses    int64 `json:"accesses"`
}

// RunOutput is one report plus its derived fields
type RunOutput struct {
	*driver.Report
	Outcome  string `json:"outcome"`
	Duration string `json:"duration"`
}

func (f *jsonFormatter) Format(reports []*driver.Report) ([]byte, error) {
	output := &JSONOutput{
		Summary: &SummaryOutput{Runs: len(reports)},
		Runs:    make([]*RunOutput, 0, len(reports)),
	}
	for _, r := range reports {
		output.Summary.Steps += r.Metrics.Steps
		output.Summary.Comparisons += r.Metrics.Comparisons
		output.Summary.Accesses += r.Metrics.Accesses
		if r.Sorted {
			output.Summary.Sorted++
		}
		output.Runs = append(output.Runs, &RunOutput{
			Report:   r,
			Outcome:  outcome(r),
			Duration: r.Duration.String(),
		})
	}

	return json.MarshalIndent(output, "", "  ")
}
