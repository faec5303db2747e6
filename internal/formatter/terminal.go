package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/SortVis/internal/driver"
	"github.com/yildizm/go-termfmt"
)

// terminalFormatter formats run reports as text for terminal display using go-termfmt
type terminalFormatter struct {
	opts *termfmt.TerminalOptions
}

// NewTerminal creates a new terminal formatter with optional color support
func NewTerminal(color bool) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = true
	return &terminalFormatter{opts: opts}
}

func (f *terminalFormatter) Format(reports []*driver.Report) ([]byte, error) {
	var b strings.Builder

	f.writeHeader(&b)
	for _, r := range reports {
		f.writeRun(&b, r)
	}
	if len(reports) > 1 {
		f.writeTotals(&b, reports)
	}

	return []byte(b.String()), nil
}

// writeHeader writes the boxed title
func (f *terminalFormatter) writeHeader(b *strings.Builder) {
	header := "Sort Run Summary"
	headerLen := len(header)

	b.WriteString("╔" + strings.Repeat("═", headerLen+2) + "╗\n")
	b.WriteString("║ " + header + " ║\n")
	b.WriteString("╚" + strings.Repeat("═", headerLen+2) + "╝\n\n")
}

// writeRun writes one run as a tree
func (f *terminalFormatter) writeRun(b *strings.Builder, r *driver.Report) {
	fmt.Fprintf(b, "%s %s (%s, %d bars)\n", outcomeEmoji(r, f.opts), r.Algorithm, r.Arrangement, r.Size)

	items := []termfmt.TreeItem{
		{Label: "Outcome", Value: outcome(r)},
		{Label: "Steps", Value: formatCount(r.Metrics.Steps)},
		{Label: "Comparisons", Value: formatCount(r.Metrics.Comparisons)},
		{Label: "Array Accesses", Value: formatCount(r.Metrics.Accesses)},
		{Label: "Sortedness", Value: termfmt.CreateConfidenceBar(r.Sortedness, f.opts) + " " + formatPercent(r.Sortedness)},
		{Label: "Duration", Value: formatDuration(r.Duration)},
	}
	if r.Error != "" {
		items = append(items, termfmt.TreeItem{Label: "Error", Value: r.Error})
	}
	items = append(items, termfmt.TreeItem{Label: "Run ID", Value: r.RunID, Last: true})

	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n\n")
}

// writeTotals sums the counters over every run
func (f *terminalFormatter) writeTotals(b *strings.Builder, reports []*driver.Report) {
	var steps, comparisons, accesses int64
	sorted := 0
	for _, r := range reports {
		steps += r.Metrics.Steps
		comparisons += r.Metrics.Comparisons
		accesses += r.Metrics.Accesses
		if r.Sorted {
			sorted++
		}
	}

	b.WriteString(symbol("statistics", "[STATS]", f.opts) + " Totals\n")
	items := []termfmt.TreeItem{
		{Label: "Runs", Value: fmt.Sprintf("%d (%d sorted)", len(reports), sorted)},
		{Label: "Steps", Value: formatCount(steps)},
		{Label: "Comparisons", Value: formatCount(comparisons)},
		{Label: "Array Accesses", Value: formatCount(accesses), Last: true},
	}
	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n")
}
