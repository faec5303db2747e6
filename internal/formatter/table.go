package formatter

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/yildizm/SortVis/internal/driver"
)

// newRunTable lays reports out one row per run, sorted by the caller
func newRunTable(reports []*driver.Report) table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false

	tbl.AppendHeader(table.Row{"Algorithm", "Arrangement", "Size", "Outcome", "Steps", "Comparisons", "Accesses", "Duration"})
	var comparisons, accesses int64
	for _, r := range reports {
		tbl.AppendRow(table.Row{
			r.Algorithm,
			r.Arrangement,
			r.Size,
			outcome(r),
			formatCount(r.Metrics.Steps),
			formatCount(r.Metrics.Comparisons),
			formatCount(r.Metrics.Accesses),
			formatDuration(r.Duration),
		})
		comparisons += r.Metrics.Comparisons
		accesses += r.Metrics.Accesses
	}
	tbl.AppendFooter(table.Row{"Total", "", "", "", "", formatCount(comparisons), formatCount(accesses), ""})
	return tbl
}

// BenchTable renders a comparison table of several runs
func BenchTable(reports []*driver.Report) string {
	return newRunTable(reports).Render()
}
