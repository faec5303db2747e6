package formatter

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/yildizm/SortVis/internal/driver"
	"github.com/yildizm/go-termfmt"
)

// outcome classifies how a run ended
func outcome(r *driver.Report) string {
	switch {
	case r.Error != "" && r.Phase == driver.PhaseCancelled.String():
		return "gave up"
	case r.Error != "":
		return "failed"
	case r.Sorted:
		return "sorted"
	default:
		return r.Phase
	}
}

// outcomeEmoji returns the symbol for a run outcome using go-termfmt
func outcomeEmoji(r *driver.Report, opts *termfmt.TerminalOptions) string {
	switch outcome(r) {
	case "sorted":
		return symbol("success", "[OK]", opts)
	case "failed":
		return symbol("error", "[ERR]", opts)
	default:
		return symbol("warning", "[WRN]", opts)
	}
}

// symbol looks up a go-termfmt emoji, falling back when the key is unknown
func symbol(key, fallback string, opts *termfmt.TerminalOptions) string {
	if s := termfmt.GetEmoji(key, opts); s != "" {
		return s
	}
	return fallback
}

func formatCount(n int64) string {
	return humanize.Comma(n)
}

// formatDuration rounds durations so tables stay narrow
func formatDuration(d time.Duration) string {
	switch {
	case d <= 0:
		return "0s"
	case d < time.Millisecond:
		return d.Round(time.Microsecond).String()
	case d < time.Second:
		return d.Round(10 * time.Microsecond).String()
	default:
		return d.Round(time.Millisecond).String()
	}
}

func formatPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}
