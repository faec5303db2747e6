package ui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/yildizm/SortVis/internal/driver"
	"github.com/yildizm/SortVis/internal/metrics"
	"github.com/yildizm/SortVis/internal/sorting"
)

const barGlyph = "█"

// Canvas is the terminal bar renderer. It keeps its own copy of the bar
// heights, updated only from StepResult changes, plus the role each bar
// is currently drawn with.
type Canvas struct {
	values   []int
	roles    []sorting.Role
	barWidth int

	// indices drawn with a compare or swap role on the previous tick
	transient []int

	title  string
	status metrics.Snapshot
	phase  driver.Phase
}

var _ driver.Renderer = (*Canvas)(nil)

// NewCanvas creates an empty canvas
func NewCanvas(barWidth int) *Canvas {
	if barWidth < 1 {
		barWidth = 1
	}
	return &Canvas{barWidth: barWidth}
}

// Reset implements driver.Renderer
func (c *Canvas) Reset(values []int) {
	c.values = append(c.values[:0], values...)
	c.roles = make([]sorting.Role, len(values))
	c.transient = c.transient[:0]
	c.phase = driver.PhaseCountdown
}

// Apply implements driver.Renderer
func (c *Canvas) Apply(phase driver.Phase, res sorting.StepResult) {
	c.phase = phase
	for _, i := range c.transient {
		if c.roles[i] != sorting.RoleSorted {
			c.roles[i] = sorting.RoleUnsorted
		}
	}
	c.transient = c.transient[:0]

	for _, ch := range res.Changed {
		if ch.Index >= 0 && ch.Index < len(c.values) {
			c.values[ch.Index] = ch.Value
		}
	}
	for _, h := range res.Highlighted {
		if h.Index < 0 || h.Index >= len(c.roles) {
			continue
		}
		c.roles[h.Index] = h.Role
		if h.Role == sorting.RoleCompare || h.Role == sorting.RoleSwap {
			c.transient = append(c.transient, h.Index)
		}
	}
}

// Status implements driver.Renderer
func (c *Canvas) Status(title string, snap metrics.Snapshot) {
	c.title = title
	c.status = snap
}

// Values returns a copy of the drawn heights
func (c *Canvas) Values() []int {
	return append([]int(nil), c.values...)
}

// Role returns the role bar i is drawn with
func (c *Canvas) Role(i int) sorting.Role {
	if i < 0 || i >= len(c.roles) {
		return sorting.RoleUnsorted
	}
	return c.roles[i]
}

// StatusLine renders "<name> - N steps - N comparisons - N array accesses"
func (c *Canvas) StatusLine() string {
	return fmt.Sprintf("%s - %s steps - %s comparisons - %s array accesses",
		c.title,
		humanize.Comma(c.status.Steps),
		humanize.Comma(c.status.Comparisons),
		humanize.Comma(c.status.Accesses))
}

// Render draws the bars bottom-aligned in height rows. Each bar is
// barWidth cells wide followed by a one-cell gap.
func (c *Canvas) Render(styles *Styles, height int) string {
	if height < 1 || len(c.values) == 0 {
		return ""
	}
	peak := 0
	for _, v := range c.values {
		peak = max(peak, v)
	}
	if peak == 0 {
		peak = 1
	}

	cell := strings.Repeat(barGlyph, c.barWidth)
	blank := strings.Repeat(" ", c.barWidth)

	var b strings.Builder
	for row := height; row >= 1; row-- {
		// a bar of value v covers ceil(v*height/peak) rows
		threshold := row
		var run strings.Builder
		runRole := sorting.Role(-1)
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runRole < 0 || IsColorDisabled() {
				b.WriteString(run.String())
			} else {
				b.WriteString(styles.Bars[runRole].Render(run.String()))
			}
			run.Reset()
		}
		for i, v := range c.values {
			filled := (v*height+peak-1)/peak >= threshold
			role := sorting.Role(-1)
			if filled {
				role = c.roles[i]
			}
			if role != runRole {
				flush()
				runRole = role
			}
			if filled {
				run.WriteString(cell)
			} else {
				run.WriteString(blank)
			}
			run.WriteString(" ")
		}
		flush()
		if row > 1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
