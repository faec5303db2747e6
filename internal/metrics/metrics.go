package metrics

import (
	"fmt"
	"sync/atomic"
)

// Counter is a thread-safe, monotonically non-decreasing counter
type Counter struct {
	value int64
	name  string
}

// NewCounter creates a new counter metric
func NewCounter(name string) *Counter {
	return &Counter{name: name}
}

// Inc increments the counter by 1
func (c *Counter) Inc() {
	atomic.AddInt64(&c.value, 1)
}

// Add adds n to the counter. Non-positive values are ignored so the
// counter never decreases.
func (c *Counter) Add(n int64) {
	if n <= 0 {
		return
	}
	atomic.AddInt64(&c.value, n)
}

// Get returns the current counter value
func (c *Counter) Get() int64 {
	return atomic.LoadInt64(&c.value)
}

// Reset resets the counter to 0
func (c *Counter) Reset() {
	atomic.StoreInt64(&c.value, 0)
}

// Name returns the counter name
func (c *Counter) Name() string {
	return c.name
}

// Snapshot is a point-in-time copy of the run counters
type Snapshot struct {
	Steps       int64 `json:"steps" yaml:"steps"`
	Comparisons int64 `json:"comparisons" yaml:"comparisons"`
	Accesses    int64 `json:"accesses" yaml:"accesses"`
}

// String renders the snapshot the way the status line shows it
func (s Snapshot) String() string {
	return fmt.Sprintf("%d steps - %d comparisons - %d array accesses", s.Steps, s.Comparisons, s.Accesses)
}

// Metrics accumulates the comparisons and array accesses performed by a
// stepper, plus the number of ticks driven. One Metrics belongs to one run.
type Metrics struct {
	steps       *Counter
	comparisons *Counter
	accesses    *Counter
}

// New creates a zeroed Metrics
func New() *Metrics {
	return &Metrics{
		steps:       NewCounter("steps"),
		comparisons: NewCounter("comparisons"),
		accesses:    NewCounter("accesses"),
	}
}

// AddComparisons records n comparisons
func (m *Metrics) AddComparisons(n int) {
	m.comparisons.Add(int64(n))
}

// AddAccesses records n element accesses
func (m *Metrics) AddAccesses(n int) {
	m.accesses.Add(int64(n))
}

// AddStep records one driven tick
func (m *Metrics) AddStep() {
	m.steps.Inc()
}

// Snapshot returns the current counter values
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		Steps:       m.steps.Get(),
		Comparisons: m.comparisons.Get(),
		Accesses:    m.accesses.Get(),
	}
}

// Reset zeroes every counter. Only a new run may call this.
func (m *Metrics) Reset() {
	m.steps.Reset()
	m.comparisons.Reset()
	m.accesses.Reset()
}

// Counters returns the underlying counters in display order
func (m *Metrics) Counters() []*Counter {
	return []*Counter{m.steps, m.comparisons, m.accesses}
}
