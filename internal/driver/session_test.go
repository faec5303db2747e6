package driver

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yildizm/SortVis/internal/metrics"
	"github.com/yildizm/SortVis/internal/sorting"
)

type recordingRenderer struct {
	resets   int
	applied  map[Phase]int
	statuses []metrics.Snapshot
	finished bool
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{applied: map[Phase]int{}}
}

func (r *recordingRenderer) Reset([]int) { r.resets++ }

func (r *recordingRenderer) Apply(phase Phase, res sorting.StepResult) {
	r.applied[phase]++
	if phase == PhaseSweeping && res.Finished {
		r.finished = true
	}
}

func (r *recordingRenderer) Status(_ string, snap metrics.Snapshot) {
	r.statuses = append(r.statuses, snap)
}

func testConfig(kind sorting.Kind) RunConfig {
	return RunConfig{
		Algorithm:    kind,
		Arrangement:  "random",
		TickInterval: time.Millisecond,
		BarWidth:     1,
		Seed:         11,
	}
}

func TestSessionPhases(t *testing.T) {
	cfg := testConfig(sorting.KindBubble)
	cfg.Countdown = 2
	r := newRecordingRenderer()
	sound := NewToneEmitter(0.5)

	s, err := NewSession(cfg, []int{3, 1, 2}, Collaborators{Renderer: r, Sound: sound}, nil)
	require.NoError(t, err)
	assert.Equal(t, PhaseCountdown, s.Phase())
	assert.Equal(t, CountdownInterval, s.Interval())
	assert.Equal(t, 1, r.resets)

	for i := 0; i < 2; i++ {
		_, err := s.Advance()
		require.NoError(t, err)
	}
	assert.Equal(t, PhaseStepping, s.Phase())
	assert.Equal(t, time.Millisecond, s.Interval())

	for s.Phase() == PhaseStepping {
		_, err := s.Advance()
		require.NoError(t, err)
	}
	assert.Equal(t, PhaseSweeping, s.Phase())
	assert.Equal(t, []int{1, 2, 3}, s.Values())
	assert.Equal(t, 4, r.applied[PhaseStepping])

	for s.Active() {
		_, err := s.Advance()
		require.NoError(t, err)
	}
	assert.Equal(t, PhaseDone, s.Phase())
	assert.True(t, r.finished)
	assert.Equal(t, 3, r.applied[PhaseSweeping])

	// metrics never decrease across ticks
	for i := 1; i < len(r.statuses); i++ {
		assert.GreaterOrEqual(t, r.statuses[i].Comparisons, r.statuses[i-1].Comparisons)
		assert.GreaterOrEqual(t, r.statuses[i].Accesses, r.statuses[i-1].Accesses)
	}

	res, err := s.Advance()
	require.NoError(t, err)
	assert.True(t, res.Finished)

	last, ok := sound.Last()
	require.True(t, ok)
	assert.Equal(t, 200+2*float64(last.Value), last.Hz)
	assert.Equal(t, []int{3, 1, 2}, s.initial)
}

func TestSessionRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  func() RunConfig
		want error
	}{
		{name: "merge", cfg: func() RunConfig { return testConfig(sorting.KindMerge) }, want: sorting.ErrUnsupportedAlgorithm},
		{name: "unknown", cfg: func() RunConfig { return testConfig(sorting.Kind(9)) }, want: sorting.ErrUnknownAlgorithm},
		{name: "zero interval", cfg: func() RunConfig {
			c := testConfig(sorting.KindBubble)
			c.TickInterval = 0
			return c
		}, want: sorting.ErrInvalidConfig},
		{name: "zero bar width", cfg: func() RunConfig {
			c := testConfig(sorting.KindBubble)
			c.BarWidth = 0
			return c
		}, want: sorting.ErrInvalidConfig},
		{name: "bad arrangement", cfg: func() RunConfig {
			c := testConfig(sorting.KindBubble)
			c.Arrangement = "spiral"
			return c
		}, want: sorting.ErrUnknownArrangement},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSession(tt.cfg(), []int{2, 1}, Collaborators{}, nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestSessionCancel(t *testing.T) {
	s, err := NewSession(testConfig(sorting.KindSelection), []int{2, 1}, Collaborators{}, nil)
	require.NoError(t, err)
	_, err = s.Advance()
	require.NoError(t, err)

	s.Cancel()
	assert.False(t, s.Active())
	_, err = s.Advance()
	assert.ErrorIs(t, err, ErrSessionClosed)
	assert.Equal(t, "cancelled", s.Report().Phase)
}

func TestNewSessionStartsWithZeroMetrics(t *testing.T) {
	values := []int{5, 4, 3}
	first, err := NewSession(testConfig(sorting.KindBubble), values, Collaborators{}, nil)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := first.Advance()
		require.NoError(t, err)
	}
	assert.NotZero(t, first.Metrics().Comparisons)
	first.Cancel()

	second, err := NewSession(testConfig(sorting.KindBubble), first.Values(), Collaborators{}, nil)
	require.NoError(t, err)
	assert.Equal(t, metrics.Snapshot{}, second.Metrics())
	assert.NotEqual(t, first.ID(), second.ID())
}

func TestPrepare(t *testing.T) {
	cfg := testConfig(sorting.KindBubble)
	cfg.Arrangement = "reversed"
	values, err := Prepare(cfg, 5, 60)
	require.NoError(t, err)
	assert.Equal(t, []int{50, 40, 30, 20, 10}, values)

	cfg.Arrangement = ""
	values, err = Prepare(cfg, 5, 60)
	require.NoError(t, err)
	assert.Len(t, values, 5)

	cfg.Arrangement = "spiral"
	_, err = Prepare(cfg, 5, 60)
	assert.ErrorIs(t, err, sorting.ErrUnknownArrangement)
}

func TestToneEmitterMuted(t *testing.T) {
	e := NewToneEmitter(0)
	e.Play(1, 10)
	_, ok := e.Last()
	assert.False(t, ok)
	assert.Equal(t, 0, e.Played())

	var got []Tone
	e = NewToneEmitter(1)
	e.Sink = func(t Tone) { got = append(got, t) }
	e.Play(0, 1)
	e.Play(1, 5)
	require.Len(t, got, 2)
	assert.Less(t, got[0].Hz, got[1].Hz)
}
