package ui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yildizm/SortVis/internal/config"
	"github.com/yildizm/SortVis/internal/driver"
	"github.com/yildizm/SortVis/internal/sorting"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Run.Countdown = 0
	cfg.Run.Size = 6
	cfg.Run.Seed = 7
	cfg.Run.TickInterval = time.Millisecond
	cfg.Sound.Enabled = false
	return cfg
}

func newTestModel(t *testing.T, cfg *config.Config) *Model {
	t.Helper()
	m := NewModel(Options{Config: cfg})
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// drain delivers live ticks until the session stops asking for them
func drain(t *testing.T, m *Model) {
	t.Helper()
	for i := 0; i < 100000 && m.session.Active(); i++ {
		m.Update(tickMsg{token: m.gen.Token()})
		require.NoError(t, m.Err())
	}
}

func TestModelRunsToCompletion(t *testing.T) {
	for _, kind := range sorting.SupportedKinds() {
		t.Run(kind.String(), func(t *testing.T) {
			cfg := testConfig()
			cfg.Run.Algorithm = kind.String()
			m := newTestModel(t, cfg)
			require.NotNil(t, m.session)

			drain(t, m)

			assert.Equal(t, driver.PhaseDone, m.session.Phase())
			assert.True(t, sorting.IsSorted(m.canvas.Values()))
			for i := range m.canvas.Values() {
				assert.Equal(t, sorting.RoleSorted, m.canvas.Role(i), "bar %d", i)
			}
		})
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	m := newTestModel(t, testConfig())
	stale := m.gen.Token()

	m.Update(runes("r"))
	_, cmd := m.Update(tickMsg{token: stale})

	assert.Nil(t, cmd)
	assert.Zero(t, m.session.Metrics().Steps)
}

func TestModelRestartCancelsPreviousSession(t *testing.T) {
	m := newTestModel(t, testConfig())
	first := m.session

	m.Update(runes("r"))

	assert.Equal(t, driver.PhaseCancelled, first.Phase())
	assert.NotSame(t, first, m.session)
	assert.True(t, m.session.Active())
}

func TestModelPause(t *testing.T) {
	m := newTestModel(t, testConfig())

	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	require.True(t, m.paused)

	_, cmd := m.Update(tickMsg{token: m.gen.Token()})
	assert.Nil(t, cmd)
	assert.Zero(t, m.session.Metrics().Steps)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.False(t, m.paused)
	assert.NotNil(t, cmd)
}

func TestModelCyclesAlgorithmAndArrangement(t *testing.T) {
	m := newTestModel(t, testConfig())

	m.Update(runes("a"))
	assert.Equal(t, sorting.KindSelection, m.session.Config().Algorithm)

	m.Update(runes("a"))
	m.Update(runes("a"))
	assert.Equal(t, sorting.KindBubble, m.session.Config().Algorithm)

	m.Update(runes("s"))
	assert.Equal(t, "reversed", m.session.Config().Arrangement)
}

func TestModelSpeedBounds(t *testing.T) {
	m := newTestModel(t, testConfig())

	m.Update(runes("+"))
	assert.Equal(t, time.Millisecond, m.session.Config().TickInterval)

	m.Update(runes("-"))
	assert.Equal(t, 2*time.Millisecond, m.session.Config().TickInterval)
}

func TestModelUnsupportedAlgorithm(t *testing.T) {
	cfg := testConfig()
	cfg.Run.Algorithm = "merge"
	m := newTestModel(t, cfg)

	assert.True(t, errors.Is(m.Err(), sorting.ErrUnsupportedAlgorithm))
	assert.Nil(t, m.session)
	assert.Contains(t, m.View(), "merge")
}

func TestModelAppliesReloadOnNextRun(t *testing.T) {
	m := newTestModel(t, testConfig())

	next := testConfig()
	next.Run.Algorithm = "bogo"
	m.Update(reloadMsg{Config: next})

	assert.Equal(t, sorting.KindBubble, m.session.Config().Algorithm)

	m.Update(runes("r"))
	assert.Equal(t, sorting.KindBogo, m.session.Config().Algorithm)
	assert.Nil(t, m.pending)
}

func TestModelReloadError(t *testing.T) {
	m := newTestModel(t, testConfig())

	m.Update(reloadMsg{Err: errors.New("bad yaml")})

	assert.Nil(t, m.pending)
	assert.Contains(t, m.notice, "bad yaml")
}

func TestModelCountdownView(t *testing.T) {
	cfg := testConfig()
	cfg.Run.Countdown = 2
	m := newTestModel(t, cfg)

	assert.Equal(t, driver.PhaseCountdown, m.session.Phase())
	assert.Equal(t, driver.CountdownInterval, m.session.Interval())

	m.Update(tickMsg{token: m.gen.Token()})
	assert.Equal(t, 1, m.session.Countdown())
	assert.Contains(t, m.View(), "1")
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, testConfig())
	first := m.session

	_, cmd := m.Update(runes("q"))

	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Equal(t, driver.PhaseCancelled, first.Phase())
}
