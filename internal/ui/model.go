package ui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/SortVis/internal/config"
	"github.com/yildizm/SortVis/internal/driver"
	"github.com/yildizm/SortVis/internal/emoji"
	"github.com/yildizm/SortVis/internal/logger"
	"github.com/yildizm/SortVis/internal/sorting"
)

// chromeRows is the number of lines around the bars: header, status,
// notice and help
const chromeRows = 4

const (
	minInterval = time.Millisecond
	maxInterval = time.Second
)

// tickMsg fires a scheduled tick. Token ties it to the schedule it was
// armed under, so ticks armed before a restart or pause are dropped.
type tickMsg struct {
	token uint64
}

type reloadMsg config.Reload

// Options configures the TUI
type Options struct {
	Config  *config.Config
	Watcher *config.Watcher
	Sound   *driver.ToneEmitter
	Logger  *logger.Logger
}

// Model is the bubbletea model driving one visualization at a time
type Model struct {
	width  int
	height int
	ready  bool

	cfg     config.Config
	pending *config.Config
	watcher *config.Watcher

	session *driver.Session
	canvas  *Canvas
	gen     driver.Generation

	sound  *driver.ToneEmitter
	volume float64

	keys   keyMap
	help   help.Model
	styles *Styles
	log    *logger.Logger

	paused   bool
	quitting bool
	notice   string
	err      error
}

// NewModel creates the TUI model. The first run starts once the terminal
// size is known.
func NewModel(opts Options) *Model {
	cfg := config.DefaultConfig()
	if opts.Config != nil {
		cfg = opts.Config
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	sound := opts.Sound
	if sound == nil {
		sound = cfg.ToneEmitter()
	}
	SetThemeByName(cfg.Output.Theme)

	return &Model{
		cfg:     *cfg,
		watcher: opts.Watcher,
		sound:   sound,
		volume:  sound.Volume,
		keys:    defaultKeyMap(),
		help:    help.New(),
		styles:  GetStyles(),
		log:     log.WithComponent("ui"),
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		waitForReload(m.watcher),
	)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		// the array length is fixed per run, so a resize starts over
		return m, m.startRun()

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tickMsg:
		return m, m.handleTick(msg)

	case reloadMsg:
		m.handleReload(config.Reload(msg))
		return m, waitForReload(m.watcher)
	}

	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Pause):
		return m, m.togglePause()

	case key.Matches(msg, m.keys.Restart):
		return m, m.startRun()

	case key.Matches(msg, m.keys.Faster):
		return m, m.setInterval(m.cfg.Run.TickInterval / 2)

	case key.Matches(msg, m.keys.Slower):
		return m, m.setInterval(m.cfg.Run.TickInterval * 2)

	case key.Matches(msg, m.keys.Algorithm):
		m.cfg.Run.Algorithm = nextAlgorithm(m.cfg.Run.Algorithm)
		return m, m.startRun()

	case key.Matches(msg, m.keys.Arrangement):
		m.cfg.Run.Arrangement = nextArrangement(m.cfg.Run.Arrangement)
		return m, m.startRun()

	case key.Matches(msg, m.keys.Mute):
		if m.sound.Volume > 0 {
			m.sound.Volume = 0
		} else {
			m.sound.Volume = m.volume
		}
	}
	return m, nil
}

// startRun cancels any pending tick and the previous session before a new
// session takes over the array
func (m *Model) startRun() tea.Cmd {
	m.stop()
	m.err = nil
	m.paused = false

	if m.pending != nil {
		m.cfg = *m.pending
		m.pending = nil
		SetThemeByName(m.cfg.Output.Theme)
		m.styles = GetStyles()
		m.notice = "reloaded configuration applied"
	}

	rc, err := m.cfg.ToRunConfig()
	if err != nil {
		m.err = err
		return nil
	}

	n := m.cfg.Run.Size
	if n <= 0 {
		n = sorting.BarCount(m.width, rc.BarWidth)
	}
	values, err := driver.Prepare(rc, n, m.barHeight())
	if err != nil {
		m.err = err
		return nil
	}

	m.canvas = NewCanvas(rc.BarWidth)
	s, err := driver.NewSession(rc, values, driver.Collaborators{Renderer: m.canvas, Sound: m.sound}, m.log)
	if err != nil {
		m.err = err
		return nil
	}
	m.session = s
	return m.schedule()
}

func (m *Model) stop() {
	m.gen.Cancel()
	if m.session != nil {
		m.session.Cancel()
	}
}

// schedule arms the next tick of the live session
func (m *Model) schedule() tea.Cmd {
	if m.session == nil || !m.session.Active() || m.paused {
		return nil
	}
	token := m.gen.Token()
	return tea.Tick(m.session.Interval(), func(time.Time) tea.Msg {
		return tickMsg{token: token}
	})
}

func (m *Model) handleTick(msg tickMsg) tea.Cmd {
	if !m.gen.Valid(msg.token) || m.paused || m.session == nil {
		return nil
	}
	if _, err := m.session.Advance(); err != nil {
		m.err = err
		return nil
	}
	if !m.session.Active() {
		m.log.Info("run %s finished in %v", m.session.ID(), m.session.Elapsed())
		return nil
	}
	return m.schedule()
}

func (m *Model) togglePause() tea.Cmd {
	if m.session == nil || !m.session.Active() {
		return nil
	}
	m.paused = !m.paused
	if m.paused {
		m.gen.Cancel()
		return nil
	}
	return m.schedule()
}

func (m *Model) setInterval(d time.Duration) tea.Cmd {
	d = min(max(d, minInterval), maxInterval)
	if d == m.cfg.Run.TickInterval {
		return nil
	}
	m.cfg.Run.TickInterval = d
	return m.startRun()
}

func (m *Model) handleReload(r config.Reload) {
	if r.Err != nil {
		m.log.Warn("config reload failed: %v", r.Err)
		m.notice = emoji.GetEmoji("warning") + " config reload failed: " + r.Err.Error()
		return
	}
	m.pending = r.Config
	m.notice = emoji.GetEmoji("info") + " configuration changed, press r to apply"
}

func waitForReload(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case r := <-w.Updates():
			return reloadMsg(r)
		case <-w.Done():
			return nil
		}
	}
}

func nextAlgorithm(current string) string {
	kinds := sorting.SupportedKinds()
	k, err := sorting.ParseKind(current)
	i := slices.Index(kinds, k)
	if err != nil || i < 0 {
		return kinds[0].String()
	}
	return kinds[(i+1)%len(kinds)].String()
}

func nextArrangement(current string) string {
	names := sorting.Arrangements()
	i := slices.Index(names, current)
	return names[(i+1)%len(names)]
}

func (m *Model) barHeight() int {
	return max(1, m.height-chromeRows)
}

// View renders the model
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.quitting {
		return "Thanks for using SortVis! " + emoji.GetEmoji("door") + "\n"
	}

	helpView := m.help.View(m.keys)
	bars := max(1, m.height-chromeRows-(lipgloss.Height(helpView)-1))

	sections := []string{m.renderHeader(), m.renderBody(bars), m.renderStatus(), m.renderNotice(), helpView}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderHeader() string {
	title := m.styles.Title.Render(emoji.GetEmoji("run") + " SortVis")
	if m.session == nil {
		return title
	}
	rc := m.session.Config()
	state := m.session.Phase().String()
	if m.paused {
		state = "paused"
	}
	details := fmt.Sprintf("%s  %s  %v  %s", rc.Algorithm.DisplayName(), rc.Arrangement, rc.TickInterval, state)
	return title + m.styles.Muted.Render(details)
}

func (m *Model) renderBody(height int) string {
	if m.session == nil || m.canvas == nil {
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, "")
	}
	if m.session.Phase() == driver.PhaseCountdown {
		count := m.styles.Countdown.Render(fmt.Sprintf("%d", m.session.Countdown()))
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, count)
	}
	return m.canvas.Render(m.styles, height)
}

func (m *Model) renderStatus() string {
	if m.canvas == nil {
		return ""
	}
	parts := []string{m.canvas.StatusLine()}
	if tone, ok := m.sound.Last(); ok && m.sound.Volume > 0 {
		parts = append(parts, fmt.Sprintf("%s %.0f Hz", emoji.GetEmoji("sound"), tone.Hz))
	} else if m.sound.Volume <= 0 {
		parts = append(parts, emoji.GetEmoji("mute"))
	}
	return m.styles.Status.Render(strings.Join(parts, "  "))
}

func (m *Model) renderNotice() string {
	switch {
	case m.err != nil:
		return m.styles.Error.Render(emoji.GetEmoji("error") + " " + m.err.Error())
	case m.session != nil && m.session.Phase() == driver.PhaseDone:
		return m.styles.Success.Render(emoji.GetEmoji("done") + " sorted")
	default:
		return m.styles.Muted.Render(m.notice)
	}
}

// Err returns the error that stopped the last run, if any
func (m *Model) Err() error {
	return m.err
}

// Run starts the TUI and blocks until the user quits
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
