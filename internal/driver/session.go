package driver

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/yildizm/SortVis/internal/logger"
	"github.com/yildizm/SortVis/internal/metrics"
	"github.com/yildizm/SortVis/internal/sorting"
)

// CountdownInterval is the period of countdown ticks
const CountdownInterval = time.Second

// ErrSessionClosed is returned when a cancelled session is advanced
var ErrSessionClosed = errors.New("session cancelled")

// Session is one run: it owns the array, the stepper and then the sweep,
// and advances whichever is active by one tick per Advance call. A session
// is not safe for concurrent use; the scheduler driving it guarantees a
// single tick in flight.
type Session struct {
	id      string
	cfg     RunConfig
	initial []int
	arr     []int

	metrics *metrics.Metrics
	stepper *sorting.Stepper
	sweep   *sorting.Sweep

	phase     Phase
	countdown int
	err       error

	renderer Renderer
	sound    SoundEmitter
	log      *logger.Logger

	startedAt  time.Time
	finishedAt time.Time
	clock      func() time.Time
}

// NewSession validates cfg and binds a fresh stepper to values. The session
// takes ownership of values.
func NewSession(cfg RunConfig, values []int, collab Collaborators, log *logger.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Nop()
	}

	m := metrics.New()
	stepper, err := sorting.New(cfg.Algorithm, values, m, newRand(cfg.Seed))
	if err != nil {
		return nil, err
	}

	s := &Session{
		id:        uuid.NewString(),
		cfg:       cfg,
		initial:   append([]int(nil), values...),
		arr:       values,
		metrics:   m,
		stepper:   stepper,
		countdown: cfg.Countdown,
		renderer:  collab.Renderer,
		sound:     collab.Sound,
		clock:     time.Now,
	}
	if s.renderer == nil {
		s.renderer = nopRenderer{}
	}
	if s.sound == nil {
		s.sound = nopSound{}
	}
	s.log = log.WithComponent("session")
	if s.countdown == 0 {
		s.phase = PhaseStepping
	}

	s.renderer.Reset(s.Values())
	s.renderer.Status(s.Title(), m.Snapshot())
	s.log.InfoWithFields("run created", []logger.Field{
		logger.F("run_id", s.id),
		logger.F("algorithm", cfg.Algorithm.String()),
		logger.F("arrangement", cfg.Arrangement),
		logger.Count(len(values)),
		logger.F("interval", cfg.TickInterval),
	})
	return s, nil
}

// Prepare builds the starting values for a run: n increasing heights under
// maxHeight, ordered by the configured arrangement.
func Prepare(cfg RunConfig, n, maxHeight int) ([]int, error) {
	name := cfg.Arrangement
	if name == "" {
		name = "random"
	}
	arrangement, err := sorting.ParseArrangement(name)
	if err != nil {
		return nil, err
	}
	values := sorting.BuildHeights(n, maxHeight)
	arrangement.Arrange(values, newRand(cfg.Seed^0x9e3779b97f4a7c15))
	return values, nil
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

// ID returns the run id
func (s *Session) ID() string { return s.id }

// Config returns the immutable run configuration
func (s *Session) Config() RunConfig { return s.cfg }

// Phase returns the current phase
func (s *Session) Phase() Phase { return s.phase }

// Err returns the error that failed the run, if any
func (s *Session) Err() error { return s.err }

// Countdown returns the remaining countdown ticks
func (s *Session) Countdown() int { return s.countdown }

// Metrics returns a snapshot of the run counters
func (s *Session) Metrics() metrics.Snapshot { return s.metrics.Snapshot() }

// Len returns the array length
func (s *Session) Len() int { return len(s.arr) }

// Values returns a copy of the array
func (s *Session) Values() []int {
	out := make([]int, len(s.arr))
	copy(out, s.arr)
	return out
}

// Title is the status line heading
func (s *Session) Title() string {
	return s.cfg.Algorithm.DisplayName()
}

// Active reports whether the session still wants ticks
func (s *Session) Active() bool {
	return !s.phase.Terminal()
}

// Interval returns the delay before the next tick of the current phase
func (s *Session) Interval() time.Duration {
	switch s.phase {
	case PhaseCountdown:
		return CountdownInterval
	case PhaseSweeping:
		return s.cfg.sweepInterval()
	default:
		return s.cfg.TickInterval
	}
}

// Cancel stops the session. Pending ticks become no-ops.
func (s *Session) Cancel() {
	if s.phase.Terminal() {
		return
	}
	s.phase = PhaseCancelled
	s.finishedAt = s.clock()
	s.log.Debug("run %s cancelled", s.id)
}

// Advance runs exactly one tick of the current phase and forwards the
// result to the collaborators.
func (s *Session) Advance() (sorting.StepResult, error) {
	switch s.phase {
	case PhaseCountdown:
		return s.advanceCountdown(), nil
	case PhaseStepping:
		return s.advanceStepper()
	case PhaseSweeping:
		return s.advanceSweep(), nil
	case PhaseFailed:
		return sorting.StepResult{}, s.err
	case PhaseCancelled:
		return sorting.StepResult{}, ErrSessionClosed
	default:
		return sorting.StepResult{Finished: true}, nil
	}
}

func (s *Session) advanceCountdown() sorting.StepResult {
	s.countdown--
	if s.countdown <= 0 {
		s.countdown = 0
		s.phase = PhaseStepping
	}
	return sorting.StepResult{}
}

func (s *Session) advanceStepper() (sorting.StepResult, error) {
	if s.startedAt.IsZero() {
		s.startedAt = s.clock()
	}
	s.metrics.AddStep()

	res, err := s.stepper.Tick()
	if err != nil {
		return sorting.StepResult{}, s.fail(err)
	}

	s.renderer.Apply(PhaseStepping, res)
	s.play(res.Tones)
	s.renderer.Status(s.Title(), s.metrics.Snapshot())

	if res.Finished {
		if err := sorting.VerifyFinished(s.cfg.Algorithm, s.initial, s.arr); err != nil {
			return res, s.fail(err)
		}
		snap := s.metrics.Snapshot()
		s.log.InfoWithFields("stepper finished", []logger.Field{
			logger.F("run_id", s.id),
			logger.F("steps", snap.Steps),
			logger.F("comparisons", snap.Comparisons),
			logger.F("accesses", snap.Accesses),
		})
		s.stepper = nil
		s.sweep = sorting.NewSweep(s.arr)
		s.phase = PhaseSweeping
		res.Finished = false
	}
	return res, nil
}

func (s *Session) advanceSweep() sorting.StepResult {
	res := s.sweep.Tick()
	s.renderer.Apply(PhaseSweeping, res)
	s.play(res.Tones)
	if res.Finished {
		s.phase = PhaseDone
		s.finishedAt = s.clock()
		s.log.Debug("run %s complete after %v", s.id, s.Elapsed())
	}
	return res
}

func (s *Session) play(indices []int) {
	for _, i := range indices {
		if i >= 0 && i < len(s.arr) {
			s.sound.Play(i, s.arr[i])
		}
	}
}

func (s *Session) fail(err error) error {
	s.phase = PhaseFailed
	s.err = fmt.Errorf("%s tick failed: %w", s.cfg.Algorithm.DisplayName(), err)
	s.finishedAt = s.clock()
	s.log.ErrorWithFields("run aborted", []logger.Field{logger.F("run_id", s.id), logger.Error(err)})
	return s.err
}

// Elapsed is the time since the stepper's first tick
func (s *Session) Elapsed() time.Duration {
	if s.startedAt.IsZero() {
		return 0
	}
	end := s.finishedAt
	if end.IsZero() {
		end = s.clock()
	}
	return end.Sub(s.startedAt)
}
