package sorting

import (
	"fmt"
	"math/rand/v2"

	"github.com/yildizm/SortVis/internal/metrics"
)

// Stepper is a resumable, single-step state machine for one sorting run.
// The variant is selected by kind; only the matching state record is used.
// A Stepper owns its array until the run ends and must not be ticked
// concurrently.
type Stepper struct {
	kind    Kind
	arr     []int
	metrics *metrics.Metrics
	rng     *rand.Rand
	done    bool

	bubble    bubbleState
	selection selectionState
}

// New binds a stepper of the given kind to arr. The metrics are reset so
// every run starts from zero. rng is only used by randomized variants and
// may be nil otherwise.
func New(kind Kind, arr []int, m *metrics.Metrics, rng *rand.Rand) (*Stepper, error) {
	if _, ok := kinds[kind]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, kind)
	}
	if !kind.Supported() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, kind.DisplayName())
	}
	if m == nil {
		m = metrics.New()
	}
	m.Reset()

	s := &Stepper{kind: kind, arr: arr, metrics: m, rng: rng}
	switch kind {
	case KindBubble:
		s.bubble = newBubbleState(len(arr))
	case KindSelection:
		s.selection = selectionState{}
	case KindBogo:
		if rng == nil {
			return nil, fmt.Errorf("%w: bogo sort needs a random source", ErrInvalidConfig)
		}
	}
	return s, nil
}

// Kind returns the algorithm variant
func (s *Stepper) Kind() Kind {
	return s.kind
}

// Done reports whether a tick has signaled finished
func (s *Stepper) Done() bool {
	return s.done
}

// Len returns the array length
func (s *Stepper) Len() int {
	return len(s.arr)
}

// Values returns a copy of the current array
func (s *Stepper) Values() []int {
	out := make([]int, len(s.arr))
	copy(out, s.arr)
	return out
}

// Metrics returns the counters this stepper updates
func (s *Stepper) Metrics() *metrics.Metrics {
	return s.metrics
}

// Tick performs exactly one unit of algorithm work. Once finished, further
// ticks do nothing and keep reporting finished.
func (s *Stepper) Tick() (StepResult, error) {
	if s.done {
		return StepResult{Finished: true}, nil
	}

	var (
		res StepResult
		err error
	)
	switch s.kind {
	case KindBubble:
		res, err = s.tickBubble()
	case KindSelection:
		res, err = s.tickSelection()
	case KindBogo:
		res, err = s.tickBogo()
	case KindMerge:
		return StepResult{}, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, s.kind.DisplayName())
	default:
		return StepResult{}, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, s.kind)
	}
	if err != nil {
		return StepResult{}, err
	}
	if res.Finished {
		s.done = true
	}
	return res, nil
}

// read returns arr[i], counting one access
func (s *Stepper) read(op string, i int) (int, error) {
	if i < 0 || i >= len(s.arr) {
		return 0, outOfRange(op, i, len(s.arr))
	}
	s.metrics.AddAccesses(1)
	return s.arr[i], nil
}

// swap exchanges arr[i] and arr[j], counting three accesses
func (s *Stepper) swap(op string, i, j int) error {
	if i < 0 || i >= len(s.arr) {
		return outOfRange(op, i, len(s.arr))
	}
	if j < 0 || j >= len(s.arr) {
		return outOfRange(op, j, len(s.arr))
	}
	s.arr[i], s.arr[j] = s.arr[j], s.arr[i]
	s.metrics.AddAccesses(3)
	return nil
}
