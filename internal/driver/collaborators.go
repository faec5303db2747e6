package driver

import (
	"github.com/yildizm/SortVis/internal/metrics"
	"github.com/yildizm/SortVis/internal/sorting"
)

// Renderer draws the bars. It is handed the values at run start and the
// per-tick results afterwards, and must never mutate the array.
type Renderer interface {
	Reset(values []int)
	Apply(phase Phase, res sorting.StepResult)
	Status(title string, snap metrics.Snapshot)
}

// SoundEmitter voices a bar. Pitch rises with value; nothing is returned.
type SoundEmitter interface {
	Play(index, value int)
}

// Collaborators groups the outputs of a session. Nil members are skipped.
type Collaborators struct {
	Renderer Renderer
	Sound    SoundEmitter
}

type nopRenderer struct{}

func (nopRenderer) Reset([]int)                     {}
func (nopRenderer) Apply(Phase, sorting.StepResult) {}
func (nopRenderer) Status(string, metrics.Snapshot) {}

type nopSound struct{}

func (nopSound) Play(int, int) {}
