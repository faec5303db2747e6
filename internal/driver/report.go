package driver

import (
	"time"

	"github.com/yildizm/SortVis/internal/metrics"
	"github.com/yildizm/SortVis/internal/sorting"
)

// Report summarizes a finished, failed or abandoned session
type Report struct {
	RunID       string           `json:"run_id"`
	Algorithm   string           `json:"algorithm"`
	Arrangement string           `json:"arrangement"`
	Size        int              `json:"size"`
	Phase       string           `json:"phase"`
	Sorted      bool             `json:"sorted"`
	Sortedness  float64          `json:"sortedness"`
	Metrics     metrics.Snapshot `json:"metrics"`
	Duration    time.Duration    `json:"duration_ns"`
	Error       string           `json:"error,omitempty"`
}

// Report builds the summary of the session as it stands
func (s *Session) Report() *Report {
	arrangement := s.cfg.Arrangement
	if arrangement == "" {
		arrangement = "random"
	}
	r := &Report{
		RunID:       s.id,
		Algorithm:   s.cfg.Algorithm.String(),
		Arrangement: arrangement,
		Size:        len(s.arr),
		Phase:       s.phase.String(),
		Sorted:      s.phase == PhaseDone || s.phase == PhaseSweeping,
		Sortedness:  sorting.Sortedness(s.arr),
		Metrics:     s.metrics.Snapshot(),
		Duration:    s.Elapsed(),
	}
	if s.err != nil {
		r.Error = s.err.Error()
	}
	return r
}
