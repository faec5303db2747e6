package sorting

import "sort"

// Role describes how a highlighted bar should be presented
type Role int

const (
	RoleUnsorted Role = iota
	RoleCompare
	RoleSwap
	RoleSorted
)

func (r Role) String() string {
	switch r {
	case RoleCompare:
		return "compare"
	case RoleSwap:
		return "swap"
	case RoleSorted:
		return "sorted"
	default:
		return "unsorted"
	}
}

// Change is the new value written at an index during a tick
type Change struct {
	Index int `json:"index"`
	Value int `json:"value"`
}

// Highlight marks an index with a presentation role
type Highlight struct {
	Index int  `json:"index"`
	Role  Role `json:"role"`
}

// StepResult is emitted by every tick. It only describes indices the tick
// touched, so consumers can redraw incrementally.
type StepResult struct {
	// Changed holds one entry per written index, ordered by index.
	Changed     []Change    `json:"changed,omitempty"`
	Highlighted []Highlight `json:"highlighted,omitempty"`
	// Tones lists indices whose current value should be voiced.
	Tones    []int `json:"tones,omitempty"`
	Finished bool  `json:"finished"`
}

// ChangedIndex reports whether idx was written during the tick
func (r *StepResult) ChangedIndex(idx int) bool {
	i := sort.Search(len(r.Changed), func(i int) bool { return r.Changed[i].Index >= idx })
	return i < len(r.Changed) && r.Changed[i].Index == idx
}

func (r *StepResult) highlight(idx int, role Role) {
	r.Highlighted = append(r.Highlighted, Highlight{Index: idx, Role: role})
}

// changeRange records arr[lo..hi] as changed
func (r *StepResult) changeRange(arr []int, lo, hi int) {
	for i := lo; i <= hi; i++ {
		r.Changed = append(r.Changed, Change{Index: i, Value: arr[i]})
	}
}

// changePair records two distinct indices in ascending order
func (r *StepResult) changePair(arr []int, a, b int) {
	if a > b {
		a, b = b, a
	}
	r.Changed = append(r.Changed, Change{Index: a, Value: arr[a]}, Change{Index: b, Value: arr[b]})
}
