package sorting

import "fmt"

// selectionState is the progress of a selection sort run.
// arr[:i] is the sorted prefix, j is the next index to probe and k the
// index of the smallest value seen since the scan for i began.
type selectionState struct {
	i      int
	j      int
	k      int
	min    int
	hasMin bool
}

func (s *Stepper) tickSelection() (StepResult, error) {
	st := &s.selection
	var res StepResult

	if st.i >= len(s.arr) {
		res.Finished = true
		return res, nil
	}

	v, err := s.read("selection.probe", st.j)
	if err != nil {
		return StepResult{}, err
	}
	if st.hasMin {
		s.metrics.AddComparisons(1)
	}
	if !st.hasMin || v < st.min {
		st.min = v
		st.k = st.j
		st.hasMin = true
	}
	res.highlight(st.j, RoleCompare)
	if st.k != st.j {
		res.highlight(st.k, RoleSwap)
	}
	st.j++

	if st.j < len(s.arr) {
		return res, nil
	}

	// scan complete: move the minimum to the front of the unsorted part
	if err := s.moveSelection(st.k, st.i); err != nil {
		return StepResult{}, err
	}
	if st.k > st.i {
		res.changeRange(s.arr, st.i, st.k)
		res.Tones = append(res.Tones, st.i)
	}
	res.Highlighted = res.Highlighted[:0]
	res.highlight(st.i, RoleSorted)

	st.i++
	st.j = st.i
	st.k = st.i
	st.hasMin = false
	st.min = 0
	return res, nil
}

// moveSelection removes arr[from] and reinserts it at to (to <= from),
// shifting arr[to:from] one place right. The shifted segment is verified
// afterwards so no value can be lost or duplicated.
func (s *Stepper) moveSelection(from, to int) error {
	n := len(s.arr)
	if from < 0 || from >= n {
		return outOfRange("selection.move", from, n)
	}
	if to < 0 || to >= n {
		return outOfRange("selection.move", to, n)
	}
	if to > from {
		return &InvariantError{Op: "selection.move", Index: to, Length: n,
			Detail: fmt.Sprintf("destination %d is past source %d", to, from)}
	}
	if to == from {
		return nil
	}

	before := make([]int, from-to+1)
	copy(before, s.arr[to:from+1])

	e := s.arr[from]
	copy(s.arr[to+1:from+1], s.arr[to:from])
	s.arr[to] = e
	s.metrics.AddAccesses(2*(from-to) + 2)

	if s.arr[to] != before[len(before)-1] {
		return &InvariantError{Op: "selection.move", Index: to, Length: n,
			Detail: fmt.Sprintf("expected %d at %d, found %d", before[len(before)-1], to, s.arr[to])}
	}
	for off := 0; off < len(before)-1; off++ {
		if s.arr[to+1+off] != before[off] {
			return &InvariantError{Op: "selection.move", Index: to + 1 + off, Length: n,
				Detail: "multiset changed while shifting"}
		}
	}
	return nil
}
