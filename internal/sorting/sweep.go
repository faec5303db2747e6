package sorting

// Sweep is the post-sort reveal: a cursor moving left to right that marks
// every bar it passes as sorted. It never writes to the array.
type Sweep struct {
	arr  []int
	p    int
	done bool
}

// NewSweep creates a sweep over the finished array
func NewSweep(arr []int) *Sweep {
	return &Sweep{arr: arr, p: 1}
}

// Position returns the cursor
func (w *Sweep) Position() int {
	return w.p
}

// Done reports whether the sweep completed its pass
func (w *Sweep) Done() bool {
	return w.done
}

// Tick marks p-1 sorted and p active, then advances. The tick that finds
// the cursor at the end marks the last bar and finishes.
func (w *Sweep) Tick() StepResult {
	var res StepResult
	if w.done {
		res.Finished = true
		return res
	}

	n := len(w.arr)
	if w.p >= n {
		if n > 0 {
			res.highlight(n-1, RoleSorted)
		}
		w.done = true
		res.Finished = true
		return res
	}

	res.highlight(w.p-1, RoleSorted)
	res.highlight(w.p, RoleSwap)
	res.Tones = append(res.Tones, w.p)
	w.p++
	return res
}
