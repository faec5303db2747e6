package sorting

// bubbleState is the progress of a bubble sort run.
// Pairs (i, i+1) are compared while i < h; indices past h are final.
type bubbleState struct {
	h       int
	i       int
	swapped bool
	passes  int
}

func newBubbleState(n int) bubbleState {
	h := n - 1
	if h < 0 {
		h = 0
	}
	return bubbleState{h: h}
}

func (s *Stepper) tickBubble() (StepResult, error) {
	st := &s.bubble
	var res StepResult

	if st.i >= st.h {
		// pass boundary: index h now holds its final value
		if st.h < len(s.arr) {
			res.highlight(st.h, RoleSorted)
		}
		if !st.swapped || st.h <= 1 {
			if st.h == 1 {
				res.highlight(0, RoleSorted)
			}
			res.Finished = true
			return res, nil
		}
		st.h--
		st.i = 0
		st.swapped = false
		st.passes++
	}

	a, err := s.read("bubble.compare", st.i)
	if err != nil {
		return StepResult{}, err
	}
	b, err := s.read("bubble.compare", st.i+1)
	if err != nil {
		return StepResult{}, err
	}
	s.metrics.AddComparisons(1)

	// equal neighbours never swap
	if a > b {
		if err := s.swap("bubble.swap", st.i, st.i+1); err != nil {
			return StepResult{}, err
		}
		st.swapped = true
		res.changePair(s.arr, st.i, st.i+1)
		res.highlight(st.i, RoleCompare)
		res.highlight(st.i+1, RoleSwap)
		res.Tones = append(res.Tones, st.i)
	} else {
		res.highlight(st.i, RoleCompare)
		res.highlight(st.i+1, RoleCompare)
	}
	st.i++
	return res, nil
}
