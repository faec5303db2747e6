package sorting

import "math/rand/v2"

// tickBogo checks the array for its first adjacent inversion and reshuffles
// it when one exists. Bogo sort keeps no progress beyond the array.
func (s *Stepper) tickBogo() (StepResult, error) {
	var res StepResult

	inversion := -1
	for i := 0; i+1 < len(s.arr); i++ {
		a, err := s.read("bogo.check", i)
		if err != nil {
			return StepResult{}, err
		}
		b, err := s.read("bogo.check", i+1)
		if err != nil {
			return StepResult{}, err
		}
		s.metrics.AddComparisons(1)
		if a > b {
			inversion = i
			break
		}
	}

	if inversion < 0 {
		res.Finished = true
		return res, nil
	}

	res.highlight(inversion, RoleSwap)
	res.highlight(inversion+1, RoleSwap)

	Shuffle(s.arr, s.rng)
	s.metrics.AddAccesses(len(s.arr))
	res.changeRange(s.arr, 0, len(s.arr)-1)
	return res, nil
}

// Shuffle permutes values uniformly at random in place (Fisher-Yates)
func Shuffle(values []int, rng *rand.Rand) {
	for i := len(values) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		values[i], values[j] = values[j], values[i]
	}
}
