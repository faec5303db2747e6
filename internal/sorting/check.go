package sorting

import "fmt"

// IsSorted reports whether values is non-decreasing
func IsSorted(values []int) bool {
	for i := 0; i+1 < len(values); i++ {
		if values[i] > values[i+1] {
			return false
		}
	}
	return true
}

// Sortedness returns the fraction of adjacent pairs already in order,
// 1 for arrays shorter than two
func Sortedness(values []int) float64 {
	if len(values) < 2 {
		return 1
	}
	ordered := 0
	for i := 0; i+1 < len(values); i++ {
		if values[i] <= values[i+1] {
			ordered++
		}
	}
	return float64(ordered) / float64(len(values)-1)
}

// SameMultiset reports whether a and b hold the same values with the same
// multiplicities
func SameMultiset(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[int]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}
	return true
}

// VerifyFinished checks a finished run against its starting values
func VerifyFinished(kind Kind, initial, final []int) error {
	if !SameMultiset(initial, final) {
		return &InvariantError{Op: kind.String() + ".finish", Length: len(final),
			Detail: "values were created or lost during the run"}
	}
	for i := 0; i+1 < len(final); i++ {
		if final[i] > final[i+1] {
			return &InvariantError{Op: kind.String() + ".finish", Index: i, Length: len(final),
				Detail: fmt.Sprintf("finished with inversion at %d (%d > %d)", i, final[i], final[i+1])}
		}
	}
	return nil
}
