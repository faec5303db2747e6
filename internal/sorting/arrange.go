package sorting

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
)

// Arrangement prepares the starting order of a run. New strategies can be
// registered without touching any stepper.
type Arrangement interface {
	Name() string
	Arrange(values []int, rng *rand.Rand)
}

type randomArrangement struct{}

func (randomArrangement) Name() string { return "random" }

func (randomArrangement) Arrange(values []int, rng *rand.Rand) {
	Shuffle(values, rng)
}

type reversedArrangement struct{}

func (reversedArrangement) Name() string { return "reversed" }

func (reversedArrangement) Arrange(values []int, _ *rand.Rand) {
	sort.Sort(sort.Reverse(sort.IntSlice(values)))
}

type sortedArrangement struct{}

func (sortedArrangement) Name() string { return "sorted" }

func (sortedArrangement) Arrange(values []int, _ *rand.Rand) {
	sort.Ints(values)
}

// nearlySortedArrangement sorts, then swaps a few random neighbours
type nearlySortedArrangement struct {
	ratio float64
}

func (nearlySortedArrangement) Name() string { return "nearly-sorted" }

func (a nearlySortedArrangement) Arrange(values []int, rng *rand.Rand) {
	sort.Ints(values)
	if len(values) < 2 {
		return
	}
	swaps := int(float64(len(values)) * a.ratio)
	if swaps < 1 {
		swaps = 1
	}
	for n := 0; n < swaps; n++ {
		i := rng.IntN(len(values) - 1)
		values[i], values[i+1] = values[i+1], values[i]
	}
}

// fewUniqueArrangement collapses values onto a handful of levels and
// shuffles them
type fewUniqueArrangement struct {
	levels int
}

func (fewUniqueArrangement) Name() string { return "few-unique" }

func (a fewUniqueArrangement) Arrange(values []int, rng *rand.Rand) {
	if len(values) == 0 {
		return
	}
	sort.Ints(values)
	levels := a.levels
	if levels > len(values) {
		levels = len(values)
	}
	bucket := (len(values) + levels - 1) / levels
	for i := range values {
		top := (i/bucket+1)*bucket - 1
		if top >= len(values) {
			top = len(values) - 1
		}
		values[i] = values[top]
	}
	Shuffle(values, rng)
}

var arrangements = []Arrangement{
	randomArrangement{},
	reversedArrangement{},
	nearlySortedArrangement{ratio: 0.05},
	fewUniqueArrangement{levels: 4},
	sortedArrangement{},
}

// Arrangements returns the names of every registered arrangement
func Arrangements() []string {
	names := make([]string, 0, len(arrangements))
	for _, a := range arrangements {
		names = append(names, a.Name())
	}
	return names
}

// ParseArrangement looks an arrangement up by name
func ParseArrangement(name string) (Arrangement, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, a := range arrangements {
		if a.Name() == key {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (must be one of: %s)", ErrUnknownArrangement, name, strings.Join(Arrangements(), ", "))
}

// BuildHeights returns n strictly increasing bar heights that fit under
// maxHeight: y, y+diff, ..., with diff = maxHeight/(n+1).
func BuildHeights(n, maxHeight int) []int {
	if n <= 0 {
		return []int{}
	}
	diff := maxHeight / (n + 1)
	if diff < 1 {
		diff = 1
	}
	y := maxHeight - n*diff
	if y < 1 {
		y = 1
	}
	values := make([]int, n)
	for i := range values {
		values[i] = y + diff*i
	}
	return values
}

// BarCount returns how many bars of barWidth (plus a one-cell border)
// fit across width
func BarCount(width, barWidth int) int {
	if barWidth < 1 || width < 1 {
		return 0
	}
	return width / (barWidth + 1)
}
