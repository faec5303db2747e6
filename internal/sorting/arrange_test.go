package sorting

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildHeights(t *testing.T) {
	values := BuildHeights(4, 100)
	assert.Equal(t, []int{20, 40, 60, 80}, values)

	values = BuildHeights(50, 10)
	require.Len(t, values, 50)
	for i := 1; i < len(values); i++ {
		assert.Greater(t, values[i], values[i-1])
	}
	assert.Empty(t, BuildHeights(0, 10))
}

func TestBarCount(t *testing.T) {
	assert.Equal(t, 8, BarCount(80, 9))
	assert.Equal(t, 40, BarCount(80, 1))
	assert.Equal(t, 0, BarCount(80, 0))
}

func TestArrangementsPreserveLength(t *testing.T) {
	for _, name := range Arrangements() {
		t.Run(name, func(t *testing.T) {
			a, err := ParseArrangement(name)
			require.NoError(t, err)

			values := BuildHeights(40, 400)
			a.Arrange(values, newTestRand())
			assert.Len(t, values, 40)
			for _, v := range values {
				assert.GreaterOrEqual(t, v, 0)
			}
		})
	}
}

func TestArrangementsPermute(t *testing.T) {
	for _, name := range []string{"random", "reversed", "nearly-sorted", "sorted"} {
		a, err := ParseArrangement(name)
		require.NoError(t, err)

		values := BuildHeights(25, 300)
		initial := append([]int(nil), values...)
		a.Arrange(values, newTestRand())
		assert.True(t, SameMultiset(initial, values), name)
	}
}

func TestReversedArrangement(t *testing.T) {
	a, err := ParseArrangement("Reversed")
	require.NoError(t, err)
	values := []int{1, 2, 3, 4}
	a.Arrange(values, nil)
	assert.Equal(t, []int{4, 3, 2, 1}, values)
}

func TestFewUniqueArrangement(t *testing.T) {
	a, err := ParseArrangement("few-unique")
	require.NoError(t, err)
	values := BuildHeights(20, 200)
	a.Arrange(values, newTestRand())

	distinct := map[int]bool{}
	for _, v := range values {
		distinct[v] = true
	}
	assert.LessOrEqual(t, len(distinct), 4)
}

func TestParseArrangementUnknown(t *testing.T) {
	_, err := ParseArrangement("spiral")
	assert.True(t, errors.Is(err, ErrUnknownArrangement))
}

func TestVerifyFinished(t *testing.T) {
	assert.NoError(t, VerifyFinished(KindBubble, []int{2, 1}, []int{1, 2}))
	assert.True(t, IsInvariant(VerifyFinished(KindBubble, []int{2, 1}, []int{1, 1})))
	assert.True(t, IsInvariant(VerifyFinished(KindBubble, []int{2, 1}, []int{2, 1})))
}

func TestSortedness(t *testing.T) {
	assert.Equal(t, 1.0, Sortedness(nil))
	assert.Equal(t, 1.0, Sortedness([]int{4}))
	assert.Equal(t, 1.0, Sortedness([]int{1, 2, 2, 3}))
	assert.Equal(t, 0.0, Sortedness([]int{3, 2, 1}))
	assert.Equal(t, 0.5, Sortedness([]int{1, 3, 2}))
}
