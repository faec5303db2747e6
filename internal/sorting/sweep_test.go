package sorting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSweep(t *testing.T) {
	arr := []int{1, 2, 3}
	w := NewSweep(arr)

	res := w.Tick()
	assert.Equal(t, []Highlight{{0, RoleSorted}, {1, RoleSwap}}, res.Highlighted)
	assert.Equal(t, []int{1}, res.Tones)
	assert.False(t, res.Finished)

	res = w.Tick()
	assert.Equal(t, []Highlight{{1, RoleSorted}, {2, RoleSwap}}, res.Highlighted)

	res = w.Tick()
	assert.True(t, res.Finished)
	assert.Equal(t, []Highlight{{2, RoleSorted}}, res.Highlighted)
	assert.True(t, w.Done())
	assert.Equal(t, []int{1, 2, 3}, arr)

	assert.True(t, w.Tick().Finished)
}

func TestSweepShortArrays(t *testing.T) {
	tests := []struct {
		name string
		arr  []int
		want []Highlight
	}{
		{name: "empty", arr: []int{}, want: nil},
		{name: "single", arr: []int{4}, want: []Highlight{{0, RoleSorted}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NewSweep(tt.arr).Tick()
			assert.True(t, res.Finished)
			assert.Equal(t, tt.want, res.Highlighted)
		})
	}
}
