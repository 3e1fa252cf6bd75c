package kit

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingSource struct{ calls int }

func (c *countingSource) Intn(n int) int {
	c.calls++
	return 0
}

func TestMemoizeCallsOncePerKey(t *testing.T) {
	calls := 0
	square := Memoize(func(n int) int {
		calls++
		return n * n
	})

	assert.Equal(t, 9, square(3))
	assert.Equal(t, 9, square(3))
	assert.Equal(t, 16, square(4))
	assert.Equal(t, 2, calls)
}

func TestShuffleIsPermutation(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6}
	src := &countingSource{}

	out := Shuffle(src, in)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, in, "input must not be modified")
	assert.Equal(t, len(in)-1, src.calls)

	sorted := append([]int(nil), out...)
	sort.Ints(sorted)
	assert.Equal(t, in, sorted)
}

func TestShuffleWithZeroDraws(t *testing.T) {
	// Always drawing 0 rotates the slice left by one.
	out := Shuffle(&countingSource{}, []string{"a", "b", "c"})
	assert.Equal(t, []string{"b", "c", "a"}, out)
}
