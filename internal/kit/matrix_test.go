package kit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatrix(t *testing.T) {
	m := NewMatrix(2, 3, func(col, row int) int { return row*10 + col })
	assert.Equal(t, [][]int{{0, 1, 2}, {10, 11, 12}}, m)

	zero := NewMatrix[float64](2, 2, nil)
	assert.Equal(t, [][]float64{{0, 0}, {0, 0}}, zero)
}

func TestCloneMatrixKeepsShape(t *testing.T) {
	src := [][]string{{"a", "b"}, {"c"}}
	out := CloneMatrix(src, func() int { return 7 })
	assert.Equal(t, [][]int{{7, 7}, {7}}, out)
}

func TestApply(t *testing.T) {
	out := Apply([][]int{{1, 2}, {3, 4}}, func(v int) bool { return v%2 == 0 })
	assert.Equal(t, [][]bool{{false, true}, {false, true}}, out)
}

func TestTranspose(t *testing.T) {
	out, err := Transpose([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 4}, {2, 5}, {3, 6}}, out)

	back, err := Transpose(out)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, back)
}

func TestTransposeRejectsRaggedRows(t *testing.T) {
	_, err := Transpose([][]int{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestDot(t *testing.T) {
	a := [][]int{{1, 2, 3}, {4, 5, 6}}
	b := [][]int{{7, 8}, {9, 10}, {11, 12}}

	out, err := Dot(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{58, 64}, {139, 154}}, out)
}

func TestDotShapeErrors(t *testing.T) {
	tests := []struct {
		name string
		a, b [][]float64
	}{
		{"inner dimensions differ", [][]float64{{1, 2}}, [][]float64{{1, 2}}},
		{"ragged first", [][]float64{{1, 2}, {3}}, [][]float64{{1}, {2}}},
		{"ragged second", [][]float64{{1, 2}}, [][]float64{{1, 2}, {3}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Dot(tc.a, tc.b)
			assert.ErrorIs(t, err, ErrShapeMismatch)
		})
	}
}

func TestElementwise(t *testing.T) {
	a := [][]int{{1, 2}, {3, 4}}
	b := [][]int{{5, 6}, {7, 8}}

	sum, err := Plus(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{6, 8}, {10, 12}}, sum)

	diff, err := Minus(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{-4, -4}, {-4, -4}}, diff)

	prod, err := Hadamard(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{5, 12}, {21, 32}}, prod)
}

func TestElementwiseShapeErrors(t *testing.T) {
	square := [][]int{{1, 2}, {3, 4}}

	_, err := Plus(square, [][]int{{1, 2}})
	assert.ErrorIs(t, err, ErrShapeMismatch, "row count differs")

	_, err = Minus(square, [][]int{{1}, {2}})
	assert.ErrorIs(t, err, ErrShapeMismatch, "column count differs")

	_, err = Hadamard(square, [][]int{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrShapeMismatch, "ragged rows")
}
