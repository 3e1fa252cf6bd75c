// Package kit is a small library of generic helpers: matrices, clock-string
// arithmetic, string utilities, memoization, shuffling and throttling.
package kit

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is returned when matrix rows are ragged or dimensions
// do not line up for the requested operation.
var ErrShapeMismatch = errors.New("kit: matrix shape mismatch")

// Number is the set of element types the arithmetic helpers accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// NewMatrix builds a rows x cols matrix, filling each element with
// fill(col, row). A nil fill leaves zero values.
func NewMatrix[T any](rows, cols int, fill func(col, row int) T) [][]T {
	m := make([][]T, rows)
	for row := range m {
		m[row] = make([]T, cols)
		if fill == nil {
			continue
		}
		for col := range m[row] {
			m[row][col] = fill(col, row)
		}
	}
	return m
}

// CloneMatrix returns a matrix with the shape of m, every element produced by fill.
// Ragged input keeps its raggedness.
func CloneMatrix[T, U any](m [][]T, fill func() U) [][]U {
	out := make([][]U, len(m))
	for row := range m {
		out[row] = make([]U, len(m[row]))
		if fill == nil {
			continue
		}
		for col := range out[row] {
			out[row][col] = fill()
		}
	}
	return out
}

// Apply maps fn over every element of m.
func Apply[T, U any](m [][]T, fn func(T) U) [][]U {
	out := make([][]U, len(m))
	for row := range m {
		out[row] = make([]U, len(m[row]))
		for col, v := range m[row] {
			out[row][col] = fn(v)
		}
	}
	return out
}

// Transpose swaps rows and columns.
func Transpose[T any](m [][]T) ([][]T, error) {
	cols, err := columns(m)
	if err != nil {
		return nil, err
	}
	out := make([][]T, cols)
	for col := range out {
		out[col] = make([]T, len(m))
		for row := range m {
			out[col][row] = m[row][col]
		}
	}
	return out, nil
}

// Dot multiplies a (n x k) by b (k x m).
func Dot[N Number](a, b [][]N) ([][]N, error) {
	colsA, err := columns(a)
	if err != nil {
		return nil, err
	}
	colsB, err := columns(b)
	if err != nil {
		return nil, err
	}
	if colsA != len(b) {
		return nil, fmt.Errorf("%w: %d columns in the first matrix, %d rows in the second",
			ErrShapeMismatch, colsA, len(b))
	}

	out := make([][]N, len(a))
	for i, rowA := range a {
		out[i] = make([]N, colsB)
		for j := range colsB {
			var sum N
			for k, v := range rowA {
				sum += v * b[k][j]
			}
			out[i][j] = sum
		}
	}
	return out, nil
}

// Plus adds two matrices of the same shape.
func Plus[N Number](a, b [][]N) ([][]N, error) {
	return elementwise(a, b, func(x, y N) N { return x + y })
}

// Minus subtracts b from a.
func Minus[N Number](a, b [][]N) ([][]N, error) {
	return elementwise(a, b, func(x, y N) N { return x - y })
}

// Hadamard multiplies corresponding elements of two same-shaped matrices.
func Hadamard[N Number](a, b [][]N) ([][]N, error) {
	return elementwise(a, b, func(x, y N) N { return x * y })
}

func elementwise[N Number](a, b [][]N, op func(x, y N) N) ([][]N, error) {
	colsA, err := columns(a)
	if err != nil {
		return nil, err
	}
	colsB, err := columns(b)
	if err != nil {
		return nil, err
	}
	if len(a) != len(b) || colsA != colsB {
		return nil, fmt.Errorf("%w: %dx%d and %dx%d must be the same size",
			ErrShapeMismatch, len(a), colsA, len(b), colsB)
	}

	out := make([][]N, len(a))
	for i := range a {
		out[i] = make([]N, colsA)
		for j := range a[i] {
			out[i][j] = op(a[i][j], b[i][j])
		}
	}
	return out, nil
}

// columns returns the common row length of m.
func columns[T any](m [][]T) (int, error) {
	if len(m) == 0 {
		return 0, nil
	}
	cols := len(m[0])
	for i, row := range m {
		if len(row) != cols {
			return 0, fmt.Errorf("%w: row %d has %d columns, expected %d",
				ErrShapeMismatch, i, len(row), cols)
		}
	}
	return cols, nil
}
