// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders).
//   - Carry the deferred scalar factor next to the buffer; never fold it eagerly.
//
// AI-Hints:
//   - Kernels operate on the flat data slice directly; At/Set are for callers.
//   - At is the RAW read, EffectiveAt the logical read (raw × factor).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
)

// ---------- error context tags ----------

const (
	ctxAt          = "At"          // method tag used in error wrappers
	ctxEffectiveAt = "EffectiveAt" // method tag used in error wrappers
	ctxSet         = "Set"         // method tag used in error wrappers
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable "Dense.<method>(row,col): <sentinel>" shape; preserves the sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix over T.
//   - r,c hold dimensions (rows, cols), fixed for the lifetime of the value.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - factor is the deferred scalar multiplier (absent by default).
type Dense[T Number] struct {
	r, c   int       // row and column counts (>= 0)
	data   []T       // contiguous row-major storage (len == r*c)
	factor Scalar[T] // deferred multiplier applied on effective reads
}

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer; the factor starts absent.
//
// Behavior highlights:
//   - 0×N and N×0 are legal and yield an empty buffer.
//   - Every element starts at T's zero value (the additive identity).
//
// Errors:
//   - ErrInvalidDimensions on negative dimensions.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Number](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return newDenseUnchecked[T](rows, cols), nil
}

// newDenseUnchecked allocates without validation; callers derive the shape
// from already-valid matrices.
func newDenseUnchecked[T Number](rows, cols int) *Dense[T] {
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
}

// NewFromData wraps a copy of data as a rows×cols matrix.
// Errors: ErrInvalidDimensions for negative shape, ErrDimensionMismatch when
// len(data) != rows*cols.
// Complexity: O(r*c).
func NewFromData[T Number](rows, cols int, data []T) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewFromData(%d,%d): len %d: %w", rows, cols, len(data), ErrDimensionMismatch)
	}
	copy(m.data, data)

	return m, nil
}

// NewFromRows builds a matrix from a slice of equal-length rows.
// An empty input yields a 0×0 matrix; a jagged input yields ErrDimensionMismatch.
// Complexity: O(r*c).
func NewFromRows[T Number](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 {
		return newDenseUnchecked[T](0, 0), nil
	}
	r, c := len(rows), len(rows[0])
	m := newDenseUnchecked[T](r, c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewFromRows: row %d has %d columns, want %d: %w", i, len(row), c, ErrDimensionMismatch)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity[T Number](n int) (*Dense[T], error) {
	m, err := NewDense[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// CellCount returns rows*cols.
// Complexity: O(1).
func (m *Dense[T]) CellCount() int { return m.r * m.c }

// Factor returns the deferred scalar factor (possibly absent).
func (m *Dense[T]) Factor() Scalar[T] { return m.factor }

// SetFactor attaches x as the deferred factor, replacing any previous one.
// The buffer is not touched: this is the O(1) scalar update.
func (m *Dense[T]) SetFactor(x T) { m.factor = Some(x) }

// ClearFactor removes the deferred factor.
func (m *Dense[T]) ClearFactor() { m.factor = None[T]() }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// The sentinel is returned bare; public methods wrap it with coordinates.
// Complexity: O(1).
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the RAW value at (row, col), ignoring the factor.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Errors:
//   - ErrOutOfRange when out of bounds; the zero value is returned alongside.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// EffectiveAt returns the logical value at (row, col): raw × factor when a
// factor is present, raw otherwise.
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) EffectiveAt(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxEffectiveAt, row, col, err)
	}

	return m.factor.Apply(m.data[off]), nil
}

// Set overwrites the RAW value at (row, col). The factor is left untouched.
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy of the buffer and shape.
// MAIN DESCRIPTION:
//   - Produce an independent Dense with identical shape and raw data.
//
// Behavior highlights:
//   - Independence: mutations do not affect the original.
//   - The factor is NOT carried over: a copy is a fresh matrix, so a factor on
//     m never leaks into computations on the copy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// RawData returns a copy of the row-major buffer.
// Complexity: O(r*c).
func (m *Dense[T]) RawData() []T {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return cp
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v) with the
// RAW value; it stops early when f returns false.
// Complexity: O(r*c), Space O(1).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// String renders the matrix with the default formatter settings.
// See Format for the layout.
func (m *Dense[T]) String() string { return Format(m) }

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[float64])(nil)
