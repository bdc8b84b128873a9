// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Elementwise bulk operations over the flat buffer: Add, Sub, Transpose,
//     Copy, FromVector, Equal.
//
// Scalar factors:
//   - Add and Sub are defined over RAW buffers only. Operand factors are not
//     applied and the result has no factor. Multiplication, by contrast,
//     composes factors (see impl_scalar.go).
//   - Transpose carries the factor forward unchanged.
//   - Copy resets the factor to absent.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 or i→j).
//   - One allocation for the result; O(r*c) time and space.

package matrix

// addSub is the shared kernel for Add and Sub on raw values.
// Complexity: O(r*c).
func addSub[T Number](a, b *Dense[T], subtract bool, opTag string) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out := newDenseUnchecked[T](a.r, a.c)
	if subtract {
		for idx := range out.data {
			out.data[idx] = a.data[idx] - b.data[idx]
		}
		return out, nil
	}
	for idx := range out.data {
		out.data[idx] = a.data[idx] + b.data[idx]
	}

	return out, nil
}

// Add returns the elementwise sum of RAW values a + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shapes must match exactly).
// The result carries no factor, whatever the operands carry.
// Complexity: O(r*c).
func Add[T Number](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, false, opAdd) }

// Sub returns the elementwise difference of RAW values a − b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// The result carries no factor, whatever the operands carry.
// Complexity: O(r*c).
func Sub[T Number](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, true, opSub) }

// Transpose returns mᵀ: out[j,i] = m[i,j], shape (Cols, Rows).
// MAIN DESCRIPTION:
//   - Full materialization of the transposed buffer.
//
// Behavior highlights:
//   - The factor of m is carried forward unchanged onto the result.
//   - m is never mutated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose[T Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.r, m.c
	out := newDenseUnchecked[T](cols, rows)
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			out.data[j*rows+i] = m.data[base+j]
		}
	}
	out.factor = m.factor

	return out, nil
}

// Copy returns a deep copy of m with the factor reset to absent.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Copy[T Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCopy, err)
	}

	return m.Clone(), nil
}

// FromVector lifts seq into a 1×len(seq) matrix whose row equals seq.
// The input slice is copied, not aliased.
// Complexity: O(n).
func FromVector[T Number](seq []T) *Dense[T] {
	out := newDenseUnchecked[T](1, len(seq))
	copy(out.data, seq)

	return out
}

// Equal reports whether a and b have the same shape and RAW values.
// Factors are ignored; see EqualEffective for logical equality.
// Two nil matrices are equal; nil and non-nil are not.
// Complexity: O(r*c).
func Equal[T Number](a, b *Dense[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for idx, v := range a.data {
		if v != b.data[idx] {
			return false
		}
	}

	return true
}

// EqualEffective reports whether a and b have the same shape and effective
// values (raw × factor).
// Complexity: O(r*c).
func EqualEffective[T Number](a, b *Dense[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for idx, v := range a.data {
		if a.factor.Apply(v) != b.factor.Apply(b.data[idx]) {
			return false
		}
	}

	return true
}
