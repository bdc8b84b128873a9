// SPDX-License-Identifier: MIT

// Package matrix provides converters between Dense and other representations:
// nested row slices and gonum's *mat.Dense.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToRows returns the RAW values of m as freshly allocated rows.
// Data[i][j] holds m[i,j]; the factor is not applied.
//
// Time Complexity: O(r*c)
func ToRows[T Number](m *Dense[T]) [][]T {
	if m == nil {
		return nil
	}
	out := make([][]T, m.r)
	for i := range out {
		out[i] = make([]T, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// ToGonum exports the EFFECTIVE values of m (raw × factor) as a gonum matrix.
// gonum cannot represent empty matrices, so 0×N and N×0 yield ErrBadShape.
//
// Time Complexity: O(r*c)
func ToGonum(m *Dense[float64]) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	if m.r == 0 || m.c == 0 {
		return nil, matrixErrorf(opToGonum, fmt.Errorf("%dx%d: %w", m.r, m.c, ErrBadShape))
	}
	eff, err := Materialize(m)
	if err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}

	// mat.NewDense adopts the slice; eff is private to this call.
	return mat.NewDense(m.r, m.c, eff.data), nil
}

// FromGonum copies any gonum matrix into a new Dense without a factor.
//
// Time Complexity: O(r*c)
func FromGonum(src mat.Matrix) *Dense[float64] {
	r, c := src.Dims()
	out := newDenseUnchecked[float64](r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = src.At(i, j)
		}
	}

	return out
}
