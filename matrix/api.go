// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing aliases for the canonical kernels.
//   - Avoid any logic duplication; each facade delegates to one implementation.

package matrix

// NewZeros returns a new zero-initialized rows×cols matrix.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros[T Number](rows, cols int) (*Dense[T], error) { return NewDense[T](rows, cols) }

// ZerosLike returns a new zero matrix with the same shape as m (no factor).
// Errors: ErrNilMatrix.
func ZerosLike[T Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return newDenseUnchecked[T](m.r, m.c), nil
}

// Sum is an alias for Add: element-wise a + b over raw values.
func Sum[T Number](a, b *Dense[T]) (*Dense[T], error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b over raw values.
func Diff[T Number](a, b *Dense[T]) (*Dense[T], error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product[T Number](a, b *Dense[T]) (*Dense[T], error) { return Mul(a, b) }

// ProductParallel is an alias for MulParallel.
func ProductParallel[T Number](a, b *Dense[T], threads int) (*Dense[T], error) {
	return MulParallel(a, b, threads)
}

// KroneckerProduct is an alias for Kronecker: a ⊗ b.
func KroneckerProduct[T Number](a, b *Dense[T]) (*Dense[T], error) { return Kronecker(a, b) }

// T is an alias for Transpose: returns mᵀ.
func T[E Number](m *Dense[E]) (*Dense[E], error) { return Transpose(m) }
