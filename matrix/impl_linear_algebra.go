// SPDX-License-Identifier: MIT
// Package matrix provides the multiplication kernels on Dense matrices:
// ordinary product, Kronecker product, and the row kernel shared with the
// parallel path (impl_parallel.go).
//
// Purpose:
//   - Declare operation tags and the shared error wrapper.
//   - Keep ONE row kernel so sequential and parallel products are bit-identical.
//
// Notes:
//   - Kernels read RAW operand values. Operand factors are combined once per
//     call with Compose and stored on the result.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opMulParallel = "MulParallel"
	opKronecker   = "Kronecker"
	opTranspose   = "Transpose"
	opCopy        = "Copy"
	opMaterialize = "Materialize"
	opToGonum     = "ToGonum"
	opFormat      = "Format"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Behavior highlights:
//   - Preserves the underlying sentinel for errors.Is/errors.As.
//   - Keeps human-readable operation prefixes (e.g., "Mul", "Transpose").
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// mulRows computes rows [rowStart,rowEnd) of a×b into dst, where dst holds
// exactly those rows (local row = global row - rowStart) and is zero-filled.
//
// Each output cell accumulates a[i,0]*b[0,j], a[i,1]*b[1,j], ... in ascending
// k starting from T's zero value. The i→k→j order keeps b's rows contiguous
// without changing the per-cell summation order.
//
// Complexity: O((rowEnd-rowStart) * a.c * b.c).
func mulRows[T Number](dst []T, a, b *Dense[T], rowStart, rowEnd int) {
	n, p := a.c, b.c
	var i, k, j int
	for i = rowStart; i < rowEnd; i++ {
		rowA := a.data[i*n : (i+1)*n]
		rowC := dst[(i-rowStart)*p : (i-rowStart+1)*p]
		for k = 0; k < n; k++ {
			av := rowA[k]
			rowB := b.data[k*p : (k+1)*p]
			for j = 0; j < p; j++ {
				// T(...) rounds the product so it is never fused into a multiply-add.
				rowC[j] = rowC[j] + T(av*rowB[j])
			}
		}
	}
}

// Mul returns the matrix product a × b.
// MAIN DESCRIPTION:
//   - out[i,j] = Σ_{r=0}^{a.Cols-1} a[i,r]*b[r,j] over RAW values.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (non-nil, a.Cols == b.Rows).
//   - Stage 2: allocate (a.Rows × b.Cols) and run mulRows over all rows.
//   - Stage 3: out.factor = Compose(a.factor, b.factor).
//
// Behavior highlights:
//   - Left-to-right accumulation from the zero value; reproducible for floats.
//   - Factors are never distributed into the terms.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out := newDenseUnchecked[T](a.r, b.c)
	mulRows(out.data, a, b, 0, a.r)
	out.factor = Compose(a.factor, b.factor)

	return out, nil
}

// Kronecker returns the Kronecker (tensor) product a ⊗ b.
// MAIN DESCRIPTION:
//   - Shape (a.Rows*b.Rows, a.Cols*b.Cols);
//     out[i1*b.Rows+i2, j1*b.Cols+j2] = a[i1,j1] * b[i2,j2] over RAW values.
//
// Behavior highlights:
//   - No accumulation; every output cell is a single product.
//   - out.factor = Compose(a.factor, b.factor).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(a.r*a.c*b.r*b.c), Space the same.
func Kronecker[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}
	outCols := a.c * b.c
	out := newDenseUnchecked[T](a.r*b.r, outCols)
	var i1, j1, i2, j2, base int
	for i1 = 0; i1 < a.r; i1++ {
		for j1 = 0; j1 < a.c; j1++ {
			av := a.data[i1*a.c+j1]
			for i2 = 0; i2 < b.r; i2++ {
				base = (i1*b.r+i2)*outCols + j1*b.c
				for j2 = 0; j2 < b.c; j2++ {
					out.data[base+j2] = av * b.data[i2*b.c+j2]
				}
			}
		}
	}
	out.factor = Compose(a.factor, b.factor)

	return out, nil
}
