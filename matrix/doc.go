// SPDX-License-Identifier: MIT

// Package matrix provides a generic dense matrix over any built-in numeric type.
//
// The matrix package provides:
//
//   - Dense[T], a row-major matrix backed by a single flat buffer.
//   - Elementwise algebra: Add, Sub, Transpose, Copy, FromVector.
//   - Multiplication: Mul, Kronecker and the row-band parallel MulParallel.
//   - A deferred scalar multiplier (Scalar[T]) attached to a matrix and composed
//     across multiplication instead of rescaling every element.
//   - A truncating text renderer (Format, Fprint, Dense.String).
//   - Conversions to and from gonum's *mat.Dense for float64 data.
//
// Raw vs. effective values:
//
//	At returns the value stored in the buffer. EffectiveAt returns that value
//	multiplied by the matrix's scalar factor when one is present. Mul, Kronecker
//	and MulParallel compose the factors of their operands; Add and Sub work on
//	raw values only and return a matrix without a factor.
//
// Errors:
//
//	Shape mismatches, out-of-range indices and invalid thread counts are
//	reported as wrapped package sentinels (see errors.go); match them with
//	errors.Is. No operation returns a partially computed result.
package matrix
