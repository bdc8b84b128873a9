// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Operations wrap these sentinels with an operation
// tag (matrixErrorf / denseErrorf); callers match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape/index -> dimension mismatch -> thread request -> worker failure.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/EffectiveAt/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidThreads signals a parallel request with threads <= 1 or more
	// threads than output rows. The count is never clamped.
	ErrInvalidThreads = errors.New("matrix: invalid thread count")

	// ErrWorkerPanic reports that a parallel worker panicked. The whole call
	// fails and no result is returned.
	ErrWorkerPanic = errors.New("matrix: parallel worker panicked")

	// ErrBadShape is returned when a shape cannot be represented by the target,
	// e.g., exporting a 0×N matrix to gonum.
	ErrBadShape = errors.New("matrix: invalid shape")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
// Keep it as an alias so errors.Is(err, ErrIndexOutOfBounds) remains true.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
