// SPDX-License-Identifier: MIT

// Package matrix - row-band parallel multiplication.
//
// Purpose:
//   - Split the output rows of a×b into `threads` contiguous bands and compute
//     each band in its own goroutine, joined before return (fork-join, no pool).
//
// Ownership model:
//   - The output buffer is allocated once and consumed by partitionBands, which
//     yields non-overlapping, capacity-clipped sub-slices. A worker can only
//     reach its own cells, so no locks or atomics are needed.
//   - Operands a and b are shared read-only by all workers.
//
// Determinism:
//   - Band i always covers the same rows for fixed inputs, and every band runs
//     mulRows, so the result is bit-identical to Mul.

package matrix

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// band is one worker's exclusive slice of the output buffer.
type band[T Number] struct {
	start int // first global row covered by the band
	rows  int // number of rows in the band
	cells []T // rows*cols cells; len == cap so appends cannot reach a neighbour
}

// partitionBands splits a rows×cols row-major buffer into `threads` bands of
// rows/threads rows each; the last band absorbs the remainder.
//
// Preconditions (checked by callers): len(buf) == rows*cols, 1 <= threads <= rows.
// Complexity: O(threads).
func partitionBands[T Number](buf []T, rows, cols, threads int) []band[T] {
	perBand := rows / threads
	bands := make([]band[T], threads)
	rest := buf
	for i := 0; i < threads; i++ {
		n := perBand
		if i == threads-1 {
			n = rows - perBand*(threads-1) // final band takes what remains
		}
		size := n * cols
		bands[i] = band[T]{start: i * perBand, rows: n, cells: rest[:size:size]}
		rest = rest[size:]
	}

	return bands
}

// runBands runs work once per band concurrently and waits for all of them.
// A panic inside work is recovered and reported as ErrWorkerPanic; the first
// failure is returned after every worker has finished.
func runBands[T Number](bands []band[T], work func(b band[T])) error {
	var g errgroup.Group
	for idx, bd := range bands {
		idx, bd := idx, bd
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("band %d rows [%d,%d): %v: %w", idx, bd.start, bd.start+bd.rows, r, ErrWorkerPanic)
				}
			}()
			work(bd)

			return nil
		})
	}

	return g.Wait()
}

// MulParallel returns a × b computed by `threads` concurrent workers.
// MAIN DESCRIPTION:
//   - Same result as Mul, with the output rows partitioned into bands.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible, then ValidateThreads(threads, a.Rows()).
//   - Stage 2: allocate the output; partitionBands hands each worker its slice.
//   - Stage 3: fork one goroutine per band running mulRows; join.
//   - Stage 4: compose operand factors onto the assembled result.
//
// Behavior highlights:
//   - threads must satisfy 1 < threads <= a.Rows(); it is never clamped.
//   - Bands have rows/threads rows; the last one also takes the remainder.
//   - If any worker panics the call fails and no matrix is returned.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrInvalidThreads, ErrWorkerPanic.
//
// Complexity:
//   - Time O(r*n*c / threads) wall-clock (ideal), Space O(r*c + threads).
//
// AI-Hints:
//   - Worth it only when r*n*c is large; for small products call Mul.
func MulParallel[T Number](a, b *Dense[T], threads int) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}
	if err := ValidateThreads(threads, a.r); err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}

	out := newDenseUnchecked[T](a.r, b.c)
	bands := partitionBands(out.data, a.r, b.c, threads)
	err := runBands(bands, func(bd band[T]) {
		mulRows(bd.cells, a, b, bd.start, bd.start+bd.rows)
	})
	if err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}
	out.factor = Compose(a.factor, b.factor)

	return out, nil
}
