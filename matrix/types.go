// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by storage, kernels and the formatter.
// This file contains ONLY domain-facing types (element constraint, deferred
// scalar factor). Errors and options live in dedicated files (errors.go,
// options.go).
package matrix

import "fmt"

// Signed is the set of built-in signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of built-in unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Floats is the set of built-in floating-point types.
type Floats interface {
	~float32 | ~float64
}

// Complex is the set of built-in complex types.
type Complex interface {
	~complex64 | ~complex128
}

// Number is any element type a Dense can hold.
// The zero value of T is its additive identity; +, - and * are closed over T.
type Number interface {
	Signed | Unsigned | Floats | Complex
}

// Scalar is an optional deferred multiplier: either absent or a present value.
// The zero Scalar is absent.
//
// A present factor x means every logical read of a cell is stored*x; the
// stored buffer itself is never rescaled.
type Scalar[T Number] struct {
	v  T    // factor value, meaningful only when ok
	ok bool // presence tag
}

// Some returns a present factor holding v.
func Some[T Number](v T) Scalar[T] { return Scalar[T]{v: v, ok: true} }

// None returns an absent factor.
func None[T Number]() Scalar[T] { return Scalar[T]{} }

// Value returns the factor and whether it is present.
func (s Scalar[T]) Value() (T, bool) { return s.v, s.ok }

// IsPresent reports whether the factor is set.
func (s Scalar[T]) IsPresent() bool { return s.ok }

// Apply returns v*x when the factor x is present, v otherwise.
// Complexity: O(1).
func (s Scalar[T]) Apply(v T) T {
	if !s.ok {
		return v
	}

	return v * s.v
}

// String renders the factor with %v, or "None" when absent.
func (s Scalar[T]) String() string {
	if !s.ok {
		return "None"
	}

	return fmt.Sprintf("%v", s.v)
}
