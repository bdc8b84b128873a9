// SPDX-License-Identifier: MIT

// Package matrix - deferred scalar factor composition.
//
// Purpose:
//   - Keep a uniform multiplier as a single outstanding value instead of
//     rescaling r*c elements; the product of two factored matrices carries the
//     product of their factors.
//   - Provide one composition rule reused by Mul, Kronecker and MulParallel.
//
// Invariant:
//   - (A·α) × (B·β) = (A×B)·(αβ), with an absent factor acting as identity.

package matrix

// Compose combines the factors of two multiplication operands.
//
//	Compose(None, None)       = None
//	Compose(Some(x), None)    = Some(x)
//	Compose(None, Some(y))    = Some(y)
//	Compose(Some(x), Some(y)) = Some(x*y)
//
// Complexity: O(1).
func Compose[T Number](a, b Scalar[T]) Scalar[T] {
	switch {
	case a.ok && b.ok:
		return Some(a.v * b.v)
	case a.ok:
		return a
	case b.ok:
		return b
	default:
		return None[T]()
	}
}

// Materialize returns a copy of m with its factor folded into the buffer.
// MAIN DESCRIPTION:
//   - Eager counterpart of the deferred factor: out[i,j] = EffectiveAt(i,j).
//
// Implementation:
//   - Stage 1: ValidateNotNil(m).
//   - Stage 2: flat pass applying the factor to every element.
//
// Behavior highlights:
//   - The result carries no factor; m is left untouched.
//   - Without a factor this is equivalent to Copy.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Only call this at boundaries (export, effective-value display); keep the
//     factor deferred inside multiplication chains.
func Materialize[T Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMaterialize, err)
	}
	out := newDenseUnchecked[T](m.r, m.c)
	for idx, v := range m.data {
		out.data[idx] = m.factor.Apply(v)
	}

	return out, nil
}
