// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep random data seeded so every run sees the same matrices.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
)

// MustDense ALLOCATES an r×c zero matrix or fails the test (fatal on error).
func MustDense[T matrix.Number](t testing.TB, r, c int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDense[T](r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromRows BUILDS a matrix from literal rows or fails the test.
func MustFromRows[T matrix.Number](t testing.TB, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		t.Fatalf("NewFromRows: %v", err)
	}

	return m
}

// MustAt READS a raw cell or fails the test.
func MustAt[T matrix.Number](t testing.TB, m *matrix.Dense[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustEffectiveAt READS an effective cell or fails the test.
func MustEffectiveAt[T matrix.Number](t testing.TB, m *matrix.Dense[T], i, j int) T {
	t.Helper()
	v, err := m.EffectiveAt(i, j)
	if err != nil {
		t.Fatalf("EffectiveAt(%d,%d): %v", i, j, err)
	}

	return v
}

// RandomFloatDense FILLS an r×c matrix with uniform values in [-1,1) from a
// seeded source.
func RandomFloatDense(t testing.TB, r, c int, seed int64) *matrix.Dense[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}
	m, err := matrix.NewFromData(r, c, data)
	if err != nil {
		t.Fatalf("NewFromData(%d,%d): %v", r, c, err)
	}

	return m
}

// RandomIntDense FILLS an r×c matrix with integers in [-50,50) from a seeded
// source.
func RandomIntDense(t testing.TB, r, c int, seed int64) *matrix.Dense[int] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]int, r*c)
	for i := range data {
		data[i] = rng.Intn(100) - 50
	}
	m, err := matrix.NewFromData(r, c, data)
	if err != nil {
		t.Fatalf("NewFromData(%d,%d): %v", r, c, err)
	}

	return m
}
