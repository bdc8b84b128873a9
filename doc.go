// SPDX-License-Identifier: MIT

// Package densemat is a small dense-matrix toolkit for Go generics.
//
// What is densemat?
//
//	A row-major, element-generic matrix library that brings together:
//		• Storage: Dense[T] over any integer, float or complex element type
//		• Elementwise ops: Add, Sub, Transpose, Copy, FromVector
//		• Deferred scaling: an optional scalar factor composed through products
//		• Products: Mul, Kronecker and a row-band parallel MulParallel
//		• Display: a bracketed, truncating text formatter
//		• Interop: conversion to and from gonum's *mat.Dense
//
// Everything lives in the matrix sub-package:
//
//	import "github.com/katalvlaran/densemat/matrix"
//
//	a, _ := matrix.NewFromRows([][]int{{1, 2}, {3, 4}})
//	a.SetFactor(2)
//	c, _ := matrix.MulParallel(a, a, 2)
//	fmt.Print(c)
package densemat
