// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the text formatter.
// This file defines:
//   - FormatOption / FormatOptions (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherFormatOptions helper (internal) that applies them in order.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Last writer wins when the same option is passed twice.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxRows is the number of leading rows printed before a "..."
	// marker row; the last row is always printed.
	DefaultMaxRows = 15

	// DefaultMaxCols is the number of leading columns printed before a "..."
	// marker column; the last column is always printed.
	DefaultMaxCols = 10

	// DefaultCellWidth is the minimum width each cell is right-aligned to.
	DefaultCellWidth = 4

	// DefaultEffectiveValues renders raw values with a "<factor> * " prefix
	// when false; when true, renders raw×factor and no prefix.
	DefaultEffectiveValues = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxRowsInvalid   = "matrix: WithMaxRows: n must be >= 1"
	panicMaxColsInvalid   = "matrix: WithMaxCols: n must be >= 1"
	panicCellWidthInvalid = "matrix: WithCellWidth: width must be >= 0"
)

// FormatOption mutates internal formatter options.
// Constructors MUST panic only on nonsensical values (programmer error).
type FormatOption func(*FormatOptions)

// FormatOptions stores the effective formatter configuration. Fields are
// unexported; public entry points accept `...FormatOption`.
type FormatOptions struct {
	maxRows   int  // >= 1; DefaultMaxRows
	maxCols   int  // >= 1; DefaultMaxCols
	cellWidth int  // >= 0; DefaultCellWidth
	effective bool // DefaultEffectiveValues
}

// WithMaxRows sets how many leading rows are printed before truncation.
// Panics when n < 1.
// Complexity: O(1).
func WithMaxRows(n int) FormatOption {
	if n < 1 {
		panic(panicMaxRowsInvalid)
	}

	return func(o *FormatOptions) { o.maxRows = n }
}

// WithMaxCols sets how many leading columns are printed before truncation.
// Panics when n < 1.
// Complexity: O(1).
func WithMaxCols(n int) FormatOption {
	if n < 1 {
		panic(panicMaxColsInvalid)
	}

	return func(o *FormatOptions) { o.maxCols = n }
}

// WithCellWidth sets the minimum right-aligned width of each cell.
// Zero disables padding. Panics when width < 0.
// Complexity: O(1).
func WithCellWidth(width int) FormatOption {
	if width < 0 {
		panic(panicCellWidthInvalid)
	}

	return func(o *FormatOptions) { o.cellWidth = width }
}

// WithEffectiveValues renders effective values (raw × factor) without the
// factor prefix.
func WithEffectiveValues() FormatOption {
	return func(o *FormatOptions) { o.effective = true }
}

// WithRawValues renders raw values with the factor prefix (default).
func WithRawValues() FormatOption {
	return func(o *FormatOptions) { o.effective = false }
}

// defaultFormatOptions returns the documented defaults.
func defaultFormatOptions() FormatOptions {
	return FormatOptions{
		maxRows:   DefaultMaxRows,
		maxCols:   DefaultMaxCols,
		cellWidth: DefaultCellWidth,
		effective: DefaultEffectiveValues,
	}
}

// gatherFormatOptions applies opts over the defaults in order; nil options
// are skipped.
// Complexity: O(len(opts)).
func gatherFormatOptions(opts ...FormatOption) FormatOptions {
	o := defaultFormatOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
