// SPDX-License-Identifier: MIT

// Package matrix - text rendering for Dense.
//
// Layout:
//   - One line per printed row, bracketed by row-position glyphs:
//     single row ⟮ … ⟯, top ⎛ … ⎞, middle ⎜ … ⎟, bottom ⎝ … ⎠.
//   - Cells are right-aligned to the cell width and followed by one space.
//   - A present factor prefixes the first line with "<factor> * "; later lines
//     are indented by the same number of runes.
//   - Large matrices print the leading MaxRows rows, one "..." marker row and
//     the last row; columns likewise. A marker is emitted only when at least
//     one row (column) is hidden.
//
// The formatter only reads the matrix.

package matrix

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

// ---------- Formatting literals ----------

const (
	_fmtSingleOpen  = "⟮ "
	_fmtSingleClose = " ⟯"
	_fmtTopOpen     = "⎛ "
	_fmtTopClose    = " ⎞"
	_fmtMidOpen     = "⎜ "
	_fmtMidClose    = " ⎟"
	_fmtBotOpen     = "⎝ "
	_fmtBotClose    = " ⎠"
	_fmtCellSep     = " "
	_fmtMarker      = "..."
	_fmtFactorSep   = " * "
	_fmtNil         = "<nil>"
)

// markerIndex stands in for the collapsed run of rows or columns.
const markerIndex = -1

// visibleIndices lists the row (or column) indices to print for a dimension
// of size n: all of them, or the first `head`, a marker, and n-1.
func visibleIndices(n, head int) []int {
	if n <= head+1 {
		return lo.Range(n)
	}

	return append(lo.Range(head), markerIndex, n-1)
}

// rowDelimiters picks the bracket glyphs for row i of an n-row matrix.
func rowDelimiters(i, n int) (open, closing string) {
	switch {
	case n == 1:
		return _fmtSingleOpen, _fmtSingleClose
	case i == 0:
		return _fmtTopOpen, _fmtTopClose
	case i == n-1:
		return _fmtBotOpen, _fmtBotClose
	default:
		return _fmtMidOpen, _fmtMidClose
	}
}

// Format renders m as text using the given options (see FormatOption).
// MAIN DESCRIPTION:
//   - Human-readable, truncated dump for logs and debugging.
//
// Behavior highlights:
//   - Raw values plus a factor prefix by default; WithEffectiveValues renders
//     raw×factor instead.
//   - Every line, including the last, ends with '\n'. A matrix with no rows
//     renders as the empty string; a nil matrix as "<nil>".
//
// Complexity:
//   - Time O(min(r,MaxRows+2) * min(c,MaxCols+2)), independent of hidden cells.
func Format[T Number](m *Dense[T], opts ...FormatOption) string {
	if m == nil {
		return _fmtNil
	}
	o := gatherFormatOptions(opts...)

	prefix := ""
	if m.factor.IsPresent() && !o.effective {
		prefix = m.factor.String() + _fmtFactorSep
	}
	indent := strings.Repeat(" ", utf8.RuneCountInString(prefix))

	cols := visibleIndices(m.c, o.maxCols)
	marker := fmt.Sprintf("%*s", o.cellWidth, _fmtMarker)

	var b strings.Builder
	for n, i := range visibleIndices(m.r, o.maxRows) {
		if n == 0 {
			b.WriteString(prefix)
		} else {
			b.WriteString(indent)
		}

		pos := i
		if i == markerIndex {
			pos = o.maxRows // marker row sits between head and tail: middle glyphs
		}
		open, closing := rowDelimiters(pos, m.r)
		b.WriteString(open)

		cells := lo.Map(cols, func(j int, _ int) string {
			if i == markerIndex || j == markerIndex {
				return marker
			}
			v := m.data[i*m.c+j]
			if o.effective {
				v = m.factor.Apply(v)
			}

			return fmt.Sprintf("%*v", o.cellWidth, v)
		})
		for _, cell := range cells {
			b.WriteString(cell)
			b.WriteString(_fmtCellSep)
		}

		b.WriteString(closing)
		b.WriteByte('\n')
	}

	return b.String()
}

// Fprint writes Format(m, opts...) to w.
// Errors: the writer's error, wrapped with the Format tag.
func Fprint[T Number](w io.Writer, m *Dense[T], opts ...FormatOption) error {
	if _, err := io.WriteString(w, Format(m, opts...)); err != nil {
		return matrixErrorf(opFormat, err)
	}

	return nil
}
