// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/densemat/matrix"
)

func TestToRows(t *testing.T) {
	m := MustFromRows(t, [][]int{{1, 2}, {3, 4}, {5, 6}})
	m.SetFactor(2)

	rows := matrix.ToRows(m)
	require.Equal(t, [][]int{{1, 2}, {3, 4}, {5, 6}}, rows) // raw values

	rows[0][0] = 99
	require.Equal(t, 1, MustAt(t, m, 0, 0))

	require.Nil(t, matrix.ToRows[int](nil))
}

func TestToGonum_EffectiveValuesAndRoundTrip(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	m.SetFactor(0.5)

	g, err := matrix.ToGonum(m)
	require.NoError(t, err)
	r, c := g.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 2.5, g.At(1, 1))

	back := matrix.FromGonum(g)
	require.False(t, back.Factor().IsPresent())
	require.True(t, matrix.EqualEffective(m, back))

	// the exported matrix does not alias m
	g.Set(0, 0, 100)
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

func TestFromGonum_Transposed(t *testing.T) {
	src := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	m := matrix.FromGonum(src.T())
	require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, matrix.ToRows(m))
}

func TestToGonum_Errors(t *testing.T) {
	_, err := matrix.ToGonum(MustDense[float64](t, 0, 3))
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.ToGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
