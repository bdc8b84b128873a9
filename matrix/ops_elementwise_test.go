// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densemat/matrix"
)

// --- Add / Sub ----------------------------------------------------------------

func TestAddSub_Values(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	b := MustFromRows(t, [][]int{{10, 20, 30}, {40, 50, 60}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]int{{11, 22, 33}, {44, 55, 66}}, matrix.ToRows(sum))

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	require.Equal(t, [][]int{{9, 18, 27}, {36, 45, 54}}, matrix.ToRows(diff))

	// facades delegate to the same kernels
	sum2, err := matrix.Sum(a, b)
	require.NoError(t, err)
	require.True(t, matrix.Equal(sum, sum2))
	diff2, err := matrix.Diff(b, a)
	require.NoError(t, err)
	require.True(t, matrix.Equal(diff, diff2))
}

// Add and Sub work on raw buffers: operand factors are ignored and the result
// never carries one, unlike Mul.
func TestAddSub_IgnoreFactors(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]int{{1, 2}})
	a.SetFactor(2)
	b := MustFromRows(t, [][]int{{5, 7}})
	b.SetFactor(3)

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, []int{6, 9}, sum.RawData())
	require.False(t, sum.Factor().IsPresent())
	require.Equal(t, 6, MustEffectiveAt(t, sum, 0, 0)) // not 1*2 + 5*3

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	require.Equal(t, []int{4, 5}, diff.RawData())
	require.False(t, diff.Factor().IsPresent())
}

func TestAddSub_ShapeMismatch(t *testing.T) {
	t.Parallel()

	a := MustDense[float64](t, 2, 3)
	tests := []struct {
		name string
		b    *matrix.Dense[float64]
	}{
		{"rows", MustDense[float64](t, 3, 3)},
		{"cols", MustDense[float64](t, 2, 2)},
		{"transposed", MustDense[float64](t, 3, 2)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.Add(a, tc.b)
			require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
			_, err = matrix.Sub(a, tc.b)
			require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
		})
	}
}

func TestAddSub_Nil(t *testing.T) {
	t.Parallel()

	a := MustDense[int](t, 1, 1)
	_, err := matrix.Add[int](a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Sub[int](nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// --- Transpose ----------------------------------------------------------------

func TestTranspose_Values(t *testing.T) {
	t.Parallel()

	m := MustDense[int](t, 2, 3)
	require.NoError(t, m.Set(0, 0, 1))
	require.NoError(t, m.Set(0, 1, 2))
	require.NoError(t, m.Set(0, 2, 3))

	mt, err := matrix.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, 3, mt.Rows())
	require.Equal(t, 2, mt.Cols())
	require.Equal(t, 1, MustAt(t, mt, 0, 0))
	require.Equal(t, 2, MustAt(t, mt, 1, 0))
	require.Equal(t, 3, MustAt(t, mt, 2, 0))
	require.Equal(t, 0, MustAt(t, mt, 2, 1))
}

func TestTranspose_CarriesFactor(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2}})
	m.SetFactor(0.5)

	mt, err := matrix.T(m)
	require.NoError(t, err)
	v, ok := mt.Factor().Value()
	require.True(t, ok)
	require.Equal(t, 0.5, v)
	require.Equal(t, 1.0, MustEffectiveAt(t, mt, 1, 0))
}

func TestTranspose_Involution(t *testing.T) {
	t.Parallel()

	shapes := [][2]int{{0, 0}, {0, 4}, {4, 0}, {1, 1}, {1, 7}, {7, 1}, {5, 3}, {8, 8}}
	for n, s := range shapes {
		m := RandomIntDense(t, s[0], s[1], int64(n))
		once, err := matrix.Transpose(m)
		require.NoError(t, err)
		twice, err := matrix.Transpose(once)
		require.NoError(t, err)
		require.True(t, matrix.Equal(m, twice), "shape %v", s)
	}
}

func TestTranspose_Nil(t *testing.T) {
	t.Parallel()

	_, err := matrix.Transpose[int](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// --- Copy / FromVector / Equal ------------------------------------------------

func TestCopy_ResetsFactorAndIsIndependent(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]int{{1, 2}, {3, 4}})
	m.SetFactor(7)

	cp, err := matrix.Copy(m)
	require.NoError(t, err)
	require.Equal(t, m.Rows(), cp.Rows())
	require.Equal(t, m.Cols(), cp.Cols())
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, matrix.ToRows(cp))
	require.False(t, cp.Factor().IsPresent())

	require.NoError(t, cp.Set(1, 1, 40))
	require.Equal(t, 4, MustAt(t, m, 1, 1))

	_, err = matrix.Copy[int](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFromVector(t *testing.T) {
	t.Parallel()

	seq := []float32{1.5, -2, 3}
	m := matrix.FromVector(seq)
	require.Equal(t, 1, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, seq, m.RawData())

	seq[0] = 0
	require.Equal(t, float32(1.5), MustAt(t, m, 0, 0))

	empty := matrix.FromVector[int](nil)
	require.Equal(t, 1, empty.Rows())
	require.Equal(t, 0, empty.Cols())
}

func TestEqual_RawVsEffective(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]int{{2, 4}})
	a.SetFactor(3)
	b := MustFromRows(t, [][]int{{6, 12}})

	require.False(t, matrix.Equal(a, b))
	require.True(t, matrix.EqualEffective(a, b))

	require.False(t, matrix.Equal(a, MustFromRows(t, [][]int{{2}, {4}})))
	require.True(t, matrix.Equal[int](nil, nil))
	require.False(t, matrix.Equal[int](a, nil))
	require.False(t, matrix.EqualEffective[int](nil, b))
}
