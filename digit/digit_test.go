package digit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlignedLess(t *testing.T) {
	require.True(t, AlignedLess(Vector{1, 2}, Vector{1, 3}, true))
	require.False(t, AlignedLess(Vector{1, 3}, Vector{1, 2}, true))
	require.False(t, AlignedLess(Vector{1, 2}, Vector{1, 2}, true))
	require.True(t, AlignedLess(Vector{1, 2}, Vector{1, 2}, false))
	// shorter vector with nonzero remainder on the longer one is less.
	require.True(t, AlignedLess(Vector{1}, Vector{1, 1}, true))
	// shorter vector whose counterpart is all zero beyond is equal.
	require.False(t, AlignedLess(Vector{1}, Vector{1, 0, 0}, true))
	require.True(t, AlignedLess(Vector{1}, Vector{1, 0, 0}, false))
}

func TestAddBasic(t *testing.T) {
	// 15 + 15 = 30, base 10. digits [1,5] exponent 2 (i.e. "15").
	sum, exp := Add(Vector{1, 5}, 2, Vector{1, 5}, 2, 10)
	require.Equal(t, Vector{3, 0}, sum)
	require.Equal(t, 2, exp)
}

func TestAddCarryGrows(t *testing.T) {
	// 9 + 9 = 18
	sum, exp := Add(Vector{9}, 1, Vector{9}, 1, 10)
	require.Equal(t, Vector{1, 8}, sum)
	require.Equal(t, 2, exp)
}

func TestSubBasic(t *testing.T) {
	// 25 - 5 = 20
	diff, exp := Sub(Vector{2, 5}, 2, Vector{5}, 1, 10)
	require.Equal(t, 2, exp)
	trimmed, _ := TrimLeading(diff)
	require.Equal(t, Vector{2, 0}, trimmed)
}

func TestMulBasic(t *testing.T) {
	// 2 * 2 = 4
	prod, exp := Mul(Vector{2}, 1, Vector{2}, 1, 10)
	require.Equal(t, Vector{0, 4}, prod)
	trimmed, removed := TrimLeading(prod)
	require.Equal(t, Vector{4}, trimmed)
	require.Equal(t, 1, exp-removed)
}

func TestMulLarger(t *testing.T) {
	// 12 * 12 = 144
	prod, exp := Mul(Vector{1, 2}, 2, Vector{1, 2}, 2, 10)
	// raw convolution length 4, exponent should position it as 144.
	trimmed, removed := TrimLeading(prod)
	require.Equal(t, Vector{1, 4, 4}, trimmed)
	require.Equal(t, exp-removed, 3)
}

func TestDivModSmall(t *testing.T) {
	// 144 / 12 = 12 r 0
	q, r := DivModSmall(Vector{1, 4, 4}, 10, 12)
	trimmed, _ := TrimLeading(q)
	require.Equal(t, Vector{1, 2}, trimmed)
	require.Equal(t, int64(0), r)
}

func TestRoundUpDown(t *testing.T) {
	up, carried := RoundUp(Vector{1, 9}, 10)
	require.False(t, carried)
	require.Equal(t, Vector{2, 0}, up)

	up, carried = RoundUp(Vector{9, 9}, 10)
	require.True(t, carried)
	require.Equal(t, Vector{1, 0, 0}, up)

	down := RoundDown(Vector{2, 0}, 10)
	require.Equal(t, Vector{1, 9}, down)
}
