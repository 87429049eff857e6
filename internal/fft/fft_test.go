package fft

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func identityTables() (*Twiddle, *Multiplier) {
	var tw Twiddle
	var mult Multiplier
	for c := 0; c < Columns; c++ {
		for s := 0; s < 2; s++ {
			for b := 0; b < 256; b++ {
				tw[c][s][b] = int16((b + s*13 + c*7) % 257)
			}
		}
		for k := 0; k < Rows; k++ {
			mult[c][k] = int16(k + 1)
		}
	}
	return &tw, &mult
}

func TestGroupProducesNElements(t *testing.T) {
	tw, mult := identityTables()
	var input, sign [8]byte
	out := make([]int16, N)
	Group(input, sign, tw, mult, out)
	require.Len(t, out, N)
}

func TestGroupDeterministic(t *testing.T) {
	tw, mult := identityTables()
	input := [8]byte{1, 2, 3, 4, 5, 6, 7, 8}
	sign := [8]byte{0, 0xFF, 0, 0, 0, 0, 0, 0}

	out1 := make([]int16, N)
	out2 := make([]int16, N)
	Group(input, sign, tw, mult, out1)
	Group(input, sign, tw, mult, out2)

	require.Equal(t, out1, out2)
}

func TestGroupZeroSignMatchesAllZeroSign(t *testing.T) {
	tw, mult := identityTables()
	input := [8]byte{9, 0, 1, 2, 3, 4, 5, 6}
	var zeroSign [8]byte

	out1 := make([]int16, N)
	out2 := make([]int16, N)
	Group(input, zeroSign, tw, mult, out1)
	Group(input, [8]byte{}, tw, mult, out2)

	require.Equal(t, out1, out2)
}

func TestTransformMatchesSequentialGroups(t *testing.T) {
	tw, mult := identityTables()
	const m = 4
	input := make([]byte, 8*m)
	sign := make([]byte, 8*m)
	for i := range input {
		input[i] = byte(i * 3)
		sign[i] = byte(i % 2 * 0xFF)
	}

	got := make([]int16, N*m)
	Transform(input, sign, m, tw, mult, got)

	want := make([]int16, N*m)
	for g := 0; g < m; g++ {
		var in8, sg8 [8]byte
		copy(in8[:], input[g*8:g*8+8])
		copy(sg8[:], sign[g*8:g*8+8])
		Group(in8, sg8, tw, mult, want[g*N:(g+1)*N])
	}

	require.Equal(t, want, got)
}

func TestSumCollapsesToNElements(t *testing.T) {
	const m = 3
	key := make([]int16, N*m)
	fftout := make([]int16, N*m)
	for i := range key {
		key[i] = int16(i % 257)
		fftout[i] = int16((i * 7) % 257)
	}

	out := make([]int16, N)
	Sum(key, fftout, m, out)
	require.Len(t, out, N)
	for _, v := range out {
		require.GreaterOrEqual(t, v, int16(0))
		require.Less(t, v, int16(257))
	}
}

func TestSumZeroKeyGivesZero(t *testing.T) {
	const m = 5
	key := make([]int16, N*m)
	fftout := make([]int16, N*m)
	for i := range fftout {
		fftout[i] = int16(i)
	}

	out := make([]int16, N)
	Sum(key, fftout, m, out)
	for _, v := range out {
		require.Equal(t, int16(0), v)
	}
}
