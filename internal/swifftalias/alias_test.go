package swifftalias

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOverlap1D(t *testing.T) {
	backing := make([]int16, 16)
	a := backing[0:8]
	b := backing[4:12] // shares backing[4:8] with a
	c := make([]int16, 8)

	require.True(t, Overlap1D(a, b))
	require.False(t, Overlap1D(a, c))
}

func TestOverlap1DDetectsPartialOverlapNotAtTail(t *testing.T) {
	backing := make([]int16, 16)
	// Capacities are cut so a and b end at different backing elements.
	a := backing[0:4:4]
	b := backing[2:6:6]
	d := backing[8:16]

	require.True(t, Overlap1D(a, b))
	require.False(t, Overlap1D(a, d))
}

func TestOverlap1DIdenticalSlice(t *testing.T) {
	backing := make([]int16, 8)
	require.True(t, Overlap1D(backing, backing))
}

func TestOverlap1DEmptySlice(t *testing.T) {
	var empty []int16
	nonEmpty := make([]int16, 4)
	require.False(t, Overlap1D(empty, nonEmpty))
	require.False(t, Overlap1D(empty, empty))
}

func TestWithinBounds(t *testing.T) {
	require.True(t, WithinBounds(3, 0, 8))
	require.False(t, WithinBounds(8, 0, 8))
	require.False(t, WithinBounds(-1, 0, 8))
}
