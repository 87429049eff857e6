// Package swifftalias detects whether two caller-provided slices share
// backing storage, turning the aliasing contracts the core arithmetic
// leaves as undefined behavior (spec §4.5, §7) into a checkable condition
// at the public API boundary.
package swifftalias

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// WithinBounds reports whether lo <= v < hi, used to validate block
// indices before they are used to slice a batched buffer.
func WithinBounds[T constraints.Integer](v, lo, hi T) bool {
	return v >= lo && v < hi
}

// Overlap1D reports whether x and y's backing memory ranges intersect. It
// computes each slice's half-open byte range from its first element's
// address and its length, and checks the two ranges for intersection —
// unlike a pointer-identity check on a single shared element (the
// technique `math/big/nat.go` uses, by way of the teacher's own
// `utils.Alias1D`), this also catches a partial overlap that doesn't
// happen to share the backing array's tail element.
func Overlap1D[V any](x, y []V) bool {
	if len(x) == 0 || len(y) == 0 {
		return false
	}
	var zero V
	size := unsafe.Sizeof(zero)
	xStart := uintptr(unsafe.Pointer(&x[0]))
	yStart := uintptr(unsafe.Pointer(&y[0]))
	xEnd := xStart + uintptr(len(x))*size
	yEnd := yStart + uintptr(len(y))*size
	return xStart < yEnd && yStart < xEnd
}
