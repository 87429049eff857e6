package swifft

import "unsafe"

const (
	// P is the SWIFFT modulus.
	P = 257

	// N is the number of signed 16-bit elements in one composable hash.
	N = 64

	// M is the number of 8-byte groups in a full input block.
	M = 32

	// InputBlockSize is the size, in bytes, of an InputBlock or SignBlock.
	InputBlockSize = 256

	// OutputBlockSize is the size, in bytes, of an OutputBlock.
	OutputBlockSize = 128

	// CompactBlockSize is the size, in bytes, of a CompactBlock.
	CompactBlockSize = 64
)

// BlocksParallelizationThreshold is the minimum nblocks above which a
// batched *Multiple operation is permitted to dispatch block iterations
// across goroutines. Mutable by the caller; defaults to 8.
var BlocksParallelizationThreshold = 8

// InputBlock is a 2048-bit input to the compression function: 256 unsigned
// byte coefficients, equivalently M groups of 8 bytes.
type InputBlock [InputBlockSize]byte

// SignBlock pairs a per-byte sign selector with an InputBlock. The
// all-zero SignBlock is the sentinel used by the unsigned Compute.
type SignBlock [InputBlockSize]byte

// OutputBlock is a composable SWIFFT hash: 64 signed 16-bit elements mod
// 257, stored as 128 bytes.
type OutputBlock [OutputBlockSize]byte

// CompactBlock is a non-composable 512-bit encoding of an OutputBlock,
// produced by a Compactor.
type CompactBlock [CompactBlockSize]byte

// elems reinterprets the block's bytes as its N int16 elements, avoiding a
// copy. This relies on the host's native int16 layout, consistent with the
// spec's "no endian conversion of external representation" non-goal.
func (o *OutputBlock) elems() *[N]int16 {
	return (*[N]int16)(unsafe.Pointer(o))
}

// Elements returns a view of the hash's N signed 16-bit elements.
func (o *OutputBlock) Elements() []int16 {
	return o.elems()[:]
}
