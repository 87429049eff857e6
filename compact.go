package swifft

import "github.com/zeebo/blake3"

// Compactor reduces a composable 128-byte hash to a non-composable 64-byte
// encoding. Implementations must be pure functions of their input (spec
// §4.7); the exact mapping is an external-constants-module decision, not
// part of this package's contract.
type Compactor func(hash *OutputBlock, compact *CompactBlock)

// DefaultCompact is a concrete Compactor: it hashes the 128-byte composable
// block with BLAKE3, giving a 32-byte digest, and extends that to 64 bytes
// by appending the BLAKE3 digest of the first digest.
func DefaultCompact(hash *OutputBlock, compact *CompactBlock) {
	h := blake3.New()
	h.Write(hash[:])
	sum := h.Sum(nil)
	for len(sum) < CompactBlockSize {
		h2 := blake3.New()
		h2.Write(sum)
		sum = append(sum, h2.Sum(nil)...)
	}
	copy(compact[:], sum[:CompactBlockSize])
}

// Compact applies fn (DefaultCompact if nil) to hash.
func Compact(fn Compactor, hash *OutputBlock, compact *CompactBlock) {
	if fn == nil {
		fn = DefaultCompact
	}
	fn(hash, compact)
}

// CompactMultiple applies fn (DefaultCompact if nil) to nblocks hashes
// under the same parallel policy as other batched operations.
func CompactMultiple(fn Compactor, nblocks int, hashes []OutputBlock, compacts []CompactBlock) error {
	if err := checkBatchShapes(nblocks, len(hashes), len(compacts)); err != nil {
		return err
	}
	if fn == nil {
		fn = DefaultCompact
	}
	runBatched(nblocks, func(i int) {
		fn(&hashes[i], &compacts[i])
	})
	return nil
}
