// Package swifftdata supplies the constant tables SWIFFT treats as an
// external collaborator: the public key, the twiddle table, the multiplier
// table, and the all-zero sign block.
//
// The real LibSWIFFT constants are derived from digits of π and are not
// part of the retrieved material this module was built from; in their
// place this package derives deterministic, process-wide, immutable
// substitutes from fixed domain-separated seed strings via BLAKE3, using
// the same hash-then-truncate idiom the teacher uses to derive keyed
// material from byte buffers (sign/hash.go's PRNGKey/GenerateMAC).
package swifftdata

import (
	"encoding/binary"

	"github.com/zeebo/blake3"

	"github.com/swifft-go/swifft/internal/fft"
)

// M is the default group count for a full input block.
const M = 32

var (
	// Twiddle is the process-wide radix-2 load table.
	Twiddle fft.Twiddle

	// Multiplier is the process-wide per-row scaling table.
	Multiplier fft.Multiplier

	// Key is the process-wide public SWIFFT key, shaped like one block's
	// FFT-output (M*fft.N elements).
	Key []int16

	// ZeroSign is the all-zero sign block used by Compute's implicit
	// unsigned variant.
	ZeroSign [256]byte
)

func init() {
	Twiddle = buildTwiddle()
	Multiplier = buildMultiplier()
	Key = buildKey(M)
}

// expand derives n deterministic bytes from a domain-separated seed by
// hashing seed||counter in successive 8-byte-counter chunks and
// concatenating digests, truncating the final chunk as needed.
func expand(seed string, n int) []byte {
	out := make([]byte, 0, n)
	var counter uint64
	for len(out) < n {
		h := blake3.New()
		h.Write([]byte(seed))
		var ctr [8]byte
		binary.BigEndian.PutUint64(ctr[:], counter)
		h.Write(ctr[:])
		sum := h.Sum(nil)
		out = append(out, sum...)
		counter++
	}
	return out[:n]
}

// reduceBytesToP maps each consecutive pair of bytes in b to a value in
// [0, 256] via modular reduction, filling dst.
func reduceBytesToP(b []byte, dst []int16) {
	for i := range dst {
		v := uint16(b[2*i])<<8 | uint16(b[2*i+1])
		dst[i] = int16(v % 257)
	}
}

func buildTwiddle() fft.Twiddle {
	var t fft.Twiddle
	raw := expand("SWIFFT/v1/twiddle", fft.Columns*2*256*2)
	flat := make([]int16, fft.Columns*2*256)
	reduceBytesToP(raw, flat)
	i := 0
	for c := 0; c < fft.Columns; c++ {
		for s := 0; s < 2; s++ {
			for b := 0; b < 256; b++ {
				t[c][s][b] = flat[i]
				i++
			}
		}
	}
	return t
}

func buildMultiplier() fft.Multiplier {
	var m fft.Multiplier
	raw := expand("SWIFFT/v1/multiplier", fft.Columns*fft.Rows*2)
	flat := make([]int16, fft.Columns*fft.Rows)
	reduceBytesToP(raw, flat)
	i := 0
	for c := 0; c < fft.Columns; c++ {
		for k := 0; k < fft.Rows; k++ {
			if k == 0 {
				// Row 0 is always identity: the load stage skips
				// multiplication for it entirely (see fft.Group).
				m[c][k] = 1
				i++
				continue
			}
			m[c][k] = flat[i]
			i++
		}
	}
	return m
}

func buildKey(m int) []int16 {
	n := fft.N * m
	raw := expand("SWIFFT/v1/key", n*2)
	key := make([]int16, n)
	reduceBytesToP(raw, key)
	return key
}
