// Package fft implements the SWIFFT FFT and FFT-sum phases: the 8-point
// radix-2 butterfly network over Z/257Z and the keyed linear combination
// that follows it.
package fft

import "github.com/swifft-go/swifft/internal/lane"

// Rows is the width of the butterfly network (one row per input byte of a
// group).
const Rows = 8

// Columns is the number of independent column-applications of the row
// network needed to expand one 8-byte group into the 64 output elements it
// contributes (Rows * Columns == 64). See SPEC_FULL.md for why this is fixed
// at 8 rather than left as a free lane-count parameter.
const Columns = 8

// N is the number of elements a single group contributes, and also the
// final output width after FFT-sum.
const N = Rows * Columns

// Twiddle is the lookup table T[column][signBit][byteValue] of radix-2 load
// factors.
type Twiddle [Columns][2][256]int16

// Multiplier holds the per-row scaling factors used at the load stage,
// M[column][row]; M[*][0] is always the identity and is never consulted —
// row 0 skips multiplication entirely, per the reference schedule.
type Multiplier [Columns][Rows]int16

// Group computes one 8-byte group's contribution to the FFT-output: the
// exact eight-step load/butterfly/reduce/store schedule, applied once per
// column, writing Columns*Rows = N elements to out.
//
// input and sign are the group's 8 bytes each; out must have length N.
func Group(input, sign [8]byte, twiddle *Twiddle, mult *Multiplier, out []int16) {
	for c := 0; c < Columns; c++ {
		var v [Rows]int16

		// 1. Load stage.
		v[0] = twiddle[c][signBit(sign[0])][input[0]]
		for k := 1; k < Rows; k++ {
			t := twiddle[c][signBit(sign[k])][input[k]]
			v[k] = lane.SafeMult(t, mult[c][k])
		}

		// 2. Butterfly stage 1.
		lane.AddSub(&v[0], &v[1])
		lane.AddSub(&v[2], &v[3])
		lane.AddSub(&v[4], &v[5])
		lane.AddSub(&v[6], &v[7])

		// 3. Reduce/rotate.
		v[2] = lane.QReduce(v[2])
		v[3] = lane.Shift(v[3], 4)
		v[6] = lane.QReduce(v[6])
		v[7] = lane.Shift(v[7], 4)

		// 4. Butterfly stage 2.
		lane.AddSub(&v[0], &v[2])
		lane.AddSub(&v[1], &v[3])
		lane.AddSub(&v[4], &v[6])
		lane.AddSub(&v[5], &v[7])

		// 5. Reduce/rotate.
		v[4] = lane.QReduce(v[4])
		v[5] = lane.Shift(v[5], 2)
		v[6] = lane.Shift(v[6], 4)
		v[7] = lane.Shift(v[7], 6)

		// 6. Butterfly stage 3.
		lane.AddSub(&v[0], &v[4])
		lane.AddSub(&v[1], &v[5])
		lane.AddSub(&v[2], &v[6])
		lane.AddSub(&v[3], &v[7])

		// 7. Final reduce.
		for k := 0; k < Rows; k++ {
			v[k] = lane.QReduce(v[k])
		}

		// 8. Store, contiguous per column.
		copy(out[c*Rows:(c+1)*Rows], v[:])
	}
}

func signBit(s byte) int {
	if s != 0 {
		return 1
	}
	return 0
}

// Transform runs Group over every one of the m 8-byte groups in input/sign,
// writing the full m*N-element FFT-output to out.
//
// len(input) == len(sign) == 8*m, len(out) == N*m.
func Transform(input, sign []byte, m int, twiddle *Twiddle, mult *Multiplier, out []int16) {
	for g := 0; g < m; g++ {
		var in8, sg8 [8]byte
		copy(in8[:], input[g*8:g*8+8])
		copy(sg8[:], sign[g*8:g*8+8])
		Group(in8, sg8, twiddle, mult, out[g*N:(g+1)*N])
	}
}
