package fft

import "github.com/swifft-go/swifft/internal/lane"

// Sum performs the FFT-sum phase: a keyed pointwise multiply-accumulate of
// m groups of N elements each, collapsing them into the N final output
// elements.
//
// len(key) == len(fftout) == N*m, len(out) == N.
func Sum(key, fftout []int16, m int, out []int16) {
	var acc [N]int16

	for g := 0; g < m; g++ {
		base := g * N
		for p := 0; p < N; p++ {
			acc[p] += lane.QReduce(lane.SafeMult(fftout[base+p], key[base+p]))
		}
	}

	for p := 0; p < N; p++ {
		out[p] = lane.ModP(acc[p])
	}
}
