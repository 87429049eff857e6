package swifft

import (
	"github.com/swifft-go/swifft/internal/fft"
	"github.com/swifft-go/swifft/internal/swifftdata"
)

// zeroSign is the process-wide all-zeros sign block Compute implicitly
// uses; it is never mutated.
var zeroSign = SignBlock(swifftdata.ZeroSign)

// Compute is ComputeSigned with the all-zero sign block.
func Compute(input *InputBlock, out *OutputBlock) {
	ComputeSigned(input, &zeroSign, out)
}

// ComputeSigned runs the full compression: an M*N-element FFT-output
// scratch is built on the stack, filled by the FFT phase, and collapsed by
// the FFT-sum phase under the fixed public key.
func ComputeSigned(input *InputBlock, sign *SignBlock, out *OutputBlock) {
	var scratch [N * M]int16
	fft.Transform(input[:], sign[:], M, &swifftdata.Twiddle, &swifftdata.Multiplier, scratch[:])
	fft.Sum(swifftdata.Key, scratch[:], M, out.elems()[:])
}

// ComputeMultiple computes nblocks independent compressions, observationally
// equivalent to nblocks sequential calls to Compute.
func ComputeMultiple(nblocks int, inputs []InputBlock, outputs []OutputBlock) error {
	if err := checkBatchShapes(nblocks, len(inputs), len(outputs)); err != nil {
		return err
	}
	runBatched(nblocks, func(i int) {
		Compute(&inputs[i], &outputs[i])
	})
	return nil
}

// ComputeSignedMultiple is ComputeMultiple's signed counterpart.
func ComputeSignedMultiple(nblocks int, inputs []InputBlock, signs []SignBlock, outputs []OutputBlock) error {
	if err := checkBatchShapes(nblocks, len(inputs), len(outputs)); err != nil {
		return err
	}
	if len(signs) < nblocks {
		return shapeErrorf("ComputeSignedMultiple", "signs", nblocks, len(signs))
	}
	runBatched(nblocks, func(i int) {
		ComputeSigned(&inputs[i], &signs[i], &outputs[i])
	})
	return nil
}
