package swifft

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/swifft-go/swifft/internal/swifftalias"
)

func shapeErrorf(op, arg string, want, got int) error {
	return fmt.Errorf("swifft: %s: %s has length %d, want at least %d", op, arg, got, want)
}

func checkBatchShapes(nblocks, inLen, outLen int) error {
	if nblocks < 0 {
		return fmt.Errorf("swifft: nblocks must be non-negative, got %d", nblocks)
	}
	if nblocks > 0 && !swifftalias.WithinBounds(nblocks-1, 0, inLen) {
		return shapeErrorf("batch op", "inputs", nblocks, inLen)
	}
	if nblocks > 0 && !swifftalias.WithinBounds(nblocks-1, 0, outLen) {
		return shapeErrorf("batch op", "outputs", nblocks, outLen)
	}
	return nil
}

// checkBatchAlias enforces §4.5's aliasing contract at the batch boundary:
// outs and ins may be the exact same slice (every block then sees out==in,
// the same self-aliasing Add/Sub/Mul document as meaningful at the single
// block level), but any other shared backing memory means some out[i] would
// land on a different in[j]'s storage mid-batch, which is never meaningful
// and is rejected as an error instead of silently corrupting memory.
func checkBatchAlias(outs, ins []OutputBlock) error {
	if len(outs) == 0 || len(ins) == 0 {
		return nil
	}
	if &outs[0] == &ins[0] {
		return nil
	}
	if swifftalias.Overlap1D(outs, ins) {
		return fmt.Errorf("swifft: batch op: outputs and inputs partially overlap in memory")
	}
	return nil
}

// runBatched invokes block(i) for i in [0, nblocks), sequentially below
// BlocksParallelizationThreshold and fanned out across goroutines above it.
// Blocks are data-independent (spec §5), so no ordering is preserved or
// required above the threshold.
func runBatched(nblocks int, block func(i int)) {
	if nblocks <= BlocksParallelizationThreshold {
		for i := 0; i < nblocks; i++ {
			block(i)
		}
		return
	}

	workers := numWorkers(nblocks)
	chunk := ceilDiv(nblocks, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > nblocks {
			hi = nblocks
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				block(i)
			}
		}(lo, hi)
	}
	wg.Wait()
}

func ceilDiv[T interface{ ~int }](a, b T) T {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}

func numWorkers(nblocks int) int {
	w := runtime.NumCPU()
	if w > nblocks {
		w = nblocks
	}
	if w < 1 {
		w = 1
	}
	return w
}

