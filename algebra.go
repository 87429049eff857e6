package swifft

import "github.com/swifft-go/swifft/internal/lane"

// Set copies in into out, canonicalized.
func Set(out, in *OutputBlock) {
	oe, ie := out.elems(), in.elems()
	for i := 0; i < N; i++ {
		oe[i] = lane.ModP(ie[i])
	}
}

// Add sets out[i] = modP(out[i] + in[i]). out == in is permitted (doubling).
func Add(out, in *OutputBlock) {
	oe, ie := out.elems(), in.elems()
	for i := 0; i < N; i++ {
		oe[i] = lane.ModP(oe[i] + ie[i])
	}
}

// Sub sets out[i] = modP(out[i] - in[i]). out == in is permitted (zeroing).
func Sub(out, in *OutputBlock) {
	oe, ie := out.elems(), in.elems()
	for i := 0; i < N; i++ {
		oe[i] = lane.ModP(oe[i] - ie[i])
	}
}

// Mul sets out[i] = modP(out[i] * in[i]). out == in is permitted (squaring).
func Mul(out, in *OutputBlock) {
	oe, ie := out.elems(), in.elems()
	for i := 0; i < N; i++ {
		oe[i] = lane.ModP(lane.SafeMult(oe[i], ie[i]))
	}
}

// ConstSet sets every element of out to the canonicalized constant c.
func ConstSet(out *OutputBlock, c int16) {
	oe := out.elems()
	cc := lane.ModP(c)
	for i := 0; i < N; i++ {
		oe[i] = cc
	}
}

// ConstAdd sets out[i] = modP(out[i] + c) for every element.
func ConstAdd(out *OutputBlock, c int16) {
	oe := out.elems()
	cc := lane.ModP(c)
	for i := 0; i < N; i++ {
		oe[i] = lane.ModP(oe[i] + cc)
	}
}

// ConstSub sets out[i] = modP(out[i] - c) for every element.
func ConstSub(out *OutputBlock, c int16) {
	oe := out.elems()
	cc := lane.ModP(c)
	for i := 0; i < N; i++ {
		oe[i] = lane.ModP(oe[i] - cc)
	}
}

// ConstMul sets out[i] = modP(out[i] * c) for every element.
func ConstMul(out *OutputBlock, c int16) {
	oe := out.elems()
	cc := lane.ModP(c)
	for i := 0; i < N; i++ {
		oe[i] = lane.ModP(lane.SafeMult(oe[i], cc))
	}
}

// SetMultiple, AddMultiple, SubMultiple, MulMultiple are the batched forms
// of Set/Add/Sub/Mul, observationally equivalent to nblocks sequential
// single-block calls.
func SetMultiple(nblocks int, outs, ins []OutputBlock) error {
	return runAlgebraBatch(nblocks, outs, ins, Set)
}

func AddMultiple(nblocks int, outs, ins []OutputBlock) error {
	return runAlgebraBatch(nblocks, outs, ins, Add)
}

func SubMultiple(nblocks int, outs, ins []OutputBlock) error {
	return runAlgebraBatch(nblocks, outs, ins, Sub)
}

func MulMultiple(nblocks int, outs, ins []OutputBlock) error {
	return runAlgebraBatch(nblocks, outs, ins, Mul)
}

func runAlgebraBatch(nblocks int, outs, ins []OutputBlock, op func(out, in *OutputBlock)) error {
	if err := checkBatchShapes(nblocks, len(ins), len(outs)); err != nil {
		return err
	}
	if err := checkBatchAlias(outs, ins); err != nil {
		return err
	}
	runBatched(nblocks, func(i int) {
		op(&outs[i], &ins[i])
	})
	return nil
}

// ConstSetMultiple, ConstAddMultiple, ConstSubMultiple, ConstMulMultiple are
// the batched forms of the constant-operand algebra operations, applying
// the same constant c to every block.
func ConstSetMultiple(nblocks int, outs []OutputBlock, c int16) error {
	return runConstBatch(nblocks, outs, c, ConstSet)
}

func ConstAddMultiple(nblocks int, outs []OutputBlock, c int16) error {
	return runConstBatch(nblocks, outs, c, ConstAdd)
}

func ConstSubMultiple(nblocks int, outs []OutputBlock, c int16) error {
	return runConstBatch(nblocks, outs, c, ConstSub)
}

func ConstMulMultiple(nblocks int, outs []OutputBlock, c int16) error {
	return runConstBatch(nblocks, outs, c, ConstMul)
}

func runConstBatch(nblocks int, outs []OutputBlock, c int16, op func(out *OutputBlock, c int16)) error {
	if err := checkBatchShapes(nblocks, len(outs), len(outs)); err != nil {
		return err
	}
	runBatched(nblocks, func(i int) {
		op(&outs[i], c)
	})
	return nil
}
