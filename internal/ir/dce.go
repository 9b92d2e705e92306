package ir

// DeadCodeElimination is the local, per-block liveness-based filter of
// spec.md 4.4, ported from the Rust lineage's src/dce.rs. It is a
// strictly local, intra-block analysis by design: a value defined in
// one block and consumed only in another is eliminated from the
// defining block. That conservatism is the tested behavior, not a bug.
type DeadCodeElimination struct{}

// Name identifies this pass for the driver and its debug logging.
func (DeadCodeElimination) Name() string { return "dce" }

// Run applies local DCE to every block of fn, mutating each block's
// instruction list in place.
func (DeadCodeElimination) Run(fn *Function) {
	for _, id := range fn.CFG.BlockOrder {
		localDCE(fn.CFG.Blocks[id])
	}
}

// localDCE retains instruction i iff it has no dest, or its dest is in
// the set of variables read anywhere in the block (spec.md 4.4).
func localDCE(block *BasicBlock) {
	alive := make(map[string]bool)
	for _, instr := range block.Instructions {
		if args, ok := instr.GetArgs(); ok {
			for _, a := range args {
				alive[a] = true
			}
		}
	}

	kept := block.Instructions[:0]
	for _, instr := range block.Instructions {
		dest, hasDest := instr.GetDest()
		if !hasDest || alive[dest] {
			kept = append(kept, instr)
		}
	}
	block.Instructions = kept
}
