package ir

import log "github.com/sirupsen/logrus"

// foldableOps is the fixed set of arithmetic and comparison operators
// eligible for integer constant folding (spec.md 4.5.2).
var foldableOps = map[string]bool{
	"add": true, "sub": true, "mul": true, "div": true, "mod": true,
	"eq": true, "lt": true, "gt": true, "le": true, "ge": true, "ne": true,
}

// ConstPropResult is the pair of per-block (In, Out) state maps that
// the constant-propagation worklist engine produces for one function
// (spec.md 4.5.3, "Output").
type ConstPropResult struct {
	In  map[string]State
	Out map[string]State
}

// ConstantPropagationPass is the Pass wrapper around RunWorklist,
// stashing its result on the function for the reporting adapter (since
// the Pass interface itself returns nothing — see SPEC_FULL.md 4,
// "Pass-as-interface driver").
type ConstantPropagationPass struct{}

// Name identifies this pass for the driver and its debug logging.
func (ConstantPropagationPass) Name() string { return "constprop" }

// Run computes fn.ConstProp to a fixed point. The pass never mutates
// fn's CFG (spec.md 4.5.3).
func (ConstantPropagationPass) Run(fn *Function) {
	fn.ConstProp = RunWorklist(fn)
}

// RunWorklist is the forward worklist dataflow engine of spec.md 4.5: a
// three-point lattice per variable, a per-block transfer function with
// integer constant folding, and a FIFO worklist iteration to a fixed
// point. Transfer is monotone except at Undef arguments: an Undef
// argument folds to NAC, so raising it to a Const can lower the result.
func RunWorklist(fn *Function) *ConstPropResult {
	in := make(map[string]State)
	out := make(map[string]State)

	for _, id := range fn.CFG.BlockOrder {
		in[id] = State{}
		out[id] = State{}
	}
	if fn.CFG.HasEntry() {
		entryIn := State{}
		for _, p := range fn.Args {
			entryIn[p.Name] = UndefElem
		}
		in[fn.CFG.EntryBlock] = entryIn
	}

	worklist := append([]string(nil), fn.CFG.BlockOrder...)
	for len(worklist) > 0 {
		id := worklist[0]
		worklist = worklist[1:]

		var merged State
		if id == fn.CFG.EntryBlock {
			merged = in[id]
		} else {
			merged = State{}
			for _, pred := range fn.CFG.Predecessors(id) {
				merged = MeetStates(merged, out[pred])
			}
		}

		newOut := transfer(fn.CFG.Blocks[id], merged)
		changed := !newOut.Equal(out[id])
		in[id] = merged
		out[id] = newOut

		if changed {
			log.WithFields(log.Fields{"function": fn.Name, "block": id}).Debug("constprop: out changed, re-enqueuing successors")
			worklist = append(worklist, fn.CFG.Edges[id]...)
		}
	}

	return &ConstPropResult{In: in, Out: out}
}

// transfer computes out_b from in_b by walking the block's
// instructions in order, killing each dest's prior entry (spec.md
// 4.5.2).
func transfer(block *BasicBlock, in State) State {
	out := in.Clone()
	for _, instr := range block.Instructions {
		dest, ok := instr.GetDest()
		if !ok {
			continue
		}
		out[dest] = evalInstruction(instr, out)
	}
	return out
}

// evalInstruction computes the new lattice state for a single
// value-producing instruction against the op table of spec.md 4.5.2.
func evalInstruction(instr Instruction, out State) Element {
	op, _ := instr.GetOp()

	switch {
	case op == "const":
		if v, ok := instr.ConstInt(); ok {
			return Const(v)
		}
		return NACElem

	case op == "id":
		args, _ := instr.GetArgs()
		if len(args) == 1 {
			return out.Get(args[0])
		}
		return NACElem

	case foldableOps[op]:
		typ, _ := instr.GetType()
		if typ != "int" {
			return NACElem
		}
		args, _ := instr.GetArgs()
		if len(args) != 2 {
			return NACElem
		}
		a, b := out.Get(args[0]), out.Get(args[1])
		if a.Kind == NAC || b.Kind == NAC {
			return NACElem
		}
		if a.Kind != ConstKind || b.Kind != ConstKind {
			// Any Undef with no NAC present: conservative NAC, not a
			// poison value (spec.md 4.5.2).
			return NACElem
		}
		return fold(op, a.Value, b.Value)

	default:
		return NACElem
	}
}

// fold computes the folding-table result for op over two known
// constants, with two's-complement wraparound at 64 bits and NAC for
// division/modulo by zero (spec.md 4.5.2).
func fold(op string, a, b int64) Element {
	switch op {
	case "add":
		return Const(a + b)
	case "sub":
		return Const(a - b)
	case "mul":
		return Const(a * b)
	case "div":
		if b == 0 {
			return NACElem
		}
		return Const(a / b)
	case "mod":
		if b == 0 {
			return NACElem
		}
		return Const(a % b)
	case "eq":
		return boolConst(a == b)
	case "ne":
		return boolConst(a != b)
	case "lt":
		return boolConst(a < b)
	case "le":
		return boolConst(a <= b)
	case "gt":
		return boolConst(a > b)
	case "ge":
		return boolConst(a >= b)
	default:
		return NACElem
	}
}

func boolConst(v bool) Element {
	if v {
		return Const(1)
	}
	return Const(0)
}
