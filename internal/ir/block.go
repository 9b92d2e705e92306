package ir

import "strconv"

// BasicBlock is an ordered, non-empty (once CFG construction has run)
// sequence of instructions under a unique identifier. The identifier is
// assigned once at construction and never changes (spec.md 3).
type BasicBlock struct {
	Idx          string
	Instructions []Instruction
}

// Last returns the block's final instruction, or false if the block is
// empty.
func (b *BasicBlock) Last() (Instruction, bool) {
	if len(b.Instructions) == 0 {
		return Instruction{}, false
	}
	return b.Instructions[len(b.Instructions)-1], true
}

// nameBuilder assigns unique block identifiers within a single
// function, following the priority order in spec.md 4.1: label, dest,
// joined funcs, op, then a caller-supplied fallback, with successive
// integer suffixes on collision.
type nameBuilder struct {
	used map[string]bool
}

func newNameBuilder() *nameBuilder {
	return &nameBuilder{used: make(map[string]bool)}
}

// newBlock seals a staged instruction list into a BasicBlock with a
// fresh, unique identifier.
func (nb *nameBuilder) newBlock(instructions []Instruction, fallback string) *BasicBlock {
	name := nb.uniqueName(proposeBlockName(instructions, fallback))
	return &BasicBlock{Idx: name, Instructions: instructions}
}

func (nb *nameBuilder) uniqueName(proposed string) string {
	if !nb.used[proposed] {
		nb.used[proposed] = true
		return proposed
	}
	counter := 1
	for {
		candidate := proposed + strconv.Itoa(counter)
		if !nb.used[candidate] {
			nb.used[candidate] = true
			return candidate
		}
		counter++
	}
}

// proposeBlockName implements the priority order from spec.md 4.1: the
// label of the first labeled instruction in the block, else the dest of
// the first instruction, else its comma-joined funcs, else its op, else
// the fallback.
func proposeBlockName(instructions []Instruction, fallback string) string {
	if len(instructions) == 0 {
		return fallback
	}

	for _, instr := range instructions {
		if label, ok := instr.GetLabel(); ok {
			return label
		}
	}

	first := instructions[0]
	if dest, ok := first.GetDest(); ok {
		return dest
	}
	if funcs, ok := first.GetFuncs(); ok && len(funcs) > 0 {
		return joinComma(funcs)
	}
	if op, ok := first.GetOp(); ok {
		return op
	}
	return fallback
}

// GetLabel returns the label and whether one is present; named
// separately from the HasLabel/Label field pair for symmetry with the
// other two-value accessors.
func (i Instruction) GetLabel() (string, bool) {
	return i.Label, i.Label != ""
}

func joinComma(items []string) string {
	out := ""
	for idx, s := range items {
		if idx > 0 {
			out += ", "
		}
		out += s
	}
	return out
}
