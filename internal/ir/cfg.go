package ir

import (
	"strconv"

	log "github.com/sirupsen/logrus"
)

// ControlFlowGraph is the per-function control-flow graph: a block map,
// a successor-edge map, the entry block identifier, and the
// construction-order list of block identifiers that is the authority
// for fall-through (spec.md 3, invariant I4).
type ControlFlowGraph struct {
	Blocks     map[string]*BasicBlock
	Edges      map[string][]string
	EntryBlock string
	BlockOrder []string
	hasEntry   bool
}

// HasEntry reports whether the function had at least one instruction
// (an empty function has no entry block; spec.md 3).
func (c *ControlFlowGraph) HasEntry() bool {
	return c.hasEntry
}

// BuildCFG partitions instrs into basic blocks, synthesizes missing
// terminators, and builds the successor-edge table. This is the single
// entry point for spec.md 4.1-4.3.
func BuildCFG(instrs []Instruction) *ControlFlowGraph {
	cfg := &ControlFlowGraph{
		Blocks: make(map[string]*BasicBlock),
		Edges:  make(map[string][]string),
	}
	cfg.buildBlocks(instrs)
	cfg.insertTerminators()
	cfg.buildEdges()

	for _, id := range cfg.BlockOrder {
		log.WithFields(log.Fields{
			"block":  id,
			"instrs": len(cfg.Blocks[id].Instructions),
			"succs":  cfg.Edges[id],
		}).Debug("cfg: block built")
	}

	return cfg
}

// buildBlocks implements the partitioning rule of spec.md 4.1.
func (c *ControlFlowGraph) buildBlocks(instrs []Instruction) {
	names := newNameBuilder()
	blockCounter := 0
	var staging []Instruction

	seal := func() {
		if len(staging) == 0 {
			return
		}
		block := names.newBlock(staging, "b"+strconv.Itoa(blockCounter))
		blockCounter++
		if !c.hasEntry {
			c.EntryBlock = block.Idx
			c.hasEntry = true
		}
		c.BlockOrder = append(c.BlockOrder, block.Idx)
		c.Blocks[block.Idx] = block
		staging = nil
	}

	for _, instr := range instrs {
		if instr.HasLabel() && len(staging) > 0 {
			// (a): the next instruction carries a label and the buffer
			// is non-empty — the labeled instruction starts the next
			// block.
			seal()
		}
		staging = append(staging, instr)
		if instr.IsTerminator() {
			// (b): the just-appended instruction is a terminator.
			seal()
		}
	}
	seal() // residual buffer at end of function
}

// insertTerminators implements spec.md 4.2, using BlockOrder (not map
// iteration order) so fall-through is deterministic.
func (c *ControlFlowGraph) insertTerminators() {
	last := len(c.BlockOrder) - 1
	for i, id := range c.BlockOrder {
		block := c.Blocks[id]
		if term, ok := block.Last(); ok && term.IsTerminator() {
			continue
		}
		if i == last {
			block.Instructions = append(block.Instructions, NewRet())
		} else {
			block.Instructions = append(block.Instructions, NewJmp(c.BlockOrder[i+1]))
		}
	}
}

// buildEdges implements spec.md 4.3's successor table, keyed off each
// block's (now guaranteed present) terminator.
func (c *ControlFlowGraph) buildEdges() {
	for _, id := range c.BlockOrder {
		block := c.Blocks[id]
		term, ok := block.Last()
		if !ok {
			c.Edges[id] = nil
			continue
		}
		switch term.Op {
		case "jmp", "br":
			labels, _ := term.GetLabels()
			c.Edges[id] = labels
		default:
			c.Edges[id] = nil
		}
	}
}

// Predecessors scans the edge table for every block whose successor
// list contains id. spec.md's design notes accept this quadratic scan
// at the toolkit's target scale rather than precomputing a reverse
// index.
func (c *ControlFlowGraph) Predecessors(id string) []string {
	var preds []string
	for _, from := range c.BlockOrder {
		for _, succ := range c.Edges[from] {
			if succ == id {
				preds = append(preds, from)
				break
			}
		}
	}
	return preds
}
