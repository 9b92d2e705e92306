package ir

import log "github.com/sirupsen/logrus"

// Pass is a single per-function transformation or analysis, the Go
// sibling of the Rust lineage's `trait Pass { fn apply(&self, function:
// &mut FunctionAST); }` (original_source/src/ast.rs) and kanso's
// OptimizationPass interface (internal/ir/optimizations.go in the
// teacher). A pass may mutate the function it is given but must never
// touch another function's state (spec.md 5).
type Pass interface {
	Name() string
	Run(fn *Function)
}

// Driver dispatches a fixed sequence of passes over every function in a
// program, in the order given — there is no implicit parallelism and no
// reordering (spec.md 5).
type Driver struct {
	passes []Pass
}

// NewDriver builds a driver running passes in the given order.
func NewDriver(passes ...Pass) *Driver {
	return &Driver{passes: passes}
}

// Run applies every pass, in order, to every function in the program.
func (d *Driver) Run(program *Program) {
	for _, fn := range program.Functions {
		for _, pass := range d.passes {
			log.WithFields(log.Fields{"function": fn.Name, "pass": pass.Name()}).Debug("running pass")
			pass.Run(fn)
		}
	}
}
