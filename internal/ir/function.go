package ir

// Parameter is a formal parameter recovered from the input document
// (spec.md 6's optional per-function "args" array), kept alongside the
// function so the dataflow engine's entry-block seeding (spec.md 4.5.3)
// has concrete parameters rather than a reconstructed guess — see
// SPEC_FULL.md 4, "Function-argument recovery".
type Parameter struct {
	Name string
	Type string
}

// Function is a name, its original instruction list (for argument
// recovery, spec.md 3), and its CFG. A function exclusively owns its
// CFG.
type Function struct {
	Name   string
	Args   []Parameter
	Instrs []Instruction
	CFG    *ControlFlowGraph

	// ConstProp holds the most recent constant-propagation result for
	// this function, populated by ConstantPropagationPass.Run. Nil
	// until that pass has run.
	ConstProp *ConstPropResult
}

// BuildFunction constructs a Function's CFG from its instruction list.
func BuildFunction(name string, args []Parameter, instrs []Instruction) *Function {
	return &Function{
		Name:   name,
		Args:   args,
		Instrs: instrs,
		CFG:    BuildCFG(instrs),
	}
}

// Program is an ordered sequence of functions; the program owns its
// functions.
type Program struct {
	Functions []*Function
}

// BuildProgram is the main entry point converting a parsed document
// (see internal/reader) into an analyzable Program.
func BuildProgram(funcs []FunctionSource) *Program {
	program := &Program{}
	for _, f := range funcs {
		program.Functions = append(program.Functions, BuildFunction(f.Name, f.Args, f.Instrs))
	}
	return program
}

// FunctionSource is the minimal shape the reader adapter must produce
// for one function (spec.md 6): a name, optional declared parameters,
// and its linear instruction list.
type FunctionSource struct {
	Name   string
	Args   []Parameter
	Instrs []Instruction
}
