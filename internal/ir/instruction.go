package ir

import (
	"strconv"
)

// Instruction is an opaque bag of optional fields, mirroring a single
// Bril-JSON instruction or label pseudo-op. Absence of a field is normal
// control flow, never an error: a zero value means "not present" for
// every accessor below.
//
// Instructions are value objects. Clone returns an independent copy;
// Equal compares every field structurally. Nothing here ever mutates an
// Instruction's fields after construction.
type Instruction struct {
	Op     string
	Label  string
	Dest   string
	Type   string
	Args   []string
	Labels []string
	Funcs  []string
	Value  interface{} // as decoded: float64, string, bool, int64, or nil (absent)
}

// HasLabel reports whether this instruction is a label pseudo-op.
func (i Instruction) HasLabel() bool {
	return i.Label != ""
}

// GetOp returns the op and whether one is present.
func (i Instruction) GetOp() (string, bool) {
	return i.Op, i.Op != ""
}

// GetDest returns the destination variable and whether one is present.
func (i Instruction) GetDest() (string, bool) {
	return i.Dest, i.Dest != ""
}

// GetType returns the type tag and whether one is present.
func (i Instruction) GetType() (string, bool) {
	return i.Type, i.Type != ""
}

// GetArgs returns the argument list and whether the field is present.
func (i Instruction) GetArgs() ([]string, bool) {
	return i.Args, i.Args != nil
}

// GetLabels returns the control-target labels and whether the field is
// present.
func (i Instruction) GetLabels() ([]string, bool) {
	return i.Labels, i.Labels != nil
}

// GetFuncs returns the referenced function names and whether the field
// is present.
func (i Instruction) GetFuncs() ([]string, bool) {
	return i.Funcs, i.Funcs != nil
}

// IsTerminator reports whether Op is one of the three control-transfer
// ops (spec glossary: Terminator).
func (i Instruction) IsTerminator() bool {
	switch i.Op {
	case "jmp", "br", "ret":
		return true
	default:
		return false
	}
}

// Clone returns an independent copy of the instruction; slice fields are
// copied rather than shared.
func (i Instruction) Clone() Instruction {
	c := i
	c.Args = cloneStrings(i.Args)
	c.Labels = cloneStrings(i.Labels)
	c.Funcs = cloneStrings(i.Funcs)
	return c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// Equal reports structural equality of every field.
func (i Instruction) Equal(other Instruction) bool {
	if i.Op != other.Op || i.Label != other.Label || i.Dest != other.Dest || i.Type != other.Type {
		return false
	}
	if !stringsEqual(i.Args, other.Args) || !stringsEqual(i.Labels, other.Labels) || !stringsEqual(i.Funcs, other.Funcs) {
		return false
	}
	return i.Value == other.Value
}

func stringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for idx := range a {
		if a[idx] != b[idx] {
			return false
		}
	}
	return true
}

// ConstInt parses this instruction's Value field as a signed 64-bit
// integer, per spec.md 4.5.2: a JSON number literal or a string that
// parses as a signed 64-bit decimal. Booleans are not integers here.
func (i Instruction) ConstInt() (int64, bool) {
	switch v := i.Value.(type) {
	case int64:
		return v, true
	case float64:
		// JSON numbers decode as float64; only accept values with no
		// fractional part so "4.0" folds but "4.5" does not.
		if v != float64(int64(v)) {
			return 0, false
		}
		return int64(v), true
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// NewRet returns a synthesized `ret` instruction with no arguments, used
// by CFG terminator insertion (spec.md 4.2).
func NewRet() Instruction {
	return Instruction{Op: "ret", Args: []string{}}
}

// NewJmp returns a synthesized `jmp` instruction targeting a single
// label, used by CFG terminator insertion (spec.md 4.2).
func NewJmp(target string) Instruction {
	return Instruction{Op: "jmp", Labels: []string{target}}
}
