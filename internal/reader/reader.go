// Package reader is the input-document reader adapter spec.md 1 and 6
// place outside the analytical core: it turns a structured JSON
// document into the already-parsed ir.FunctionSource tree the CFG
// builder expects. It is the Go sibling of the Rust lineage's
// bril_parse.rs, generalized from a single-field "data bag" wrapper to
// typed accessors living directly on ir.Instruction.
package reader

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"bril/internal/ioerr"
	"bril/internal/ir"
)

// functionDoc is one entry of the top-level "functions" array of
// spec.md 6's input: { "functions": [ ... ] }.
type functionDoc struct {
	Name   string     `json:"name"`
	Args   []argDoc   `json:"args"`
	Instrs []instrDoc `json:"instrs"`
}

type argDoc struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// instrDoc mirrors ir.Instruction's field shape but carries JSON tags;
// kept separate from ir.Instruction so the core stays format-agnostic.
type instrDoc struct {
	Op     string      `json:"op,omitempty"`
	Label  string      `json:"label,omitempty"`
	Dest   string      `json:"dest,omitempty"`
	Type   string      `json:"type,omitempty"`
	Args   []string    `json:"args,omitempty"`
	Labels []string    `json:"labels,omitempty"`
	Funcs  []string    `json:"funcs,omitempty"`
	Value  interface{} `json:"value,omitempty"`
}

func (d instrDoc) toInstruction() ir.Instruction {
	return ir.Instruction{
		Op:     d.Op,
		Label:  d.Label,
		Dest:   d.Dest,
		Type:   d.Type,
		Args:   d.Args,
		Labels: d.Labels,
		Funcs:  d.Funcs,
		Value:  d.Value,
	}
}

// FromFile reads and parses the document at path.
func FromFile(path string) ([]ir.FunctionSource, *ioerr.ReaderError) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ioerr.IOFailure(path, err)
	}
	return fromBytes(data)
}

// FromReader reads and parses the document from r (the driver's stdin
// path, spec.md 6's "program (no args)" form).
func FromReader(r io.Reader) ([]ir.FunctionSource, *ioerr.ReaderError) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, ioerr.IOFailure("", err)
	}
	return fromBytes(buf.Bytes())
}

// fromBytes implements spec.md 7's "Input format failure" kind: the
// document must parse as JSON and must carry a top-level "functions"
// array. Every field within each instruction object is optional and
// its absence is never an error (spec.md 3, 7).
func fromBytes(data []byte) ([]ir.FunctionSource, *ioerr.ReaderError) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, ioerr.FormatFailure("input is not well-formed JSON", err)
	}

	raw, ok := top["functions"]
	if !ok {
		return nil, ioerr.FormatFailure(`missing "functions" array`, nil)
	}

	var docs []functionDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, ioerr.FormatFailure(`"functions" is not an array of functions`, err)
	}

	funcs := make([]ir.FunctionSource, 0, len(docs))
	for _, d := range docs {
		args := make([]ir.Parameter, 0, len(d.Args))
		for _, a := range d.Args {
			args = append(args, ir.Parameter{Name: a.Name, Type: a.Type})
		}
		instrs := make([]ir.Instruction, 0, len(d.Instrs))
		for _, i := range d.Instrs {
			instrs = append(instrs, i.toInstruction())
		}
		funcs = append(funcs, ir.FunctionSource{Name: d.Name, Args: args, Instrs: instrs})
	}
	return funcs, nil
}
