package reader

import (
	"strings"
	"testing"

	"bril/internal/ioerr"
)

func TestFromReaderParsesFunctionsAndArgs(t *testing.T) {
	doc := `{
		"functions": [
			{
				"name": "main",
				"args": [{"name": "n", "type": "int"}],
				"instrs": [
					{"dest": "a", "op": "const", "type": "int", "value": 4},
					{"dest": "b", "op": "id", "args": ["a"]},
					{"op": "print", "args": ["b"]},
					{"op": "ret", "args": []}
				]
			}
		]
	}`

	funcs, err := FromReader(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(funcs) != 1 {
		t.Fatalf("expected 1 function, got %d", len(funcs))
	}
	fn := funcs[0]
	if fn.Name != "main" {
		t.Errorf("fn.Name = %q, want main", fn.Name)
	}
	if len(fn.Args) != 1 || fn.Args[0].Name != "n" || fn.Args[0].Type != "int" {
		t.Errorf("fn.Args = %+v", fn.Args)
	}
	if len(fn.Instrs) != 4 {
		t.Fatalf("expected 4 instructions, got %d", len(fn.Instrs))
	}
	if dest, ok := fn.Instrs[0].GetDest(); !ok || dest != "a" {
		t.Errorf("first instruction dest = %q, %v", dest, ok)
	}
}

func TestFromReaderMissingFunctionsArray(t *testing.T) {
	_, err := FromReader(strings.NewReader(`{"nope": []}`))
	if err == nil {
		t.Fatal("expected a format error")
	}
	if err.Code != ioerr.CodeFormat {
		t.Errorf("err.Code = %v, want %v", err.Code, ioerr.CodeFormat)
	}
}

func TestFromReaderMalformedJSON(t *testing.T) {
	_, err := FromReader(strings.NewReader(`{not json`))
	if err == nil {
		t.Fatal("expected a format error")
	}
	if err.Code != ioerr.CodeFormat {
		t.Errorf("err.Code = %v, want %v", err.Code, ioerr.CodeFormat)
	}
}

func TestFromFileMissingPathIsIOFailure(t *testing.T) {
	_, err := FromFile("/nonexistent/path/does-not-exist.json")
	if err == nil {
		t.Fatal("expected an IO error")
	}
	if err.Code != ioerr.CodeIO {
		t.Errorf("err.Code = %v, want %v", err.Code, ioerr.CodeIO)
	}
}

func TestFromReaderConstValueAsDecimalString(t *testing.T) {
	doc := `{"functions": [{"name": "f", "instrs": [
		{"dest": "a", "op": "const", "type": "int", "value": "9223372036854775807"}
	]}]}`
	funcs, err := FromReader(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := funcs[0].Instrs[0].ConstInt()
	if !ok || v != 9223372036854775807 {
		t.Errorf("ConstInt() = (%d, %v)", v, ok)
	}
}
