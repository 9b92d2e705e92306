package main

import (
	"bytes"
	"strings"
	"testing"
)

const sampleDoc = `{
	"functions": [
		{
			"name": "main",
			"instrs": [
				{"dest": "a", "op": "const", "type": "int", "value": 4},
				{"dest": "b", "op": "const", "type": "int", "value": 2},
				{"dest": "c", "op": "add", "type": "int", "args": ["a", "b"]},
				{"op": "print", "args": ["c"]},
				{"op": "ret", "args": []}
			]
		}
	]
}`

func runCLI(t *testing.T, args []string, stdin string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCommand()
	var out, errBuf bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errBuf)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errBuf.String(), err
}

func TestRunRootReadsFromStdinAndReportsFunction(t *testing.T) {
	stdout, _, err := runCLI(t, nil, sampleDoc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "main:") {
		t.Errorf("stdout = %q, want it to contain the function report", stdout)
	}
}

func TestRunRootUnknownPassFlagFailsTheCommand(t *testing.T) {
	_, _, err := runCLI(t, []string{"--pass", "bogus"}, sampleDoc)
	if err == nil {
		t.Fatal("expected an error for an unknown --pass value")
	}
}

func TestRunRootMalformedInputFailsTheCommand(t *testing.T) {
	_, stderr, err := runCLI(t, nil, `{not json`)
	if err == nil {
		t.Fatal("expected an error for malformed input")
	}
	if !strings.Contains(stderr, "E0002") {
		t.Errorf("stderr = %q, want it to mention the format error code", stderr)
	}
}

func TestResolvePassesAll(t *testing.T) {
	passes, err := resolvePasses("all")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(passes) != 2 {
		t.Fatalf("expected 2 passes, got %d", len(passes))
	}
	if passes[0].Name() != "dce" || passes[1].Name() != "constprop" {
		t.Errorf("unexpected pass order: %s, %s", passes[0].Name(), passes[1].Name())
	}
}

func TestResolvePassesSingle(t *testing.T) {
	passes, err := resolvePasses("dce")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(passes) != 1 || passes[0].Name() != "dce" {
		t.Errorf("unexpected passes: %+v", passes)
	}
}
