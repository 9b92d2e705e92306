package ir

import (
	"strings"
	"testing"
)

func TestReportSortsBlocksAndVariables(t *testing.T) {
	in := map[string]State{
		"zblock": {"beta": Const(2), "alpha": Const(1)},
		"ablock": {"gamma": NACElem},
	}
	out := map[string]State{
		"zblock": {"beta": Const(2), "alpha": Const(1)},
		"ablock": {"gamma": NACElem},
	}

	report := Report("main", in, out)

	ablockIdx := strings.Index(report, "ablock")
	zblockIdx := strings.Index(report, "zblock")
	if ablockIdx == -1 || zblockIdx == -1 || ablockIdx > zblockIdx {
		t.Errorf("blocks should be sorted lexicographically, got:\n%s", report)
	}

	alphaIdx := strings.Index(report, "alpha")
	betaIdx := strings.Index(report, "beta")
	if alphaIdx == -1 || betaIdx == -1 || alphaIdx > betaIdx {
		t.Errorf("variables within a block should be sorted lexicographically, got:\n%s", report)
	}
}

func TestReportFormatsLatticeElements(t *testing.T) {
	in := map[string]State{"entry": {}}
	out := map[string]State{"entry": {"u": UndefElem, "c": Const(42), "n": NACElem}}

	report := Report("main", in, out)

	for _, want := range []string{"UNDEF", "42", "NAC"} {
		if !strings.Contains(report, want) {
			t.Errorf("report should contain %q, got:\n%s", want, report)
		}
	}
}
