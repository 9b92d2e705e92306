package ir

import (
	"sort"
	"strings"
)

// Report renders the constant-propagation result for one function as
// spec.md 6 requires of the reporting adapter: block identifiers sorted
// lexicographically, and within each block, variables sorted
// lexicographically. Lattice formatting follows Element.String:
// UNDEF, the decimal integer for Const, NAC.
func Report(functionName string, in, out map[string]State) string {
	var b strings.Builder
	b.WriteString(functionName)
	b.WriteString(":\n")

	ids := make([]string, 0, len(in))
	for id := range in {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		b.WriteString("  ")
		b.WriteString(id)
		b.WriteString(":\n")
		writeState(&b, "    in:  ", in[id])
		writeState(&b, "    out: ", out[id])
	}
	return b.String()
}

func writeState(b *strings.Builder, prefix string, s State) {
	vars := make([]string, 0, len(s))
	for v := range s {
		vars = append(vars, v)
	}
	sort.Strings(vars)

	b.WriteString(prefix)
	for i, v := range vars {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v)
		b.WriteString(": ")
		b.WriteString(s[v].String())
	}
	b.WriteString("\n")
}
