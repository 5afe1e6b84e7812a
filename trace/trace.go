// Package trace compares a run's per-instruction log lines against a
// known-good reference log, for conformance testing against fixtures such
// as nestest's.
package trace

import "fmt"

// Mismatch is a single line where got and want diverge.
type Mismatch struct {
	Line int
	Got  string
	Want string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("line %d:\n  got:  %s\n  want: %s", m.Line, m.Got, m.Want)
}

// Diff compares got against want line by line and returns every mismatch,
// including a length mismatch reported as a trailing Mismatch against an
// empty counterpart. Lines are 1-indexed to match editor/log conventions.
func Diff(got, want []string) []Mismatch {
	var mismatches []Mismatch

	n := len(got)
	if len(want) > n {
		n = len(want)
	}

	for i := 0; i < n; i++ {
		var g, w string
		if i < len(got) {
			g = got[i]
		}
		if i < len(want) {
			w = want[i]
		}
		if g != w {
			mismatches = append(mismatches, Mismatch{Line: i + 1, Got: g, Want: w})
		}
	}

	return mismatches
}
