package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffIdentical(t *testing.T) {
	lines := []string{"a", "b", "c"}
	assert.Empty(t, Diff(lines, lines))
}

func TestDiffReportsMismatch(t *testing.T) {
	got := []string{"a", "X", "c"}
	want := []string{"a", "b", "c"}

	mismatches := Diff(got, want)
	assert.Len(t, mismatches, 1)
	assert.Equal(t, 2, mismatches[0].Line)
	assert.Equal(t, "X", mismatches[0].Got)
	assert.Equal(t, "b", mismatches[0].Want)
}

func TestDiffReportsLengthMismatch(t *testing.T) {
	got := []string{"a", "b"}
	want := []string{"a", "b", "c"}

	mismatches := Diff(got, want)
	assert.Len(t, mismatches, 1)
	assert.Equal(t, 3, mismatches[0].Line)
	assert.Equal(t, "", mismatches[0].Got)
	assert.Equal(t, "c", mismatches[0].Want)
}
