package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepairDropsBlankLinesInsideTable(t *testing.T) {
	raw := "Intro paragraph.\n\n| Name | Role |\n\n| --- | --- |\n\n| Ana | PM |\n| Ben | Dev |\n\nOutro."

	got := Repair(raw)

	want := "Intro paragraph.\n\n| Name | Role |\n| --- | --- |\n| Ana | PM |\n| Ben | Dev |\n\nOutro."
	assert.Equal(t, want, got)
}

func TestRepairInsertsBlankLinesAroundTable(t *testing.T) {
	raw := "Heading text\n| A | B |\n| --- | --- |\n| 1 | 2 |\nTrailing text"

	got := Repair(raw)

	want := "Heading text\n\n| A | B |\n| --- | --- |\n| 1 | 2 |\n\nTrailing text"
	assert.Equal(t, want, got)
}

func TestRepairTrimsIndentedRows(t *testing.T) {
	raw := "Before\n\n  | A | B |\n\t| --- | --- |\n  | 1 | 2 |"

	got := Repair(raw)

	want := "Before\n\n| A | B |\n| --- | --- |\n| 1 | 2 |"
	assert.Equal(t, want, got)
}

func TestRepairKeepsTrailingNewlineAfterTable(t *testing.T) {
	raw := "| A | B |\n| --- | --- |\n| 1 | 2 |\n"

	got := Repair(raw)

	assert.Equal(t, raw, got)
	assert.Equal(t, got, Repair(got))
}

func TestRepairIsIdempotent(t *testing.T) {
	inputs := []string{
		"plain text, no tables at all",
		"text\n| A | B |\n| --- | --- |\n| 1 | 2 |\ntext",
		"| lone | row |\n\n\n| --- | --- |\n| x | y |",
		"",
		"code with a pipe: a | b",
	}
	for _, raw := range inputs {
		once := Repair(raw)
		assert.Equal(t, once, Repair(once), "input: %q", raw)
	}
}

func TestRepairLeavesNonTableContentUntouched(t *testing.T) {
	raw := "# Title\n\nSome *emphasis* and `code`.\n\n- bullet one\n- bullet two\n\n> quote with one pipe a | b inside"

	assert.Equal(t, raw, Repair(raw))
}

func TestIsTableLine(t *testing.T) {
	assert.True(t, isTableLine("| a | b |"))
	assert.True(t, isTableLine("  | indented |"))
	assert.True(t, isTableLine("a | b | c"))
	assert.False(t, isTableLine("either a | or b"))
	assert.False(t, isTableLine(""))
	assert.False(t, isTableLine("plain prose"))
}
