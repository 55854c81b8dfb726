package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePipeTableStandard(t *testing.T) {
	text := "| Phase | Duration |\n| --- | --- |\n| Discovery | 2 weeks |\n| Build | 6 weeks |"

	table := ParsePipeTable(text)

	assert.NotNil(t, table)
	assert.Equal(t, []string{"Phase", "Duration"}, table.Headers)
	assert.Equal(t, [][]string{
		{"Discovery", "2 weeks"},
		{"Build", "6 weeks"},
	}, table.Rows)
}

func TestParsePipeTableWithoutSeparator(t *testing.T) {
	text := "| Risk | Mitigation |\n| Vendor lock-in | Abstraction layer |"

	table := ParsePipeTable(text)

	assert.NotNil(t, table)
	assert.Equal(t, []string{"Risk", "Mitigation"}, table.Headers)
	assert.Len(t, table.Rows, 1)
}

func TestParsePipeTableNormalizesEscapedNewlines(t *testing.T) {
	text := `| A | B |\n| --- | --- |\n| 1 | 2 |`

	table := ParsePipeTable(text)

	assert.NotNil(t, table)
	assert.Equal(t, []string{"A", "B"}, table.Headers)
	assert.Equal(t, [][]string{{"1", "2"}}, table.Rows)
}

func TestParsePipeTableIgnoresSurroundingProse(t *testing.T) {
	text := "The phases are listed below.\n\n| Phase | Owner |\n| --- | --- |\n| Pilot | Ops |\n\nTimings are estimates."

	table := ParsePipeTable(text)

	assert.NotNil(t, table)
	assert.Equal(t, []string{"Phase", "Owner"}, table.Headers)
	assert.Equal(t, [][]string{{"Pilot", "Ops"}}, table.Rows)
}

func TestParsePipeTablePreservesRaggedRows(t *testing.T) {
	text := "| A | B | C |\n| --- | --- | --- |\n| 1 | 2 |\n| 1 | 2 | 3 | 4 |"

	table := ParsePipeTable(text)

	assert.NotNil(t, table)
	assert.Len(t, table.Rows[0], 2)
	assert.Len(t, table.Rows[1], 4)
}

func TestParsePipeTableAlignmentSeparators(t *testing.T) {
	text := "| L | C | R |\n|:---|:---:|---:|\n| a | b | c |"

	table := ParsePipeTable(text)

	assert.NotNil(t, table)
	assert.Equal(t, []string{"L", "C", "R"}, table.Headers)
	assert.Equal(t, [][]string{{"a", "b", "c"}}, table.Rows)
}

func TestParsePipeTableRejectsTooLittleContent(t *testing.T) {
	assert.Nil(t, ParsePipeTable("no table here"))
	assert.Nil(t, ParsePipeTable("| only | header |"))
	assert.Nil(t, ParsePipeTable("| header | row |\n| --- | --- |"))
	assert.Nil(t, ParsePipeTable(""))
}
