package markdown

import (
	"regexp"
	"strings"
)

// PipeTable is the structured form of a pipe table extracted from raw
// text. Rows keep their original cell counts; ragged rows are not
// padded or truncated.
type PipeTable struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

var separatorCellPattern = regexp.MustCompile(`^:?-{2,}:?$`)

// ParsePipeTable extracts a table directly from text that a strict
// markdown renderer gave up on. It tolerates double-escaped content
// (literal \n sequences), missing separator rows, and interleaved
// prose. Returns nil when the text does not contain at least a header
// row and one data row.
func ParsePipeTable(text string) *PipeTable {
	// Double-escaped model output carries literal "\n" instead of real
	// line breaks.
	text = strings.ReplaceAll(text, `\n`, "\n")
	text = strings.ReplaceAll(text, "\r", "")

	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		if !isTableLine(line) {
			continue
		}
		rows = append(rows, splitCells(line))
	}

	if len(rows) < 2 {
		return nil
	}

	sepIdx := -1
	for i, cells := range rows {
		if isSeparatorRow(cells) {
			sepIdx = i
			break
		}
	}

	var headers []string
	var dataStart int
	if sepIdx > 0 {
		headers = rows[sepIdx-1]
		dataStart = sepIdx + 1
	} else {
		// No separator, or a separator with nothing before it: the
		// first non-separator row is the header.
		dataStart = 0
		for dataStart < len(rows) && isSeparatorRow(rows[dataStart]) {
			dataStart++
		}
		if dataStart >= len(rows) {
			return nil
		}
		headers = rows[dataStart]
		dataStart++
	}

	var data [][]string
	for i := dataStart; i < len(rows); i++ {
		if isSeparatorRow(rows[i]) {
			continue
		}
		data = append(data, rows[i])
	}

	if len(data) == 0 {
		return nil
	}
	return &PipeTable{Headers: headers, Rows: data}
}

func splitCells(line string) []string {
	t := strings.TrimSpace(line)
	t = strings.TrimPrefix(t, "|")
	t = strings.TrimSuffix(t, "|")
	parts := strings.Split(t, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

func isSeparatorRow(cells []string) bool {
	if len(cells) == 0 {
		return false
	}
	for _, c := range cells {
		if !separatorCellPattern.MatchString(c) {
			return false
		}
	}
	return true
}
