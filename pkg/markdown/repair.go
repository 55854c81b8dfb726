package markdown

import "strings"

// Repair normalizes pipe-table regions in model-produced markdown so a
// strict renderer recognizes them. Models routinely emit tables with
// stray blank lines between rows, indented rows, or no surrounding
// blank lines. Repair fixes exactly those defects and leaves every
// non-table line byte-identical. It is idempotent: Repair(Repair(s))
// == Repair(s).
func Repair(raw string) string {
	lines := strings.Split(raw, "\n")
	out := make([]string, 0, len(lines))
	inTable := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if isTableLine(line) {
			if !inTable {
				// A table block needs a blank line before its first row.
				if len(out) > 0 && strings.TrimSpace(out[len(out)-1]) != "" {
					out = append(out, "")
				}
				inTable = true
			}
			out = append(out, strings.TrimLeft(line, " \t"))
			continue
		}

		if inTable {
			if trimmed == "" {
				// Blank lines inside a block are spurious. If the table
				// actually ended, the closing blank is re-added below.
				continue
			}
			inTable = false
			out = append(out, "", line)
			continue
		}

		out = append(out, line)
	}

	// An input ending inside a table with a trailing blank keeps its
	// closing newline; only table rows get rewritten.
	if inTable && strings.TrimSpace(lines[len(lines)-1]) == "" {
		out = append(out, "")
	}

	return strings.Join(out, "\n")
}

// isTableLine reports whether a line is part of a pipe table: it
// starts with a pipe, or it contains interior pipes splitting it into
// at least three fields (rows missing their outer pipes).
func isTableLine(line string) bool {
	t := strings.TrimSpace(line)
	if t == "" {
		return false
	}
	if strings.HasPrefix(t, "|") {
		return true
	}
	return strings.Count(t, "|") >= 2 && len(strings.Split(t, "|")) >= 3
}
