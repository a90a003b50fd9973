package cli

import (
	"strings"
)

const tablePadding = 2

// Table is a plain-text table with dynamic column widths, used by the list
// commands. Cells in a width-limited column wrap at word boundaries.
type Table struct {
	headers   []string
	rows      [][]string
	maxWidths map[int]int
}

// NewTable creates a table with the given column headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers:   headers,
		maxWidths: make(map[int]int),
	}
}

// SetColumnMaxWidth caps a column's width; longer cells wrap.
func (t *Table) SetColumnMaxWidth(col, width int) {
	t.maxWidths[col] = width
}

// AddRow appends a row. Short rows are padded to the header count, long
// rows truncated.
func (t *Table) AddRow(row []string) {
	cells := make([]string, len(t.headers))
	copy(cells, row)
	t.rows = append(t.rows, cells)
}

// Render formats the table as a string with a header and separator line.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	// Wrap width-limited cells first so widths account for wrapped lines.
	wrapped := make([][][]string, len(t.rows))
	for r, row := range t.rows {
		wrapped[r] = make([][]string, len(row))
		for c, cell := range row {
			if max := t.maxWidths[c]; max > 0 {
				wrapped[r][c] = wrapText(cell, max)
			} else {
				wrapped[r][c] = []string{cell}
			}
		}
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range wrapped {
		for c, lines := range row {
			for _, line := range lines {
				if len(line) > widths[c] {
					widths[c] = len(line)
				}
			}
		}
	}

	gap := strings.Repeat(" ", tablePadding)
	var b strings.Builder

	cells := make([]string, len(t.headers))
	for i, h := range t.headers {
		cells[i] = padRight(h, widths[i])
	}
	b.WriteString(strings.Join(cells, gap))
	b.WriteString("\n")

	for i, w := range widths {
		cells[i] = strings.Repeat("-", w)
	}
	b.WriteString(strings.Join(cells, gap))
	b.WriteString("\n")

	for _, row := range wrapped {
		height := 1
		for _, lines := range row {
			if len(lines) > height {
				height = len(lines)
			}
		}
		for line := 0; line < height; line++ {
			for c := range t.headers {
				cell := ""
				if line < len(row[c]) {
					cell = row[c][line]
				}
				cells[c] = padRight(cell, widths[c])
			}
			b.WriteString(strings.Join(cells, gap))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// padRight pads s with spaces to width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// wrapText wraps text at word boundaries to fit width. Words longer than
// width are broken mid-word.
func wrapText(text string, width int) []string {
	if width <= 0 || len(text) <= width {
		return []string{text}
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(text) {
		for len(word) > width {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			lines = append(lines, word[:width])
			word = word[width:]
		}

		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		return []string{text}
	}
	return lines
}
