package cli

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Table lays out report rows in aligned columns under a dashed header rule.
// Widths are counted in terminal cells, so lipgloss-styled cells line up.
type Table struct {
	headers []string
	rows    [][]string
	padding int
	wrapAt  map[int]int // column -> wrap width; absent or 0 means never wrap
}

// NewTable returns an empty table with two spaces between columns.
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		padding: 2,
		wrapAt:  make(map[int]int),
	}
}

// SetColumnMaxWidth wraps cells in column colIndex at word boundaries once
// they exceed maxWidth cells.
func (t *Table) SetColumnMaxWidth(colIndex int, maxWidth int) {
	t.wrapAt[colIndex] = maxWidth
}

// EnableTerminalAwareWidth limits column colIndex to the space left on the
// terminal after the other columns, but never below minWidth. It has no
// effect when stdout is not a terminal.
func (t *Table) EnableTerminalAwareWidth(colIndex, minWidth int) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return
	}

	used := 0
	for i, w := range t.naturalWidths() {
		if i != colIndex {
			used += w + t.padding
		}
	}
	t.wrapAt[colIndex] = max(minWidth, width-used)
}

// AddRow appends a row. Missing cells render empty; cells beyond the header
// count are dropped.
func (t *Table) AddRow(row []string) {
	cells := make([]string, len(t.headers))
	copy(cells, row)
	t.rows = append(t.rows, cells)
}

// Render returns the header, the dashed rule and every row, one line per
// wrapped cell line. Trailing spaces are trimmed.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	cells := t.wrapCells()
	widths := t.columnWidths(cells)

	var b strings.Builder
	gap := strings.Repeat(" ", t.padding)
	line := func(parts []string) {
		for i := range parts {
			parts[i] = padRight(parts[i], widths[i])
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, gap), " "))
		b.WriteByte('\n')
	}

	line(append([]string(nil), t.headers...))
	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("-", w)
	}
	line(rule)

	for _, row := range cells {
		height := 1
		for _, cell := range row {
			height = max(height, len(cell))
		}
		for n := range height {
			parts := make([]string, len(row))
			for i, cell := range row {
				if n < len(cell) {
					parts[i] = cell[n]
				}
			}
			line(parts)
		}
	}

	return b.String()
}

// wrapCells splits every cell into display lines.
func (t *Table) wrapCells() [][][]string {
	out := make([][][]string, len(t.rows))
	for r, row := range t.rows {
		out[r] = make([][]string, len(row))
		for c, cell := range row {
			out[r][c] = wrapText(cell, t.wrapAt[c])
		}
	}
	return out
}

// columnWidths is the widest header or wrapped line in each column.
func (t *Table) columnWidths(cells [][][]string) []int {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range cells {
		for i, cell := range row {
			for _, l := range cell {
				widths[i] = max(widths[i], lipgloss.Width(l))
			}
		}
	}
	return widths
}

// naturalWidths returns each column's unwrapped width.
func (t *Table) naturalWidths() []int {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}
	return widths
}

func padRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// wrapText greedily fills lines of at most width cells. Words longer than
// width are split by rune. A width of 0 or less disables wrapping.
func wrapText(text string, width int) []string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return []string{text}
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}

	var lines []string
	cur := ""
	flush := func() {
		if cur != "" {
			lines = append(lines, cur)
		}
		cur = ""
	}

	for _, word := range words {
		if runes := []rune(word); len(runes) > width {
			flush()
			for ; len(runes) > width; runes = runes[width:] {
				lines = append(lines, string(runes[:width]))
			}
			cur = string(runes)
			continue
		}

		if cur != "" && lipgloss.Width(cur)+1+lipgloss.Width(word) > width {
			flush()
		}
		if cur == "" {
			cur = word
		} else {
			cur += " " + word
		}
	}
	flush()

	return lines
}
