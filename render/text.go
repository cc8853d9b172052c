package render

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/width"

	"github.com/tsawler/stlfield/model"
)

// TextRenderer renders tables as a plain monospace grid:
//
//	+--------+-----+
//	| Name   | Qty |
//	+========+=====+
//	| Apples | 3   |
//	+--------+-----+
type TextRenderer struct{}

// NewTextRenderer creates a plain text renderer
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

func (r *TextRenderer) Surface() string { return SurfaceText }

// Render writes the table as a grid. Cell markup is written as is.
func (r *TextRenderer) Render(w io.Writer, t *model.Table, _ Options) error {
	cols := t.ColCount()
	if cols == 0 {
		return nil
	}
	widths := columnWidths(t, cols)

	bw := bufio.NewWriter(w)
	bw.WriteString(rule(widths, '-'))
	if t.Header != nil {
		bw.WriteString(gridRow(*t.Header, widths))
		bw.WriteString(rule(widths, '='))
	}
	for _, row := range t.Body {
		bw.WriteString(gridRow(row, widths))
	}
	if len(t.Body) > 0 {
		bw.WriteString(rule(widths, '-'))
	}
	if t.Footer != nil {
		bw.WriteString(gridRow(*t.Footer, widths))
		bw.WriteString(rule(widths, '-'))
	}
	return bw.Flush()
}

// columnWidths sizes columns from single-column cells first, then widens
// the last column of any spanning cell that still does not fit
func columnWidths(t *model.Table, cols int) []int {
	widths := make([]int, cols)
	rows := t.Rows()

	for _, row := range rows {
		col := 0
		for _, cell := range row.Cells {
			if cell.Span() == 1 {
				if w := DisplayWidth(cellText(cell)); w > widths[col] {
					widths[col] = w
				}
			}
			col += cell.Span()
		}
	}

	for _, row := range rows {
		col := 0
		for _, cell := range row.Cells {
			span := cell.Span()
			if span > 1 {
				have := spanWidth(widths[col : col+span])
				if need := DisplayWidth(cellText(cell)); need > have {
					widths[col+span-1] += need - have
				}
			}
			col += span
		}
	}
	return widths
}

// spanWidth returns the inner width of adjacent columns joined together,
// including the " | " separators between them
func spanWidth(widths []int) int {
	n := 3 * (len(widths) - 1)
	for _, w := range widths {
		n += w
	}
	return n
}

func rule(widths []int, fill byte) string {
	var sb strings.Builder
	sb.WriteByte('+')
	for _, w := range widths {
		sb.WriteString(strings.Repeat(string(fill), w+2))
		sb.WriteByte('+')
	}
	sb.WriteByte('\n')
	return sb.String()
}

func gridRow(row model.Row, widths []int) string {
	var sb strings.Builder
	sb.WriteByte('|')
	col := 0
	for _, cell := range row.Cells {
		span := cell.Span()
		sb.WriteByte(' ')
		sb.WriteString(pad(cellText(cell), spanWidth(widths[col:col+span]), cell.Align))
		sb.WriteString(" |")
		col += span
	}
	for ; col < len(widths); col++ {
		sb.WriteString(strings.Repeat(" ", widths[col]+2))
		sb.WriteByte('|')
	}
	sb.WriteByte('\n')
	return sb.String()
}

func cellText(cell model.Cell) string {
	return strings.Join(strings.Fields(cell.Text), " ")
}

func pad(s string, w int, align model.Alignment) string {
	gap := w - DisplayWidth(s)
	if gap <= 0 {
		return s
	}
	switch align {
	case model.AlignRight:
		return strings.Repeat(" ", gap) + s
	case model.AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + strings.Repeat(" ", gap)
	}
}

// DisplayWidth returns the number of monospace columns s occupies. Wide and
// fullwidth runes take two columns, combining marks none.
func DisplayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch {
		case unicode.Is(unicode.Mn, r), unicode.Is(unicode.Me, r):
		case isWide(r):
			n += 2
		default:
			n++
		}
	}
	return n
}

func isWide(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	}
	return false
}
