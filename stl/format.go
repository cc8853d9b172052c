package stl

import (
	"strings"

	"github.com/tsawler/stlfield/model"
)

// Format writes a table as STL text that parses back to the same table.
//
// Two details do not survive the trip: the Header flag of cells outside
// the header section, and rows whose cells are all empty, which parse as
// rows without cells. Newlines inside cell text are written as spaces.
func Format(t *model.Table) string {
	if t == nil {
		return ""
	}

	var sb strings.Builder
	if t.Header != nil {
		sb.WriteString("[header]\n")
		writeRow(&sb, *t.Header, false)
	}
	if len(t.Body) > 0 {
		sb.WriteString("[body]\n")
		for _, row := range t.Body {
			writeRow(&sb, row, true)
		}
	}
	if t.Footer != nil {
		sb.WriteString("[footer]\n")
		writeRow(&sb, *t.Footer, false)
	}
	return sb.String()
}

// writeRow writes one row line. Header and footer sections may be present
// without a row, so an empty row there is omitted; in the body it is kept
// as a bare pipe.
func writeRow(sb *strings.Builder, row model.Row, keepEmpty bool) {
	if len(row.Cells) == 0 {
		if keepEmpty {
			sb.WriteString("|\n")
		}
		return
	}

	sb.WriteByte('|')
	for _, cell := range row.Cells {
		sb.WriteByte(' ')
		switch cell.Align {
		case model.AlignLeft:
			sb.WriteString(":< ")
		case model.AlignCenter:
			sb.WriteString(":^ ")
		case model.AlignRight:
			sb.WriteString(":> ")
		}
		sb.WriteString(escapeCell(cell.Text))
		sb.WriteString(" |")
		for i := 1; i < cell.Span(); i++ {
			sb.WriteString(" > |")
		}
	}
	sb.WriteByte('\n')
}

var escaper = strings.NewReplacer(
	`\`, `\\`,
	`|`, `\|`,
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
)

func escapeCell(text string) string {
	text = strings.TrimSpace(escaper.Replace(text))
	switch {
	case text == ">":
		return `\>`
	case strings.HasPrefix(text, ":"):
		return `\` + text
	}
	return text
}
