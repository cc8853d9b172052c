package render

import (
	"io"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/tsawler/stlfield/model"
)

// MarkdownRenderer renders tables as GitHub flavoured markdown
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a markdown renderer
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

func (r *MarkdownRenderer) Surface() string { return SurfaceMarkdown }

// Render writes the table as a markdown table. Markdown has no header-less
// tables, so a table without a header gets a blank one. Footer cells are
// written in bold as the last row. Spanned columns are left blank.
func (r *MarkdownRenderer) Render(w io.Writer, t *model.Table, _ Options) error {
	cols := t.ColCount()
	if cols == 0 {
		return nil
	}

	header := make([]string, cols)
	if t.Header != nil {
		header = markdownRow(*t.Header, cols, false)
	}

	rows := make([][]string, 0, len(t.Body)+1)
	for _, row := range t.Body {
		rows = append(rows, markdownRow(row, cols, false))
	}
	if t.Footer != nil {
		rows = append(rows, markdownRow(*t.Footer, cols, true))
	}

	return md.NewMarkdown(w).
		CustomTable(md.TableSet{
			Header: header,
			Rows:   rows,
		}, md.TableOptions{
			AutoWrapText: false,
		}).
		Build()
}

func markdownRow(row model.Row, cols int, bold bool) []string {
	out := make([]string, 0, cols)
	for _, cell := range row.Cells {
		text := markdownEscaper.Replace(cell.Text)
		if bold && text != "" {
			text = md.Bold(text)
		}
		out = append(out, text)
		for i := 1; i < cell.Span(); i++ {
			out = append(out, "")
		}
	}
	for len(out) < cols {
		out = append(out, "")
	}
	return out
}

var markdownEscaper = strings.NewReplacer(
	"|", `\|`,
	"\r\n", " ",
	"\n", " ",
)
