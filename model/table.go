package model

import (
	"strings"
)

// Alignment represents horizontal cell alignment
type Alignment int

const (
	AlignDefault Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return ""
	}
}

// Section identifies one of the three parts of a table
type Section int

const (
	SectionHeader Section = iota
	SectionBody
	SectionFooter
)

func (s Section) String() string {
	switch s {
	case SectionHeader:
		return "header"
	case SectionBody:
		return "body"
	case SectionFooter:
		return "footer"
	default:
		return "unknown"
	}
}

// Table represents a parsed structured table
type Table struct {
	Header *Row
	Body   []Row
	Footer *Row
}

// Row is an ordered list of cells
type Row struct {
	Cells []Cell
}

// Cell represents a table cell. Text is opaque markup.
type Cell struct {
	Text    string
	Header  bool // Rendered as a header cell (th)
	ColSpan int  // 0 and 1 both mean a single column
	Align   Alignment
}

// Span returns the number of columns the cell occupies
func (c Cell) Span() int {
	if c.ColSpan < 1 {
		return 1
	}
	return c.ColSpan
}

// Width returns the number of columns the row occupies
func (r Row) Width() int {
	n := 0
	for _, c := range r.Cells {
		n += c.Span()
	}
	return n
}

// IsEmpty reports whether the table has nothing to show. A nil table is
// empty; otherwise the table is empty when header, every body row and
// footer hold zero cells.
func (t *Table) IsEmpty() bool {
	return t.CellCount() == 0
}

// CellCount returns the total number of cells across all sections
func (t *Table) CellCount() int {
	if t == nil {
		return 0
	}
	n := 0
	if t.Header != nil {
		n += len(t.Header.Cells)
	}
	for _, row := range t.Body {
		n += len(row.Cells)
	}
	if t.Footer != nil {
		n += len(t.Footer.Cells)
	}
	return n
}

// Rows returns every row in display order: header, body, footer.
// Sections that are absent are skipped.
func (t *Table) Rows() []Row {
	if t == nil {
		return nil
	}
	rows := make([]Row, 0, len(t.Body)+2)
	if t.Header != nil {
		rows = append(rows, *t.Header)
	}
	rows = append(rows, t.Body...)
	if t.Footer != nil {
		rows = append(rows, *t.Footer)
	}
	return rows
}

// RowCount returns the number of rows in all sections
func (t *Table) RowCount() int {
	return len(t.Rows())
}

// ColCount returns the width of the widest row
func (t *Table) ColCount() int {
	cols := 0
	for _, row := range t.Rows() {
		if w := row.Width(); w > cols {
			cols = w
		}
	}
	return cols
}

// GetText returns the cell text with tabs between cells and a newline
// after each row
func (t *Table) GetText() string {
	var sb strings.Builder
	for _, row := range t.Rows() {
		for j, cell := range row.Cells {
			sb.WriteString(cell.Text)
			if j < len(row.Cells)-1 {
				sb.WriteString("\t")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToCSV converts the table to CSV format
func (t *Table) ToCSV() string {
	var sb strings.Builder
	for _, row := range t.Rows() {
		for j, cell := range row.Cells {
			// Escape quotes and wrap in quotes if necessary
			text := cell.Text
			if strings.ContainsAny(text, ",\"\n") {
				text = "\"" + strings.ReplaceAll(text, "\"", "\"\"") + "\""
			}
			sb.WriteString(text)
			if j < len(row.Cells)-1 {
				sb.WriteString(",")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Equal reports whether two tables have the same structure and content.
// Two nil tables are equal.
func Equal(a, b *Table) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !rowPtrEqual(a.Header, b.Header) || !rowPtrEqual(a.Footer, b.Footer) {
		return false
	}
	if len(a.Body) != len(b.Body) {
		return false
	}
	for i := range a.Body {
		if !rowEqual(a.Body[i], b.Body[i]) {
			return false
		}
	}
	return true
}

func rowPtrEqual(a, b *Row) bool {
	if a == nil || b == nil {
		return a == b
	}
	return rowEqual(*a, *b)
}

func rowEqual(a, b Row) bool {
	if len(a.Cells) != len(b.Cells) {
		return false
	}
	for i := range a.Cells {
		ca, cb := a.Cells[i], b.Cells[i]
		if ca.Text != cb.Text || ca.Header != cb.Header || ca.Span() != cb.Span() || ca.Align != cb.Align {
			return false
		}
	}
	return true
}
