package htmldoc

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/stlfield/model"
)

func TestOpenReader_SimpleHTML(t *testing.T) {
	html := `<!DOCTYPE html>
<html>
<head>
	<title>Quarterly Report</title>
</head>
<body>
	<h1>Main Heading</h1>
	<table>
		<caption>Sales</caption>
		<thead><tr><th>Region</th><th>Total</th></tr></thead>
		<tbody>
			<tr><td>North</td><td align="right">10</td></tr>
			<tr><td>South</td><td style="color: red; text-align: center">20</td></tr>
		</tbody>
		<tfoot><tr><td>Sum</td><td>30</td></tr></tfoot>
	</table>
</body>
</html>`

	r, err := OpenReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("OpenReader() failed: %v", err)
	}
	defer r.Close()

	if r.Title() != "Quarterly Report" {
		t.Errorf("Title() = %q, want 'Quarterly Report'", r.Title())
	}
	if r.TableCount() != 1 {
		t.Fatalf("TableCount() = %d, want 1", r.TableCount())
	}
	if got := r.ParsedTables()[0].Caption; got != "Sales" {
		t.Errorf("Caption = %q, want 'Sales'", got)
	}

	want := &model.Table{
		Header: &model.Row{Cells: []model.Cell{
			{Text: "Region", Header: true},
			{Text: "Total", Header: true},
		}},
		Body: []model.Row{
			{Cells: []model.Cell{{Text: "North"}, {Text: "10", Align: model.AlignRight}}},
			{Cells: []model.Cell{{Text: "South"}, {Text: "20", Align: model.AlignCenter}}},
		},
		Footer: &model.Row{Cells: []model.Cell{{Text: "Sum"}, {Text: "30"}}},
	}
	got, err := r.Table(0)
	if err != nil {
		t.Fatalf("Table(0) failed: %v", err)
	}
	if !model.Equal(got, want) {
		t.Errorf("Table(0) = %+v, want %+v", got, want)
	}
}

func TestOpenReader_Fragment(t *testing.T) {
	r, err := OpenReader(strings.NewReader(`<table><tr><td>a</td><td colspan="2">b</td></tr></table>`))
	if err != nil {
		t.Fatalf("OpenReader() failed: %v", err)
	}
	tables := r.Tables()
	if len(tables) != 1 {
		t.Fatalf("len(Tables()) = %d, want 1", len(tables))
	}
	tbl := tables[0]
	if tbl.Header != nil || tbl.Footer != nil {
		t.Error("fragment table should have no header or footer")
	}
	if tbl.RowCount() != 1 || tbl.ColCount() != 3 {
		t.Errorf("RowCount, ColCount = %d, %d, want 1, 3", tbl.RowCount(), tbl.ColCount())
	}
	if tbl.Body[0].Cells[1].ColSpan != 2 {
		t.Errorf("ColSpan = %d, want 2", tbl.Body[0].Cells[1].ColSpan)
	}
}

func TestOpenReader_InvalidHTML(t *testing.T) {
	// Even malformed HTML should parse (HTML parser is lenient)
	html := `<html><body><table><tr><td>unclosed`

	r, err := OpenReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("OpenReader() should handle malformed HTML: %v", err)
	}
	defer r.Close()

	if r.TableCount() != 1 {
		t.Errorf("TableCount() = %d, want 1", r.TableCount())
	}
}

func TestOpen_NotFound(t *testing.T) {
	_, err := Open("/nonexistent/file.html")
	if err == nil {
		t.Error("Open() expected error for nonexistent file")
	}
}

func TestOpen_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.html")
	if err := os.WriteFile(path, []byte(`<table><tr><td>x</td></tr></table>`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if r.TableCount() != 1 {
		t.Errorf("TableCount() = %d, want 1", r.TableCount())
	}
}

func TestReader_Table_Errors(t *testing.T) {
	r, err := OpenReader(strings.NewReader(`<p>no tables here</p>`))
	if err != nil {
		t.Fatalf("OpenReader() failed: %v", err)
	}
	if _, err := r.Table(0); !errors.Is(err, ErrNoTables) {
		t.Errorf("Table(0) error = %v, want ErrNoTables", err)
	}

	r, _ = OpenReader(strings.NewReader(`<table><tr><td>x</td></tr></table>`))
	if _, err := r.Table(1); err == nil {
		t.Error("Table(1) expected out of range error")
	}
}

func TestParseTable_ImplicitHeader(t *testing.T) {
	r, _ := OpenReader(strings.NewReader(`<table>
		<tr><th>A</th><th>B</th></tr>
		<tr><th>row</th><td>1</td></tr>
	</table>`))

	tbl := r.Tables()[0]
	if tbl.Header == nil || tbl.Header.Cells[0].Text != "A" {
		t.Fatalf("Header = %+v, want row starting with A", tbl.Header)
	}
	if len(tbl.Body) != 1 {
		t.Fatalf("len(Body) = %d, want 1", len(tbl.Body))
	}
	if !tbl.Body[0].Cells[0].Header || tbl.Body[0].Cells[1].Header {
		t.Error("body th/td distinction lost")
	}
}

func TestParseTable_ExtraSectionRows(t *testing.T) {
	r, _ := OpenReader(strings.NewReader(`<table>
		<thead><tr><th>h1</th></tr><tr><th>h2</th></tr></thead>
		<tbody><tr><td>b</td></tr></tbody>
		<tfoot><tr><td>f1</td></tr><tr><td>f2</td></tr></tfoot>
	</table>`))

	tbl := r.Tables()[0]
	if tbl.Header.Cells[0].Text != "h1" {
		t.Errorf("Header = %q, want h1", tbl.Header.Cells[0].Text)
	}
	if tbl.Footer.Cells[0].Text != "f2" {
		t.Errorf("Footer = %q, want f2", tbl.Footer.Cells[0].Text)
	}

	var body []string
	for _, row := range tbl.Body {
		body = append(body, row.Cells[0].Text)
	}
	if got := strings.Join(body, ","); got != "h2,b,f1" {
		t.Errorf("Body = %q, want h2,b,f1", got)
	}
}

func TestParseTable_CellText(t *testing.T) {
	r, _ := OpenReader(strings.NewReader(`<table><tr>
		<td>  spaced
			out  </td>
		<td><b>bold</b> and <i>italic</i><script>alert(1)</script></td>
		<td colspan="x">bad span</td>
	</tr></table>`))

	cells := r.Tables()[0].Body[0].Cells
	want := []string{"spaced out", "bold and italic", "bad span"}
	for i, w := range want {
		if cells[i].Text != w {
			t.Errorf("cell %d = %q, want %q", i, cells[i].Text, w)
		}
	}
	if cells[2].ColSpan != 0 {
		t.Errorf("invalid colspan should be ignored, got %d", cells[2].ColSpan)
	}
}

func TestParseTable_ColSpanLimit(t *testing.T) {
	tests := []struct {
		span string
		want int
	}{
		{"1000", 1000},
		{"1001", maxColSpan},
		{"10000000", maxColSpan},
		{"2147483647", maxColSpan},
	}

	for _, tt := range tests {
		t.Run(tt.span, func(t *testing.T) {
			r, err := OpenReader(strings.NewReader(`<table><tr><td colspan="` + tt.span + `">x</td></tr></table>`))
			if err != nil {
				t.Fatalf("OpenReader() failed: %v", err)
			}
			tbl := r.Tables()[0]
			if got := tbl.Body[0].Cells[0].ColSpan; got != tt.want {
				t.Errorf("ColSpan = %d, want %d", got, tt.want)
			}
			if tbl.ColCount() != tt.want {
				t.Errorf("ColCount() = %d, want %d", tbl.ColCount(), tt.want)
			}
		})
	}
}

func TestParseTable_Nested(t *testing.T) {
	r, _ := OpenReader(strings.NewReader(`<table><tr><td>outer
		<table><tr><td>inner</td></tr></table>
	</td></tr></table>`))

	if r.TableCount() != 2 {
		t.Fatalf("TableCount() = %d, want 2", r.TableCount())
	}
	if got := r.Tables()[1].Body[0].Cells[0].Text; got != "inner" {
		t.Errorf("nested table cell = %q, want inner", got)
	}
}

func TestParseTable_SkipsTemplate(t *testing.T) {
	r, _ := OpenReader(strings.NewReader(`<template><table><tr><td>x</td></tr></table></template>`))
	if r.TableCount() != 0 {
		t.Errorf("TableCount() = %d, want 0", r.TableCount())
	}
}

func TestStyleAlign(t *testing.T) {
	tests := []struct {
		style string
		want  model.Alignment
	}{
		{"text-align: left", model.AlignLeft},
		{"color:red;TEXT-ALIGN:Right", model.AlignRight},
		{"text-align: end", model.AlignRight},
		{"text-align: justify", model.AlignDefault},
		{"font-weight: bold", model.AlignDefault},
		{"", model.AlignDefault},
	}

	for _, tt := range tests {
		if got := styleAlign(tt.style); got != tt.want {
			t.Errorf("styleAlign(%q) = %v, want %v", tt.style, got, tt.want)
		}
	}
}

func TestShouldSkipElement(t *testing.T) {
	for _, tag := range []string{"script", "style", "template"} {
		if !shouldSkipElement(tag) {
			t.Errorf("shouldSkipElement(%q) = false, want true", tag)
		}
	}
	for _, tag := range []string{"table", "td", "div"} {
		if shouldSkipElement(tag) {
			t.Errorf("shouldSkipElement(%q) = true, want false", tag)
		}
	}
}
