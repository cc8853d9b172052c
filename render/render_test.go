package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/tsawler/stlfield/model"
)

func sampleTable() *model.Table {
	return &model.Table{
		Header: &model.Row{Cells: []model.Cell{{Text: "Name", Header: true}, {Text: "Qty", Header: true}}},
		Body: []model.Row{
			{Cells: []model.Cell{{Text: "Apples"}, {Text: "3", Align: model.AlignRight}}},
		},
		Footer: &model.Row{Cells: []model.Cell{{Text: "Total", ColSpan: 2, Align: model.AlignRight}}},
	}
}

// ============================================================================
// Registry Tests
// ============================================================================

func TestGlobalRegistry(t *testing.T) {
	got := strings.Join(List(), ",")
	if got != "html,markdown,text" {
		t.Errorf("List() = %q, want html,markdown,text", got)
	}

	for _, surface := range []string{SurfaceHTML, SurfaceMarkdown, SurfaceText} {
		r, err := Get(surface)
		if err != nil {
			t.Fatalf("Get(%q) failed: %v", surface, err)
		}
		if r.Surface() != surface {
			t.Errorf("Get(%q).Surface() = %q", surface, r.Surface())
		}
	}
}

func TestRegistryUnknownSurface(t *testing.T) {
	_, err := NewRegistry().Get("pdf")
	if !errors.Is(err, ErrUnknownSurface) {
		t.Errorf("Get() error = %v, want ErrUnknownSurface", err)
	}
}

func TestRegistryReplace(t *testing.T) {
	reg := NewRegistry()
	first := NewTextRenderer()
	second := NewTextRenderer()
	reg.Register(first)
	reg.Register(second)

	got, err := reg.Get(SurfaceText)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got != Renderer(second) {
		t.Error("Register() should replace the renderer for the same surface")
	}
	if len(reg.List()) != 1 {
		t.Errorf("List() = %v, want one surface", reg.List())
	}
}

// ============================================================================
// HTML Tests
// ============================================================================

func TestHTMLRender(t *testing.T) {
	var buf bytes.Buffer
	if err := NewHTMLRenderer().Render(&buf, sampleTable(), Options{Class: "border"}); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	want := `<table class="border">` +
		`<thead><tr><th>Name</th><th>Qty</th></tr></thead>` +
		`<tbody><tr><td>Apples</td><td style="text-align:right">3</td></tr></tbody>` +
		`<tfoot><tr><td colspan="2" style="text-align:right">Total</td></tr></tfoot>` +
		`</table>`
	if got := buf.String(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestHTMLRenderHeaderOnly(t *testing.T) {
	table := &model.Table{Header: &model.Row{Cells: []model.Cell{{Text: "Only", Header: true}}}}

	var buf bytes.Buffer
	if err := NewHTMLRenderer().Render(&buf, table, Options{}); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	want := `<table><thead><tr><th>Only</th></tr></thead></table>`
	if got := buf.String(); got != want {
		t.Errorf("Render() = %s, want %s", got, want)
	}
}

func TestHTMLRenderSanitisesMarkup(t *testing.T) {
	table := &model.Table{
		Body: []model.Row{{Cells: []model.Cell{
			{Text: `<script>alert(1)</script><b>ok</b>`},
			{Text: `a & b`},
			{Text: `<a href="javascript:alert(1)">x</a>`},
		}}},
	}

	var buf bytes.Buffer
	if err := NewHTMLRenderer().Render(&buf, table, Options{}); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	got := buf.String()

	if strings.Contains(got, "script") || strings.Contains(got, "javascript") {
		t.Errorf("Render() kept unsafe markup: %s", got)
	}
	if !strings.Contains(got, "<b>ok</b>") {
		t.Errorf("Render() dropped safe markup: %s", got)
	}
	if !strings.Contains(got, "a &amp; b") {
		t.Errorf("Render() did not escape text: %s", got)
	}
}

func TestHTMLRenderNil(t *testing.T) {
	var buf bytes.Buffer
	if err := NewHTMLRenderer().Render(&buf, nil, Options{}); err != nil {
		t.Fatalf("Render(nil) failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Render(nil) wrote %q", buf.String())
	}
}

// ============================================================================
// Markdown Tests
// ============================================================================

func TestMarkdownRender(t *testing.T) {
	var buf bytes.Buffer
	if err := NewMarkdownRenderer().Render(&buf, sampleTable(), Options{}); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	got := buf.String()

	for _, want := range []string{"Name", "Qty", "Apples", "**Total**", "|"} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() missing %q:\n%s", want, got)
		}
	}
}

func TestMarkdownRow(t *testing.T) {
	row := model.Row{Cells: []model.Cell{{Text: "a|b"}, {Text: "wide", ColSpan: 2}}}
	got := markdownRow(row, 4, false)
	want := []string{`a\|b`, "wide", "", ""}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("markdownRow() = %q, want %q", got, want)
	}
}

func TestMarkdownRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewMarkdownRenderer().Render(&buf, &model.Table{Body: []model.Row{{}}}, Options{}); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Render() of an empty table wrote %q", buf.String())
	}
}

// ============================================================================
// Text Tests
// ============================================================================

func TestTextRender(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTextRenderer().Render(&buf, sampleTable(), Options{}); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	want := strings.Join([]string{
		"+--------+-----+",
		"| Name   | Qty |",
		"+========+=====+",
		"| Apples |   3 |",
		"+--------+-----+",
		"|        Total |",
		"+--------+-----+",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestTextRenderWideSpanAndPadding(t *testing.T) {
	table := &model.Table{
		Body: []model.Row{
			{Cells: []model.Cell{{Text: "日本"}, {Text: "x"}}},
			{Cells: []model.Cell{{Text: "a much longer cell", ColSpan: 2}}},
			{Cells: []model.Cell{{Text: "short"}}},
		},
	}

	var buf bytes.Buffer
	if err := NewTextRenderer().Render(&buf, table, Options{}); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	for i, line := range lines {
		if DisplayWidth(line) != DisplayWidth(lines[0]) {
			t.Errorf("line %d has width %d, want %d:\n%s", i, DisplayWidth(line), DisplayWidth(lines[0]), buf.String())
		}
	}
	if !strings.Contains(buf.String(), "| 日本  |") {
		t.Errorf("wide cell not padded to column width:\n%s", buf.String())
	}
}

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"日本", 4},
		{"ｘ", 2},
		{"e\u0301", 1},
	}

	for _, tt := range tests {
		if got := DisplayWidth(tt.s); got != tt.want {
			t.Errorf("DisplayWidth(%q) = %d, want %d", tt.s, got, tt.want)
		}
	}
}
