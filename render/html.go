package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/stlfield/model"
)

// HTMLRenderer renders tables as HTML
type HTMLRenderer struct {
	policy *bluemonday.Policy
}

// NewHTMLRenderer creates an HTML renderer that sanitises cell markup with
// bluemonday's UGC policy
func NewHTMLRenderer() *HTMLRenderer {
	return NewHTMLRendererWithPolicy(bluemonday.UGCPolicy())
}

// NewHTMLRendererWithPolicy creates an HTML renderer with a custom
// sanitising policy
func NewHTMLRendererWithPolicy(policy *bluemonday.Policy) *HTMLRenderer {
	return &HTMLRenderer{policy: policy}
}

func (r *HTMLRenderer) Surface() string { return SurfaceHTML }

// Render writes the table as a single <table> element
func (r *HTMLRenderer) Render(w io.Writer, t *model.Table, opts Options) error {
	if t == nil {
		return nil
	}
	return html.Render(w, r.Node(t, opts))
}

// Node builds the <table> element for t
func (r *HTMLRenderer) Node(t *model.Table, opts Options) *html.Node {
	var attrs []html.Attribute
	if opts.Class != "" {
		attrs = append(attrs, html.Attribute{Key: "class", Val: opts.Class})
	}
	table := Element(atom.Table, attrs...)

	if t.Header != nil {
		thead := Element(atom.Thead)
		thead.AppendChild(r.row(*t.Header, true))
		table.AppendChild(thead)
	}

	if len(t.Body) > 0 {
		tbody := Element(atom.Tbody)
		for _, row := range t.Body {
			tbody.AppendChild(r.row(row, false))
		}
		table.AppendChild(tbody)
	}

	if t.Footer != nil {
		tfoot := Element(atom.Tfoot)
		tfoot.AppendChild(r.row(*t.Footer, false))
		table.AppendChild(tfoot)
	}

	return table
}

func (r *HTMLRenderer) row(row model.Row, header bool) *html.Node {
	tr := Element(atom.Tr)
	for _, cell := range row.Cells {
		tr.AppendChild(r.cell(cell, header || cell.Header))
	}
	return tr
}

func (r *HTMLRenderer) cell(cell model.Cell, header bool) *html.Node {
	a := atom.Td
	if header {
		a = atom.Th
	}

	var attrs []html.Attribute
	if span := cell.Span(); span > 1 {
		attrs = append(attrs, html.Attribute{Key: "colspan", Val: strconv.Itoa(span)})
	}
	if cell.Align != model.AlignDefault {
		attrs = append(attrs, html.Attribute{Key: "style", Val: "text-align:" + cell.Align.String()})
	}
	n := Element(a, attrs...)

	for _, child := range r.markup(cell.Text, n) {
		n.AppendChild(child)
	}
	return n
}

// markup sanitises cell text and parses it in the context of the cell
// element. If the fragment cannot be parsed the sanitised text is kept as
// a plain text node.
func (r *HTMLRenderer) markup(text string, context *html.Node) []*html.Node {
	if text == "" {
		return nil
	}
	clean := r.policy.Sanitize(text)

	ctx := &html.Node{Type: html.ElementNode, DataAtom: context.DataAtom, Data: context.Data}
	nodes, err := html.ParseFragment(strings.NewReader(clean), ctx)
	if err != nil {
		return []*html.Node{{Type: html.TextNode, Data: html.UnescapeString(clean)}}
	}
	return nodes
}

// Element creates a detached element node
func Element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

// Text creates a detached text node
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
