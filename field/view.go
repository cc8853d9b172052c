package field

import (
	"bytes"
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/stlfield/model"
	"github.com/tsawler/stlfield/render"
)

const (
	// TextAreaPlaceholder is shown in an empty text area
	TextAreaPlaceholder = "[header]... | ... [body]... | ..."

	// PreviewTitle heads the live preview card
	PreviewTitle = "Live Preview"

	// EmptyIndicator is rendered by the summary view when there is nothing to show
	EmptyIndicator = "Empty Table"
)

// tableView renders a table for one surface and wraps the output in an
// HTML node so it can be placed inside the editor markup
type tableView struct {
	renderers *render.Registry
	surface   string
	class     string
}

func (v tableView) renderer() (render.Renderer, error) {
	if v.renderers != nil {
		return v.renderers.Get(v.surface)
	}
	return render.Get(v.surface)
}

func (v tableView) node(t *model.Table) (*html.Node, error) {
	r, err := v.renderer()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, t, render.Options{Class: v.class}); err != nil {
		return nil, fmt.Errorf("rendering %s table: %w", v.surface, err)
	}

	if v.surface == render.SurfaceHTML {
		return &html.Node{Type: html.RawNode, Data: buf.String()}, nil
	}
	pre := render.Element(atom.Pre, html.Attribute{Key: "class", Val: "stl-" + v.surface})
	pre.AppendChild(render.Text(buf.String()))
	return pre, nil
}

// placeholderNode builds the hint shown under the text area while there is
// nothing to preview
func placeholderNode() *html.Node {
	p := render.Element(atom.P, html.Attribute{Key: "class", Val: "stl-placeholder"})
	p.AppendChild(render.Text("Start by defining a section (e.g. "))
	p.AppendChild(code("[header]"))
	p.AppendChild(render.Text(" or "))
	p.AppendChild(code("[body]"))
	p.AppendChild(render.Text(") to see the preview."))
	return p
}

func code(s string) *html.Node {
	c := render.Element(atom.Code)
	c.AppendChild(render.Text(s))
	return c
}

func textNode(a atom.Atom, class, s string) *html.Node {
	n := render.Element(a, html.Attribute{Key: "class", Val: class})
	n.AppendChild(render.Text(s))
	return n
}
