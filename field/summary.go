package field

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/stlfield/render"
)

// SummaryOptions holds summary view configuration
type SummaryOptions struct {
	Parser    Parser
	Renderers *render.Registry // nil uses the global registry
	Surface   string
	Class     string
}

// SummaryView renders a stored value read-only. It never emits patches
// and never logs; malformed input shows the empty indicator.
type SummaryView struct {
	parser Parser
	view   tableView
}

// NewSummaryView creates a summary view
func NewSummaryView(opts SummaryOptions) *SummaryView {
	def := DefaultOptions()
	if opts.Parser == nil {
		opts.Parser = def.Parser
	}
	if opts.Surface == "" {
		opts.Surface = def.Surface
	}
	if opts.Class == "" {
		opts.Class = def.Class
	}
	return &SummaryView{
		parser: opts.Parser,
		view: tableView{
			renderers: opts.Renderers,
			surface:   opts.Surface,
			class:     opts.Class,
		},
	}
}

// Classify derives the preview of a stored value
func (v *SummaryView) Classify(stored string) Preview {
	return Derive(stored, v.parser)
}

// Render writes the table for stored, or the empty indicator
func (v *SummaryView) Render(w io.Writer, stored string) error {
	return html.Render(w, v.Node(stored))
}

// Node builds the summary markup
func (v *SummaryView) Node(stored string) *html.Node {
	root := render.Element(atom.Div, html.Attribute{Key: "class", Val: "stl-summary"})

	preview := v.Classify(stored)
	if !preview.Empty {
		if n, err := v.view.node(preview.Table); err == nil {
			root.AppendChild(n)
			return root
		}
	}
	root.AppendChild(textNode(atom.P, "stl-empty", EmptyIndicator))
	return root
}
