package field

import (
	"io"
	"log/slog"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/stlfield/render"
)

// Presence describes another user currently looking at the field
type Presence struct {
	UserID string
	Name   string
}

// Options holds controller configuration. Every member is optional; zero
// values fall back to DefaultOptions.
type Options struct {
	// Stored value when the controller is created
	Value string

	// Host supplied metadata
	InputID  string
	Presence []Presence
	ReadOnly bool

	// Derivation and rendering
	Parser    Parser
	Renderers *render.Registry // nil uses the global registry
	Surface   string
	Class     string
	Rows      int
	MemoSize  int // Negative disables memoisation

	Logger *slog.Logger

	// Host callbacks
	OnChange func(PatchEvent)
	OnFocus  func()
	OnBlur   func()
}

// DefaultOptions returns the default controller configuration
func DefaultOptions() Options {
	return Options{
		Parser:   DefaultParser,
		Surface:  render.SurfaceHTML,
		Class:    "border",
		Rows:     10,
		MemoSize: DefaultMemoSize,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Parser == nil {
		o.Parser = def.Parser
	}
	if o.Surface == "" {
		o.Surface = def.Surface
	}
	if o.Class == "" {
		o.Class = def.Class
	}
	if o.Rows <= 0 {
		o.Rows = def.Rows
	}
	if o.MemoSize == 0 {
		o.MemoSize = def.MemoSize
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// Controller binds an editable STL text to the host's stored field value
// and derives the live preview from it
type Controller struct {
	opts Options
	text string
	memo *Memo
	view tableView
}

// NewController creates a controller for one field
func NewController(opts Options) *Controller {
	opts = opts.withDefaults()
	c := &Controller{
		opts: opts,
		text: opts.Value,
		view: tableView{
			renderers: opts.Renderers,
			surface:   opts.Surface,
			class:     opts.Class,
		},
	}
	if opts.MemoSize > 0 {
		c.memo = NewMemo(opts.Parser, opts.MemoSize)
	}
	return c
}

// Value returns the current text
func (c *Controller) Value() string {
	return c.text
}

// SetValue replaces the text after an external document change. No patch
// is emitted.
func (c *Controller) SetValue(text string) {
	c.text = text
}

// ReadOnly reports whether the text area is rendered read-only
func (c *Controller) ReadOnly() bool {
	return c.opts.ReadOnly
}

// OnTextEdited handles the full text of the input after a user edit. It
// emits exactly one event to the host and returns it.
func (c *Controller) OnTextEdited(next string) PatchEvent {
	c.text = next
	ev := IntentFor(next)
	if c.opts.OnChange != nil {
		c.opts.OnChange(ev)
	}
	return ev
}

// DerivePreview parses text and classifies it. Parse failures are logged
// once per parse and reported as an empty preview; a memoised result is
// not logged again.
func (c *Controller) DerivePreview(text string) Preview {
	var (
		preview Preview
		cached  bool
	)
	if c.memo != nil {
		preview, cached = c.memo.lookup(text)
	} else {
		preview = Derive(text, c.opts.Parser)
	}

	if preview.State == StateUnparsable && !cached {
		c.opts.Logger.Warn("STL parsing error",
			"input_id", c.opts.InputID,
			"err", preview.Err,
		)
	}
	return preview
}

// Preview derives the preview of the current text
func (c *Controller) Preview() Preview {
	return c.DerivePreview(c.text)
}

// Focus forwards a focus notification to the host
func (c *Controller) Focus() {
	if c.opts.OnFocus != nil {
		c.opts.OnFocus()
	}
}

// Blur forwards a blur notification to the host
func (c *Controller) Blur() {
	if c.opts.OnBlur != nil {
		c.opts.OnBlur()
	}
}

// Render writes the editor markup: the text area, followed by the live
// preview card holding either the table or a placeholder hint. The text
// area is always rendered, whatever the state of the preview.
func (c *Controller) Render(w io.Writer) error {
	return html.Render(w, c.Node())
}

// Node builds the editor markup
func (c *Controller) Node() *html.Node {
	root := render.Element(atom.Div, html.Attribute{Key: "class", Val: "stl-field"})

	if len(c.opts.Presence) > 0 {
		root.AppendChild(c.presenceNode())
	}
	root.AppendChild(c.textAreaNode())

	card := render.Element(atom.Div, html.Attribute{Key: "class", Val: "stl-preview"})
	card.AppendChild(textNode(atom.P, "stl-preview-title", PreviewTitle))
	card.AppendChild(c.previewNode())
	root.AppendChild(card)

	return root
}

func (c *Controller) previewNode() *html.Node {
	preview := c.Preview()
	if preview.Empty {
		return placeholderNode()
	}

	n, err := c.view.node(preview.Table)
	if err != nil {
		c.opts.Logger.Error("rendering preview",
			"input_id", c.opts.InputID,
			"surface", c.opts.Surface,
			"err", err,
		)
		return placeholderNode()
	}
	return n
}

func (c *Controller) textAreaNode() *html.Node {
	attrs := []html.Attribute{
		{Key: "rows", Val: strconv.Itoa(c.opts.Rows)},
		{Key: "placeholder", Val: TextAreaPlaceholder},
		{Key: "style", Val: "font-family: monospace; font-size: 0.9em"},
	}
	if c.opts.InputID != "" {
		attrs = append([]html.Attribute{{Key: "id", Val: c.opts.InputID}}, attrs...)
	}
	if c.opts.ReadOnly {
		attrs = append(attrs, html.Attribute{Key: "readonly"})
	}

	ta := render.Element(atom.Textarea, attrs...)
	if c.text != "" {
		ta.AppendChild(render.Text(c.text))
	}
	return ta
}

func (c *Controller) presenceNode() *html.Node {
	ul := render.Element(atom.Ul, html.Attribute{Key: "class", Val: "stl-presence"})
	for _, p := range c.opts.Presence {
		li := render.Element(atom.Li, html.Attribute{Key: "data-user-id", Val: p.UserID})
		li.AppendChild(render.Text(p.Name))
		ul.AppendChild(li)
	}
	return ul
}
