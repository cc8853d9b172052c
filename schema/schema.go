// Package schema declares the structured table block type and how a stored
// block is previewed inside a document.
package schema

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/stlfield/field"
	"github.com/tsawler/stlfield/render"
)

// ErrUnknownField is returned when a block has no field with a given name
var ErrUnknownField = errors.New("unknown field")

// ErrNoInput is returned when a field has no custom input component
var ErrNoInput = errors.New("field has no custom input")

// Field declares one field of a block
type Field struct {
	Name        string `json:"name"`
	Title       string `json:"title,omitempty"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`

	// Input creates the editing component for the field. Nil means the
	// host's default input for Type.
	Input func(opts field.Options) *field.Controller `json:"-"`
}

// Select names the fields a block preview is built from
type Select struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// Block declares a document block type
type Block struct {
	Name   string  `json:"name"`
	Title  string  `json:"title"`
	Type   string  `json:"type"`
	Icon   string  `json:"icon"`
	Fields []Field `json:"fields"`
	Select Select  `json:"preview"`
}

// Field names of TableBlock
const (
	FieldSTL     = "stlString"
	FieldCaption = "caption"
)

// TableBlock is the structured table block: raw STL text plus a caption
var TableBlock = Block{
	Name:  "stlTableBlock",
	Title: "Structured Table Block",
	Type:  "object",
	Icon:  "📊",
	Fields: []Field{
		{
			Name:        FieldSTL,
			Title:       "Table Data (STL Format)",
			Type:        "string",
			Description: "Enter your Structured Table Language (STL) here.",
			Input:       field.NewController,
		},
		{
			Name:  FieldCaption,
			Title: "Table Caption",
			Type:  "string",
		},
	},
	Select: Select{
		Title:    FieldCaption,
		Subtitle: FieldSTL,
	},
}

// Lookup returns the field with the given name
func (b Block) Lookup(name string) (Field, error) {
	for _, f := range b.Fields {
		if f.Name == name {
			return f, nil
		}
	}
	return Field{}, fmt.Errorf("%s: %w %q", b.Name, ErrUnknownField, name)
}

// NewInput creates the editing component for a field. The field name is
// used as the input id unless opts already carries one.
func (b Block) NewInput(name string, opts field.Options) (*field.Controller, error) {
	f, err := b.Lookup(name)
	if err != nil {
		return nil, err
	}
	if f.Input == nil {
		return nil, fmt.Errorf("%s.%s: %w", b.Name, name, ErrNoInput)
	}
	if opts.InputID == "" {
		opts.InputID = f.Name
	}
	return f.Input(opts), nil
}

// BlockPreview is the compact representation of a stored block
type BlockPreview struct {
	Title    string
	Subtitle string
}

// PreviewValues selects the preview title and subtitle from stored values
func (b Block) PreviewValues(values map[string]string) BlockPreview {
	return BlockPreview{
		Title:    values[b.Select.Title],
		Subtitle: values[b.Select.Subtitle],
	}
}

// Render writes the preview card: the caption, if any, above the summary of
// the table text. A nil view uses the default summary view.
func (p BlockPreview) Render(w io.Writer, v *field.SummaryView) error {
	if v == nil {
		v = field.NewSummaryView(field.SummaryOptions{})
	}
	card := render.Element(atom.Div, html.Attribute{Key: "class", Val: "stl-block"})
	if p.Title != "" {
		caption := render.Element(atom.P, html.Attribute{Key: "class", Val: "stl-caption"})
		caption.AppendChild(render.Text(p.Title))
		card.AppendChild(caption)
	}
	card.AppendChild(v.Node(p.Subtitle))
	return html.Render(w, card)
}
