package stlfield

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/tsawler/stlfield/field"
	"github.com/tsawler/stlfield/model"
	"github.com/tsawler/stlfield/render"
	"github.com/tsawler/stlfield/stl"
)

// ErrEmptyTable is returned by rendering operations when the text has
// nothing to show. When the text could not be parsed the parse error is
// wrapped as well.
var ErrEmptyTable = errors.New("empty table")

// Previewer derives and renders the table described by STL text. Every
// configuration method returns a new Previewer; the receiver is unchanged.
type Previewer struct {
	text    string
	options PreviewOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Previewer with its own options.
func (p *Previewer) clone() *Previewer {
	return &Previewer{
		text:    p.text,
		options: p.options.clone(),
		err:     p.err,
	}
}

// Surface selects the output surface ("html", "markdown", "text", or any
// surface registered with the render package).
func (p *Previewer) Surface(surface string) *Previewer {
	n := p.clone()
	n.options.surface = surface
	return n
}

// Class sets the styling hint passed to the renderer.
func (p *Previewer) Class(class string) *Previewer {
	n := p.clone()
	n.options.class = class
	return n
}

// MaxInputSize limits the input size in bytes. Zero disables the limit.
func (p *Previewer) MaxInputSize(n int) *Previewer {
	c := p.clone()
	c.options.parser.MaxInputSize = n
	return c
}

// Preview derives the preview. Parse failures are part of the preview, not
// an error; the error is only set when the text could not be read.
func (p *Previewer) Preview() (field.Preview, error) {
	if p.err != nil {
		return field.Preview{}, p.err
	}
	return field.Derive(p.text, stl.NewParser(p.options.parser)), nil
}

// Table parses the text and returns the table, or the parse error.
func (p *Previewer) Table() (*model.Table, error) {
	if p.err != nil {
		return nil, p.err
	}
	return stl.NewParser(p.options.parser).Parse(p.text)
}

// IsEmpty reports whether there is nothing to show. Unreadable and
// unparsable text is empty.
func (p *Previewer) IsEmpty() bool {
	preview, err := p.Preview()
	return err != nil || preview.Empty
}

// Render writes the table to w using the configured surface. It returns
// ErrEmptyTable, writing nothing, when there is nothing to show.
func (p *Previewer) Render(w io.Writer) error {
	preview, err := p.Preview()
	if err != nil {
		return err
	}
	if preview.Empty {
		if preview.Err != nil {
			return fmt.Errorf("%w: %w", ErrEmptyTable, preview.Err)
		}
		return ErrEmptyTable
	}

	r, err := render.Get(p.options.surface)
	if err != nil {
		return err
	}
	return r.Render(w, preview.Table, render.Options{Class: p.options.class})
}

// RenderString renders the table to a string.
func (p *Previewer) RenderString() (string, error) {
	var buf bytes.Buffer
	if err := p.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
