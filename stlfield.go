// Package stlfield provides a fluent API for previewing Structured Table
// Language text.
//
// Basic usage:
//
//	err := stlfield.FromText("[header]\nName | Qty").Render(os.Stdout)
//	if errors.Is(err, stlfield.ErrEmptyTable) {
//	    // nothing to show yet
//	}
//
// With options:
//
//	out, err := stlfield.Open("prices.stl").
//	    Surface(render.SurfaceMarkdown).
//	    MaxInputSize(1 << 20).
//	    RenderString()
//
// Editors embed the lower-level field package, which adds persistence
// events and the editing markup.
package stlfield

import (
	"fmt"
	"os"
)

// Open reads STL text from a file and returns a Previewer for fluent
// configuration. Read errors are reported by the terminal operation.
//
// Example:
//
//	table, err := stlfield.Open("table.stl").Table()
func Open(filename string) *Previewer {
	p := &Previewer{options: defaultOptions()}
	data, err := os.ReadFile(filename)
	if err != nil {
		p.err = fmt.Errorf("reading %s: %w", filename, err)
		return p
	}
	p.text = string(data)
	return p
}

// FromText returns a Previewer for text already in memory.
func FromText(text string) *Previewer {
	return &Previewer{
		text:    text,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	table := stlfield.Must(stlfield.FromText(src).Table())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
