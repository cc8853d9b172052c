package stlfield

import (
	"github.com/tsawler/stlfield/render"
	"github.com/tsawler/stlfield/stl"
)

// PreviewOptions holds configuration for previews.
type PreviewOptions struct {
	// Output
	surface string
	class   string

	// Parsing
	parser stl.Options
}

// defaultOptions returns the default preview options.
func defaultOptions() PreviewOptions {
	return PreviewOptions{
		surface: render.SurfaceHTML,
		class:   "border",
		parser:  stl.DefaultOptions(),
	}
}

// clone creates a copy of PreviewOptions.
func (o PreviewOptions) clone() PreviewOptions {
	return PreviewOptions{
		surface: o.surface,
		class:   o.class,
		parser:  o.parser,
	}
}
