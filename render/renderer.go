package render

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/tsawler/stlfield/model"
)

// Surface identifiers for the built-in renderers
const (
	SurfaceHTML     = "html"
	SurfaceMarkdown = "markdown"
	SurfaceText     = "text"
)

// ErrUnknownSurface is returned when no renderer serves a surface
var ErrUnknownSurface = errors.New("unknown surface")

// Options holds styling hints passed to a renderer
type Options struct {
	// CSS class applied to the table element, where the surface has one
	Class string
}

// Renderer is the interface for table output formats
type Renderer interface {
	// Surface returns the surface identifier the renderer serves
	Surface() string

	// Render writes the table to w
	Render(w io.Writer, t *model.Table, opts Options) error
}

// Registry holds registered renderers
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

// NewRegistry creates a new renderer registry
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[string]Renderer),
	}
}

// Register registers a renderer, replacing any renderer for the same surface
func (r *Registry) Register(renderer Renderer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renderers[renderer.Surface()] = renderer
}

// Get retrieves the renderer for a surface
func (r *Registry) Get(surface string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	renderer, ok := r.renderers[surface]
	if !ok {
		return nil, fmt.Errorf("render: %w %q", ErrUnknownSurface, surface)
	}
	return renderer, nil
}

// List returns all registered surfaces in sorted order
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Global registry
var globalRegistry = NewRegistry()

// Register registers a renderer globally
func Register(renderer Renderer) {
	globalRegistry.Register(renderer)
}

// Get retrieves a renderer from the global registry
func Get(surface string) (Renderer, error) {
	return globalRegistry.Get(surface)
}

// List returns all globally registered surfaces
func List() []string {
	return globalRegistry.List()
}

func init() {
	Register(NewHTMLRenderer())
	Register(NewMarkdownRenderer())
	Register(NewTextRenderer())
}
