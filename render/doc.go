// Package render turns a [model.Table] into output for a named surface.
//
// Renderers are looked up by surface identifier. The global registry
// provides three surfaces out of the box:
//
//   - "html" - a <table> element with thead/tbody/tfoot; cell markup is
//     sanitised with bluemonday's UGC policy
//   - "markdown" - a GitHub flavoured markdown table
//   - "text" - a monospace grid sized with East Asian width rules
//
// Usage:
//
//	r, err := render.Get(render.SurfaceHTML)
//	if err != nil {
//	    return err
//	}
//	err = r.Render(w, table, render.Options{Class: "border"})
//
// Renderers never inspect how the table was produced. A nil table renders
// nothing.
package render
