// Package field binds a raw STL text value to a live table preview.
//
// Two views share one derivation path. [Controller] owns the editable text
// of a document field: every edit becomes exactly one [PatchEvent] for the
// host, and every render re-derives the table from the current text.
// [SummaryView] renders an already stored value read-only, for block lists
// and outlines.
//
// Both views classify text through [Derive], so they always agree on
// whether there is anything to show:
//
//	NoText ──parse──▶ Unparsable | ParsedEmpty | ParsedNonEmpty
//
// Only ParsedNonEmpty renders a table. The other three states render the
// same placeholder, so text that is half typed never looks broken.
//
// Usage:
//
//	c := field.NewController(field.Options{
//	    Value:    stored,
//	    OnChange: func(ev field.PatchEvent) { store.Apply(ctx, docID, ev) },
//	})
//	c.OnTextEdited("[header]\nName | Qty")
//	err := c.Render(w)
package field
