// Package stl parses the Structured Table Language into a [model.Table].
//
// STL is line oriented. A document is a sequence of sections, each opened
// by a marker on its own line:
//
//	[header]
//	Name | Qty
//	[body]
//	Apples | 3
//	Pears  | 5
//	[footer]
//	Total | >
//
// Markers are case-insensitive and may be surrounded by spaces. Inside a
// section every non-blank line is a row and cells are separated by "|".
// A single leading and trailing "|" are optional, so "| a | b |" and
// "a | b" describe the same row. Header and footer hold at most one row.
//
// # Cells
//
// Cell text is trimmed and otherwise kept verbatim; it may contain markup.
// The following forms are special:
//
//   - ">" alone merges into the previous cell, widening its column span
//   - ":< text", ":^ text" and ":> text" align left, center and right
//   - "\|", "\\", "\[", "\:" and "\>" produce the literal character
//
// A row made only of pipes and spaces ("|" or "| |") is a row without
// cells. Lines starting with "//" are comments. Blank lines are ignored, so
// whitespace-only input parses to an empty table.
//
// # Errors
//
// Malformed input yields a [*SyntaxError] carrying the line and column.
// Use errors.Is with the exported sentinel errors to classify it:
//
//	_, err := stl.Parse("garbage{{{")
//	errors.Is(err, stl.ErrContentOutsideSection) // true
//
// Parsing never panics and never returns a partially built table.
package stl
