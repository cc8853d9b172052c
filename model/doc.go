// Package model provides the in-memory representation of a structured table.
//
// A [Table] is what the STL parser produces and what every renderer
// consumes. It has three optional sections:
//
//   - Header - at most one [Row]
//   - Body - any number of rows
//   - Footer - at most one [Row]
//
// Each [Row] holds a sequence of [Cell] values. Cell text is opaque markup;
// the model never interprets it.
//
// # Emptiness
//
// [Table.IsEmpty] is the single definition of "nothing to show". A nil
// table is empty, and so is a table whose sections hold no cells at all.
// A body row without cells does not count as content:
//
//	t := &model.Table{Body: []model.Row{{}}}
//	t.IsEmpty() // true
//
// # Export
//
// Tables can be flattened with [Table.GetText] (tab separated) and
// [Table.ToCSV]. Richer output lives in the render package.
package model
