// Package htmldoc imports tables from HTML documents.
package htmldoc

import (
	"errors"

	"github.com/tsawler/stlfield/model"
)

// ErrNoTables is returned when a document contains no table elements.
var ErrNoTables = errors.New("htmldoc: no tables in document")

// ParsedTable is a table extracted from HTML together with its caption.
type ParsedTable struct {
	Caption string
	Table   *model.Table
}

// parseAlign maps an align attribute or text-align value to an alignment.
func parseAlign(v string) model.Alignment {
	switch v {
	case "left", "start":
		return model.AlignLeft
	case "center":
		return model.AlignCenter
	case "right", "end":
		return model.AlignRight
	default:
		return model.AlignDefault
	}
}
