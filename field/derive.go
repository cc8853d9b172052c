package field

import (
	"fmt"

	"github.com/tsawler/stlfield/model"
	"github.com/tsawler/stlfield/stl"
)

// State is the classification of a field value
type State int

const (
	StateNoText State = iota
	StateUnparsable
	StateParsedEmpty
	StateParsedNonEmpty
)

func (s State) String() string {
	switch s {
	case StateNoText:
		return "NoText"
	case StateUnparsable:
		return "Unparsable"
	case StateParsedEmpty:
		return "ParsedEmpty"
	case StateParsedNonEmpty:
		return "ParsedNonEmpty"
	default:
		return "Unknown"
	}
}

// Parser turns raw text into a table
type Parser interface {
	Parse(text string) (*model.Table, error)
}

// ParserFunc adapts a function to the Parser interface
type ParserFunc func(text string) (*model.Table, error)

func (f ParserFunc) Parse(text string) (*model.Table, error) { return f(text) }

// DefaultParser parses STL with the default options
var DefaultParser Parser = ParserFunc(stl.Parse)

// Preview is the derived view of a field value. Table is nil unless State
// is ParsedEmpty or ParsedNonEmpty.
type Preview struct {
	Table *model.Table
	Empty bool
	State State
	Err   error // Parse failure, set only for StateUnparsable
}

// Derive parses text and classifies the result. It never panics: parser
// errors and parser panics both yield an Unparsable preview with no table.
func Derive(text string, p Parser) Preview {
	if text == "" {
		return Preview{Empty: true, State: StateNoText}
	}
	if p == nil {
		p = DefaultParser
	}

	table, err := safeParse(p, text)
	if err != nil {
		return Preview{Empty: true, State: StateUnparsable, Err: err}
	}
	if table.IsEmpty() {
		return Preview{Table: table, Empty: true, State: StateParsedEmpty}
	}
	return Preview{Table: table, State: StateParsedNonEmpty}
}

func safeParse(p Parser, text string) (table *model.Table, err error) {
	defer func() {
		if r := recover(); r != nil {
			table, err = nil, fmt.Errorf("parser panic: %v", r)
		}
	}()

	table, err = p.Parse(text)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, ErrNoTable
	}
	return table, nil
}
