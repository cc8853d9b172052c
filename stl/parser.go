package stl

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/stlfield/model"
)

// DefaultMaxInputSize bounds the input accepted by the default parser
const DefaultMaxInputSize = 64 << 10

// Options holds parser configuration
type Options struct {
	// Maximum input size in bytes; zero or less disables the limit
	MaxInputSize int
}

// DefaultOptions returns default configuration
func DefaultOptions() Options {
	return Options{
		MaxInputSize: DefaultMaxInputSize,
	}
}

// Parser turns STL text into tables. A Parser holds no state between
// calls and is safe for concurrent use.
type Parser struct {
	opts Options
}

// NewParser creates a new parser
func NewParser(opts Options) *Parser {
	return &Parser{opts: opts}
}

var defaultParser = NewParser(DefaultOptions())

// Parse parses text with the default options
func Parse(text string) (*model.Table, error) {
	return defaultParser.Parse(text)
}

// Parse parses STL text. On error the returned table is always nil.
func (p *Parser) Parse(text string) (*model.Table, error) {
	if p.opts.MaxInputSize > 0 && len(text) > p.opts.MaxInputSize {
		return nil, fmt.Errorf("stl: %w: %d bytes exceeds %d", ErrInputTooLarge, len(text), p.opts.MaxInputSize)
	}

	st := &parseState{
		table: &model.Table{},
		seen:  make(map[model.Section]bool),
	}

	lexer := NewLexer(norm.NFC.String(text))
	for {
		tok, err := lexer.NextToken()
		if err != nil {
			return nil, err
		}

		switch tok.Type {
		case TokenEOF:
			return st.table, nil
		case TokenComment:
			continue
		case TokenSection:
			if err := st.openSection(tok); err != nil {
				return nil, err
			}
		case TokenRow:
			if err := st.addRow(tok); err != nil {
				return nil, err
			}
		}
	}
}

// parseState tracks the current parsing state.
type parseState struct {
	table   *model.Table
	seen    map[model.Section]bool
	current model.Section
	open    bool

	// A header or footer row may have zero cells, so a nil Cells slice
	// cannot tell whether the row was already written.
	headerRow bool
	footerRow bool
}

func (s *parseState) openSection(tok *Token) error {
	var section model.Section
	switch tok.Value {
	case "header":
		section = model.SectionHeader
	case "body":
		section = model.SectionBody
	case "footer":
		section = model.SectionFooter
	default:
		return &SyntaxError{
			Line: tok.Line,
			Col:  tok.Col,
			Err:  fmt.Errorf("%w %q", ErrUnknownSection, tok.Value),
		}
	}

	if s.seen[section] {
		return &SyntaxError{
			Line: tok.Line,
			Col:  tok.Col,
			Err:  fmt.Errorf("%w [%s]", ErrDuplicateSection, section),
		}
	}
	s.seen[section] = true
	s.current = section
	s.open = true

	switch section {
	case model.SectionHeader:
		s.table.Header = &model.Row{}
	case model.SectionFooter:
		s.table.Footer = &model.Row{}
	}
	return nil
}

func (s *parseState) addRow(tok *Token) error {
	if !s.open {
		return &SyntaxError{Line: tok.Line, Col: tok.Col, Err: ErrContentOutsideSection}
	}

	cells, err := splitCells(tok)
	if err != nil {
		return err
	}

	switch s.current {
	case model.SectionHeader, model.SectionFooter:
		row, written := s.table.Header, &s.headerRow
		if s.current == model.SectionFooter {
			row, written = s.table.Footer, &s.footerRow
		}
		if *written {
			return &SyntaxError{
				Line: tok.Line,
				Col:  tok.Col,
				Err:  fmt.Errorf("%w: [%s]", ErrSectionRowLimit, s.current),
			}
		}
		if s.current == model.SectionHeader {
			for i := range cells {
				cells[i].Header = true
			}
		}
		row.Cells = cells
		*written = true
	default:
		s.table.Body = append(s.table.Body, model.Row{Cells: cells})
	}
	return nil
}

type segment struct {
	raw string
	col int
}

// splitCells splits a row into cells. Escape sequences are kept in the raw
// segments so alignment and merge markers can be told apart from literal
// text; they are resolved last.
func splitCells(tok *Token) ([]model.Cell, error) {
	runes := []rune(tok.Value)

	var segs []segment
	var sb strings.Builder
	start := 0
	trailingPipe := false

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		trailingPipe = false
		switch r {
		case '\\':
			if i+1 >= len(runes) {
				return nil, &SyntaxError{Line: tok.Line, Col: tok.Col + i, Err: ErrDanglingEscape}
			}
			sb.WriteRune(r)
			sb.WriteRune(runes[i+1])
			i++
		case '|':
			segs = append(segs, segment{raw: sb.String(), col: tok.Col + start})
			sb.Reset()
			start = i + 1
			trailingPipe = true
		default:
			sb.WriteRune(r)
		}
	}
	segs = append(segs, segment{raw: sb.String(), col: tok.Col + start})

	if runes[0] == '|' {
		segs = segs[1:]
	}
	if trailingPipe && len(segs) > 0 {
		segs = segs[:len(segs)-1]
	}

	blank := true
	for _, seg := range segs {
		if strings.TrimSpace(seg.raw) != "" {
			blank = false
			break
		}
	}
	if blank {
		return nil, nil
	}

	cells := make([]model.Cell, 0, len(segs))
	for _, seg := range segs {
		text := strings.TrimSpace(seg.raw)

		if text == ">" {
			if len(cells) == 0 {
				return nil, &SyntaxError{Line: tok.Line, Col: seg.col, Err: ErrMergeWithoutCell}
			}
			last := &cells[len(cells)-1]
			last.ColSpan = last.Span() + 1
			continue
		}

		align, text := readAlignment(text)
		cells = append(cells, model.Cell{
			Text:  unescape(text),
			Align: align,
		})
	}
	return cells, nil
}

// readAlignment strips a leading ":<", ":^" or ":>" marker
func readAlignment(text string) (model.Alignment, string) {
	if len(text) < 2 || text[0] != ':' {
		return model.AlignDefault, text
	}
	if len(text) > 2 && text[2] != ' ' && text[2] != '\t' {
		return model.AlignDefault, text
	}

	var align model.Alignment
	switch text[1] {
	case '<':
		align = model.AlignLeft
	case '^':
		align = model.AlignCenter
	case '>':
		align = model.AlignRight
	default:
		return model.AlignDefault, text
	}
	return align, strings.TrimSpace(text[2:])
}

var unescaper = strings.NewReplacer(
	`\|`, `|`,
	`\\`, `\`,
	`\[`, `[`,
	`\:`, `:`,
	`\>`, `>`,
)

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	return unescaper.Replace(s)
}
