package stl

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenType represents the type of token
type TokenType int

const (
	TokenEOF     TokenType = iota
	TokenComment           // // note
	TokenSection           // [header]
	TokenRow               // a | b | c
)

func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenComment:
		return "Comment"
	case TokenSection:
		return "Section"
	case TokenRow:
		return "Row"
	default:
		return "Unknown"
	}
}

// Token represents a lexical token. STL is line oriented, so every token
// other than EOF covers exactly one source line.
type Token struct {
	Type  TokenType
	Value string // Section name (lower case), row or comment text
	Line  int
	Col   int // Column of the first non-space rune
}

// Lexer splits STL input into line tokens
type Lexer struct {
	lines []string
	line  int
}

// NewLexer creates a new lexer
func NewLexer(input string) *Lexer {
	return &Lexer{
		lines: strings.Split(input, "\n"),
	}
}

// NextToken returns the next token from the input. Blank lines are skipped.
func (l *Lexer) NextToken() (*Token, error) {
	for l.line < len(l.lines) {
		raw := strings.TrimRight(l.lines[l.line], "\r")
		l.line++

		body := strings.TrimLeftFunc(raw, unicode.IsSpace)
		body = strings.TrimRightFunc(body, unicode.IsSpace)
		if body == "" {
			continue
		}
		col := utf8.RuneCountInString(raw[:len(raw)-len(strings.TrimLeftFunc(raw, unicode.IsSpace))]) + 1

		switch {
		case strings.HasPrefix(body, "//"):
			return &Token{Type: TokenComment, Value: strings.TrimSpace(body[2:]), Line: l.line, Col: col}, nil
		case body[0] == '[':
			return l.readSection(body, col)
		default:
			return &Token{Type: TokenRow, Value: body, Line: l.line, Col: col}, nil
		}
	}
	return &Token{Type: TokenEOF, Line: l.line, Col: 1}, nil
}

// readSection reads a section marker such as "[ Body ]"
func (l *Lexer) readSection(body string, col int) (*Token, error) {
	end := strings.IndexByte(body, ']')
	if end < 0 {
		return nil, &SyntaxError{
			Line: l.line,
			Col:  col + utf8.RuneCountInString(body),
			Err:  ErrUnterminatedSection,
		}
	}

	if rest := body[end+1:]; strings.TrimSpace(rest) != "" {
		lead := len(rest) - len(strings.TrimLeftFunc(rest, unicode.IsSpace))
		return nil, &SyntaxError{
			Line: l.line,
			Col:  col + utf8.RuneCountInString(body[:end+1+lead]),
			Err:  ErrTrailingText,
		}
	}

	return &Token{
		Type:  TokenSection,
		Value: strings.ToLower(strings.TrimSpace(body[1:end])),
		Line:  l.line,
		Col:   col,
	}, nil
}
