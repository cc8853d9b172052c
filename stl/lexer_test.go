package stl

import (
	"errors"
	"testing"
)

// TestTokenTypeString tests the String method on TokenType
func TestTokenTypeString(t *testing.T) {
	tests := []struct {
		token TokenType
		want  string
	}{
		{TokenEOF, "EOF"},
		{TokenComment, "Comment"},
		{TokenSection, "Section"},
		{TokenRow, "Row"},
		{TokenType(42), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.token.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestLexerEOF tests EOF handling
func TestLexerEOF(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"whitespace only", "   \t\n\r\n  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lexer := NewLexer(tt.input)
			token, err := lexer.NextToken()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if token.Type != TokenEOF {
				t.Errorf("expected TokenEOF, got %v", token.Type)
			}
		})
	}
}

func TestLexerTokens(t *testing.T) {
	input := "[Header]\n\n// note\n  a | b\r\n[ body ]"
	want := []Token{
		{Type: TokenSection, Value: "header", Line: 1, Col: 1},
		{Type: TokenComment, Value: "note", Line: 3, Col: 1},
		{Type: TokenRow, Value: "a | b", Line: 4, Col: 3},
		{Type: TokenSection, Value: "body", Line: 5, Col: 1},
	}

	lexer := NewLexer(input)
	for i, w := range want {
		tok, err := lexer.NextToken()
		if err != nil {
			t.Fatalf("token %d: unexpected error: %v", i, err)
		}
		if *tok != w {
			t.Errorf("token %d = %+v, want %+v", i, *tok, w)
		}
	}

	tok, err := lexer.NextToken()
	if err != nil || tok.Type != TokenEOF {
		t.Errorf("expected EOF, got %+v (err %v)", tok, err)
	}
}

func TestLexerSectionErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		wantCol int
	}{
		{"unterminated", "[header", ErrUnterminatedSection, 8},
		{"trailing text", "[header] x", ErrTrailingText, 10},
		{"indented trailing text", "  [body]   y", ErrTrailingText, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLexer(tt.input).NextToken()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NextToken() error = %v, want %v", err, tt.wantErr)
			}
			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("expected *SyntaxError, got %T", err)
			}
			if syntaxErr.Line != 1 || syntaxErr.Col != tt.wantCol {
				t.Errorf("position = %d:%d, want 1:%d", syntaxErr.Line, syntaxErr.Col, tt.wantCol)
			}
		})
	}
}
