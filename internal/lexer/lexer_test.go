package lexer

import "testing"

func TestNextTokenBasic(t *testing.T) {
	input := "main = ap ap add 3 -4\n"
	want := []Token{
		{Type: IDENT, Literal: "main"},
		{Type: ASSIGN, Literal: "="},
		{Type: IDENT, Literal: "ap"},
		{Type: IDENT, Literal: "ap"},
		{Type: IDENT, Literal: "add"},
		{Type: INT, Literal: "3"},
		{Type: INT, Literal: "-4"},
		{Type: NEWLINE, Literal: "\n"},
		{Type: EOF, Literal: ""},
	}
	l := New(input, "test")
	for i, w := range want {
		got := l.NextToken()
		if got.Type != w.Type || got.Literal != w.Literal {
			t.Fatalf("token %d: got %v, want type=%v literal=%q", i, got, w.Type, w.Literal)
		}
	}
}

func TestNextTokenNumberedName(t *testing.T) {
	l := New(":1029 = ap :1030 :1031\n", "test")
	got := l.NextToken()
	if got.Type != IDENT || got.Literal != ":1029" {
		t.Fatalf("got %v", got)
	}
}

func TestNextTokenBlankLines(t *testing.T) {
	l := New("\n\nmain = 1\n", "test")
	types := []TokenType{}
	for {
		tok := l.NextToken()
		types = append(types, tok.Type)
		if tok.Type == EOF {
			break
		}
	}
	want := []TokenType{NEWLINE, NEWLINE, IDENT, ASSIGN, INT, NEWLINE, EOF}
	if len(types) != len(want) {
		t.Fatalf("got %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("at %d: got %v want %v", i, types[i], want[i])
		}
	}
}
