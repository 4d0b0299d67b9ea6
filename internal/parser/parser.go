// Package parser builds an expression graph (internal/ast) out of a
// galaxy program's token stream, using a two-deep sentinel-stack
// algorithm to rebuild nested ap applications from their prefix form.
package parser

import (
	"strconv"

	"github.com/galaxypad/galaxy/internal/ast"
	"github.com/galaxypad/galaxy/internal/galerrors"
	"github.com/galaxypad/galaxy/internal/lexer"
)

// Parse tokenizes and parses a full galaxy program, returning the name ->
// definition Scope the rest of the system resolves names against.
func Parse(src []byte, filename string) (ast.Scope, error) {
	normalized := lexer.Normalize(src)
	l := lexer.New(string(normalized), filename)

	scope := ast.Scope{}
	for {
		tok := l.NextToken()
		if tok.Type == lexer.EOF {
			return scope, nil
		}
		if tok.Type == lexer.NEWLINE {
			continue // blank line
		}
		if tok.Type != lexer.IDENT {
			return nil, parseErr(galerrors.PAR001, tok, "expected a definition name")
		}
		name := tok.Literal

		eq := l.NextToken()
		if eq.Type != lexer.ASSIGN {
			return nil, parseErr(galerrors.PAR003, eq, "expected '=' after name %q", name)
		}

		body, err := parseBody(l)
		if err != nil {
			return nil, err
		}
		if body == nil {
			return nil, parseErr(galerrors.PAR004, eq, "definition %q has an empty body", name)
		}
		scope[name] = body
	}
}

// pending marks a position on the parse stack awaiting its two operands.
type pending struct{}

// parseBody consumes tokens up to (and including) the terminating newline
// or EOF, applying the two-deep sentinel-stack collapse: every "ap" token
// pushes a pending marker; every subsequent atom/application collapses
// against the two items nearest the top once a pending marker has both
// of its operands.
func parseBody(l *lexer.Lexer) (ast.Node, error) {
	var stack []any // each element is either *pending or ast.Node

	push := func(v any) error {
		stack = append(stack, v)
		for {
			n := len(stack)
			if n < 3 {
				return nil
			}
			_, isPending := stack[n-3].(*pending)
			y, yIsNode := stack[n-1].(ast.Node)
			x, xIsNode := stack[n-2].(ast.Node)
			if !isPending || !xIsNode || !yIsNode {
				return nil
			}
			stack = stack[:n-3]
			stack = append(stack, ast.NewAp(x, y))
		}
	}

	for {
		tok := l.NextToken()
		switch tok.Type {
		case lexer.NEWLINE, lexer.EOF:
			switch len(stack) {
			case 0:
				return nil, nil
			case 1:
				if n, ok := stack[0].(ast.Node); ok {
					return n, nil
				}
			}
			return nil, parseErr(galerrors.PAR002, tok, "wrong number of arguments to ap")
		case lexer.IDENT:
			if tok.Literal == "ap" {
				if err := push(&pending{}); err != nil {
					return nil, err
				}
			} else {
				if err := push(ast.NewName(tok.Literal)); err != nil {
					return nil, err
				}
			}
		case lexer.INT:
			n, err := strconv.ParseInt(tok.Literal, 10, 64)
			if err != nil {
				return nil, galerrors.WithSpan(
					galerrors.Newf(galerrors.PAR005, "parser", "malformed integer literal %q", tok.Literal),
					tok.Line, tok.Column)
			}
			if err := push(ast.NewInt(n)); err != nil {
				return nil, err
			}
		default:
			return nil, parseErr(galerrors.PAR001, tok, "unexpected token %q", tok.Literal)
		}
	}
}

func parseErr(code string, tok lexer.Token, format string, args ...any) error {
	err := galerrors.Newf(code, "parser", format, args...)
	return galerrors.WithSpan(err, tok.Line, tok.Column)
}
