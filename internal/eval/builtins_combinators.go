package eval

import "github.com/galaxypad/galaxy/internal/ast"

// i, t, f, s, c, b: the pure combinators. None of these forces its
// arguments — they rearrange the graph and let laziness do the rest.

func identity(x ast.Node) (ast.Node, error) {
	return x, nil
}

// t y x -> y (the K combinator under the galaxy alphabet: picks the
// first-applied argument, discards the second).
func truth(y, x ast.Node) (ast.Node, error) {
	return y, nil
}

// f y x -> x: picks the second-applied (most recent) argument.
func falsity(y, x ast.Node) (ast.Node, error) {
	return x, nil
}

// s z y x -> ((z x) (y x)). x is shared between both branches rather
// than duplicated, so the two copies reduce to a single memoized node.
func s(z, y, x ast.Node) (ast.Node, error) {
	return ast.NewAp(ast.NewAp(z, x), ast.NewAp(y, x)), nil
}

// c z y x -> (z x) y
func c(z, y, x ast.Node) (ast.Node, error) {
	return ast.NewAp(ast.NewAp(z, x), y), nil
}

// b z y x -> z (y x)
func b(z, y, x ast.Node) (ast.Node, error) {
	return ast.NewAp(z, ast.NewAp(y, x)), nil
}
