package eval

import "github.com/galaxypad/galaxy/internal/ast"

// discardToTrue implements "nil x -> t": nil absorbs exactly one
// argument and always answers t, regardless of what the argument was.
func discardToTrue(x ast.Node) (ast.Node, error) {
	return ast.NewName("t"), nil
}

// isnil x -> x (t (t f)): forces x; if x is nil this collapses to t
// (nil absorbs the argument and answers t), and if x is a pair it
// collapses to f via the pair's own destructuring rule.
func isnil(x ast.Node) (ast.Node, error) {
	tAtom := ast.NewName("t")
	fAtom := ast.NewName("f")
	return ast.NewAp(x, ast.NewAp(tAtom, ast.NewAp(tAtom, fAtom))), nil
}

// car x -> x t
func car(x ast.Node) (ast.Node, error) {
	return ast.NewAp(x, ast.NewName("t")), nil
}

// cdr x -> x f
func cdr(x ast.Node) (ast.Node, error) {
	return ast.NewAp(x, ast.NewName("f")), nil
}

// Eager pair construction itself lives in eval_core.go's Eval loop
// rather than here: building a pair forces
// both components to WHNF immediately, and for a long list that means
// forcing every cell's cdr down the spine, which the loop folds
// iteratively instead of recursing once per list element.

// consDestruct implements the Church-pair application rule: a built
// pair (carVal, cdrVal) applied to a third argument h reduces to
// (h carVal cdrVal).
func consDestruct(carVal, cdrVal, h ast.Node) ast.Node {
	return ast.NewAp(ast.NewAp(h, carVal), cdrVal)
}
