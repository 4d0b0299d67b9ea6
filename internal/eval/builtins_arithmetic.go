package eval

import (
	"github.com/galaxypad/galaxy/internal/ast"
	"github.com/galaxypad/galaxy/internal/galerrors"
)

// applyUnary and applyBinary dispatch to these for the arithmetic
// primitives; kept in their own file following the one-family-per-file
// convention used for the rest of the builtins.

func (ev *Evaluator) neg(x ast.Node) (ast.Node, error) {
	n, err := ev.asNum(x)
	if err != nil {
		return nil, err
	}
	return ast.NewInt(-n), nil
}

func (ev *Evaluator) inc(x ast.Node) (ast.Node, error) {
	n, err := ev.asNum(x)
	if err != nil {
		return nil, err
	}
	return ast.NewInt(n + 1), nil
}

func (ev *Evaluator) dec(x ast.Node) (ast.Node, error) {
	n, err := ev.asNum(x)
	if err != nil {
		return nil, err
	}
	return ast.NewInt(n - 1), nil
}

func (ev *Evaluator) add(y, x ast.Node) (ast.Node, error) {
	a, err := ev.asNum(y)
	if err != nil {
		return nil, err
	}
	b, err := ev.asNum(x)
	if err != nil {
		return nil, err
	}
	return ast.NewInt(a + b), nil
}

func (ev *Evaluator) mul(y, x ast.Node) (ast.Node, error) {
	a, err := ev.asNum(y)
	if err != nil {
		return nil, err
	}
	b, err := ev.asNum(x)
	if err != nil {
		return nil, err
	}
	return ast.NewInt(a * b), nil
}

// div implements "div y x": y is the dividend (applied first), x the
// divisor (applied last). Result is y / x, truncated toward zero. See
// DESIGN.md's Open Question resolution on the argument order.
func (ev *Evaluator) div(y, x ast.Node) (ast.Node, error) {
	dividend, err := ev.asNum(y)
	if err != nil {
		return nil, err
	}
	divisor, err := ev.asNum(x)
	if err != nil {
		return nil, err
	}
	if divisor == 0 {
		return nil, galerrors.New(galerrors.EVL003, "eval", "division by zero")
	}
	return ast.NewInt(dividend / divisor), nil
}
