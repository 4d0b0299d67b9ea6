package eval

import "github.com/galaxypad/galaxy/internal/ast"

func (ev *Evaluator) eq(y, x ast.Node) (ast.Node, error) {
	a, err := ev.asNum(y)
	if err != nil {
		return nil, err
	}
	b, err := ev.asNum(x)
	if err != nil {
		return nil, err
	}
	if a == b {
		return ast.NewName("t"), nil
	}
	return ast.NewName("f"), nil
}

func (ev *Evaluator) lt(y, x ast.Node) (ast.Node, error) {
	a, err := ev.asNum(y)
	if err != nil {
		return nil, err
	}
	b, err := ev.asNum(x)
	if err != nil {
		return nil, err
	}
	if a < b {
		return ast.NewName("t"), nil
	}
	return ast.NewName("f"), nil
}
