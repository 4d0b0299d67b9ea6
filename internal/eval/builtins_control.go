package eval

import "github.com/galaxypad/galaxy/internal/ast"

// if0 z y x -> y if z == 0 else x
func (ev *Evaluator) if0(z, y, x ast.Node) (ast.Node, error) {
	n, err := ev.asNum(z)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return y, nil
	}
	return x, nil
}
