package eval

import (
	"github.com/galaxypad/galaxy/internal/ast"
	"github.com/galaxypad/galaxy/internal/galerrors"
)

// applyUnary, applyBinary, and applyTernary route a saturated primitive
// application to its rule, implemented in the builtins_*.go files
// grouped by primitive family.

func (ev *Evaluator) applyUnary(head string, x ast.Node) (ast.Node, error) {
	switch head {
	case "nil":
		return discardToTrue(x)
	case "neg":
		return ev.neg(x)
	case "inc":
		return ev.inc(x)
	case "dec":
		return ev.dec(x)
	case "i":
		return identity(x)
	case "isnil":
		return isnil(x)
	case "car":
		return car(x)
	case "cdr":
		return cdr(x)
	default:
		return nil, galerrors.Newf(galerrors.EVL004, "eval", "unknown unary primitive %q", head)
	}
}

func (ev *Evaluator) applyBinary(head string, y, x ast.Node) (ast.Node, error) {
	switch head {
	case "t":
		return truth(y, x)
	case "f":
		return falsity(y, x)
	case "add":
		return ev.add(y, x)
	case "mul":
		return ev.mul(y, x)
	case "div":
		return ev.div(y, x)
	case "eq":
		return ev.eq(y, x)
	case "lt":
		return ev.lt(y, x)
	default:
		return nil, galerrors.Newf(galerrors.EVL004, "eval", "unknown binary primitive %q", head)
	}
}

func (ev *Evaluator) applyTernary(head string, z, y, x ast.Node) (ast.Node, error) {
	switch head {
	case "s":
		return s(z, y, x)
	case "c":
		return c(z, y, x)
	case "b":
		return b(z, y, x)
	case "if0":
		return ev.if0(z, y, x)
	default:
		return nil, galerrors.Newf(galerrors.EVL004, "eval", "unknown ternary primitive %q", head)
	}
}
