// Package bridge converts between the reduction graph (internal/ast)
// and the host-facing value domain (internal/value) used by the
// renderer, the modulate codec, and the interaction loop. The
// conversion in both directions walks list spines iteratively (the cars
// are collected in a slice and folded back into pairs once the tail is
// reached) rather than recursing once per element, to
// keep a long game-state list from blowing the call stack.
package bridge

import (
	"github.com/galaxypad/galaxy/internal/ast"
	"github.com/galaxypad/galaxy/internal/eval"
	"github.com/galaxypad/galaxy/internal/galerrors"
	"github.com/galaxypad/galaxy/internal/value"
)

// ToValue fully reduces node and converts its weak head normal form
// into a value.Value. Pair components are already in WHNF because Eval
// builds pairs eagerly, so the walk itself performs no further reduction.
func ToValue(node ast.Node, ev *eval.Evaluator) (value.Value, error) {
	whnf, err := ev.Eval(node)
	if err != nil {
		return nil, err
	}
	return fromWHNF(whnf, ev)
}

// fromWHNF interprets an already-WHNF node as a Value, walking the cdr
// spine of a cons chain in a loop and folding the collected cars back
// into Pairs once the tail bottoms out.
func fromWHNF(node ast.Node, ev *eval.Evaluator) (value.Value, error) {
	var cars []ast.Node
	current := node

	for {
		if atom, ok := current.(*ast.Atom); ok {
			if atom.IsNum {
				return foldCars(cars, value.Int{N: atom.Num}, ev)
			}
			if atom.Sym == "nil" {
				return foldCars(cars, value.Nil{}, ev)
			}
			return nil, galerrors.Newf(galerrors.EVL004, "bridge", "unexpected atom %q in value position", atom.Sym)
		}

		ap, ok := current.(*ast.Ap)
		if !ok {
			return nil, galerrors.New(galerrors.EVL004, "bridge", "value position did not reduce to a pair, nil, or number")
		}
		inner, ok := ap.Fun.(*ast.Ap)
		if !ok {
			return nil, galerrors.New(galerrors.EVL004, "bridge", "unexpected partial application in value position")
		}
		head, ok := inner.Fun.(*ast.Atom)
		if !ok || head.Sym != "cons" {
			return nil, galerrors.New(galerrors.EVL004, "bridge", "unexpected partial application in value position")
		}

		cars = append(cars, inner.Arg)
		current = ap.Arg
	}
}

// foldCars converts each pending car (already WHNF, thanks to eager
// cons construction) and builds the Pair chain from the tail outward.
func foldCars(cars []ast.Node, tail value.Value, ev *eval.Evaluator) (value.Value, error) {
	result := tail
	for i := len(cars) - 1; i >= 0; i-- {
		carVal, err := fromWHNF(cars[i], ev)
		if err != nil {
			return nil, err
		}
		result = value.Pair{Car: carVal, Cdr: result}
	}
	return result, nil
}

// FromValue builds an (unevaluated) ast.Node graph representing v, for
// feeding a host-constructed value back into the evaluator — e.g. the
// click event the interaction loop sends on every turn. The cdr spine
// of a list is built in a loop rather than by recursion, for the same
// reason ToValue walks it in a loop.
func FromValue(v value.Value) ast.Node {
	switch t := v.(type) {
	case value.Nil:
		return ast.NewName("nil")
	case value.Int:
		return ast.NewInt(t.N)
	case value.Pair:
		var cars []value.Value
		var current value.Value = t
		for {
			pair, ok := current.(value.Pair)
			if !ok {
				break
			}
			cars = append(cars, pair.Car)
			current = pair.Cdr
		}
		result := FromValue(current)
		for i := len(cars) - 1; i >= 0; i-- {
			result = ast.NewAp(ast.NewAp(ast.NewName("cons"), FromValue(cars[i])), result)
		}
		return result
	default:
		return ast.NewName("nil")
	}
}
