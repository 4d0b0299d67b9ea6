// Package eval implements the weak-head-normal-form reducer over
// internal/ast graphs: the rewrite rules for the 20 primitives,
// applied lazily and memoized per node.
package eval

import (
	"github.com/galaxypad/galaxy/internal/ast"
	"github.com/galaxypad/galaxy/internal/galerrors"
)

// Evaluator reduces ast.Node graphs to weak head normal form against a
// fixed scope of user definitions. Besides the scope it carries only a
// step counter; the memo cells live on the nodes themselves.
type Evaluator struct {
	Scope ast.Scope

	// Steps counts the number of dispatch rewrites this evaluator has
	// performed, for tests that pin the "evaluates a shared subgraph
	// only once" memoization property.
	Steps int
}

// New builds an Evaluator against scope.
func New(scope ast.Scope) *Evaluator {
	return &Evaluator{Scope: scope}
}

// Eval reduces node to weak head normal form, memoizing the result on
// node before returning. Calling Eval again on the same node is O(1).
//
// Eager cons construction forces both pair components to WHNF as soon
// as cons is saturated. For a long list this means forcing the cdr of
// every cell down the spine; rather than doing that through one nested
// Go call per cell (stack depth proportional to list length), this loop
// folds the whole chain of pending cons cars into a local slice and
// builds the pairs back up once the tail bottoms out, so list length
// never grows the call stack.
func (ev *Evaluator) Eval(node ast.Node) (ast.Node, error) {
	current := node
	var pendingCars []ast.Node

	for {
		// Once a node carries a memo, it is fully reduced — fold any
		// pending cons cars onto it directly rather than re-deriving
		// its shape through stepOrConsLink, which would otherwise
		// re-walk an already-built list every time it is reached
		// through a fresh reference.
		if m := current.Evaluated(); m != nil {
			for i := len(pendingCars) - 1; i >= 0; i-- {
				pair := ast.NewAp(ast.NewAp(ast.NewName("cons"), pendingCars[i]), m)
				pair.SetEvaluated(pair)
				m = pair
			}
			node.SetEvaluated(m)
			return m, nil
		}

		next, carVal, isConsLink, err := ev.stepOrConsLink(current)
		if err != nil {
			return nil, err
		}
		if isConsLink {
			pendingCars = append(pendingCars, carVal)
			current = next
			continue
		}
		if next != current {
			current = next
			continue
		}

		for i := len(pendingCars) - 1; i >= 0; i-- {
			pair := ast.NewAp(ast.NewAp(ast.NewName("cons"), pendingCars[i]), current)
			pair.SetEvaluated(pair)
			current = pair
		}
		node.SetEvaluated(current)
		current.SetEvaluated(current)
		return current, nil
	}
}

// stepOrConsLink performs a single rewrite step, the same as a plain
// WHNF reducer would, except that reaching a saturated 2-argument cons
// application is reported back to Eval's loop instead of being built
// immediately — that is the one rewrite whose "force the second
// argument" step would otherwise recurse once per list element.
func (ev *Evaluator) stepOrConsLink(current ast.Node) (next ast.Node, carVal ast.Node, isConsLink bool, err error) {
	switch n := current.(type) {
	case *ast.Atom:
		if n.IsNum {
			return n, nil, false, nil
		}
		if isPrimitive(n.Sym) {
			return n, nil, false, nil
		}
		bound, ok := ev.Scope.Lookup(n.Sym)
		if !ok {
			return nil, nil, false, galerrors.Newf(galerrors.EVL002, "eval", "unbound name %q", n.Sym)
		}
		// Reduce the definition through Eval so its memo is set on the
		// shared definition node: every reference to the same name then
		// reuses one reduction.
		whnf, err := ev.Eval(bound)
		if err != nil {
			return nil, nil, false, err
		}
		return whnf, nil, false, nil

	case *ast.Ap:
		ev.Steps++
		fPrime, err := ev.Eval(n.Fun)
		if err != nil {
			return nil, nil, false, err
		}
		head, prior := spine(fPrime)
		if head == nil {
			return current, nil, false, nil
		}
		args := append(append([]ast.Node{}, prior...), n.Arg)

		if head.Sym == "cons" && len(args) == 2 {
			cv, err := ev.Eval(args[0])
			if err != nil {
				return nil, nil, false, err
			}
			return args[1], cv, true, nil
		}

		result, err := ev.dispatch(head.Sym, args, current)
		return result, nil, false, err

	default:
		return current, nil, false, nil
	}
}

// spine walks down the Fun chain of an already-WHNF node, returning the
// primitive/name atom at its head and the arguments applied to it so
// far, outermost (first-applied) first. It returns a nil head when the
// chain bottoms out on something other than a name atom (e.g. a bare
// integer), meaning the application is stuck.
func spine(n ast.Node) (head *ast.Atom, args []ast.Node) {
	for {
		switch t := n.(type) {
		case *ast.Ap:
			args = append([]ast.Node{t.Arg}, args...)
			n = t.Fun
		case *ast.Atom:
			if t.IsNum {
				return nil, nil
			}
			return t, args
		default:
			return nil, nil
		}
	}
}

// dispatch fires the rewrite rule for head once args holds exactly the
// arguments its pattern needs, or returns original unchanged if head is
// still under-applied. The 2-argument cons case is handled directly in
// stepOrConsLink above; this only sees cons again for the 3-argument
// pair-destructuring rule.
func (ev *Evaluator) dispatch(head string, args []ast.Node, original ast.Node) (ast.Node, error) {
	if head == "cons" {
		if len(args) == 3 {
			return consDestruct(args[0], args[1], args[2]), nil
		}
		return original, nil
	}

	want, ok := arity[head]
	if !ok {
		return nil, galerrors.Newf(galerrors.EVL004, "eval", "unknown primitive %q", head)
	}
	if len(args) < want {
		return original, nil
	}

	switch want {
	case 1:
		return ev.applyUnary(head, args[0])
	case 2:
		return ev.applyBinary(head, args[0], args[1])
	case 3:
		return ev.applyTernary(head, args[0], args[1], args[2])
	default:
		return original, nil
	}
}

// asNum forces x and requires it to be an integer atom, reporting
// EVL001 for a numeric op applied to a non-number.
func (ev *Evaluator) asNum(x ast.Node) (int64, error) {
	v, err := ev.Eval(x)
	if err != nil {
		return 0, err
	}
	atom, ok := v.(*ast.Atom)
	if !ok || !atom.IsNum {
		return 0, galerrors.Newf(galerrors.EVL001, "eval", "expected a number, got %s", v)
	}
	return atom.Num, nil
}
