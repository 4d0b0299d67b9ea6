package eval

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/galaxypad/galaxy/internal/ast"
)

// buildDeepList constructs a right-nested chain of n cons cells
// terminated by nil, entirely out of fresh ast nodes (bypassing the
// parser, which would need the same depth of nested "ap" tokens).
func buildDeepList(n int) ast.Node {
	var tail ast.Node = ast.NewName("nil")
	for i := n; i >= 1; i-- {
		tail = ast.NewAp(ast.NewAp(ast.NewName("cons"), ast.NewInt(int64(i))), tail)
	}
	return tail
}

// TestDeepListDoesNotOverflowTheStack pins the stack-safety requirement
// that forcing a long eagerly-built list must not grow the Go call
// stack in proportion to its length.
func TestDeepListDoesNotOverflowTheStack(t *testing.T) {
	const depth = 200000
	node := buildDeepList(depth)

	ev := New(ast.Scope{})
	result, err := ev.Eval(node)
	require.NoError(t, err)

	// Walk the result iteratively and count elements.
	count := 0
	current := result
	for {
		atom, isAtom := current.(*ast.Atom)
		if isAtom && !atom.IsNum && atom.Sym == "nil" {
			break
		}
		pair, isAp := current.(*ast.Ap)
		require.True(t, isAp, "expected a pair cell, got %T", current)
		inner, isAp := pair.Fun.(*ast.Ap)
		require.True(t, isAp)
		require.Equal(t, "cons", inner.Fun.(*ast.Atom).Sym)
		count++
		current = pair.Arg
	}
	require.Equal(t, depth, count)
}

func TestDeepListRevisitedThroughSharedReference(t *testing.T) {
	const depth = 10000
	node := buildDeepList(depth)
	ev := New(ast.Scope{"shared": node})

	firstRef := ast.NewName("shared")
	_, err := ev.Eval(firstRef)
	require.NoError(t, err)

	// A second, independent reference to the same list must resolve
	// through the memoized value without re-walking the chain via
	// recursive calls either.
	secondRef := ast.NewName("shared")
	_, err = ev.Eval(secondRef)
	require.NoError(t, err)
}
