package eval

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/galaxypad/galaxy/internal/ast"
	"github.com/galaxypad/galaxy/internal/parser"
)

func evalMain(t *testing.T, src string) ast.Node {
	t.Helper()
	scope, err := parser.Parse([]byte(src), "test")
	require.NoError(t, err)
	main, ok := scope.Lookup("main")
	require.True(t, ok, "expected a main definition")
	ev := New(scope)
	result, err := ev.Eval(main)
	require.NoError(t, err)
	return result
}

func requireInt(t *testing.T, n ast.Node, want int64) {
	t.Helper()
	atom, ok := n.(*ast.Atom)
	require.True(t, ok, "expected an Atom, got %T", n)
	require.True(t, atom.IsNum, "expected a numeric atom, got %v", n)
	require.Equal(t, want, atom.Num)
}

func requireName(t *testing.T, n ast.Node, want string) {
	t.Helper()
	atom, ok := n.(*ast.Atom)
	require.True(t, ok, "expected an Atom, got %T", n)
	require.Equal(t, want, atom.Sym)
}

func TestArithmetic(t *testing.T) {
	requireInt(t, evalMain(t, "main = ap ap add 3 4\n"), 7)
	requireInt(t, evalMain(t, "main = ap ap mul 3 4\n"), 12)
	requireInt(t, evalMain(t, "main = ap neg 5\n"), -5)
	requireInt(t, evalMain(t, "main = ap inc 5\n"), 6)
	requireInt(t, evalMain(t, "main = ap dec 5\n"), 4)
}

func TestDivTruncatesTowardZero(t *testing.T) {
	// div y x computes y / x: y is the dividend (first-applied), x the
	// divisor (last-applied). "div 4 3" divides 4 by 3.
	requireInt(t, evalMain(t, "main = ap ap div 4 3\n"), 1)
	requireInt(t, evalMain(t, "main = ap ap div 4 -3\n"), -1)
	requireInt(t, evalMain(t, "main = ap ap div -4 3\n"), -1)
	requireInt(t, evalMain(t, "main = ap ap div 2 7\n"), 0)
}

func TestDivByZero(t *testing.T) {
	scope, err := parser.Parse([]byte("main = ap ap div 7 0\n"), "test")
	require.NoError(t, err)
	main, _ := scope.Lookup("main")
	_, err = New(scope).Eval(main)
	require.Error(t, err)
}

func TestComparisons(t *testing.T) {
	requireName(t, evalMain(t, "main = ap ap eq 5 5\n"), "t")
	requireName(t, evalMain(t, "main = ap ap eq 5 6\n"), "f")
	requireName(t, evalMain(t, "main = ap ap lt 5 6\n"), "t")
	requireName(t, evalMain(t, "main = ap ap lt 6 5\n"), "f")
}

func TestIdentityLaw(t *testing.T) {
	requireInt(t, evalMain(t, "main = ap i 42\n"), 42)
}

func TestKCombinatorLaw(t *testing.T) {
	// t y x -> y
	requireInt(t, evalMain(t, "main = ap ap t 1 2\n"), 1)
	// f y x -> x
	requireInt(t, evalMain(t, "main = ap ap f 1 2\n"), 2)
}

func TestSCombinatorLaw(t *testing.T) {
	// s add inc 1 = (add 1) (inc 1) = add 1 2 = 3
	requireInt(t, evalMain(t, "main = ap ap ap s add inc 1\n"), 3)
}

func TestCCombinatorLaw(t *testing.T) {
	// c add 1 2 = (add 2) 1 = add 2 1 = 3
	requireInt(t, evalMain(t, "main = ap ap ap c add 1 2\n"), 3)
}

func TestBCombinatorLaw(t *testing.T) {
	// b neg inc 5 = neg (inc 5) = neg 6 = -6
	requireInt(t, evalMain(t, "main = ap ap ap b neg inc 5\n"), -6)
}

func TestIf0Law(t *testing.T) {
	requireInt(t, evalMain(t, "main = ap ap ap if0 0 1 2\n"), 1)
	requireInt(t, evalMain(t, "main = ap ap ap if0 1 1 2\n"), 2)
}

func TestConsCarCdr(t *testing.T) {
	requireInt(t, evalMain(t, "main = ap car ap ap cons 1 2\n"), 1)
	requireInt(t, evalMain(t, "main = ap cdr ap ap cons 1 2\n"), 2)
}

func TestIsNilLaw(t *testing.T) {
	requireName(t, evalMain(t, "main = ap isnil nil\n"), "t")
	requireName(t, evalMain(t, "main = ap isnil ap ap cons 1 2\n"), "f")
}

func TestNilAbsorbsArgument(t *testing.T) {
	requireName(t, evalMain(t, "main = ap nil 99\n"), "t")
}

func TestUserDefinedNameResolution(t *testing.T) {
	requireInt(t, evalMain(t, "main = ap ap add two three\ntwo = 2\nthree = 3\n"), 5)
}

func TestMemoizationVisitsSharedSubgraphOnce(t *testing.T) {
	// shared evaluates to 3+4 once; the two separate uses of "shared"
	// should not re-trigger the addition.
	scope, err := parser.Parse([]byte(
		"shared = ap ap add 3 4\n"+
			"main = ap ap add shared shared\n"), "test")
	require.NoError(t, err)
	main, _ := scope.Lookup("main")
	ev := New(scope)
	result, err := ev.Eval(main)
	require.NoError(t, err)
	requireInt(t, result, 14)

	sharedNode, _ := scope.Lookup("shared")
	stepsAfterFirst := ev.Steps
	_, err = ev.Eval(sharedNode)
	require.NoError(t, err)
	require.Equal(t, stepsAfterFirst, ev.Steps, "re-evaluating a memoized node must not perform further steps")
}

func TestUnboundNameIsAnError(t *testing.T) {
	scope, err := parser.Parse([]byte("main = nowhere\n"), "test")
	require.NoError(t, err)
	main, _ := scope.Lookup("main")
	_, err = New(scope).Eval(main)
	require.Error(t, err)
}
