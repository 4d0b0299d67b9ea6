// Package ast defines the expression graph the parser builds and the
// evaluator reduces: two node shapes, Ap and Atom, each carrying a
// single-assignment memoization slot.
package ast

import "fmt"

// Node is either an Ap (application) or an Atom (primitive name, user
// name reference, or integer literal).
type Node interface {
	node()
	String() string

	// Evaluated returns the memoized weak-head normal form of this node,
	// or nil if it has not been reduced yet.
	Evaluated() Node

	// SetEvaluated records the memoized result. The memo is
	// single-assignment: calling it a second time is a no-op.
	SetEvaluated(n Node)
}

// memo is embedded in every concrete node to give it a write-once memo
// cell: once a node is reduced, the result is cached and never overwritten.
type memo struct {
	evaluated Node
}

func (m *memo) Evaluated() Node { return m.evaluated }

func (m *memo) SetEvaluated(n Node) {
	if m.evaluated == nil {
		m.evaluated = n
	}
}

// Atom is a leaf: a primitive name, a reference to a user-defined name,
// or an integer literal.
type Atom struct {
	memo
	Sym   string // primitive or user name; unused when IsNum
	Num   int64  // literal value; valid only when IsNum
	IsNum bool
}

func (*Atom) node() {}

func (a *Atom) String() string {
	if a.IsNum {
		return fmt.Sprintf("%d", a.Num)
	}
	return a.Sym
}

// NewName builds an Atom referring to a primitive or user-defined name.
func NewName(sym string) *Atom { return &Atom{Sym: sym} }

// NewInt builds an Atom holding an integer literal.
func NewInt(n int64) *Atom { return &Atom{Num: n, IsNum: true} }

// Ap is function application: Fun applied to Arg.
type Ap struct {
	memo
	Fun Node
	Arg Node
}

func (*Ap) node() {}

func (a *Ap) String() string {
	return fmt.Sprintf("(%s %s)", a.Fun, a.Arg)
}

// NewAp builds an application node.
func NewAp(fun, arg Node) *Ap { return &Ap{Fun: fun, Arg: arg} }

// Scope is the read-only name -> definition mapping the parser builds.
type Scope map[string]Node

// Lookup resolves a user-defined name.
func (s Scope) Lookup(name string) (Node, bool) {
	n, ok := s[name]
	return n, ok
}
