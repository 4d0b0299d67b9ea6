package ast

import "testing"

func TestMemoSingleAssignment(t *testing.T) {
	a := NewName("x")
	first := NewInt(1)
	second := NewInt(2)

	a.SetEvaluated(first)
	a.SetEvaluated(second)

	if a.Evaluated() != Node(first) {
		t.Fatalf("memo was overwritten: got %v, want %v", a.Evaluated(), first)
	}
}

func TestAtomString(t *testing.T) {
	if NewInt(42).String() != "42" {
		t.Fatalf("got %s", NewInt(42).String())
	}
	if NewName("cons").String() != "cons" {
		t.Fatalf("got %s", NewName("cons").String())
	}
}

func TestApString(t *testing.T) {
	ap := NewAp(NewName("car"), NewName("x"))
	if ap.String() != "(car x)" {
		t.Fatalf("got %s", ap.String())
	}
}

func TestScopeLookup(t *testing.T) {
	s := Scope{"main": NewInt(7)}
	n, ok := s.Lookup("main")
	if !ok {
		t.Fatal("expected lookup to succeed")
	}
	if n.(*Atom).Num != 7 {
		t.Fatalf("got %v", n)
	}
	if _, ok := s.Lookup("missing"); ok {
		t.Fatal("expected lookup to fail")
	}
}
