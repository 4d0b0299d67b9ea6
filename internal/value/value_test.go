package value

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIsList(t *testing.T) {
	list := FromElements([]Value{Int{1}, Int{2}, Int{3}})
	if !IsList(list) {
		t.Fatal("expected a right-nil-terminated chain to be a list")
	}
	notList := Pair{Car: Int{1}, Cdr: Int{2}}
	if IsList(notList) {
		t.Fatal("expected a non-nil-terminated pair to not be a list")
	}
}

func TestElementsRoundTrip(t *testing.T) {
	want := []Value{Int{1}, Pair{Car: Int{2}, Cdr: Int{3}}, Int{4}}
	built := FromElements(want)
	got, ok := Elements(built)
	if !ok {
		t.Fatal("expected Elements to succeed on a list")
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestElementsOnNonList(t *testing.T) {
	_, ok := Elements(Pair{Car: Int{1}, Cdr: Int{2}})
	if ok {
		t.Fatal("expected Elements to fail on a dotted pair")
	}
}

func TestStringFormatting(t *testing.T) {
	if Nil{}.String() != "nil" {
		t.Fatalf("got %s", Nil{}.String())
	}
	if Int{7}.String() != "7" {
		t.Fatalf("got %s", Int{7}.String())
	}
	list := FromElements([]Value{Int{1}, Int{2}})
	if list.String() != "[1, 2]" {
		t.Fatalf("got %s", list.String())
	}
	dotted := Pair{Car: Int{1}, Cdr: Int{2}}
	if dotted.String() != "(1 . 2)" {
		t.Fatalf("got %s", dotted.String())
	}
}
