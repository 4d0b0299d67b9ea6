package lexer

import "testing"

func TestNormalizeStripsBOM(t *testing.T) {
	src := append([]byte{0xEF, 0xBB, 0xBF}, []byte("main = 1\n")...)
	got := Normalize(src)
	if string(got) != "main = 1\n" {
		t.Fatalf("got %q", got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	src := []byte("main = ap ap add 1 2\n")
	once := Normalize(src)
	twice := Normalize(once)
	if string(once) != string(twice) {
		t.Fatalf("normalization not idempotent: %q vs %q", once, twice)
	}
}
