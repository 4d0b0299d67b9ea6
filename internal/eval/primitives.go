package eval

// arity gives the number of arguments a primitive consumes before its
// rewrite rule fires. cons is the one exception: it fires at 2 args
// (eager pair construction) and again at 3 (Church-style pair
// destructuring), so it is handled separately in the dispatch switch in
// eval_core.go rather than through this table.
var arity = map[string]int{
	"nil":   1,
	"neg":   1,
	"inc":   1,
	"dec":   1,
	"i":     1,
	"isnil": 1,
	"car":   1,
	"cdr":   1,

	"t":   2,
	"f":   2,
	"add": 2,
	"mul": 2,
	"div": 2,
	"eq":  2,
	"lt":  2,

	"s":   3,
	"c":   3,
	"b":   3,
	"if0": 3,
}

// isPrimitive reports whether name names one of the 20 built-in
// primitives: the 19 in the arity table above, plus cons.
func isPrimitive(name string) bool {
	if name == "cons" {
		return true
	}
	_, ok := arity[name]
	return ok
}
