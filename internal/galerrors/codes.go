// Package galerrors provides the structured, phase-tagged error reports
// used across the parser, evaluator, codec, and transport layers.
//
// Named galerrors rather than errors so call sites can import both this
// package and the standard library errors package without aliasing.
package galerrors

// Error code constants, one family per phase.
const (
	// Parser errors (PAR###) — malformed program text, fatal at load.
	PAR001 = "PAR001" // unexpected token
	PAR002 = "PAR002" // wrong ap arity (dangling or unconsumed application)
	PAR003 = "PAR003" // missing "=" in a definition line
	PAR004 = "PAR004" // empty definition body
	PAR005 = "PAR005" // malformed integer literal

	// Evaluator errors (EVL###) — surfaced to the host for the current turn.
	EVL001 = "EVL001" // numeric operation applied to a non-number
	EVL002 = "EVL002" // reference to an unbound name
	EVL003 = "EVL003" // division by zero
	EVL004 = "EVL004" // primitive applied with the wrong shape of argument

	// Codec errors (COD###) — malformed or truncated bit string.
	COD001 = "COD001" // unexpected end of input
	COD002 = "COD002" // trailing data after a complete top-level token
	COD003 = "COD003" // invalid two-bit tag

	// Transport errors (NET###) — alien proxy round-trip failures.
	NET001 = "NET001" // non-200 HTTP response
	NET002 = "NET002" // connection/transport failure

	// Session-state persistence errors (STA###) — --save-state I/O.
	STA001 = "STA001" // could not read or parse a saved session file
	STA002 = "STA002" // could not write a session file
)

// ErrorInfo describes an error code for documentation and CLI help text.
type ErrorInfo struct {
	Code        string
	Phase       string
	Description string
}

// Registry maps every defined code to its descriptive info.
var Registry = map[string]ErrorInfo{
	PAR001: {PAR001, "parser", "unexpected token"},
	PAR002: {PAR002, "parser", "wrong ap arity"},
	PAR003: {PAR003, "parser", "missing '=' in definition"},
	PAR004: {PAR004, "parser", "empty definition body"},
	PAR005: {PAR005, "parser", "malformed integer literal"},

	EVL001: {EVL001, "eval", "numeric operation on a non-number"},
	EVL002: {EVL002, "eval", "unbound name"},
	EVL003: {EVL003, "eval", "division by zero"},
	EVL004: {EVL004, "eval", "ill-formed primitive application"},

	COD001: {COD001, "codec", "truncated bit string"},
	COD002: {COD002, "codec", "trailing data after top-level token"},
	COD003: {COD003, "codec", "invalid tag bits"},

	NET001: {NET001, "transport", "non-200 response from alien proxy"},
	NET002: {NET002, "transport", "connection failure"},

	STA001: {STA001, "interact", "could not read saved session state"},
	STA002: {STA002, "interact", "could not write session state"},
}
