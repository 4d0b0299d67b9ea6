// Package interact drives the galaxy(state, event) protocol: build the
// expression, reduce it to a 3-element [flag, state', data] list, and
// either hand control back to the caller (flag=0) or round-trip data
// through the alien proxy and resume with the response as the next
// event (flag=1). This is written as an explicit loop rather than a
// recursive tail call, so an arbitrarily long interaction session
// never grows the Go call stack.
package interact

import (
	"context"

	"github.com/galaxypad/galaxy/internal/ast"
	"github.com/galaxypad/galaxy/internal/bridge"
	"github.com/galaxypad/galaxy/internal/eval"
	"github.com/galaxypad/galaxy/internal/galerrors"
	"github.com/galaxypad/galaxy/internal/modulate"
	"github.com/galaxypad/galaxy/internal/transport"
	"github.com/galaxypad/galaxy/internal/value"
)

// InitialState is Nil, the state a fresh galaxy session starts from.
var InitialState value.Value = value.Nil{}

// InitialEvent is the pair (0, 0), the first event a fresh session sends.
var InitialEvent value.Value = value.Pair{Car: value.Int{N: 0}, Cdr: value.Int{N: 0}}

// Tracer receives one line per interaction turn when non-nil, letting
// callers (cmd/galaxy's --trace flag) observe the (state, event) ->
// (flag, state', data) sequence without coupling this package to any
// particular logger.
type Tracer func(format string, args ...any)

// Run drives the interaction loop to completion for one externally
// visible turn: it keeps following flag=1 responses through the alien
// proxy until a flag=0 result is produced, then returns the resulting
// state and render data. client may be nil if the program is known
// never to emit flag=1 (e.g. during offline testing).
func Run(ctx context.Context, client *transport.Client, scope ast.Scope, state, event value.Value, trace Tracer) (value.Value, value.Value, error) {
	galaxy, ok := scope.Lookup("galaxy")
	if !ok {
		return nil, nil, galerrors.New(galerrors.EVL002, "interact", "program defines no \"galaxy\" entry point")
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		expr := ast.NewAp(ast.NewAp(galaxy, bridge.FromValue(state)), bridge.FromValue(event))
		ev := eval.New(scope)
		result, err := bridge.ToValue(expr, ev)
		if err != nil {
			return nil, nil, err
		}

		elems, ok := value.Elements(result)
		if !ok || len(elems) != 3 {
			return nil, nil, galerrors.New(galerrors.EVL004, "interact", "galaxy did not return a 3-element (flag, state, data) list")
		}
		flagVal, newState, data := elems[0], elems[1], elems[2]

		flagInt, ok := flagVal.(value.Int)
		if !ok {
			return nil, nil, galerrors.New(galerrors.EVL004, "interact", "interaction flag is not a number")
		}

		if trace != nil {
			trace("> state=%s event=%s", state, event)
			trace("< flag=%d state'=%s data=%s", flagInt.N, newState, data)
		}

		if flagInt.N == 0 {
			return newState, data, nil
		}

		if client == nil {
			return nil, nil, galerrors.New(galerrors.NET002, "interact", "galaxy requested an alien proxy round trip but no transport client was configured")
		}

		encoded := modulate.Encode(data)
		reply, err := client.Send(ctx, encoded)
		if err != nil {
			return nil, nil, err
		}
		decoded, err := modulate.Decode(reply)
		if err != nil {
			return nil, nil, err
		}

		state, event = newState, decoded
	}
}
