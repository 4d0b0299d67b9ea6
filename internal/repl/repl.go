// Package repl is an interactive front end for driving a galaxy
// program one event at a time: type "x,y" to send a click, bare enter
// to resend the last event, ":state" to print the current state,
// ":save PATH" / ":load PATH" to persist a session, ":q" to quit.
package repl

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/galaxypad/galaxy/internal/ast"
	"github.com/galaxypad/galaxy/internal/interact"
	"github.com/galaxypad/galaxy/internal/transport"
	"github.com/galaxypad/galaxy/internal/value"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
)

// REPL drives one galaxy program interactively, keeping the session's
// current state between turns.
type REPL struct {
	Scope  ast.Scope
	Client *transport.Client
	Trace  bool

	state value.Value
}

// New builds a REPL starting from the interaction protocol's initial
// state. client may be nil for programs known never to emit flag=1.
func New(scope ast.Scope, client *transport.Client) *REPL {
	return &REPL{Scope: scope, Client: client, state: interact.InitialState}
}

// Start runs the read-eval-print loop until the user quits or input
// is exhausted.
func (r *REPL) Start(out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCompleter(func(s string) (c []string) {
		for _, cmd := range []string{":help", ":quit", ":state", ":save", ":load"} {
			if strings.HasPrefix(cmd, s) {
				c = append(c, cmd)
			}
		}
		return
	})

	historyFile := filepath.Join(os.TempDir(), ".galaxy_repl_history")
	if f, err := os.Open(historyFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	fmt.Fprintln(out, bold("galaxy repl"))
	fmt.Fprintln(out, dim("type \"x,y\" to send a click, bare enter resends the last event (first (0,0)), :help for commands"))

	lastEvent := interact.InitialEvent

readLoop:
	for {
		input, err := line.Prompt("galaxy> ")
		if err == io.EOF {
			fmt.Fprintln(out, green("\ngoodbye"))
			break
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("error"), err)
			continue
		}
		input = strings.TrimSpace(input)
		if input != "" {
			line.AppendHistory(input)
		}

		switch {
		case input == ":q" || input == ":quit":
			fmt.Fprintln(out, green("goodbye"))
			break readLoop

		case input == ":help":
			fmt.Fprintln(out, dim("  x,y      send a click event at (x, y)"))
			fmt.Fprintln(out, dim("  (enter)  resend the last event"))
			fmt.Fprintln(out, dim("  :state   print the current session state"))
			fmt.Fprintln(out, dim("  :save P  save the session state to file P"))
			fmt.Fprintln(out, dim("  :load P  load the session state from file P"))
			fmt.Fprintln(out, dim("  :q       quit"))

		case input == ":state":
			fmt.Fprintln(out, r.state)

		case strings.HasPrefix(input, ":save "):
			path := strings.TrimSpace(strings.TrimPrefix(input, ":save "))
			if err := interact.SaveState(path, r.state, "saved from galaxy repl"); err != nil {
				fmt.Fprintf(out, "%s: %v\n", red("error"), err)
			} else {
				fmt.Fprintf(out, "%s %s\n", green("saved"), path)
			}

		case strings.HasPrefix(input, ":load "):
			path := strings.TrimSpace(strings.TrimPrefix(input, ":load "))
			state, err := interact.LoadState(path)
			if err != nil {
				fmt.Fprintf(out, "%s: %v\n", red("error"), err)
				continue
			}
			r.state = state
			fmt.Fprintf(out, "%s %s\n", green("loaded"), path)

		default:
			event := lastEvent
			if input != "" {
				parsed, err := parseEvent(input)
				if err != nil {
					fmt.Fprintf(out, "%s: %v\n", red("error"), err)
					continue
				}
				event = parsed
			}
			lastEvent = event
			r.step(out, event)
		}
	}

	if f, err := os.Create(historyFile); err == nil {
		_, _ = line.WriteHistory(f)
		f.Close()
	}
}

func (r *REPL) step(out io.Writer, event value.Value) {
	var trace interact.Tracer
	if r.Trace {
		trace = func(format string, args ...any) {
			fmt.Fprintln(out, cyan(fmt.Sprintf(format, args...)))
		}
	}

	newState, data, err := interact.Run(context.Background(), r.Client, r.Scope, r.state, event, trace)
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", red("error"), err)
		return
	}
	r.state = newState
	fmt.Fprintf(out, "%s %s\n", yellow("data:"), data)
}

// parseEvent reads "x,y" into the click-event pair the protocol
// expects: subsequent events are typically clicks expressed as (x, y)
// pairs of integers.
func parseEvent(input string) (value.Value, error) {
	parts := strings.SplitN(input, ",", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("expected \"x,y\", got %q", input)
	}
	x, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid x: %v", err)
	}
	y, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid y: %v", err)
	}
	return value.Pair{Car: value.Int{N: x}, Cdr: value.Int{N: y}}, nil
}
