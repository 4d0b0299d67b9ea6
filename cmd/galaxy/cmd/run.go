package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/galaxypad/galaxy/internal/interact"
	"github.com/galaxypad/galaxy/internal/parser"
	"github.com/galaxypad/galaxy/internal/transport"
	"github.com/galaxypad/galaxy/internal/value"
)

var (
	runEvent     string
	runTrace     bool
	runLoadState string
	runSaveState string
)

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Run a galaxy program for one interaction turn",
	Long: `Load a galaxy program, build the (state, event) interaction
expression, reduce it, and print the resulting state and render data.

Examples:
  galaxy run program.txt
  galaxy run program.txt --event 12,34
  galaxy run program.txt --api-host https://example.org/api --api-key KEY --trace`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runEvent, "event", "0,0", "event to send, as \"x,y\"")
	runCmd.Flags().BoolVar(&runTrace, "trace", false, "trace each interaction turn")
	runCmd.Flags().StringVar(&runLoadState, "load-state", "", "resume from a session state file saved with --save-state")
	runCmd.Flags().StringVar(&runSaveState, "save-state", "", "save the resulting session state to this file")
}

func runRun(_ *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	scope, err := parser.Parse(src, args[0])
	if err != nil {
		return reportErr(err)
	}

	state := interact.InitialState
	if runLoadState != "" {
		state, err = interact.LoadState(runLoadState)
		if err != nil {
			return reportErr(err)
		}
	}

	event, err := parseClickEvent(runEvent)
	if err != nil {
		return err
	}

	var client *transport.Client
	if apiHost != "" {
		client = transport.NewWithTimeout(apiHost, apiKey, apiTimeout)
	}

	var trace interact.Tracer
	if runTrace {
		trace = func(format string, a ...any) { fmt.Fprintln(os.Stderr, cyan(fmt.Sprintf(format, a...))) }
	}

	newState, data, err := interact.Run(context.Background(), client, scope, state, event, trace)
	if err != nil {
		return reportErr(err)
	}

	if jsonOutput {
		out, _ := json.Marshal(map[string]string{"state": newState.String(), "data": data.String()})
		fmt.Println(string(out))
	} else {
		fmt.Printf("%s %s\n", bold("state:"), newState)
		fmt.Printf("%s %s\n", bold("data:"), data)
	}

	if runSaveState != "" {
		if err := interact.SaveState(runSaveState, newState, "saved by galaxy run"); err != nil {
			return reportErr(err)
		}
		if !jsonOutput {
			fmt.Fprintf(os.Stderr, "%s %s\n", green("saved state to"), runSaveState)
		}
	}
	return nil
}

func parseClickEvent(s string) (value.Value, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("--event must be \"x,y\", got %q", s)
	}
	x, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid x in --event: %w", err)
	}
	y, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid y in --event: %w", err)
	}
	return value.Pair{Car: value.Int{N: x}, Cdr: value.Int{N: y}}, nil
}
