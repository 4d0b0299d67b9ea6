package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/galaxypad/galaxy/internal/parser"
	"github.com/galaxypad/galaxy/internal/repl"
	"github.com/galaxypad/galaxy/internal/transport"
)

var replTrace bool

var replCmd = &cobra.Command{
	Use:   "repl FILE",
	Short: "Interactively drive a galaxy program one event at a time",
	Args:  cobra.ExactArgs(1),
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().BoolVar(&replTrace, "trace", false, "trace each interaction turn")
}

func runRepl(_ *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	scope, err := parser.Parse(src, args[0])
	if err != nil {
		return reportErr(err)
	}

	var client *transport.Client
	if apiHost != "" {
		client = transport.NewWithTimeout(apiHost, apiKey, apiTimeout)
	}

	r := repl.New(scope, client)
	r.Trace = replTrace
	r.Start(os.Stdout)
	return nil
}
