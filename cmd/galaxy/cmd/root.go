// Package cmd implements the galaxy CLI: run/modulate/demodulate/repl
// subcommands over a cobra root command, following the pack's cobra
// cmd-package layout (one file per subcommand, persistent flags on the
// root, RunE handlers that return errors instead of calling os.Exit
// inline).
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

var (
	// Version is set by ldflags at build time.
	Version   = "dev"
	GitCommit = "unknown"
)

// Persistent flags shared by every subcommand that talks to the alien
// proxy (run, repl) or that renders a result (all of them).
var (
	apiHost    string
	apiKey     string
	apiTimeout time.Duration
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "galaxy",
	Short: "An interpreter for the Galaxy combinator language",
	Long: `galaxy loads a program written in the tiny ap-prefixed
combinator language described by the Galaxy Pad transmissions, reduces
it to weak head normal form, and drives its (state, event) -> (flag,
state', data) interaction protocol against an optional alien proxy.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("galaxy version {{.Version}} (%s)\n", GitCommit))

	rootCmd.PersistentFlags().StringVar(&apiHost, "api-host", "", "alien proxy base URL (required if the program ever emits flag=1)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", os.Getenv("GALAXY_API_KEY"), "alien proxy API key (default from $GALAXY_API_KEY)")
	rootCmd.PersistentFlags().DurationVar(&apiTimeout, "timeout", 30*time.Second, "alien proxy HTTP timeout")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "render results and errors as JSON")
}
