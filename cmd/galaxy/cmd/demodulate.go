package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/galaxypad/galaxy/internal/modulate"
)

var demodulateCmd = &cobra.Command{
	Use:   "demodulate BITS",
	Short: "Decode a modulated bit string and print the resulting value",
	Args:  cobra.ExactArgs(1),
	RunE:  runDemodulate,
}

func init() {
	rootCmd.AddCommand(demodulateCmd)
}

func runDemodulate(_ *cobra.Command, args []string) error {
	v, err := modulate.Decode(args[0])
	if err != nil {
		return reportErr(err)
	}
	if jsonOutput {
		out, _ := json.Marshal(map[string]string{"value": v.String()})
		fmt.Println(string(out))
		return nil
	}
	fmt.Println(v)
	return nil
}
