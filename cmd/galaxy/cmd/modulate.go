package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/galaxypad/galaxy/internal/bridge"
	"github.com/galaxypad/galaxy/internal/eval"
	"github.com/galaxypad/galaxy/internal/modulate"
	"github.com/galaxypad/galaxy/internal/parser"
)

var modulateCmd = &cobra.Command{
	Use:   "modulate EXPR",
	Short: "Reduce and modulate a combinator expression into its bit string",
	Long: `EXPR is parsed as a galaxy definition body (the same grammar
as a program line's right-hand side): ap-prefixed combinator
applications, primitive names, and integer literals.

Examples:
  galaxy modulate "ap ap cons 1 2"
  galaxy modulate nil`,
	Args: cobra.ExactArgs(1),
	RunE: runModulate,
}

func init() {
	rootCmd.AddCommand(modulateCmd)
}

func runModulate(_ *cobra.Command, args []string) error {
	src := "main = " + args[0] + "\n"
	scope, err := parser.Parse([]byte(src), "<modulate>")
	if err != nil {
		return reportErr(err)
	}
	main, ok := scope.Lookup("main")
	if !ok {
		return fmt.Errorf("internal error: expression did not parse into a \"main\" binding")
	}

	v, err := bridge.ToValue(main, eval.New(scope))
	if err != nil {
		return reportErr(err)
	}

	bits := modulate.Encode(v)
	if jsonOutput {
		out, _ := json.Marshal(map[string]string{"value": v.String(), "modulated": bits})
		fmt.Println(string(out))
		return nil
	}
	fmt.Println(bits)
	return nil
}
