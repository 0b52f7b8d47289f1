package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-pkl/pkg/cst"
	"github.com/cwbudde/go-pkl/pkg/pkl"
	"github.com/spf13/cobra"
)

var parseExpression bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse Pkl source and display the syntax tree",
	Long: `Parse Pkl source code and display the concrete syntax tree.

If no file is provided, reads from stdin.
Use -e to parse a single expression from the command line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVarP(&parseExpression, "expression", "e", false, "parse an expression from the command line")
}

func runParse(cmd *cobra.Command, args []string) error {
	var input string
	var err error
	if parseExpression {
		if len(args) == 0 {
			return fmt.Errorf("no expression provided")
		}
		input = args[0]
	} else {
		input, _, err = readInput("", args)
		if err != nil {
			return err
		}
	}

	var root cst.Node
	if parseExpression {
		expr, err := pkl.ParseExpression(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Parse error: %s\n", err)
			return fmt.Errorf("parsing failed")
		}
		root = expr
	} else {
		mod, _, err := pkl.ParseModule(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Parse error: %s\n", err)
			return fmt.Errorf("parsing failed")
		}
		root = mod
	}

	fmt.Print(cst.Dump(root))
	return nil
}
