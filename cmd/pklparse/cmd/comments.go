package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-pkl/pkg/pkl"
	"github.com/spf13/cobra"
)

var commentsCmd = &cobra.Command{
	Use:   "comments [file]",
	Short: "List the comments of a Pkl module",
	Long: `Parse a Pkl module and list the comments stripped from the token
stream, in source order. Doc comments are included; they also appear in
the syntax tree attached to the member they document.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runComments,
}

func init() {
	rootCmd.AddCommand(commentsCmd)
}

func runComments(cmd *cobra.Command, args []string) error {
	input, _, err := readInput("", args)
	if err != nil {
		return err
	}

	_, comments, err := pkl.ParseModule(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Parse error: %s\n", err)
		return fmt.Errorf("parsing failed")
	}

	for _, c := range comments {
		fmt.Printf("%-6s (%d,%d) %q\n", c.Kind, c.Span.Offset, c.Span.Length, c.Text)
	}
	return nil
}
