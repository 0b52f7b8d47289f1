package cmd

import (
	"fmt"

	"github.com/cwbudde/go-pkl/internal/lexer"
	"github.com/cwbudde/go-pkl/pkg/token"
	"github.com/spf13/cobra"
)

var (
	evalExpr string
	showSpan bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Pkl file or expression",
	Long: `Tokenize (lex) Pkl source and print the resulting tokens.

This command is useful for debugging the lexer and understanding how Pkl
source code is tokenized, including the string-fragment tokens emitted
inside interpolated strings.

Examples:
  # Tokenize a module
  pklparse lex config.pkl

  # Tokenize an inline expression
  pklparse lex -e "1 + 2 * 3"

  # Show byte spans
  pklparse lex --show-span config.pkl`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showSpan, "show-span", false, "show byte spans (offset,length)")
}

func runLex(cmd *cobra.Command, args []string) error {
	input, name, err := readInput(evalExpr, args)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Tokenizing: %s\n", name)
		fmt.Printf("Input length: %d bytes\n", len(input))
		fmt.Println("---")
	}

	return lexAll(input)
}

// lexAll drains the lexer, printing one token per line. The lexer reports
// errors by panicking with *lexer.Error; recover turns that into the
// command's error.
func lexAll(input string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if lexErr, ok := r.(*lexer.Error); ok {
				err = fmt.Errorf("lex error at offset %d: %s", lexErr.Span.Offset, lexErr.Message)
				return
			}
			panic(r)
		}
	}()

	lx := lexer.New(input)
	for {
		tok := lx.Next()
		if showSpan {
			fmt.Printf("%-24s (%d,%d) %q\n", tok.Kind, tok.Span.Offset, tok.Span.Length, lx.Text(tok))
		} else {
			fmt.Printf("%-24s %q\n", tok.Kind, lx.Text(tok))
		}
		if tok.Kind == token.EOF {
			return nil
		}
	}
}
