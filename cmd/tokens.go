package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cmmoran/jsls/internal/lexer"
)

func init() {
	rootCmd.AddCommand(NewTokensCommand())
}

func NewTokensCommand() *cobra.Command {
	var (
		file   string
		trivia bool
	)

	tokensCmd := &cobra.Command{
		Use:   "tokens",
		Short: "Dump tokens per line with the tokenizer states threading them",
		RunE: func(c *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read source %s: %w", file, err)
			}
			out := c.OutOrStdout()
			st := lexer.Root()
			for i, line := range strings.Split(string(data), "\n") {
				toks, end := lexer.TokenizeLine(line, st)
				fmt.Fprintf(out, "line %d  in=%s out=%s\n", i, st, end)
				for _, tk := range toks {
					if tk.IsTrivia() && !trivia {
						continue
					}
					fmt.Fprintf(out, "  %4d-%-4d %-10s %q\n", tk.Start, tk.End, tk.Kind, tk.Text)
				}
				st = end
			}
			return nil
		},
	}
	tokensCmd.Flags().StringVarP(&file, "file", "f", "", "source file")
	tokensCmd.Flags().BoolVar(&trivia, "trivia", false, "include whitespace and comment tokens")
	_ = tokensCmd.MarkFlagRequired("file")

	return tokensCmd
}
