package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cmmoran/jsls/pkg/language"
)

func init() {
	rootCmd.AddCommand(NewSymbolsCommand())
}

func NewSymbolsCommand() *cobra.Command {
	var file string

	symbolsCmd := &cobra.Command{
		Use:   "symbols",
		Short: "Print the document outline",
		RunE: func(c *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read source %s: %w", file, err)
			}
			svc := language.New(string(data), serviceOptions()...)
			for _, ds := range svc.DocumentSymbols() {
				if ds.Detail != "" {
					fmt.Fprintf(c.OutOrStdout(), "%-9s %-24s %s\n", ds.Kind, ds.Name, ds.Detail)
				} else {
					fmt.Fprintf(c.OutOrStdout(), "%-9s %s\n", ds.Kind, ds.Name)
				}
			}
			return nil
		},
	}
	symbolsCmd.Flags().StringVarP(&file, "file", "f", "", "source file")
	_ = symbolsCmd.MarkFlagRequired("file")

	return symbolsCmd
}
