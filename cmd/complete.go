package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cmmoran/jsls/pkg/language"
)

func init() {
	rootCmd.AddCommand(NewCompleteCommand())
}

func NewCompleteCommand() *cobra.Command {
	var (
		file   string
		offset int
	)

	completeCmd := &cobra.Command{
		Use:   "complete",
		Short: "List ranked completions at a byte offset",
		RunE: func(c *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read source %s: %w", file, err)
			}
			svc := language.New(string(data), serviceOptions()...)
			for _, item := range svc.Completions(offset) {
				if item.TypeInfo != "" {
					fmt.Fprintf(c.OutOrStdout(), "%-9s %s: %s\n", item.Kind, item.Label, item.TypeInfo)
				} else {
					fmt.Fprintf(c.OutOrStdout(), "%-9s %s\n", item.Kind, item.Label)
				}
			}
			return nil
		},
	}
	completeCmd.Flags().StringVarP(&file, "file", "f", "", "source file")
	completeCmd.Flags().IntVarP(&offset, "offset", "o", 0, "byte offset of the cursor")
	_ = completeCmd.MarkFlagRequired("file")

	return completeCmd
}
