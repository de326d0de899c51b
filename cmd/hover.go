package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cmmoran/jsls/pkg/language"
)

func init() {
	rootCmd.AddCommand(NewHoverCommand())
}

func NewHoverCommand() *cobra.Command {
	var (
		file   string
		offset int
	)

	hoverCmd := &cobra.Command{
		Use:   "hover",
		Short: "Show the hover card for a byte offset",
		RunE: func(c *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read source %s: %w", file, err)
			}
			svc := language.New(string(data), serviceOptions()...)
			hov := svc.Hover(offset)
			if hov == nil {
				fmt.Fprintln(c.OutOrStdout(), "no hover information")
				return nil
			}
			for _, content := range hov.Contents {
				fmt.Fprintln(c.OutOrStdout(), content.Value)
			}
			return nil
		},
	}
	hoverCmd.Flags().StringVarP(&file, "file", "f", "", "source file")
	hoverCmd.Flags().IntVarP(&offset, "offset", "o", 0, "byte offset of the cursor")
	_ = hoverCmd.MarkFlagRequired("file")

	return hoverCmd
}
