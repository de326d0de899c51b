package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cmmoran/jsls/internal/gen"
)

func init() {
	rootCmd.AddCommand(NewGenerateCommand())
}

func NewGenerateCommand() *cobra.Command {
	opts := &gen.Options{}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Regenerate the builtin environment tables from their TOML source",
		RunE: func(c *cobra.Command, args []string) error {
			return gen.Generate(opts)
		},
	}
	generateCmd.Flags().StringVar(&opts.Data, "data", "internal/builtins/builtins.toml", "builtins TOML source")
	generateCmd.Flags().StringVar(&opts.Out, "out", "internal/builtins/builtins_gen.go", "generated output file")

	return generateCmd
}
