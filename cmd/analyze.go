package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmmoran/jsls/pkg/action/analyze"
)

func init() {
	rootCmd.AddCommand(NewAnalyzeCommand())
}

func NewAnalyzeCommand() *cobra.Command {
	var asJSON bool

	analyzeCmd := &cobra.Command{
		Use:   "analyze [files...]",
		Short: "Analyze JavaScript files and report diagnostics and outlines",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			reports, err := analyze.Run(args, serviceOptions()...)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(c.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(reports)
			}
			for _, r := range reports {
				printReport(c, r)
			}
			return nil
		},
	}
	analyzeCmd.Flags().BoolVar(&asJSON, "json", false, "emit reports as JSON")

	return analyzeCmd
}

func printReport(c *cobra.Command, r analyze.Report) {
	out := c.OutOrStdout()
	fmt.Fprintf(out, "%s: tokens=%d nodes=%d diagnostics=%d\n", r.Path, r.Tokens, r.Nodes, len(r.Diagnostics))
	for _, d := range r.Diagnostics {
		fmt.Fprintf(out, "  %s [%d-%d] %s\n", d.Severity, d.Range.Start, d.Range.End, d.Message)
	}
	for _, s := range r.Outline {
		fmt.Fprintf(out, "  %-9s %s\n", s.Kind, s.Name)
	}
}
