package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmmoran/jsls/pkg/action/snapshot"
)

func init() {
	rootCmd.AddCommand(NewSnapshotCommand())
}

func NewSnapshotCommand() *cobra.Command {
	var (
		file         string
		outDir       string
		manifestPath string
		version      string
		diff         bool
	)

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Record a document outline snapshot, or diff the two latest",
		RunE: func(c *cobra.Command, args []string) error {
			if diff {
				out, err := snapshot.DiffCurrentWithPrevious(manifestPath)
				if err != nil {
					return err
				}
				if out == "" {
					fmt.Fprintln(c.OutOrStdout(), "no outline changes between previous and current snapshots")
					return nil
				}
				fmt.Fprint(c.OutOrStdout(), out)
				return nil
			}
			if file == "" || version == "" {
				return fmt.Errorf("--file and --version are required unless --diff is set")
			}
			outFile, err := snapshot.Generate(file, outDir, manifestPath, version)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.OutOrStdout(), outFile)
			return nil
		},
	}
	snapshotCmd.Flags().StringVarP(&file, "file", "f", "", "source file to snapshot")
	snapshotCmd.Flags().StringVar(&outDir, "out-dir", "snapshots", "directory for snapshot files")
	snapshotCmd.Flags().StringVar(&manifestPath, "manifest", "snapshots/manifest.yaml", "manifest path")
	snapshotCmd.Flags().StringVar(&version, "version", "", "snapshot version, e.g. v1.2.0")
	snapshotCmd.Flags().BoolVar(&diff, "diff", false, "diff the current snapshot against the previous")

	return snapshotCmd
}
