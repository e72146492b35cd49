package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/liinajapson/budget-tool/internal/report"
)

func newReportCmd(a *app) *cobra.Command {
	var inputs, outDir string
	cmd := &cobra.Command{
		Use:     "report",
		Short:   "Compare several simulation summaries",
		Example: `  budget-tool report --inputs out/simulate/a/summary.json,out/simulate/b/summary.json`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(inputs) == "" {
				return errors.New("--inputs is required")
			}
			dir := a.outDir(outDir, "report")

			paths := splitCSV(inputs)
			results, err := report.ReadResults(paths)
			if err != nil {
				return err
			}
			agg, err := report.Aggregate(results, paths)
			if err != nil {
				return err
			}

			if err := report.WriteAggregateJSON(filepath.Join(dir, "summary.json"), agg); err != nil {
				return err
			}
			if err := report.WriteAggregateMarkdown(filepath.Join(dir, "summary.md"), agg); err != nil {
				return err
			}
			a.logger.Info("report written", zap.Int("inputs", len(paths)), zap.String("status", agg.Status))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote report to %s\n", dir)
			if len(agg.Errors) > 0 {
				return exitError{code: 2, err: errors.New("partial report")}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&inputs, "inputs", "", "comma-separated list of simulate summary.json files")
	cmd.Flags().StringVar(&outDir, "out", "", "output directory (default out/report)")
	return cmd
}
