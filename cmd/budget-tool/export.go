package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/liinajapson/budget-tool/internal/export/csvtable"
	"github.com/liinajapson/budget-tool/internal/export/vegalite"
	"github.com/liinajapson/budget-tool/internal/report"
	"github.com/liinajapson/budget-tool/internal/simulate"
)

// exportSource is either a saved summary.json or a scenario to simulate.
type exportSource struct {
	scenario scenarioOptions
	input    string
	out      string
}

func (s *exportSource) register(cmd *cobra.Command, defaultOut string) {
	s.scenario.register(cmd)
	cmd.Flags().StringVar(&s.input, "input", "", "existing simulate summary.json to export instead of running a scenario")
	cmd.Flags().StringVar(&s.out, "out", "", "output directory (default out/"+defaultOut+")")
}

func (s *exportSource) result(cmd *cobra.Command) (simulate.Result, error) {
	if s.input != "" {
		results, err := report.ReadResults([]string{s.input})
		if err != nil {
			return simulate.Result{}, err
		}
		return results[0], nil
	}
	doc, err := s.scenario.load(cmd)
	if err != nil {
		return simulate.Result{}, err
	}
	result, _, err := simulate.Run(doc, simulate.Options{})
	return result, err
}

func newExportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export allocation results for other tools",
	}
	cmd.AddCommand(newExportCSVCmd(a), newExportVegaLiteCmd(a))
	return cmd
}

func newExportCSVCmd(a *app) *cobra.Command {
	src := &exportSource{}
	var fundedOnly bool
	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Write one row per award to awards.csv",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := src.result(cmd)
			if err != nil {
				return err
			}
			path, err := csvtable.Write(result, a.outDir(src.out, "csv"), fundedOnly)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote CSV export to %s\n", path)
			return nil
		},
	}
	src.register(cmd, "csv")
	cmd.Flags().BoolVar(&fundedOnly, "funded-only", false, "leave unfunded awards out")
	return cmd
}

func newExportVegaLiteCmd(a *app) *cobra.Command {
	src := &exportSource{}
	var steps int
	cmd := &cobra.Command{
		Use:   "vega-lite",
		Short: "Write the coverage curve as a Vega-Lite chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := src.result(cmd)
			if err != nil {
				return err
			}
			path, err := vegalite.Write(result, a.outDir(src.out, "vega-lite"), vegalite.Options{Steps: steps})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote Vega-Lite export to %s\n", path)
			return nil
		},
	}
	src.register(cmd, "vega-lite")
	cmd.Flags().IntVar(&steps, "steps", 0, "resample the curve onto this many budget intervals (0 keeps exact steps)")
	return cmd
}
