package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/liinajapson/budget-tool/internal/allocation"
	"github.com/liinajapson/budget-tool/internal/report"
	"github.com/liinajapson/budget-tool/internal/scenario"
	"github.com/liinajapson/budget-tool/internal/simulate"
)

// scenarioOptions select a scenario document and override parts of it.
type scenarioOptions struct {
	file         string
	preset       string
	name         string
	tiers        string
	budget       int64
	ceiling      int64
	allowPartial bool
	minBase      int64
}

func (o *scenarioOptions) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&o.file, "file", "f", "", "path to a scenario document")
	fs.StringVar(&o.preset, "preset", "", "built-in scenario ("+strings.Join(scenario.PresetNames(), ", ")+")")
	fs.StringVar(&o.name, "name", "", "scenario name (overrides metadata.name)")
	fs.StringVar(&o.tiers, "tiers", "", "cost tiers as AMOUNTxCOUNT, e.g. 500x20,800x15")
	fs.Int64Var(&o.budget, "budget", 0, "total budget")
	fs.Int64Var(&o.ceiling, "ceiling", 0, "scholarship ceiling")
	fs.BoolVar(&o.allowPartial, "allow-partial", false, "fund a guaranteed base first, then top-ups")
	fs.Int64Var(&o.minBase, "min-base", 0, "minimum guaranteed amount for partial funding")
}

func (o *scenarioOptions) load(cmd *cobra.Command) (scenario.Scenario, error) {
	fs := cmd.Flags()
	if o.file != "" && o.preset != "" {
		return scenario.Scenario{}, errors.New("-f and --preset are mutually exclusive")
	}
	var doc scenario.Scenario
	var err error
	switch {
	case o.file != "":
		doc, err = scenario.Load(o.file)
	case o.preset != "":
		doc, err = scenario.PresetByName(o.preset)
	case o.tiers != "":
		doc = scenario.Scenario{
			APIVersion: scenario.APIVersionV1,
			Kind:       scenario.KindScholarshipScenario,
			Metadata:   scenario.Metadata{Name: "inline"},
		}
	default:
		return scenario.Scenario{}, errors.New("one of -f, --preset or --tiers is required")
	}
	if err != nil {
		return scenario.Scenario{}, err
	}

	tiers, err := scenario.ParseTiers(o.tiers)
	if err != nil {
		return scenario.Scenario{}, err
	}
	overrides := scenario.Overrides{Name: o.name, Tiers: tiers}
	if fs.Changed("budget") {
		overrides.Total = &o.budget
	}
	if fs.Changed("ceiling") {
		overrides.Ceiling = &o.ceiling
	}
	if fs.Changed("allow-partial") {
		overrides.AllowPartial = &o.allowPartial
	}
	if fs.Changed("min-base") {
		overrides.MinBase = &o.minBase
	}
	doc = doc.ApplyOverrides(overrides)
	if err := doc.Validate(); err != nil {
		return scenario.Scenario{}, err
	}
	return doc, nil
}

type simulateOptions struct {
	scenario scenarioOptions
	out      string
	format   string
	explain  bool
	runID    string
}

const simulateExample = `  budget-tool simulate -f fall-intake.yaml
  budget-tool simulate --preset partial --budget 15000 --explain
  budget-tool simulate --tiers 500x20,800x15 --budget 10000 --ceiling 1200`

func newSimulateCmd(a *app) *cobra.Command {
	opts := &simulateOptions{}
	cmd := &cobra.Command{
		Use:     "simulate",
		Short:   "Allocate the budget for a scenario and write reports",
		Example: simulateExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSimulate(cmd, opts)
		},
	}
	opts.scenario.register(cmd)
	cmd.Flags().StringVar(&opts.out, "out", "", "output directory (default out/simulate/<name>-<run id>)")
	cmd.Flags().StringVar(&opts.format, "format", "md,json", "comma-separated output formats")
	cmd.Flags().BoolVar(&opts.explain, "explain", false, "include allocation formula and stage notes")
	cmd.Flags().StringVar(&opts.runID, "run-id", "", "run identifier (generated when empty)")
	return cmd
}

func (a *app) runSimulate(cmd *cobra.Command, opts *simulateOptions) error {
	doc, err := opts.scenario.load(cmd)
	if err != nil {
		return err
	}
	for _, advisory := range doc.Advisories() {
		fmt.Fprintln(cmd.ErrOrStderr(), "Notice:", advisory)
	}

	result, outDir, err := simulate.Run(doc, simulate.Options{
		OutDir:  opts.out,
		OutRoot: a.cfg.Out,
		Explain: opts.explain,
		RunID:   opts.runID,
	})
	if err != nil {
		if errors.Is(err, allocation.ErrNoApplicants) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Warning: no applicants; add a tier with a positive count.")
			return exitError{code: 2, err: err}
		}
		return err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	formats := a.format(cmd, opts.format)
	if includesFormat(formats, "md") {
		if err := report.WriteMarkdownSummary(filepath.Join(outDir, "summary.md"), result, report.Options{Explain: opts.explain}); err != nil {
			return err
		}
	}
	if includesFormat(formats, "json") {
		if err := report.WriteSummaryJSON(filepath.Join(outDir, "summary.json"), result); err != nil {
			return err
		}
	}
	if len(result.Warnings) > 0 {
		if err := report.WriteWarningsMarkdown(filepath.Join(outDir, "warnings.md"), result.Warnings); err != nil {
			return err
		}
	}

	a.logger.Info("simulation complete",
		zap.String("run_id", result.RunID),
		zap.String("scenario", result.Scenario),
		zap.String("status", result.Status),
		zap.Int("applicants", result.Summary.Applicants),
		zap.Int("funded", result.Summary.FundedCount),
		zap.Int64("remaining", result.Summary.BudgetRemaining),
	)

	s := result.Summary
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Funded %d of %d applicants (%d full, %d partial); %d of %d remaining.\n",
		s.FundedCount, s.Applicants, s.FullyFundedCount, s.PartiallyFundedCount, s.BudgetRemaining, s.TotalBudget)
	fmt.Fprintf(out, "Wrote simulation to %s\n", outDir)
	return nil
}

func newValidateCmd(a *app) *cobra.Command {
	opts := &scenarioOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a scenario without running it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := opts.load(cmd)
			if err != nil {
				return err
			}
			for _, advisory := range doc.Advisories() {
				fmt.Fprintln(cmd.ErrOrStderr(), "Notice:", advisory)
			}
			a.logger.Debug("scenario validated", zap.String("scenario", doc.Metadata.Name))
			if doc.Applicants() == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "Warning: no applicants; add a tier with a positive count.")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Scenario %s is valid: %d applicants in %d tiers.\n", doc.Metadata.Name, doc.Applicants(), len(doc.Tiers))
			return nil
		},
	}
	opts.register(cmd)
	return cmd
}
