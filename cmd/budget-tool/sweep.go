package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/liinajapson/budget-tool/internal/allocation"
	"github.com/liinajapson/budget-tool/internal/report"
	"github.com/liinajapson/budget-tool/internal/sweep"
)

type sweepOptions struct {
	scenario  scenarioOptions
	dimension string
	from      int64
	to        int64
	steps     int
	out       string
}

const sweepExample = `  budget-tool sweep --preset default --to 40000
  budget-tool sweep -f fall-intake.yaml --dimension ceiling --from 500 --to 1500 --steps 4`

func newSweepCmd(a *app) *cobra.Command {
	opts := &sweepOptions{}
	cmd := &cobra.Command{
		Use:     "sweep",
		Short:   "Rerun a scenario across a range of budgets or ceilings",
		Example: sweepExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSweep(cmd, opts)
		},
	}
	opts.scenario.register(cmd)
	cmd.Flags().StringVar(&opts.dimension, "dimension", sweep.DimensionBudget, "input to vary (budget or ceiling)")
	cmd.Flags().Int64Var(&opts.from, "from", 0, "first level")
	cmd.Flags().Int64Var(&opts.to, "to", 0, "last level (default: total requested for budget, largest tier for ceiling)")
	cmd.Flags().IntVar(&opts.steps, "steps", sweep.DefaultSteps, "number of intervals between from and to")
	cmd.Flags().StringVar(&opts.out, "out", "", "also write sweep.json to this directory")
	return cmd
}

func (a *app) runSweep(cmd *cobra.Command, opts *sweepOptions) error {
	doc, err := opts.scenario.load(cmd)
	if err != nil {
		return err
	}
	tiers := doc.CostTiers()
	cfg := doc.Config()

	to := opts.to
	if !cmd.Flags().Changed("to") {
		to = defaultSweepEnd(tiers, cfg, opts.dimension)
	}
	plan, err := sweep.Build(cmd.Context(), tiers, cfg, sweep.Options{
		Dimension: opts.dimension,
		From:      opts.from,
		To:        to,
		Steps:     opts.steps,
	})
	if err != nil {
		if errors.Is(err, allocation.ErrNoApplicants) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Warning: no applicants; add a tier with a positive count.")
			return exitError{code: 2, err: err}
		}
		return err
	}
	a.logger.Info("sweep complete",
		zap.String("scenario", doc.Metadata.Name),
		zap.String("dimension", plan.Dimension),
		zap.Int("points", len(plan.Points)),
	)

	sweep.Render(cmd.OutOrStdout(), plan)
	if opts.out != "" {
		path := filepath.Join(opts.out, "sweep.json")
		if err := report.WriteJSON(path, plan); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote sweep to %s\n", path)
	}
	return nil
}

func defaultSweepEnd(tiers []allocation.CostTier, cfg allocation.BudgetConfig, dimension string) int64 {
	var total, largest int64
	for _, tier := range tiers {
		if tier.Amount > largest {
			largest = tier.Amount
		}
		if tier.Count <= 0 {
			continue
		}
		requested := tier.Amount
		if requested > cfg.Ceiling {
			requested = cfg.Ceiling
		}
		total += requested * int64(tier.Count)
	}
	if dimension == sweep.DimensionCeiling {
		return largest
	}
	return total
}
