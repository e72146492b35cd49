package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/liinajapson/budget-tool/internal/config"
	"github.com/liinajapson/budget-tool/internal/logging"
)

// app carries state resolved once in the root pre-run.
type app struct {
	viper      *viper.Viper
	configFile string
	cfg        config.Config
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{viper: viper.New(), logger: logging.Nop()}

	root := &cobra.Command{
		Use:   "budget-tool",
		Short: "Scholarship budget allocation simulator",
		Long: `budget-tool allocates a fixed scholarship budget across applicants grouped ` +
			`into cost tiers, and reports who is funded, how much is left and how ` +
			`coverage grows with budget.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "path to a config file (default ./budget-tool.yaml if present)")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.Bool("log-development", false, "human-friendly development logging")
	_ = a.viper.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = a.viper.BindPFlag(config.KeyLogDevelopment, flags.Lookup("log-development"))

	root.AddCommand(
		newSimulateCmd(a),
		newValidateCmd(a),
		newSweepCmd(a),
		newReportCmd(a),
		newExportCmd(a),
		newExplainCmd(),
		newServeCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) init() error {
	cfg, err := config.Load(a.viper, a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Development: cfg.LogDevelopment})
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

// outDir picks the explicit --out value, then the configured output root
// joined with sub.
func (a *app) outDir(flagValue string, sub ...string) string {
	if strings.TrimSpace(flagValue) != "" {
		return flagValue
	}
	root := a.cfg.Out
	if root == "" {
		root = "out"
	}
	return filepath.Join(append([]string{root}, sub...)...)
}

func (a *app) format(cmd *cobra.Command, flagValue string) []string {
	if cmd.Flags().Changed("format") {
		return parseFormat(flagValue)
	}
	return parseFormat(a.cfg.Format)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

func parseFormat(input string) []string {
	if strings.TrimSpace(input) == "" {
		return []string{"md", "json"}
	}
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.ToLower(strings.TrimSpace(part))
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return []string{"md", "json"}
	}
	return out
}

func includesFormat(formats []string, value string) bool {
	for _, format := range formats {
		if format == value {
			return true
		}
	}
	return false
}

func splitCSV(input string) []string {
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
