package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/liinajapson/budget-tool/internal/explain"
)

func newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "explain <topic>",
		Short:     "Describe how allocation and coverage are computed",
		Long:      "Topics: " + strings.Join(explain.Topics(), ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: explain.Topics(),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := explain.Topic(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
