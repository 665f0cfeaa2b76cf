package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/salesman/report"
)

func newEstimateCmd(a *app) *cobra.Command {
	var (
		k      int
		budget float64
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Show the operation estimate of every algorithm for k targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if k < 0 {
				return fmt.Errorf("--k must be >= 0, got %d", k)
			}
			if !cmd.Flags().Changed("budget") {
				budget = a.cfg.Solver.OpsBudget
			}
			printf(cmd, "%s\n", report.Estimates(k, budget))

			return nil
		},
	}
	cmd.Flags().IntVar(&k, "k", 0, "number of target cities")
	cmd.Flags().Float64Var(&budget, "budget", 0, "operation budget (default from config, 0: unlimited)")
	_ = cmd.MarkFlagRequired("k")

	return cmd
}
