package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) pointsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "points [file]",
		Short: "Lowest terminal value over the individual seeds",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runPoints,
	}
}

func (a *app) rangesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ranges [file]",
		Short: "Lowest terminal value over seed (start, length) ranges",
		Long: `Reads the seeds as (start, length) pairs and maps every range through
the chain without enumerating its values.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runRanges,
	}
}

func (a *app) runPoints(cmd *cobra.Command, args []string) error {
	alm, runner, err := a.load(cmd, args)
	if err != nil {
		return err
	}
	best, err := runner.MinValue(cmd.Context(), alm.Seeds)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), best)

	return nil
}

func (a *app) runRanges(cmd *cobra.Command, args []string) error {
	alm, runner, err := a.load(cmd, args)
	if err != nil {
		return err
	}
	set, err := alm.SeedRanges()
	if err != nil {
		return err
	}
	best, err := runner.MinRange(cmd.Context(), set)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), best)

	return nil
}
