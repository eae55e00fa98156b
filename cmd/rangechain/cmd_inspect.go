package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) convertCmd() *cobra.Command {
	var value uint64
	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Trace one value through every stage",
		Long: `Prints each category transition of --value, e.g.

  seed 79 -> soil 81
  soil 81 -> fertilizer 81`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, runner, err := a.load(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, st := range runner.Chain().Trace(value) {
				fmt.Fprintf(out, "%s %d -> %s %d\n", st.From, st.In, st.To, st.Out)
			}

			return nil
		},
	}
	cmd.Flags().Uint64Var(&value, "value", 0, "value to trace from the start category")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func (a *app) partitionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "partition [file]",
		Short: "Print each stage's gap-filled partition",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, runner, err := a.load(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, st := range runner.Chain().Stages() {
				fmt.Fprintf(out, "%s-to-%s:\n", st.From, st.To)
				for _, r := range st.Converter.Partition() {
					fmt.Fprintf(out, "  %s\n", r)
				}
			}

			return nil
		},
	}
}
