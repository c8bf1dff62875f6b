package main

import (
	"fmt"

	"github.com/katalvlaran/hyperarray/regions"
	"github.com/spf13/cobra"
)

func newLabelCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "label",
		Short: "Label connected regions of cells at or above a threshold",
		Long: `
Selects the region [--begin, --end) of an array, keeps the cells whose value is
at least --min, and paints every connected group of kept cells with its own
number. --full also joins cells that only touch diagonally.

hyperplay label -l 3,4 -V 0,1,1,0,1,1,0,0,0,0,1,1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := a.order()
			if err != nil {
				return err
			}
			s, err := scenario(cmd)
			if err != nil {
				return err
			}
			arr, err := s.Build(order)
			if err != nil {
				return err
			}
			v, err := s.View(arr)
			if err != nil {
				return err
			}

			minimum, _ := cmd.Flags().GetFloat64("min")
			conn := regions.Face
			if full, _ := cmd.Flags().GetBool("full"); full {
				conn = regions.Full
			}
			labels, n, err := regions.Label(v, func(x float64) bool { return x >= minimum },
				regions.WithConnectivity(conn))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "regions:", n)
			fmt.Fprintln(out, labels)

			return nil
		},
	}
	addArrayFlags(cmd)
	addRegionFlags(cmd)
	cmd.Flags().Float64("min", 1, "smallest value of a kept cell")
	cmd.Flags().Bool("full", false, "join diagonal neighbors too")

	return cmd
}
