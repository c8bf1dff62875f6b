package main

import (
	"fmt"

	"github.com/katalvlaran/hyperarray/matconv"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

func newShowCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print an array's layout and contents",
		Long: `
Builds an array and prints its dimensions, storage order, lengths,
coefficients, size and data. Two-dimensional arrays are also printed as a grid.

hyperplay show -l 2,3 -o column-major -V 1,2,3`,
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
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, arr)
			if arr.Dims() == 2 && arr.Size() > 0 {
				m, err := matconv.ToDense(arr.Whole())
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%v\n", mat.Formatted(m, mat.Squeeze()))
			}

			return nil
		},
	}
	addArrayFlags(cmd)

	return cmd
}
