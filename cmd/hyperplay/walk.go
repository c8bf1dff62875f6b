package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWalkCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Iterate a view forward to its end and back to its origin",
		Long: `
Selects the region [--begin, --end) of an array and walks it with an iterator,
printing the iterator and the element at every step: first forward until the
last element, then backward from the sentinel down to the origin.

hyperplay walk -l 3,4 -b 1,1 -e 3,4`,
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

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "view:", v)
			fmt.Fprintln(out, "forward:")
			for it := v.Begin(); it.NotEqual(v.End()); it.Next() {
				fmt.Fprintln(out, it, it.Value())
			}
			fmt.Fprintln(out, "backward:")
			it := v.End()
			for range v.Size() {
				it.Prev()
				fmt.Fprintln(out, it, it.Value())
			}

			return nil
		},
	}
	addArrayFlags(cmd)
	addRegionFlags(cmd)

	return cmd
}
