package main

import (
	"fmt"

	"github.com/katalvlaran/hyperarray/hyper"
	"github.com/katalvlaran/hyperarray/layout"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newReshapeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reshape",
		Short: "Copy an array into a new shape and storage order",
		Long: `
Copies every element of the source array, in its iteration order, into a new
array of lengths --to laid out in --to-order. Only the element counts must
agree.

hyperplay reshape -l 2,3 --to 3,2 --to-order column-major`,
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
			src, err := s.Build(order)
			if err != nil {
				return err
			}

			to, _ := cmd.Flags().GetIntSlice("to")
			toOrder := src.Order()
			if name, _ := cmd.Flags().GetString("to-order"); name != "" {
				if toOrder, err = layout.ParseOrder(name); err != nil {
					return errors.Wrap(err, "--to-order")
				}
			}
			dst, err := hyper.New[float64](to, hyper.WithOrder(toOrder))
			if err != nil {
				return errors.Wrap(err, "--to")
			}
			if err = dst.Whole().CopyFrom(src.Whole()); err != nil {
				return errors.Wrap(err, "reshaping")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "from:", src)
			fmt.Fprintln(out, "to:  ", dst)

			return nil
		},
	}
	addArrayFlags(cmd)
	cmd.Flags().IntSlice("to", nil, "target lengths")
	cmd.Flags().String("to-order", "", "target storage order (default: the source order)")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
