package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// addArrayFlags registers the flags describing the array to build.
func addArrayFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "YAML scenario file (lengths, order, values, fill, begin, end)")
	cmd.Flags().IntSliceP("lengths", "l", []int{2, 3}, "per-dimension lengths")
	cmd.Flags().StringSliceP("values", "V", nil, "initial values in storage order (default 1..size)")
	cmd.Flags().Float64("fill", 0, "value for elements past --values")
}

// addRegionFlags registers the flags selecting a sub-view.
func addRegionFlags(cmd *cobra.Command) {
	cmd.Flags().IntSliceP("begin", "b", nil, "first corner of the region (default origin)")
	cmd.Flags().IntSliceP("end", "e", nil, "one-past-last corner of the region (default lengths)")
}

// scenario assembles a Scenario from --file, then lets explicitly set flags
// override what the file says.
func scenario(cmd *cobra.Command) (*Scenario, error) {
	s := &Scenario{}
	flags := cmd.Flags()
	if file, _ := flags.GetString("file"); file != "" {
		var err error
		if s, err = loadScenario(file); err != nil {
			return nil, err
		}
	}
	if s.Lengths == nil || flags.Changed("lengths") {
		s.Lengths, _ = flags.GetIntSlice("lengths")
	}
	if flags.Changed("values") {
		raw, _ := flags.GetStringSlice("values")
		values, err := parseValues(raw)
		if err != nil {
			return nil, errors.Wrap(err, "--values")
		}
		s.Values = values
	}
	if flags.Changed("fill") {
		s.Fill, _ = flags.GetFloat64("fill")
	}
	for _, name := range []string{"begin", "end"} {
		if flags.Lookup(name) == nil || !flags.Changed(name) {
			continue
		}
		v, _ := flags.GetIntSlice(name)
		if name == "begin" {
			s.Begin = v
		} else {
			s.End = v
		}
	}

	return s, nil
}
