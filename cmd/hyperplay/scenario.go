package main

import (
	"os"

	"github.com/ghodss/yaml"
	"github.com/katalvlaran/hyperarray/hyper"
	"github.com/katalvlaran/hyperarray/layout"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// Scenario describes an array and the region to explore, as read from a
// YAML file:
//
//	lengths: [3, 4]
//	order: column-major
//	values: [1, 2, 3, 4, 5]
//	fill: -1
//	begin: [1, 1]
//	end: [3, 4]
type Scenario struct {
	Lengths []int     `json:"lengths"`
	Order   string    `json:"order,omitempty"`
	Values  []float64 `json:"values,omitempty"`
	Fill    float64   `json:"fill,omitempty"`
	Begin   []int     `json:"begin,omitempty"`
	End     []int     `json:"end,omitempty"`
}

// Parse decodes a YAML document into s.
func (s *Scenario) Parse(data []byte) error {
	return yaml.Unmarshal(data, s)
}

// loadScenario reads and decodes the file at path.
func loadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading scenario %s", path)
	}
	var s Scenario
	if err = s.Parse(data); err != nil {
		return nil, errors.Wrapf(err, "parsing scenario %s", path)
	}

	return &s, nil
}

// Build creates the scenario's array. An empty Order falls back to def.
func (s *Scenario) Build(def hyper.Order) (*hyper.Array[float64], error) {
	o := def
	if s.Order != "" {
		var err error
		if o, err = layout.ParseOrder(s.Order); err != nil {
			return nil, errors.Wrap(err, "scenario order")
		}
	}
	values := s.Values
	if values == nil {
		values = sequence(layout.Size(s.Lengths))
	}
	a, err := hyper.FromValues(s.Lengths, values, s.Fill, hyper.WithOrder(o))
	if err != nil {
		return nil, errors.Wrap(err, "building array")
	}

	return a, nil
}

// View returns the scenario's region of a, or the whole array when no
// region is set.
func (s *Scenario) View(a *hyper.Array[float64]) (hyper.View[float64], error) {
	if s.Begin == nil && s.End == nil {
		return a.Whole(), nil
	}
	begin, end := hyper.Index(s.Begin), hyper.Index(s.End)
	if begin == nil {
		begin = hyper.Zero(a.Dims())
	}
	if end == nil {
		end = a.Lengths()
	}
	v, err := a.Sub(begin, end)
	if err != nil {
		return hyper.View[float64]{}, errors.Wrap(err, "selecting region")
	}

	return v, nil
}

// sequence returns 1..n, the default contents of a playground array.
func sequence(n int) []float64 {
	out := make([]float64, max(n, 0))
	for i := range out {
		out[i] = float64(i + 1)
	}

	return out
}

// parseValues converts textual flag values into numbers.
func parseValues(raw []string) ([]float64, error) {
	out := make([]float64, len(raw))
	for i, r := range raw {
		f, err := cast.ToFloat64E(r)
		if err != nil {
			return nil, errors.Wrapf(err, "value #%d", i)
		}
		out[i] = f
	}

	return out, nil
}
