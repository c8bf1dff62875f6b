// SPDX-License-Identifier: MIT

package regions

// Connectivity selects which cells count as neighbors.
type Connectivity int

const (
	// Face joins cells one step apart along a single dimension.
	Face Connectivity = iota
	// Full also joins diagonal cells: every component may differ by one.
	Full
)

// DefaultConnectivity is used when no option selects one.
const DefaultConnectivity = Face

const panicConnectivity = "regions: WithConnectivity: unknown connectivity"

// Option configures a traversal.
type Option func(*Options)

// Options holds traversal settings.
type Options struct {
	conn Connectivity
}

// WithConnectivity selects the neighborhood. It panics on unknown values.
func WithConnectivity(c Connectivity) Option {
	if c != Face && c != Full {
		panic(panicConnectivity)
	}

	return func(o *Options) { o.conn = c }
}

func gatherOptions(opts ...Option) Options {
	o := Options{conn: DefaultConnectivity}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// neighborOffsets returns the offsets reaching every neighbor of a cell in
// a dims-dimensional space.
func neighborOffsets(dims int, c Connectivity) [][]int {
	if c == Face {
		offs := make([][]int, 0, 2*dims)
		for d := 0; d < dims; d++ {
			for _, step := range []int{-1, 1} {
				off := make([]int, dims)
				off[d] = step
				offs = append(offs, off)
			}
		}

		return offs
	}

	// Count through {-1,0,1}^dims in base 3, skipping the all-zero offset.
	total := 1
	for range dims {
		total *= 3
	}
	offs := make([][]int, 0, total-1)
	for n := 0; n < total; n++ {
		off := make([]int, dims)
		zero := true
		for d, q := 0, n; d < dims; d, q = d+1, q/3 {
			off[d] = q%3 - 1
			zero = zero && off[d] == 0
		}
		if !zero {
			offs = append(offs, off)
		}
	}

	return offs
}
