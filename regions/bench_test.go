// SPDX-License-Identifier: MIT
package regions_test

import (
	"testing"

	"github.com/katalvlaran/hyperarray/hyper"
	"github.com/katalvlaran/hyperarray/regions"
)

var sinkRegions int

func BenchmarkLabel(b *testing.B) {
	a, err := hyper.New2D[int](128, 128)
	if err != nil {
		b.Fatal(err)
	}
	// Checkerboard of 4×4 tiles: many small regions.
	a.Apply(func(flat, _ int) int {
		i, j := flat/128, flat%128
		return (i/4 + j/4) % 2
	})
	for _, c := range []regions.Connectivity{regions.Face, regions.Full} {
		b.Run(map[regions.Connectivity]string{regions.Face: "face", regions.Full: "full"}[c], func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, n, _ := regions.Label(a.Whole(), func(v int) bool { return v == 1 }, regions.WithConnectivity(c))
				sinkRegions = n
			}
		})
	}
}
