// SPDX-License-Identifier: MIT
package hyper_test

import (
	"testing"

	"github.com/katalvlaran/hyperarray/hyper"
)

var (
	sinkFloat float64
	sinkPtr   *float64
)

func benchArray(b *testing.B, opts ...hyper.Option) *hyper.Array[float64] {
	b.Helper()
	a, err := hyper.New[float64]([]int{32, 32, 32}, opts...)
	if err != nil {
		b.Fatal(err)
	}
	a.Apply(func(flat int, _ float64) float64 { return float64(flat) })

	return a
}

func BenchmarkArrayGet(b *testing.B) {
	a := benchArray(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkFloat = a.Get(i%32, 7, 3)
	}
}

func BenchmarkArrayAt(b *testing.B) {
	a := benchArray(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkFloat, _ = a.At(i%32, 7, 3)
	}
}

func BenchmarkViewValues(b *testing.B) {
	for _, tc := range []struct {
		name string
		opt  hyper.Option
	}{
		{"row", hyper.WithRowMajor()},
		{"column", hyper.WithColumnMajor()},
	} {
		b.Run(tc.name, func(b *testing.B) {
			a := benchArray(b, tc.opt)
			v, err := a.Sub(hyper.Index{4, 4, 4}, hyper.Index{28, 28, 28})
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for x := range v.Values() {
					sinkFloat += x
				}
			}
		})
	}
}

func BenchmarkIteratorAdvance(b *testing.B) {
	v := benchArray(b).Whole()
	it := v.Begin()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it.Advance(97)
		if it.Equal(v.End()) {
			it = v.Begin()
		}
		sinkPtr = it.Ptr()
	}
}
