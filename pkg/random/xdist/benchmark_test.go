package xdist

import (
	"testing"

	"github.com/omeyang/xrandom/pkg/random/xbitgen"
)

func BenchmarkContinuous(b *testing.B) {
	dists := []Continuous{
		Normal{Loc: 0, Scale: 1},
		Gamma{K: 2, Scale: 1},
		StudentT{DF: 5},
		Exponential{Scale: 1},
	}
	for _, d := range dists {
		b.Run(d.Kind().String(), func(b *testing.B) {
			src := xbitgen.NewPCG64Source(xbitgen.SeedFromUint64(1))
			var sink float64
			for b.Loop() {
				sink += d.Sample(src)
			}
			_ = sink
		})
	}
}

func BenchmarkCount(b *testing.B) {
	table, _ := Categorical{Weights: []float64{1, 2, 3, 4, 5, 6, 7, 8}}.Prepare()
	dists := map[string]Count{
		"binomial_inversion": Binomial{N: 20, P: 0.3},
		"binomial_btpe":      Binomial{N: 10000, P: 0.3},
		"poisson_mult":       Poisson{Mean: 4},
		"poisson_ptrs":       Poisson{Mean: 400},
		"discrete":           table.(Count),
	}
	for name, d := range dists {
		b.Run(name, func(b *testing.B) {
			src := xbitgen.NewPCG64Source(xbitgen.SeedFromUint64(1))
			var sink int64
			for b.Loop() {
				sink += d.Sample(src)
			}
			_ = sink
		})
	}
}
