package xbitgen

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fixedSource 总是返回同一个值。
type fixedSource uint64

func (f fixedSource) Uint32() uint32 { return uint32(f) }
func (f fixedSource) Uint64() uint64 { return uint64(f) }

func TestFloat64_Bounds(t *testing.T) {
	assert.Equal(t, 0.0, Float64(fixedSource(0)))
	assert.Less(t, Float64(fixedSource(math.MaxUint64)), 1.0)
	assert.Equal(t, 0.5, Float64(fixedSource(1<<63)))
}

func TestFloat64Closed_Bounds(t *testing.T) {
	assert.Equal(t, 0.0, Float64Closed(fixedSource(0)))
	assert.Equal(t, 1.0, Float64Closed(fixedSource(math.MaxUint64)))
}

func TestFloat64Open_Bounds(t *testing.T) {
	lo := Float64Open(fixedSource(0))
	hi := Float64Open(fixedSource(math.MaxUint64))
	assert.Greater(t, lo, 0.0)
	assert.Less(t, hi, 1.0)
	assert.False(t, math.IsInf(math.Log(lo), 0))
	assert.False(t, math.IsInf(math.Log(1-hi), 0))
}

func TestFloat32_Bounds(t *testing.T) {
	assert.Equal(t, float32(0), Float32(fixedSource(0)))
	assert.Less(t, Float32(fixedSource(math.MaxUint32)), float32(1))
	assert.Equal(t, float32(1), Float32Closed(fixedSource(math.MaxUint32)))
	assert.Equal(t, float32(0), Float32Closed(fixedSource(0)))
}

func TestUniformRange(t *testing.T) {
	for _, alg := range Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			bg, _ := New(alg, SeedFromUint64(2024))
			var sum float64
			const n = 100000
			for range n {
				u := Float64(bg)
				assert.GreaterOrEqual(t, u, 0.0)
				assert.Less(t, u, 1.0)
				f := Float32(bg)
				assert.GreaterOrEqual(t, f, float32(0))
				assert.Less(t, f, float32(1))
				sum += u
			}
			assert.InDelta(t, 0.5, sum/n, 1e-2)
		})
	}
}

func TestBounded(t *testing.T) {
	assert.Equal(t, uint64(0), Bounded(fixedSource(12345), 0))
	assert.Equal(t, uint32(0), Bounded32(fixedSource(12345), 0))
	assert.Equal(t, uint64(0), Bounded(fixedSource(math.MaxUint64), 1))

	bg := NewPCG64Source(SeedFromUint64(9))
	counts := make([]int, 6)
	const n = 60000
	for range n {
		v := Bounded(bg, 6)
		assert.Less(t, v, uint64(6))
		counts[v]++
		w := Bounded32(bg, 6)
		assert.Less(t, w, uint32(6))
	}
	for i, c := range counts {
		assert.InDelta(t, n/6, c, 600, "bucket %d", i)
	}
}
