package xfill

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xrandom/pkg/random/xarray"
	"github.com/omeyang/xrandom/pkg/random/xrerr"
)

func TestWeights(t *testing.T) {
	w, _ := xarray.FromSlice([]float32{0.5, 0.25, 0.25}, 3)
	values, err := Weights(w)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.25, 0.25}, values)

	base, _ := xarray.FromSlice([]float64{1, 9, 2, 9, 3}, 5)
	strided, _ := base.Slice(0, 0, 5, 2)
	values, err = Weights(strided)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, values)
}

func TestWeights_Errors(t *testing.T) {
	ints, _ := xarray.FromSlice([]int32{1, 2}, 2)
	matrix, _ := xarray.NewDense[float64](2, 2)
	empty, _ := xarray.NewDense[float64](0)

	tests := []struct {
		name string
		w    xarray.Array
		is   error
		msg  string
	}{
		{"integer", ints, xrerr.ErrTypeMismatch, "weight must be float64 or float32 array"},
		{"nil", nil, xrerr.ErrTypeMismatch, "weight must be float64 or float32 array"},
		{"2-d", matrix, xrerr.ErrShape, "weight must be 1-dimensional array"},
		{"empty", empty, xrerr.ErrShape, "length of weight must be > 0"},
		{"stride past data", &brokenArray{
			values: []float64{1, 2},
			layout: xarray.Layout{Shape: []int{2}, Strides: []int{math.MaxInt}},
		}, xrerr.ErrShape, "layout exceeds the bounds of the backing data"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Weights(tt.w)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.is)
			assert.Equal(t, tt.msg, err.Error())
		})
	}
}

func TestFillDiscrete_Frequencies(t *testing.T) {
	w, _ := xarray.FromSlice([]float64{0.1, 0.6, 0.3}, 3)
	a, _ := xarray.NewDense[int32](100_000)
	require.NoError(t, FillDiscrete(a, w, newSource(12)))

	counts := make([]int, 3)
	for _, v := range a.Data() {
		require.True(t, v >= 0 && v < 3)
		counts[v]++
	}
	n := float64(a.Size())
	assert.InDelta(t, 0.1, float64(counts[0])/n, 1e-2)
	assert.InDelta(t, 0.6, float64(counts[1])/n, 1e-2)
	assert.InDelta(t, 0.3, float64(counts[2])/n, 1e-2)
}

func TestFillDiscrete_CheckOrder(t *testing.T) {
	ints, _ := xarray.FromSlice([]int32{1, 2}, 2)
	floatTargetArr, _ := xarray.FromSlice([]float64{5, 5}, 2)

	// 目标类别先于权重检查
	err := FillDiscrete(floatTargetArr, ints, newSource(1))
	assert.ErrorIs(t, err, xrerr.ErrTypeMismatch)
	assert.Equal(t, "invalid array dtype, it must be integer typed array", err.Error())

	target, _ := xarray.FromSlice([]uint8{5, 5}, 2)
	negative, _ := xarray.FromSlice([]float64{1, -1}, 2)
	err = FillDiscrete(target, negative, newSource(1))
	assert.ErrorIs(t, err, xrerr.ErrParameter)
	assert.Equal(t, "weight must be non-negative values", err.Error())

	zeros, _ := xarray.FromSlice([]float64{0, 0}, 2)
	err = FillDiscrete(target, zeros, newSource(1))
	assert.Equal(t, "sum of weight must be > 0", err.Error())
	assert.Equal(t, []uint8{5, 5}, target.Data())

	assert.ErrorIs(t, FillDiscrete(nil, zeros, newSource(1)), xrerr.ErrParameter)
}
