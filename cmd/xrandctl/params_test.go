package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xrandom/pkg/random/xarray"
	"github.com/omeyang/xrandom/pkg/random/xdist"
)

func TestBuildDistribution(t *testing.T) {
	tests := []struct {
		name   string
		params []string
		want   xdist.Distribution
	}{
		{"uniform", nil, xdist.Uniform{Low: 0, High: 1}},
		{"Normal", []string{"loc=10", " scale = 2 "}, xdist.Normal{Loc: 10, Scale: 2}},
		{"chi2", []string{"df=3"}, xdist.ChiSquare{DF: 3}},
		{"student-t", []string{"df=5"}, xdist.StudentT{DF: 5}},
		{"gamma", []string{"k=2"}, xdist.Gamma{K: 2, Scale: 1}},
		{"weibull", []string{"k=1.5", "scale=3"}, xdist.Weibull{K: 1.5, Scale: 3}},
		{"binomial", []string{"n=10", "p=0.25"}, xdist.Binomial{N: 10, P: 0.25}},
		{"negative_binomial", []string{"n=3", "p=0.5"}, xdist.NegativeBinomial{N: 3, P: 0.5}},
		{"poisson", nil, xdist.Poisson{Mean: 1}},
		{"lognormal", []string{"sigma=0.5"}, xdist.LogNormal{Mean: 0, Sigma: 0.5}},
		{"f", []string{"dfnum=2", "dfden=9"}, xdist.F{DFNum: 2, DFDen: 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildDistribution(tt.name, tt.params, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	got, err := buildDistribution("categorical", nil, []float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, xdist.Categorical{Weights: []float64{1, 2}}, got)

	_, err = buildDistribution("discrete", []string{"p=1"}, []float64{1})
	assert.Equal(t, 2, exitCode(err))
	_, err = buildDistribution("normal", []string{"loc"}, nil)
	assert.EqualError(t, err, `invalid param "loc", want name=value`)
	_, err = buildDistribution("normal", []string{"loc=abc"}, nil)
	assert.EqualError(t, err, `invalid value for param "loc": "abc"`)
}

func TestEveryKindHasParams(t *testing.T) {
	for _, k := range xdist.Kinds() {
		_, ok := distParams[k]
		assert.True(t, ok, k.String())
	}
}

func TestParseShape(t *testing.T) {
	shape, err := parseShape(" 2, 3 ,4")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, shape)

	shape, err = parseShape("")
	require.NoError(t, err)
	assert.Empty(t, shape)

	_, err = parseShape("2,,3")
	assert.Error(t, err)
}

func TestParseFloats(t *testing.T) {
	w, err := parseFloats("0.1, 0.6,0.3")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.6, 0.3}, w)

	w, err = parseFloats("")
	require.NoError(t, err)
	assert.Nil(t, w)

	_, err = parseFloats("1,x")
	assert.EqualError(t, err, `invalid number "x"`)
}

func TestParseOrder(t *testing.T) {
	for in, want := range map[string]xarray.Order{"": xarray.RowMajor, "C": xarray.RowMajor, "column": xarray.ColumnMajor, "F": xarray.ColumnMajor} {
		got, err := parseOrder(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
