package xdist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// 以下测试用脚本化的 Source 固定原始输出，检查变换公式与拒绝分支。

const (
	uZero    = uint64(0)
	uQuarter = uint64(1) << 62
	uHalf    = uint64(1) << 63
	uThree4  = uint64(3) << 62
	uMax     = ^uint64(0)
)

func scripted(t *testing.T, values ...uint64) *MockSource {
	t.Helper()
	ctrl := gomock.NewController(t)
	src := NewMockSource(ctrl)
	calls := make([]any, 0, len(values))
	for _, v := range values {
		calls = append(calls, src.EXPECT().Uint64().Return(v))
	}
	gomock.InOrder(calls...)
	return src
}

func TestScripted_Uniform(t *testing.T) {
	src := scripted(t, uHalf, uZero)
	d := Uniform{Low: 1, High: 4}
	assert.Equal(t, 2.5, d.Sample(src))
	assert.Equal(t, 1.0, d.Sample(src))
}

func TestScripted_UniformFloat32StaysBelowHigh(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := NewMockSource(ctrl)
	src.EXPECT().Uint32().Return(^uint32(0))

	d := Uniform{Low: 1, High: 1.0000001}
	v := d.Sample32(src)
	assert.Less(t, v, float32(d.High))
	assert.GreaterOrEqual(t, v, float32(1))
}

func TestScripted_Exponential(t *testing.T) {
	src := scripted(t, uZero, uHalf)
	d := Exponential{Scale: 2}
	assert.InDelta(t, 0, d.Sample(src), 1e-15)
	assert.InDelta(t, 2*math.Ln2, d.Sample(src), 1e-12)
}

func TestScripted_Cauchy(t *testing.T) {
	src := scripted(t, uHalf, uThree4)
	d := Cauchy{Loc: 3, Scale: 2}
	assert.InDelta(t, 3, d.Sample(src), 1e-12)
	assert.InDelta(t, 5, d.Sample(src), 1e-12)
}

func TestScripted_NormalRejectsOutsideUnitDisk(t *testing.T) {
	// 第一对 (-1,-1) 落在单位圆外被拒绝，第二对为 (0.5, 0)。
	src := scripted(t, uZero, uZero, uThree4, uHalf)
	want := 0.5 * math.Sqrt(-2*math.Log(0.25)/0.25)
	got := Normal{Loc: 10, Scale: 2}.Sample(src)
	assert.InDelta(t, 10+2*want, got, 1e-12)
}

func TestScripted_Bernoulli(t *testing.T) {
	src := scripted(t, uZero, uMax, uHalf)
	d := Bernoulli{P: 0.5}
	assert.Equal(t, int64(1), d.Sample(src))
	assert.Equal(t, int64(0), d.Sample(src))
	assert.Equal(t, int64(0), d.Sample(src))
}

func TestScripted_Geometric(t *testing.T) {
	src := scripted(t, uMax, uZero)
	d := Geometric{P: 0.5}
	assert.Equal(t, int64(0), d.Sample(src))
	// U = 2^-53 时 ln U / ln(1-p) 约为 53，舍入可能差一
	assert.InDelta(t, 52, d.Sample(src), 1)
}

func TestScripted_CategoricalSkipsZeroWeights(t *testing.T) {
	table, err := Categorical{Weights: []float64{1, 0, 3}}.Prepare()
	assert.NoError(t, err)
	c := table.(Count)

	src := scripted(t, uZero, uQuarter, uHalf, uMax)
	assert.Equal(t, int64(0), c.Sample(src))
	assert.Equal(t, int64(2), c.Sample(src))
	assert.Equal(t, int64(2), c.Sample(src))
	assert.Equal(t, int64(2), c.Sample(src))
}

func TestScripted_CategoricalTrailingZero(t *testing.T) {
	table, err := Categorical{Weights: []float64{2, 0}}.Prepare()
	assert.NoError(t, err)
	src := scripted(t, uMax)
	assert.Equal(t, int64(0), table.(Count).Sample(src))
}

func TestScripted_PoissonSmallMean(t *testing.T) {
	// e^-1 ≈ 0.3679：0.75 > e^-1，0.75·0.25 < e^-1，结果为 1
	src := scripted(t, uThree4, uQuarter)
	assert.Equal(t, int64(1), Poisson{Mean: 1}.Sample(src))
}
