package xdist

import (
	"math"

	"github.com/omeyang/xrandom/pkg/random/xbitgen"
	"github.com/omeyang/xrandom/pkg/random/xrerr"
)

var (
	_ Count = Bernoulli{}
	_ Count = Binomial{}
	_ Count = NegativeBinomial{}
	_ Count = Geometric{}
	_ Count = Poisson{}
)

// Bernoulli 成功概率 P 的伯努利分布，样本为 0 或 1。
type Bernoulli struct {
	P float64
}

// Kind 实现 [Distribution]。
func (Bernoulli) Kind() Kind { return KindBernoulli }

// Validate P 必须落在 [0, 1]。
func (d Bernoulli) Validate() error {
	if !(d.P >= 0 && d.P <= 1) {
		return xrerr.Parameter("p must be >= 0 and <= 1")
	}
	return nil
}

// Sample U < P 时返回 1。
func (d Bernoulli) Sample(src xbitgen.Source) int64 {
	if xbitgen.Float64(src) < d.P {
		return 1
	}
	return 0
}

// Binomial N 次试验、成功概率 P 的二项分布。
type Binomial struct {
	N int64
	P float64
}

// Kind 返回 Binomial 对应的分布种类。
func (Binomial) Kind() Kind { return KindBinomial }

// Validate N 必须非负，P 必须落在 [0, 1]。
func (d Binomial) Validate() error {
	if d.N < 0 {
		return xrerr.Parameter("n must be a non-negative value")
	}
	if !(d.P >= 0 && d.P <= 1) {
		return xrerr.Parameter("p must be >= 0 and <= 1")
	}
	return nil
}

// Sample N·min(P, 1-P) 较小时用逆变换，否则用 BTPE。
func (d Binomial) Sample(src xbitgen.Source) int64 {
	return binomial(src, d.N, d.P)
}

// NegativeBinomial 第 N 次成功前的失败次数，每次成功概率 P。
type NegativeBinomial struct {
	N int64
	P float64
}

// Kind 实现 [Distribution]。
func (NegativeBinomial) Kind() Kind { return KindNegativeBinomial }

// Validate N 必须非负，P 必须落在 (0, 1]。
func (d NegativeBinomial) Validate() error {
	if d.N < 0 {
		return xrerr.Parameter("n must be a non-negative value")
	}
	if !(d.P > 0 && d.P <= 1) {
		return xrerr.Parameter("p must be > 0 and <= 1")
	}
	return nil
}

// Sample 伽马-泊松混合。
func (d NegativeBinomial) Sample(src xbitgen.Source) int64 {
	if d.N == 0 || d.P == 1 {
		return 0
	}
	y := stdGamma(src, float64(d.N)) * (1 - d.P) / d.P
	if !(y > 0) {
		return 0
	}
	return poisson(src, y)
}

// Geometric 第一次成功前的失败次数（取值 0,1,2,...），每次成功概率 P。
type Geometric struct {
	P float64
}

// Kind 实现 [Distribution]。
func (Geometric) Kind() Kind { return KindGeometric }

// Validate P 必须落在 (0, 1)。
func (d Geometric) Validate() error {
	if !(d.P > 0 && d.P < 1) {
		return xrerr.Parameter("p must be > 0 and < 1")
	}
	return nil
}

// Sample 逆变换抽样，结果饱和到 int64。
func (d Geometric) Sample(src xbitgen.Source) int64 {
	u := xbitgen.Float64Open(src)
	return clampInt64(math.Ceil(math.Log(u)/math.Log1p(-d.P)) - 1)
}

// Poisson 均值 Mean 的泊松分布。
type Poisson struct {
	Mean float64
}

// Kind 返回 Poisson 对应的分布种类。
func (Poisson) Kind() Kind { return KindPoisson }

// Validate Mean 必须为正，且远小于 int64 上限。
func (d Poisson) Validate() error {
	if !(d.Mean > 0) {
		return xrerr.Parameter("mean must be > 0")
	}
	if !(d.Mean < poissonMeanMax) {
		return xrerr.Parameter("mean value too large")
	}
	return nil
}

// Sample 均值小于 10 用乘法，否则用 PTRS。
func (d Poisson) Sample(src xbitgen.Source) int64 {
	return poisson(src, d.Mean)
}
