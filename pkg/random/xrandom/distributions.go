package xrandom

import (
	"github.com/omeyang/xrandom/pkg/random/xarray"
	"github.com/omeyang/xrandom/pkg/random/xdist"
)

// Uniform 向 x 写入 [low, high) 上的均匀分布样本并返回 x。
func (g *Generator) Uniform(x xarray.Array, low, high float64) (xarray.Array, error) {
	return g.Fill(x, xdist.Uniform{Low: low, High: high})
}

// NewUniform 分配 shape 形状的数组并写入 [low, high) 上的均匀分布样本。
func (g *Generator) NewUniform(shape []int, low, high float64, opts ...ArrayOption) (xarray.Array, error) {
	return g.Draw(shape, xdist.Uniform{Low: low, High: high}, opts...)
}

// Cauchy 柯西分布，原地填充。
func (g *Generator) Cauchy(x xarray.Array, loc, scale float64) (xarray.Array, error) {
	return g.Fill(x, xdist.Cauchy{Loc: loc, Scale: scale})
}

// NewCauchy 分配 shape 形状的数组并写入柯西分布样本。
func (g *Generator) NewCauchy(shape []int, loc, scale float64, opts ...ArrayOption) (xarray.Array, error) {
	return g.Draw(shape, xdist.Cauchy{Loc: loc, Scale: scale}, opts...)
}

// ChiSquare 卡方分布，原地填充。
func (g *Generator) ChiSquare(x xarray.Array, df float64) (xarray.Array, error) {
	return g.Fill(x, xdist.ChiSquare{DF: df})
}

// NewChiSquare 分配 shape 形状的数组并写入卡方分布样本。
func (g *Generator) NewChiSquare(shape []int, df float64, opts ...ArrayOption) (xarray.Array, error) {
	return g.Draw(shape, xdist.ChiSquare{DF: df}, opts...)
}

// F 向 x 写入 F 分布样本并返回 x。
func (g *Generator) F(x xarray.Array, dfnum, dfden float64) (xarray.Array, error) {
	return g.Fill(x, xdist.F{DFNum: dfnum, DFDen: dfden})
}

// NewF 分配 shape 形状的数组并写入 F 分布样本。
func (g *Generator) NewF(shape []int, dfnum, dfden float64, opts ...ArrayOption) (xarray.Array, error) {
	return g.Draw(shape, xdist.F{DFNum: dfnum, DFDen: dfden}, opts...)
}

// Normal 向 x 写入正态分布样本并返回 x。
func (g *Generator) Normal(x xarray.Array, loc, scale float64) (xarray.Array, error) {
	return g.Fill(x, xdist.Normal{Loc: loc, Scale: scale})
}

// NewNormal 分配 shape 形状的数组并写入正态分布样本。
func (g *Generator) NewNormal(shape []int, loc, scale float64, opts ...ArrayOption) (xarray.Array, error) {
	return g.Draw(shape, xdist.Normal{Loc: loc, Scale: scale}, opts...)
}

// LogNormal 对数正态分布，原地填充。
func (g *Generator) LogNormal(x xarray.Array, mean, sigma float64) (xarray.Array, error) {
	return g.Fill(x, xdist.LogNormal{Mean: mean, Sigma: sigma})
}

// NewLogNormal 分配 shape 形状的数组并写入对数正态分布样本。
func (g *Generator) NewLogNormal(shape []int, mean, sigma float64, opts ...ArrayOption) (xarray.Array, error) {
	return g.Draw(shape, xdist.LogNormal{Mean: mean, Sigma: sigma}, opts...)
}

// StandardT 向 x 写入 t 分布样本并返回 x。
func (g *Generator) StandardT(x xarray.Array, df float64) (xarray.Array, error) {
	return g.Fill(x, xdist.StudentT{DF: df})
}

// NewStandardT 分配 shape 形状的数组并写入 t 分布样本。
func (g *Generator) NewStandardT(shape []int, df float64, opts ...ArrayOption) (xarray.Array, error) {
	return g.Draw(shape, xdist.StudentT{DF: df}, opts...)
}

// Exponential 指数分布，原地填充。
func (g *Generator) Exponential(x xarray.Array, scale float64) (xarray.Array, error) {
	return g.Fill(x, xdist.Exponential{Scale: scale})
}

// NewExponential 分配 shape 形状的数组并写入指数分布样本。
func (g *Generator) NewExponential(shape []int, scale float64, opts ...ArrayOption) (xarray.Array, error) {
	return g.Draw(shape, xdist.Exponential{Scale: scale}, opts...)
}

// Gamma 伽马分布，原地填充。
func (g *Generator) Gamma(x xarray.Array, k, scale float64) (xarray.Array, error) {
	return g.Fill(x, xdist.Gamma{K: k, Scale: scale})
}

// NewGamma 分配 shape 形状的数组并写入伽马分布样本。
func (g *Generator) NewGamma(shape []int, k, scale float64, opts ...ArrayOption) (xarray.Array, error) {
	return g.Draw(shape, xdist.Gamma{K: k, Scale: scale}, opts...)
}

// Gumbel 向 x 写入 Gumbel 分布样本并返回 x。
func (g *Generator) Gumbel(x xarray.Array, loc, scale float64) (xarray.Array, error) {
	return g.Fill(x, xdist.Gumbel{Loc: loc, Scale: scale})
}

// NewGumbel 分配 shape 形状的数组并写入 Gumbel 分布样本。
func (g *Generator) NewGumbel(shape []int, loc, scale float64, opts ...ArrayOption) (xarray.Array, error) {
	return g.Draw(shape, xdist.Gumbel{Loc: loc, Scale: scale}, opts...)
}

// Weibull Weibull 分布，原地填充。
func (g *Generator) Weibull(x xarray.Array, k, scale float64) (xarray.Array, error) {
	return g.Fill(x, xdist.Weibull{K: k, Scale: scale})
}

// NewWeibull 分配 shape 形状的数组并写入 Weibull 分布样本。
func (g *Generator) NewWeibull(shape []int, k, scale float64, opts ...ArrayOption) (xarray.Array, error) {
	return g.Draw(shape, xdist.Weibull{K: k, Scale: scale}, opts...)
}

// Bernoulli 伯努利分布，原地填充。
func (g *Generator) Bernoulli(x xarray.Array, p float64) (xarray.Array, error) {
	return g.Fill(x, xdist.Bernoulli{P: p})
}

// NewBernoulli 分配 shape 形状的数组并写入伯努利分布样本。
func (g *Generator) NewBernoulli(shape []int, p float64, opts ...ArrayOption) (xarray.Array, error) {
	return g.Draw(shape, xdist.Bernoulli{P: p}, opts...)
}

// Binomial 向 x 写入二项分布样本并返回 x。
func (g *Generator) Binomial(x xarray.Array, n int64, p float64) (xarray.Array, error) {
	return g.Fill(x, xdist.Binomial{N: n, P: p})
}

// NewBinomial 分配 shape 形状的数组并写入二项分布样本。
func (g *Generator) NewBinomial(shape []int, n int64, p float64, opts ...ArrayOption) (xarray.Array, error) {
	return g.Draw(shape, xdist.Binomial{N: n, P: p}, opts...)
}

// NegativeBinomial 负二项分布（第 n 次成功前的失败次数），原地填充。
func (g *Generator) NegativeBinomial(x xarray.Array, n int64, p float64) (xarray.Array, error) {
	return g.Fill(x, xdist.NegativeBinomial{N: n, P: p})
}

// NewNegativeBinomial 分配 shape 形状的数组并写入负二项分布（第 n 次成功前的失败次数）样本。
func (g *Generator) NewNegativeBinomial(shape []int, n int64, p float64, opts ...ArrayOption) (xarray.Array, error) {
	return g.Draw(shape, xdist.NegativeBinomial{N: n, P: p}, opts...)
}

// Geometric 几何分布（第一次成功前的失败次数），原地填充。
func (g *Generator) Geometric(x xarray.Array, p float64) (xarray.Array, error) {
	return g.Fill(x, xdist.Geometric{P: p})
}

// NewGeometric 分配 shape 形状的数组并写入几何分布（第一次成功前的失败次数）样本。
func (g *Generator) NewGeometric(shape []int, p float64, opts ...ArrayOption) (xarray.Array, error) {
	return g.Draw(shape, xdist.Geometric{P: p}, opts...)
}

// Poisson 向 x 写入泊松分布样本并返回 x。
func (g *Generator) Poisson(x xarray.Array, mean float64) (xarray.Array, error) {
	return g.Fill(x, xdist.Poisson{Mean: mean})
}

// NewPoisson 分配 shape 形状的数组并写入泊松分布样本。
func (g *Generator) NewPoisson(shape []int, mean float64, opts ...ArrayOption) (xarray.Array, error) {
	return g.Draw(shape, xdist.Poisson{Mean: mean}, opts...)
}
