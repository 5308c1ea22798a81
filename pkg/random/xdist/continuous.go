package xdist

import (
	"math"

	"github.com/omeyang/xrandom/pkg/random/xbitgen"
	"github.com/omeyang/xrandom/pkg/random/xrerr"
)

var (
	_ Continuous     = Uniform{}
	_ Float32Sampler = Uniform{}
	_ Continuous     = Cauchy{}
	_ Continuous     = ChiSquare{}
	_ Continuous     = F{}
	_ Continuous     = Normal{}
	_ Continuous     = LogNormal{}
	_ Continuous     = StudentT{}
	_ Continuous     = Exponential{}
	_ Continuous     = Gamma{}
	_ Continuous     = Gumbel{}
	_ Continuous     = Weibull{}
)

// 参数校验使用取反比较，使 NaN 总是校验失败。

// Uniform [Low, High) 上的均匀分布。
type Uniform struct {
	Low, High float64
}

// Kind 返回 Uniform 对应的分布种类。
func (Uniform) Kind() Kind { return KindUniform }

// Validate high - low 必须为有限正数。
func (d Uniform) Validate() error {
	w := d.High - d.Low
	if !(w > 0) {
		return xrerr.Parameter("high - low must be > 0")
	}
	if math.IsInf(w, 1) {
		return xrerr.Parameter("high - low must be finite")
	}
	return nil
}

// Sample 返回 [Low, High) 上的 float64 样本。
func (d Uniform) Sample(src xbitgen.Source) float64 {
	return d.Low + (d.High-d.Low)*xbitgen.Float64(src)
}

// Sample32 使用 24 位映射，结果在 float32 下仍落在 [Low, High)。
func (d Uniform) Sample32(src xbitgen.Source) float32 {
	lo, hi := float32(d.Low), float32(d.High)
	v := lo + (hi-lo)*xbitgen.Float32(src)
	if v >= hi && hi > lo {
		v = math.Nextafter32(hi, lo)
	}
	return v
}

// Cauchy 位置 Loc、尺度 Scale 的柯西分布。
type Cauchy struct {
	Loc, Scale float64
}

// Kind 实现 [Distribution]。
func (Cauchy) Kind() Kind { return KindCauchy }

// Validate Scale 必须非负。
func (d Cauchy) Validate() error {
	if !(d.Scale >= 0) {
		return xrerr.Parameter("scale must be a non-negative value")
	}
	return nil
}

// Sample 逆变换抽样：Loc + Scale·tan(π(U-0.5))。
func (d Cauchy) Sample(src xbitgen.Source) float64 {
	return d.Loc + d.Scale*math.Tan(math.Pi*(xbitgen.Float64(src)-0.5))
}

// ChiSquare 自由度 DF 的卡方分布。
type ChiSquare struct {
	DF float64
}

// Kind 实现 [Distribution]。
func (ChiSquare) Kind() Kind { return KindChiSquare }

// Validate DF 必须为正。
func (d ChiSquare) Validate() error {
	if !(d.DF > 0) {
		return xrerr.Parameter("df must be > 0")
	}
	return nil
}

// Sample 取形状 DF/2 的标准伽马样本的两倍。
func (d ChiSquare) Sample(src xbitgen.Source) float64 {
	return chiSquare(src, d.DF)
}

// F 分子自由度 DFNum、分母自由度 DFDen 的 F 分布。
type F struct {
	DFNum, DFDen float64
}

// Kind 实现 [Distribution]。
func (F) Kind() Kind { return KindF }

// Validate 两个自由度都必须为正。
func (d F) Validate() error {
	if !(d.DFNum > 0) {
		return xrerr.Parameter("dfnum must be > 0")
	}
	if !(d.DFDen > 0) {
		return xrerr.Parameter("dfden must be > 0")
	}
	return nil
}

// Sample 两个卡方样本各自除以自由度后相除。
func (d F) Sample(src xbitgen.Source) float64 {
	num := chiSquare(src, d.DFNum) / d.DFNum
	den := chiSquare(src, d.DFDen) / d.DFDen
	return num / den
}

// Normal 均值 Loc、标准差 Scale 的正态分布。
type Normal struct {
	Loc, Scale float64
}

// Kind 返回 Normal 对应的分布种类。
func (Normal) Kind() Kind { return KindNormal }

// Validate Scale 必须非负。
func (d Normal) Validate() error {
	if !(d.Scale >= 0) {
		return xrerr.Parameter("scale must be a non-negative value")
	}
	return nil
}

// Sample 返回 Loc + Scale·Z，Z 为标准正态样本。
func (d Normal) Sample(src xbitgen.Source) float64 {
	return d.Loc + d.Scale*stdNormal(src)
}

// LogNormal 对数服从 Normal{Mean, Sigma} 的分布。
type LogNormal struct {
	Mean, Sigma float64
}

// Kind 实现 [Distribution]。
func (LogNormal) Kind() Kind { return KindLogNormal }

// Validate Sigma 必须非负。
func (d LogNormal) Validate() error {
	if !(d.Sigma >= 0) {
		return xrerr.Parameter("sigma must be a non-negative value")
	}
	return nil
}

// Sample 返回 exp(Normal{Mean, Sigma})。
func (d LogNormal) Sample(src xbitgen.Source) float64 {
	return math.Exp(d.Mean + d.Sigma*stdNormal(src))
}

// StudentT 自由度 DF 的 t 分布。
type StudentT struct {
	DF float64
}

// Kind 实现 [Distribution]。
func (StudentT) Kind() Kind { return KindStudentT }

// Validate DF 必须为正。
func (d StudentT) Validate() error {
	if !(d.DF > 0) {
		return xrerr.Parameter("df must be > 0")
	}
	return nil
}

// Sample 标准正态样本除以 sqrt(卡方/DF)。
func (d StudentT) Sample(src xbitgen.Source) float64 {
	z := stdNormal(src)
	return z / math.Sqrt(chiSquare(src, d.DF)/d.DF)
}

// Exponential 尺度 Scale（均值）的指数分布。
type Exponential struct {
	Scale float64
}

// Kind 实现 [Distribution]。
func (Exponential) Kind() Kind { return KindExponential }

// Validate Scale 必须为正。
func (d Exponential) Validate() error {
	if !(d.Scale > 0) {
		return xrerr.Parameter("scale must be > 0")
	}
	return nil
}

// Sample 返回 Scale 乘以标准指数样本。
func (d Exponential) Sample(src xbitgen.Source) float64 {
	return -d.Scale * math.Log(1-xbitgen.Float64(src))
}

// Gamma 形状 K、尺度 Scale 的伽马分布。
type Gamma struct {
	K, Scale float64
}

// Kind 实现 [Distribution]。
func (Gamma) Kind() Kind { return KindGamma }

// Validate K 与 Scale 都必须为正。
func (d Gamma) Validate() error {
	if !(d.K > 0) {
		return xrerr.Parameter("k must be > 0")
	}
	if !(d.Scale > 0) {
		return xrerr.Parameter("scale must be > 0")
	}
	return nil
}

// Sample 返回 Scale 乘以形状 K 的标准伽马样本。
func (d Gamma) Sample(src xbitgen.Source) float64 {
	return d.Scale * stdGamma(src, d.K)
}

// Gumbel 位置 Loc、尺度 Scale 的 Gumbel 分布。
type Gumbel struct {
	Loc, Scale float64
}

// Kind 实现 [Distribution]。
func (Gumbel) Kind() Kind { return KindGumbel }

// Validate Scale 必须为正。
func (d Gumbel) Validate() error {
	if !(d.Scale > 0) {
		return xrerr.Parameter("scale must be > 0")
	}
	return nil
}

// Sample 逆变换抽样。
func (d Gumbel) Sample(src xbitgen.Source) float64 {
	return d.Loc - d.Scale*math.Log(-math.Log(xbitgen.Float64Open(src)))
}

// Weibull 形状 K、尺度 Scale 的 Weibull 分布。
type Weibull struct {
	K, Scale float64
}

// Kind 实现 [Distribution]。
func (Weibull) Kind() Kind { return KindWeibull }

// Validate K 与 Scale 都必须为正。
func (d Weibull) Validate() error {
	if !(d.K > 0) {
		return xrerr.Parameter("k must be > 0")
	}
	if !(d.Scale > 0) {
		return xrerr.Parameter("scale must be > 0")
	}
	return nil
}

// Sample 逆变换抽样。
func (d Weibull) Sample(src xbitgen.Source) float64 {
	return d.Scale * math.Pow(-math.Log(1-xbitgen.Float64(src)), 1/d.K)
}
