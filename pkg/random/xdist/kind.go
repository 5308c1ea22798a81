package xdist

import (
	"fmt"
	"strings"

	"github.com/omeyang/xrandom/pkg/random/xbitgen"
	"github.com/omeyang/xrandom/pkg/random/xrerr"
)

// Kind 分布种类。
type Kind uint8

// 支持的分布种类。
const (
	KindUniform Kind = iota + 1
	KindCauchy
	KindChiSquare
	KindF
	KindNormal
	KindLogNormal
	KindStudentT
	KindExponential
	KindGamma
	KindGumbel
	KindWeibull
	KindBernoulli
	KindBinomial
	KindNegativeBinomial
	KindGeometric
	KindPoisson
	KindDiscrete
)

var kindNames = map[Kind]string{
	KindUniform:          "uniform",
	KindCauchy:           "cauchy",
	KindChiSquare:        "chisquare",
	KindF:                "f",
	KindNormal:           "normal",
	KindLogNormal:        "lognormal",
	KindStudentT:         "standard_t",
	KindExponential:      "exponential",
	KindGamma:            "gamma",
	KindGumbel:           "gumbel",
	KindWeibull:          "weibull",
	KindBernoulli:        "bernoulli",
	KindBinomial:         "binomial",
	KindNegativeBinomial: "negative_binomial",
	KindGeometric:        "geometric",
	KindPoisson:          "poisson",
	KindDiscrete:         "discrete",
}

// String 返回分布名称。
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Class 返回目标数组需要的元素类别。
func (k Kind) Class() Class {
	if k >= KindBernoulli {
		return ClassCount
	}
	return ClassContinuous
}

// Kinds 返回全部分布种类。
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindNames))
	for k := KindUniform; k <= KindDiscrete; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseKind 解析分布名称，接受 chi_square、student_t 等常见写法。
func ParseKind(name string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "-", "_")
	switch key {
	case "chi_square", "chi2":
		return KindChiSquare, nil
	case "student_t", "t":
		return KindStudentT, nil
	case "categorical":
		return KindDiscrete, nil
	}
	for k, n := range kindNames {
		if n == key {
			return k, nil
		}
	}
	return 0, xrerr.Parameter("unknown distribution: %q", name)
}

// Class 目标数组的元素类别。
type Class uint8

const (
	// ClassContinuous 需要浮点数组
	ClassContinuous Class = iota
	// ClassCount 需要整数数组
	ClassCount
)

// String 返回类别名称。
func (c Class) String() string {
	if c == ClassCount {
		return "count"
	}
	return "continuous"
}

// Distribution 所有分布的公共方法。
type Distribution interface {
	Kind() Kind
	Validate() error
}

// Continuous 返回实数样本的分布。
type Continuous interface {
	Distribution
	Sample(src xbitgen.Source) float64
}

// Count 返回非负整数样本的分布。
type Count interface {
	Distribution
	Sample(src xbitgen.Source) int64
}

// Float32Sampler 可直接产生 float32 样本的连续分布。
//
// 需要在窄化后仍保持区间端点语义的分布（如 uniform 的半开区间）实现此接口。
type Float32Sampler interface {
	Sample32(src xbitgen.Source) float32
}

// Preparer 在批量抽样前做一次性预处理的分布。
//
// Prepare 先校验参数，再返回可重复抽样的分布；xfill 对每次调用只 Prepare 一次。
type Preparer interface {
	Prepare() (Distribution, error)
}
