package main

import (
	"math"
	"strconv"
	"strings"

	"github.com/omeyang/xrandom/pkg/random/xarray"
	"github.com/omeyang/xrandom/pkg/random/xdist"
)

// paramSpec 分布参数；required 为 false 时缺省取 def。
type paramSpec struct {
	name     string
	def      float64
	required bool
}

func required(name string) paramSpec { return paramSpec{name: name, required: true} }

func optional(name string, def float64) paramSpec { return paramSpec{name: name, def: def} }

var distParams = map[xdist.Kind][]paramSpec{
	xdist.KindUniform:          {optional("low", 0), optional("high", 1)},
	xdist.KindCauchy:           {optional("loc", 0), optional("scale", 1)},
	xdist.KindChiSquare:        {required("df")},
	xdist.KindF:                {required("dfnum"), required("dfden")},
	xdist.KindNormal:           {optional("loc", 0), optional("scale", 1)},
	xdist.KindLogNormal:        {optional("mean", 0), optional("sigma", 1)},
	xdist.KindStudentT:         {required("df")},
	xdist.KindExponential:      {optional("scale", 1)},
	xdist.KindGamma:            {required("k"), optional("scale", 1)},
	xdist.KindGumbel:           {optional("loc", 0), optional("scale", 1)},
	xdist.KindWeibull:          {required("k"), optional("scale", 1)},
	xdist.KindBernoulli:        {required("p")},
	xdist.KindBinomial:         {required("n"), required("p")},
	xdist.KindNegativeBinomial: {required("n"), required("p")},
	xdist.KindGeometric:        {required("p")},
	xdist.KindPoisson:          {optional("mean", 1)},
	xdist.KindDiscrete:         {},
}

// paramUsage 返回分布参数的说明文本，如 "k, scale=1"。
func paramUsage(k xdist.Kind) string {
	specs := distParams[k]
	if k == xdist.KindDiscrete {
		return "--weight w0,w1,..."
	}
	parts := make([]string, 0, len(specs))
	for _, s := range specs {
		if s.required {
			parts = append(parts, s.name)
			continue
		}
		parts = append(parts, s.name+"="+strconv.FormatFloat(s.def, 'g', -1, 64))
	}
	return strings.Join(parts, ", ")
}

// parseParams 解析 name=value 形式的参数并补齐缺省值。
func parseParams(k xdist.Kind, raw []string) (map[string]float64, error) {
	specs := distParams[k]
	known := make(map[string]bool, len(specs))
	for _, s := range specs {
		known[s.name] = true
	}

	values := make(map[string]float64, len(specs))
	for _, item := range raw {
		name, text, ok := strings.Cut(item, "=")
		name = strings.ToLower(strings.TrimSpace(name))
		if !ok || name == "" {
			return nil, usagef("invalid param %q, want name=value", item)
		}
		if !known[name] {
			return nil, usagef("unknown param %q for %s (accepted: %s)", name, k, paramUsage(k))
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return nil, usagef("invalid value for param %q: %q", name, text)
		}
		values[name] = v
	}
	for _, s := range specs {
		if _, ok := values[s.name]; ok {
			continue
		}
		if s.required {
			return nil, usagef("missing param %q for %s", s.name, k)
		}
		values[s.name] = s.def
	}
	return values, nil
}

func parseCount(name string, v float64) (int64, error) {
	if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
		return 0, usagef("param %q must be an integer, got %v", name, v)
	}
	return int64(v), nil
}

// buildDistribution 按名称与参数构造分布；discrete 由 weight 构造。
func buildDistribution(name string, raw []string, weight []float64) (xdist.Distribution, error) {
	k, err := xdist.ParseKind(name)
	if err != nil {
		return nil, err
	}
	if k == xdist.KindDiscrete {
		if len(raw) > 0 {
			return nil, usagef("discrete takes --weight instead of --param")
		}
		return xdist.Categorical{Weights: weight}, nil
	}
	if len(weight) > 0 {
		return nil, usagef("--weight only applies to discrete")
	}

	p, err := parseParams(k, raw)
	if err != nil {
		return nil, err
	}
	switch k {
	case xdist.KindUniform:
		return xdist.Uniform{Low: p["low"], High: p["high"]}, nil
	case xdist.KindCauchy:
		return xdist.Cauchy{Loc: p["loc"], Scale: p["scale"]}, nil
	case xdist.KindChiSquare:
		return xdist.ChiSquare{DF: p["df"]}, nil
	case xdist.KindF:
		return xdist.F{DFNum: p["dfnum"], DFDen: p["dfden"]}, nil
	case xdist.KindNormal:
		return xdist.Normal{Loc: p["loc"], Scale: p["scale"]}, nil
	case xdist.KindLogNormal:
		return xdist.LogNormal{Mean: p["mean"], Sigma: p["sigma"]}, nil
	case xdist.KindStudentT:
		return xdist.StudentT{DF: p["df"]}, nil
	case xdist.KindExponential:
		return xdist.Exponential{Scale: p["scale"]}, nil
	case xdist.KindGamma:
		return xdist.Gamma{K: p["k"], Scale: p["scale"]}, nil
	case xdist.KindGumbel:
		return xdist.Gumbel{Loc: p["loc"], Scale: p["scale"]}, nil
	case xdist.KindWeibull:
		return xdist.Weibull{K: p["k"], Scale: p["scale"]}, nil
	case xdist.KindBernoulli:
		return xdist.Bernoulli{P: p["p"]}, nil
	case xdist.KindBinomial:
		n, err := parseCount("n", p["n"])
		if err != nil {
			return nil, err
		}
		return xdist.Binomial{N: n, P: p["p"]}, nil
	case xdist.KindNegativeBinomial:
		n, err := parseCount("n", p["n"])
		if err != nil {
			return nil, err
		}
		return xdist.NegativeBinomial{N: n, P: p["p"]}, nil
	case xdist.KindGeometric:
		return xdist.Geometric{P: p["p"]}, nil
	default:
		return xdist.Poisson{Mean: p["mean"]}, nil
	}
}

// parseShape 解析逗号分隔的形状，如 "2,3"；空字符串表示 0 维数组。
func parseShape(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []int{}, nil
	}
	fields := strings.Split(s, ",")
	shape := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, usagef("invalid shape %q", s)
		}
		shape = append(shape, n)
	}
	return shape, nil
}

// parseFloats 解析逗号分隔的浮点数列表。
func parseFloats(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, usagef("invalid number %q", f)
		}
		out = append(out, v)
	}
	return out, nil
}

func parseOrder(s string) (xarray.Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "row", "c":
		return xarray.RowMajor, nil
	case "column", "col", "f":
		return xarray.ColumnMajor, nil
	default:
		return xarray.RowMajor, usagef("invalid order %q, want row or column", s)
	}
}
