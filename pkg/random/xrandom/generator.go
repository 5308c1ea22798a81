package xrandom

import (
	"log/slog"
	"math/rand/v2"

	"github.com/omeyang/xrandom/pkg/random/xarray"
	"github.com/omeyang/xrandom/pkg/random/xbitgen"
	"github.com/omeyang/xrandom/pkg/random/xdist"
	"github.com/omeyang/xrandom/pkg/random/xfill"
	"github.com/omeyang/xrandom/pkg/random/xrerr"
)

// Generator 绑定一个位生成器的随机数生成器。
//
// 算法在构造时固定，只有种子可以改变。Generator 不是并发安全的。
type Generator struct {
	algorithm xbitgen.Algorithm
	seed      xbitgen.Seed
	bits      xbitgen.BitGenerator
	rnd       *rand.Rand
	logger    *slog.Logger
	metrics   *fillMetrics
}

// New 创建生成器。
//
// 未指定算法时使用 pcg64，未指定种子时从系统熵源读取。
func New(opts ...Option) (*Generator, error) {
	o := &options{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(o)
	}

	alg := xbitgen.DefaultAlgorithm
	if o.algorithm != "" {
		parsed, err := xbitgen.ParseAlgorithm(o.algorithm)
		if err != nil {
			return nil, err
		}
		alg = parsed
	}

	var seed xbitgen.Seed
	if o.seed != nil {
		seed = *o.seed
	} else {
		entropy, err := xbitgen.EntropySeed()
		if err != nil {
			return nil, err
		}
		seed = entropy
	}

	bits, err := xbitgen.New(alg, seed)
	if err != nil {
		return nil, err
	}
	metrics, err := newFillMetrics(o.meterProvider)
	if err != nil {
		return nil, err
	}

	g := &Generator{
		algorithm: alg,
		seed:      seed,
		bits:      bits,
		logger:    o.logger.With(slog.String("algorithm", alg.String())),
		metrics:   metrics,
	}
	g.rnd = rand.New(bits)
	g.logger.Debug("xrandom: generator created", slog.String("seed", seed.String()))
	return g, nil
}

// NewFromConfig 按配置创建生成器，opts 在配置之后应用，可以覆盖配置项。
func NewFromConfig(cfg Config, opts ...Option) (*Generator, error) {
	cfgOpts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return New(append(cfgOpts, opts...)...)
}

// Algorithm 返回构造时选定的算法。
func (g *Generator) Algorithm() xbitgen.Algorithm {
	return g.algorithm
}

// Seed 返回当前种子（包括从熵源读取的种子）。
func (g *Generator) Seed() xbitgen.Seed {
	return g.seed
}

// SetSeed 重新播种，之后的序列与用该种子新建的生成器一致。
func (g *Generator) SetSeed(seed xbitgen.Seed) {
	g.seed = seed
	g.bits.Seed(seed)
	g.logger.Debug("xrandom: generator reseeded", slog.String("seed", seed.String()))
}

// Random 返回 [0,1) 上的均匀浮点数。
func (g *Generator) Random() float64 {
	return xbitgen.Float64(g.bits)
}

// Rand 返回共享同一位生成器状态的 *rand.Rand，用于 Shuffle、Perm 等操作。
func (g *Generator) Rand() *rand.Rand {
	return g.rnd
}

// Fill 用分布 d 的样本填满 x 的每个逻辑元素，成功时返回 x。
func (g *Generator) Fill(x xarray.Array, d xdist.Distribution) (xarray.Array, error) {
	err := xfill.Fill(x, d, g.bits)
	return g.finish(x, kindName(d), err)
}

// Draw 分配 shape 形状的数组并填充；连续分布默认 float64，计数分布默认 int32。
func (g *Generator) Draw(shape []int, d xdist.Distribution, opts ...ArrayOption) (xarray.Array, error) {
	if d == nil {
		return nil, g.reject("", "", xrerr.Parameter("array and distribution must not be nil"))
	}
	x, err := g.alloc(shape, d.Kind().Class(), opts)
	if err != nil {
		return nil, g.reject(kindName(d), "", err)
	}
	return g.Fill(x, d)
}

// Discrete 按 weight（一维浮点数组）给出的权重向整数数组 x 写入下标。
func (g *Generator) Discrete(x, weight xarray.Array) (xarray.Array, error) {
	err := xfill.FillDiscrete(x, weight, g.bits)
	return g.finish(x, xdist.KindDiscrete.String(), err)
}

// NewDiscrete 分配数组后调用 Discrete，默认 int32。
func (g *Generator) NewDiscrete(shape []int, weight xarray.Array, opts ...ArrayOption) (xarray.Array, error) {
	x, err := g.alloc(shape, xdist.ClassCount, opts)
	if err != nil {
		return nil, g.reject(xdist.KindDiscrete.String(), "", err)
	}
	return g.Discrete(x, weight)
}

func (g *Generator) alloc(shape []int, class xdist.Class, opts []ArrayOption) (xarray.Array, error) {
	ao := &arrayOptions{dtype: xarray.Float64}
	if class == xdist.ClassCount {
		ao.dtype = xarray.Int32
	}
	for _, opt := range opts {
		opt(ao)
	}
	return xarray.NewOrder(ao.dtype, ao.order, shape...)
}

func (g *Generator) finish(x xarray.Array, dist string, err error) (xarray.Array, error) {
	var dtype string
	if x != nil {
		dtype = x.DType().String()
	}
	if err != nil {
		return nil, g.reject(dist, dtype, err)
	}
	g.metrics.record(g.algorithm.String(), dist, dtype, x.Layout().Size(), nil)
	return x, nil
}

// reject 记录被拒绝的调用并原样返回错误。
func (g *Generator) reject(dist, dtype string, err error) error {
	g.metrics.record(g.algorithm.String(), dist, dtype, 0, err)
	g.logger.Debug("xrandom: call rejected",
		slog.String("distribution", dist),
		slog.String("dtype", dtype),
		slog.Any("error", err),
	)
	return err
}

func kindName(d xdist.Distribution) string {
	if d == nil {
		return ""
	}
	return d.Kind().String()
}
