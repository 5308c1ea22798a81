package xrandom

import (
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/omeyang/xrandom/pkg/random/xarray"
	"github.com/omeyang/xrandom/pkg/random/xbitgen"
)

type options struct {
	algorithm     string
	seed          *xbitgen.Seed
	logger        *slog.Logger
	meterProvider metric.MeterProvider
}

// Option 生成器配置选项。
type Option func(*options)

// WithAlgorithm 设置位生成器算法名称（pcg32、pcg64、mt32、mt64）。
//
// 名称在 New 时解析，不支持的名称使 New 返回配置错误。空字符串表示默认算法。
func WithAlgorithm(name string) Option {
	return func(o *options) {
		o.algorithm = name
	}
}

// WithSeed 设置种子。
func WithSeed(seed xbitgen.Seed) Option {
	return func(o *options) {
		o.seed = &seed
	}
}

// WithSeedUint64 以 uint64 设置种子。
func WithSeedUint64(seed uint64) Option {
	return WithSeed(xbitgen.SeedFromUint64(seed))
}

// WithSeedKey 以字符串键派生种子，见 xbitgen.SeedFromKey。
func WithSeedKey(key string) Option {
	return WithSeed(xbitgen.SeedFromKey(key))
}

// WithLogger 设置日志记录器，nil 会被忽略。
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMeterProvider 设置 MeterProvider，nil 会被忽略。
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(o *options) {
		if provider != nil {
			o.meterProvider = provider
		}
	}
}

type arrayOptions struct {
	dtype xarray.DType
	order xarray.Order
}

// ArrayOption 分配型调用（NewNormal 等）的数组选项。
type ArrayOption func(*arrayOptions)

// WithDType 设置分配数组的元素类型。
func WithDType(dtype xarray.DType) ArrayOption {
	return func(o *arrayOptions) {
		o.dtype = dtype
	}
}

// WithOrder 设置分配数组的遍历顺序，默认行主序。
func WithOrder(order xarray.Order) ArrayOption {
	return func(o *arrayOptions) {
		o.order = order
	}
}
