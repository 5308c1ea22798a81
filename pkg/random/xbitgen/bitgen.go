package xbitgen

// Source 原始随机位来源。
//
// 分布变换层只依赖这个最小接口，便于在测试中替换为脚本化的来源。
type Source interface {
	// Uint32 返回下一个 32 位原始输出。
	Uint32() uint32
	// Uint64 返回下一个 64 位原始输出。
	Uint64() uint64
}

// BitGenerator 可重新播种的位生成器。
//
// 实现不是并发安全的，调用方需要串行化访问。
type BitGenerator interface {
	Source

	// Algorithm 返回构造时选定的算法。
	Algorithm() Algorithm

	// Seed 用 seed 重置内部状态，之后的输出与用同一种子新建的生成器一致。
	Seed(seed Seed)
}

var (
	_ BitGenerator = (*PCG32Source)(nil)
	_ BitGenerator = (*PCG64Source)(nil)
	_ BitGenerator = (*MT32Source)(nil)
	_ BitGenerator = (*MT64Source)(nil)
)

// New 创建指定算法的位生成器并用 seed 播种。
//
// 算法在构造时选定，之后不会改变；不支持的算法返回配置错误。
func New(alg Algorithm, seed Seed) (BitGenerator, error) {
	switch alg {
	case PCG32:
		return NewPCG32Source(seed), nil
	case PCG64:
		return NewPCG64Source(seed), nil
	case MT32:
		return NewMT32Source(seed), nil
	case MT64:
		return NewMT64Source(seed), nil
	default:
		return nil, invalidAlgorithm(string(alg))
	}
}
