// Package xrandom 提供带种子的随机数生成器，向数值数组批量写入指定分布的样本。
//
// # 快速开始
//
//	g, err := xrandom.New(xrandom.WithAlgorithm("pcg64"), xrandom.WithSeedUint64(42))
//	if err != nil {
//	    return err
//	}
//	x, err := g.NewNormal([]int{2, 3}, 10, 2)
//
// # 生成器
//
// [Generator] 在构造时选定位生成器算法（pcg32、pcg64、mt32、mt64，默认 pcg64），
// 之后只有种子可以改变。未指定种子时从系统熵源读取 64 位种子，[Generator.Seed]
// 总是返回实际使用的种子，因此任何一次运行都可以复现。
//
// 同一算法、同一种子的两个生成器产生完全相同的样本序列；[Generator.SetSeed]
// 重新播种后，序列与用该种子新建的生成器一致。
//
// # 分布
//
// 每个分布有两种调用形式：
//
//   - 原地填充：g.Normal(x, loc, scale) 写入调用方提供的数组 x 并返回 x
//   - 分配填充：g.NewNormal(shape, loc, scale, opts...) 分配数组后填充，
//     连续分布默认 float64，计数分布默认 int32，可用 [WithDType] 指定
//
// 调用按固定顺序校验：目标元素类别、（discrete）权重数组、分布参数、数组布局。
// 校验失败时目标数组保持不变，错误可用 errors.Is 匹配 xrerr 的四个分类。
//
// # 配置
//
// [Config] 可以从 YAML/JSON 文件（[LoadConfig]）或 XRANDOM_ 前缀的环境变量
// （[ConfigFromEnv]）加载，再通过 [NewFromConfig] 创建生成器。
//
// # 可观测性
//
// 通过 [WithLogger] 注入 slog.Logger 后，构造、重新播种和被拒绝的调用会以 DEBUG
// 级别记录。[WithMeterProvider] 启用 OpenTelemetry 指标：
//
//   - xrandom.fill.calls: 填充调用次数，属性 distribution、dtype、algorithm、status
//   - xrandom.fill.elements: 成功写入的元素个数
//
// # 并发安全
//
// Generator 不是并发安全的，调用方需要串行化访问；内部不加锁，抽取顺序完全由调用顺序决定。
// 需要并行时为每个 goroutine 创建独立的 Generator。
package xrandom
