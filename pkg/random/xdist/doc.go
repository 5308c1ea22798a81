// Package xdist 实现随机数引擎的分布目录。
//
// 每个分布是一个值类型，携带分布参数并提供三个方法：
//
//   - Kind: 分布种类，决定目标数组需要浮点还是整数元素
//   - Validate: 在抽样前检查参数域，失败返回 xrerr 分类错误，信息文本固定
//   - Sample: 从 xbitgen.Source 消费若干原始输出，返回一个样本
//
// 连续分布（uniform、cauchy、chisquare、f、normal、lognormal、standard_t、
// exponential、gamma、gumbel、weibull）返回 float64；计数分布（bernoulli、
// binomial、negative_binomial、geometric、poisson、discrete）返回 int64。
// 窄化到具体元素类型由 xfill 完成，这里的变换逻辑只写一次。
//
// Sample 不重复校验参数，调用方应先调用 Validate；xfill 总是这样做。
//
// # 算法
//
//   - 正态: Marsaglia 极坐标法，每次只取一个变量
//   - 伽马: Marsaglia–Tsang 挤压法，k<1 时用 U^(1/k) 提升
//   - 二项: n·min(p,1-p) < 30 时逆变换，否则 BTPE
//   - 泊松: 均值 < 10 时 Knuth 乘法，否则 PTRS
//   - 离散: 每次调用构建一次累积表，逐元素二分查找
//
// 拒绝采样的期望迭代次数有界，不会阻塞。
package xdist

//go:generate mockgen -destination=mock_source_test.go -package=xdist -mock_names=Source=MockSource github.com/omeyang/xrandom/pkg/random/xbitgen Source
