// Package xbitgen 提供可互换的伪随机位生成器以及均匀映射函数。
//
// # 算法
//
// 支持四种算法，构造时通过 [Algorithm] 选定，之后不可更改：
//
//   - pcg32: 64 位状态的 PCG（XSH-RR 输出置换），原生输出 32 位
//   - pcg64: 128 位状态的 PCG（XSL-RR 输出置换），原生输出 64 位，默认算法
//   - mt32: 经典 32 位 Mersenne Twister（MT19937）
//   - mt64: 64 位 Mersenne Twister（MT19937-64）
//
// MT 系列基于 gonum.org/v1/gonum/mathext/prng 实现；PCG 系列在本包内实现。
// 非原生宽度的输出通过拼接两次 32 位输出或截断 64 位输出得到。
//
// # 种子
//
// [Seed] 是任意精度的非负整数。各算法按机器字（低位在前）消费种子：
//
//   - pcg32: 第 0 个 64 位字为初始状态，第 1 个字（若存在）选择流
//   - pcg64: 第 0、1 个字组成 128 位初始状态，第 2、3 个字（若存在）选择流
//   - mt32 / mt64: 单字种子使用经典 init_genrand，更长的种子使用 init_by_array
//
// 同一算法、同一种子总是产生相同序列；[BitGenerator.Seed] 重新播种后，
// 序列与用该种子新建的生成器完全一致。
//
// # 均匀映射
//
// [Float64]、[Float32] 等函数把原始整数映射为 [0,1) / [0,1] / (0,1) 上的浮点数，
// [Bounded] 以无偏方式映射到 [0,n)。这些函数只消费原始输出，不持有额外状态。
//
// # 并发安全
//
// 位生成器是不加锁的可变状态，同一实例不能被多个 goroutine 同时使用，
// 需要由调用方串行化。不同实例之间完全独立，可以并发使用。
// 内部不加锁，以保证抽取顺序完全由调用顺序决定。
//
// # 与 math/rand/v2 互操作
//
// 所有位生成器都实现了 math/rand/v2 的 Source 接口，可以直接 rand.New(bg)
// 获取 Shuffle、Perm 等能力，底层状态共享。
//
// 本包不提供密码学安全性。
package xbitgen
