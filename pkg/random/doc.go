// Package random 提供可复现的随机数引擎。
//
// 子包列表：
//   - xrerr: 错误分类（配置、参数、类型不匹配、形状）
//   - xbitgen: 位生成器（pcg32、pcg64、mt32、mt64）、种子与均匀映射
//   - xarray: 带步长的 n 维数组与元素类型
//   - xdist: 17 种分布的参数校验与单次采样
//   - xfill: 按元素类型把分布样本写入数组
//   - xrandom: 面向调用方的 Generator、配置加载与指标
//
// 依赖方向自上而下，xrandom 只组合下层包，不包含采样算法。
package random
