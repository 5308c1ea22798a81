// Package xrerr 定义随机数引擎各层共享的错误分类。
//
// # 错误分类
//
// 引擎只会因为调用方输入不合法而失败，失败总是同步返回、可通过修正调用恢复：
//
//   - [ErrConfiguration]: 构造参数不合法，例如不支持的算法名称
//   - [ErrParameter]: 分布参数超出定义域，在任何采样之前返回
//   - [ErrTypeMismatch]: 目标数组元素类型与分布不匹配（浮点 / 整数），或离散分布权重不是浮点数组
//   - [ErrShape]: 离散分布权重不是一维数组或长度为 0，或请求的形状含负数维度
//
// # 使用方式
//
// 具体错误为 [*Error]，Error() 原样返回约束描述（如 "scale must be > 0"），
// 同时可以用 errors.Is 按分类匹配：
//
//	if errors.Is(err, xrerr.ErrParameter) {
//	    // 参数错误
//	}
//
// 或通过 [KindOf] 获取分类。
package xrerr
