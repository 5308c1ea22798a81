// Package xfill 把分布样本写入任意元素类型、任意布局的数组。
//
// [Fill] 按固定顺序检查：目标元素类别、分布参数、目标布局。全部通过后才开始写入，
// 任何失败都不会修改目标数组。写入按数组声明的遍历顺序进行，转置、带步长切片等
// 视图只写入其逻辑位置。
//
// 窄化规则：
//
//   - 连续分布写入 float32 时直接转换；uniform 使用 24 位映射保持半开区间
//   - 计数分布写入较窄的整数类型时在该类型的边界处饱和
//
// 任一维度为 0 的数组直接成功返回，不消费随机数。
package xfill
