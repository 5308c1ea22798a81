// Package xarray 定义随机数引擎写入的数值数组抽象，并提供一个参考实现。
//
// 引擎不拥有数组：调用方分配数组，引擎只按逻辑位置写入元素，从不重新分配。
// 任何实现了 [Typed] 的类型都可以作为填充目标，[Dense] 是随包提供的实现。
//
// # 元素类型
//
// 支持 10 种元素类型：int8、int16、int32、int64、uint8、uint16、uint32、uint64、
// float32、float64。[ParseDType] 还接受 sfloat（float32）与 dfloat（float64）别名。
//
// # 布局
//
// [Layout] 用形状、步长（以元素为单位）、起始偏移与遍历顺序描述数组在底层切片中的位置。
// 转置、带步长切片等视图只改变布局，不复制数据。[Layout.Offsets] 按声明的顺序
// （默认行主序，支持列主序）遍历全部逻辑元素对应的底层偏移。
//
// 任一维度为 0 的数组没有逻辑元素。
package xarray
