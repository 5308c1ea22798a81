package xarray

import (
	"fmt"
	"strings"

	"github.com/omeyang/xrandom/pkg/random/xrerr"
)

// Array 引擎可写入的数值数组。
type Array interface {
	// DType 返回元素类型标签。
	DType() DType
	// Layout 返回数组布局，调用方不得修改返回值中的切片。
	Layout() Layout
}

// Typed 元素类型为 T 的数组，Data 返回 Layout 描述的底层切片。
type Typed[T Element] interface {
	Array
	Data() []T
}

// New 按元素类型分配行主序的 [Dense] 数组。
func New(dtype DType, shape ...int) (Array, error) {
	return NewOrder(dtype, RowMajor, shape...)
}

// NewOrder 按元素类型与顺序分配 [Dense] 数组。
func NewOrder(dtype DType, order Order, shape ...int) (Array, error) {
	switch dtype {
	case Int8:
		return newArray[int8](order, shape)
	case Int16:
		return newArray[int16](order, shape)
	case Int32:
		return newArray[int32](order, shape)
	case Int64:
		return newArray[int64](order, shape)
	case Uint8:
		return newArray[uint8](order, shape)
	case Uint16:
		return newArray[uint16](order, shape)
	case Uint32:
		return newArray[uint32](order, shape)
	case Uint64:
		return newArray[uint64](order, shape)
	case Float32:
		return newArray[float32](order, shape)
	case Float64:
		return newArray[float64](order, shape)
	default:
		return nil, xrerr.Parameter("wrong dtype is given: %s", dtype)
	}
}

func newArray[T Element](order Order, shape []int) (Array, error) {
	d, err := NewDenseOrder[T](order, shape...)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Float64s 按逻辑顺序把数组元素转换为 float64。
//
// a 不是本包支持的 Typed 实现，或布局越出底层数据时返回 false。
func Float64s(a Array) ([]float64, bool) {
	switch t := a.(type) {
	case Typed[int8]:
		return convert(t)
	case Typed[int16]:
		return convert(t)
	case Typed[int32]:
		return convert(t)
	case Typed[int64]:
		return convert(t)
	case Typed[uint8]:
		return convert(t)
	case Typed[uint16]:
		return convert(t)
	case Typed[uint32]:
		return convert(t)
	case Typed[uint64]:
		return convert(t)
	case Typed[float32]:
		return convert(t)
	case Typed[float64]:
		return convert(t)
	default:
		return nil, false
	}
}

// convert 布局越出底层数据时返回 false。
func convert[T Element](a Typed[T]) ([]float64, bool) {
	layout := a.Layout()
	data := a.Data()
	if layout.Validate(len(data)) != nil {
		return nil, false
	}
	out := make([]float64, 0, layout.Size())
	for off := range layout.Offsets() {
		out = append(out, float64(data[off]))
	}
	return out, true
}

// Validate 检查 a 的布局落在其底层数据内，a 不是本包支持的 Typed 实现时返回类型错误。
func Validate(a Array) error {
	switch t := a.(type) {
	case Typed[int8]:
		return t.Layout().Validate(len(t.Data()))
	case Typed[int16]:
		return t.Layout().Validate(len(t.Data()))
	case Typed[int32]:
		return t.Layout().Validate(len(t.Data()))
	case Typed[int64]:
		return t.Layout().Validate(len(t.Data()))
	case Typed[uint8]:
		return t.Layout().Validate(len(t.Data()))
	case Typed[uint16]:
		return t.Layout().Validate(len(t.Data()))
	case Typed[uint32]:
		return t.Layout().Validate(len(t.Data()))
	case Typed[uint64]:
		return t.Layout().Validate(len(t.Data()))
	case Typed[float32]:
		return t.Layout().Validate(len(t.Data()))
	case Typed[float64]:
		return t.Layout().Validate(len(t.Data()))
	default:
		return errUnsupported
	}
}

// Format 以嵌套方括号的文本形式（总是按行主序嵌套）输出数组。
//
// a 不是本包支持的 Typed 实现或布局无效时只输出类型名。
func Format(a Array) string {
	switch t := a.(type) {
	case Typed[int8]:
		return format(t)
	case Typed[int16]:
		return format(t)
	case Typed[int32]:
		return format(t)
	case Typed[int64]:
		return format(t)
	case Typed[uint8]:
		return format(t)
	case Typed[uint16]:
		return format(t)
	case Typed[uint32]:
		return format(t)
	case Typed[uint64]:
		return format(t)
	case Typed[float32]:
		return format(t)
	case Typed[float64]:
		return format(t)
	default:
		return fmt.Sprintf("<%s array>", a.DType())
	}
}

func format[T Element](a Typed[T]) string {
	layout := a.Layout()
	data := a.Data()
	if layout.Validate(len(data)) != nil {
		return fmt.Sprintf("<%s array with invalid layout>", a.DType())
	}
	index := make([]int, len(layout.Shape))
	var b strings.Builder
	var walk func(dim int)
	walk = func(dim int) {
		if dim == len(index) {
			off, _ := layout.offsetOf(index)
			fmt.Fprint(&b, data[off])
			return
		}
		b.WriteByte('[')
		for i := range layout.Shape[dim] {
			if i > 0 {
				b.WriteString(", ")
			}
			index[dim] = i
			walk(dim + 1)
		}
		b.WriteByte(']')
	}
	walk(0)
	return b.String()
}
