package xarray

import "math"

// Dense 基于切片的 n 维数组，可以是紧凑数组，也可以是共享底层数据的视图。
type Dense[T Element] struct {
	data   []T
	layout Layout
}

var _ Typed[float64] = (*Dense[float64])(nil)

// NewDense 分配行主序的零值数组。
func NewDense[T Element](shape ...int) (*Dense[T], error) {
	return NewDenseOrder[T](RowMajor, shape...)
}

// NewDenseOrder 按指定顺序分配零值数组，负维度返回形状错误。
func NewDenseOrder[T Element](order Order, shape ...int) (*Dense[T], error) {
	n, err := elementCount[T](shape)
	if err != nil {
		return nil, err
	}
	layout := Contiguous(order, shape...)
	return &Dense[T]{data: make([]T, n), layout: layout}, nil
}

// elementCount 返回形状的元素个数，元素个数或总字节数超出 int 范围时返回形状错误。
func elementCount[T Element](shape []int) (int, error) {
	for _, s := range shape {
		if s < 0 {
			return 0, errNegativeShape
		}
	}
	n, ok := Layout{Shape: shape}.size()
	if !ok || n > math.MaxInt/DTypeOf[T]().Size() {
		return 0, errTooLarge
	}
	return n, nil
}

// FromSlice 以行主序包装已有切片，len(data) 必须等于形状的元素个数。
//
// 不复制 data，写入数组即写入 data。
func FromSlice[T Element](data []T, shape ...int) (*Dense[T], error) {
	n, err := elementCount[T](shape)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, errDataLength
	}
	return &Dense[T]{data: data, layout: Contiguous(RowMajor, shape...)}, nil
}

// View 以任意布局包装已有切片，布局必须落在 data 的范围内。
func View[T Element](data []T, layout Layout) (*Dense[T], error) {
	if err := layout.Validate(len(data)); err != nil {
		return nil, err
	}
	return &Dense[T]{data: data, layout: layout.clone()}, nil
}

// DType 返回元素类型标签。
func (d *Dense[T]) DType() DType {
	return DTypeOf[T]()
}

// Layout 返回布局。
func (d *Dense[T]) Layout() Layout {
	return d.layout
}

// Data 返回底层切片（视图返回整个共享切片）。
func (d *Dense[T]) Data() []T {
	return d.data
}

// Shape 返回形状副本。
func (d *Dense[T]) Shape() []int {
	return append([]int(nil), d.layout.Shape...)
}

// Size 返回逻辑元素个数。
func (d *Dense[T]) Size() int {
	return d.layout.Size()
}

// At 返回下标处的元素，下标越界时 panic，与切片下标行为一致。
func (d *Dense[T]) At(index ...int) T {
	off, ok := d.layout.offsetOf(index)
	if !ok {
		panic("xarray: index out of range")
	}
	return d.data[off]
}

// Set 写入下标处的元素，下标越界时 panic。
func (d *Dense[T]) Set(v T, index ...int) {
	off, ok := d.layout.offsetOf(index)
	if !ok {
		panic("xarray: index out of range")
	}
	d.data[off] = v
}

// Values 按声明顺序复制出全部逻辑元素。
func (d *Dense[T]) Values() []T {
	out := make([]T, 0, d.layout.Size())
	for off := range d.layout.Offsets() {
		out = append(out, d.data[off])
	}
	return out
}

// Transpose 返回反转全部维度的视图，共享底层数据。
func (d *Dense[T]) Transpose() *Dense[T] {
	l := d.layout.clone()
	for i, j := 0, len(l.Shape)-1; i < j; i, j = i+1, j-1 {
		l.Shape[i], l.Shape[j] = l.Shape[j], l.Shape[i]
		l.Strides[i], l.Strides[j] = l.Strides[j], l.Strides[i]
	}
	return &Dense[T]{data: d.data, layout: l}
}

// Slice 沿 axis 取 [start, stop) 中步长为 step 的元素，返回共享底层数据的视图。
func (d *Dense[T]) Slice(axis, start, stop, step int) (*Dense[T], error) {
	if axis < 0 || axis >= len(d.layout.Shape) {
		return nil, errBadAxis
	}
	if step <= 0 {
		return nil, errBadStep
	}
	if start < 0 || stop > d.layout.Shape[axis] || start > stop {
		return nil, errBadRange
	}
	l := d.layout.clone()
	l.Shape[axis] = (stop - start + step - 1) / step
	if l.Shape[axis] > 0 {
		l.Offset += start * l.Strides[axis]
	}
	l.Strides[axis] *= step
	return &Dense[T]{data: d.data, layout: l}, nil
}
