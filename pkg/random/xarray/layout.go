package xarray

import (
	"iter"
	"math"
)

// Order 逻辑元素的遍历顺序。
type Order uint8

const (
	// RowMajor 行主序，最后一维变化最快
	RowMajor Order = iota
	// ColumnMajor 列主序，第一维变化最快
	ColumnMajor
)

// String 返回顺序名称。
func (o Order) String() string {
	if o == ColumnMajor {
		return "column-major"
	}
	return "row-major"
}

// Layout 描述数组在底层切片中的位置。步长以元素为单位，可以为负。
type Layout struct {
	Shape   []int
	Strides []int
	Offset  int
	Order   Order
}

// Contiguous 返回给定形状与顺序的紧凑布局。
func Contiguous(order Order, shape ...int) Layout {
	shape = append([]int(nil), shape...)
	strides := make([]int, len(shape))
	step := 1
	if order == ColumnMajor {
		for i := range shape {
			strides[i] = step
			step *= max(shape[i], 1)
		}
	} else {
		for i := len(shape) - 1; i >= 0; i-- {
			strides[i] = step
			step *= max(shape[i], 1)
		}
	}
	return Layout{Shape: shape, Strides: strides, Order: order}
}

// NDim 返回维数。
func (l Layout) NDim() int {
	return len(l.Shape)
}

// Size 返回逻辑元素个数；0 维布局为 1 个元素，元素个数超出 int 范围时返回 -1。
func (l Layout) Size() int {
	n, ok := l.size()
	if !ok {
		return -1
	}
	return n
}

// size 计算元素个数并报告是否溢出，含 0 的形状不会溢出。
func (l Layout) size() (int, bool) {
	n := 1
	for _, s := range l.Shape {
		if s == 0 {
			return 0, true
		}
	}
	for _, s := range l.Shape {
		if s < 0 || n > math.MaxInt/s {
			return 0, false
		}
		n *= s
	}
	return n, true
}

// Validate 检查布局自洽并且所有可达偏移都落在 [0, dataLen) 内。
func (l Layout) Validate(dataLen int) error {
	if len(l.Strides) != len(l.Shape) {
		return errStrideRank
	}
	for _, s := range l.Shape {
		if s < 0 {
			return errNegativeShape
		}
	}
	n, ok := l.size()
	if !ok {
		return errTooLarge
	}
	if n == 0 {
		return nil
	}
	if l.Offset < 0 || l.Offset >= dataLen {
		return errOutOfBounds
	}
	// lo、hi 始终落在 [0, dataLen) 内，每轴跨度先与剩余空间比较再累加
	lo, hi := l.Offset, l.Offset
	for i, s := range l.Shape {
		if s == 1 {
			continue
		}
		st := l.Strides[i]
		switch {
		case st > 0:
			if st > (dataLen-1-hi)/(s-1) {
				return errOutOfBounds
			}
			hi += (s - 1) * st
		case st < 0:
			if st < -lo || -st > lo/(s-1) {
				return errOutOfBounds
			}
			lo += (s - 1) * st
		}
	}
	return nil
}

// Offsets 按声明顺序返回每个逻辑元素在底层切片中的偏移。
func (l Layout) Offsets() iter.Seq[int] {
	return func(yield func(int) bool) {
		n := l.Size()
		if n <= 0 {
			return
		}
		nd := len(l.Shape)
		idx := make([]int, nd)
		off := l.Offset
		for count := 0; ; {
			if !yield(off) {
				return
			}
			count++
			if count == n {
				return
			}
			for k := range nd {
				axis := nd - 1 - k
				if l.Order == ColumnMajor {
					axis = k
				}
				idx[axis]++
				off += l.Strides[axis]
				if idx[axis] < l.Shape[axis] {
					break
				}
				off -= l.Strides[axis] * l.Shape[axis]
				idx[axis] = 0
			}
		}
	}
}

// offsetOf 返回多维下标对应的偏移，越界返回 false。
func (l Layout) offsetOf(index []int) (int, bool) {
	if len(index) != len(l.Shape) {
		return 0, false
	}
	off := l.Offset
	for i, v := range index {
		if v < 0 || v >= l.Shape[i] {
			return 0, false
		}
		off += v * l.Strides[i]
	}
	return off, true
}

func (l Layout) clone() Layout {
	return Layout{
		Shape:   append([]int(nil), l.Shape...),
		Strides: append([]int(nil), l.Strides...),
		Offset:  l.Offset,
		Order:   l.Order,
	}
}
