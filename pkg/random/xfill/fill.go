package xfill

import (
	"math"

	"github.com/omeyang/xrandom/pkg/random/xarray"
	"github.com/omeyang/xrandom/pkg/random/xbitgen"
	"github.com/omeyang/xrandom/pkg/random/xdist"
	"github.com/omeyang/xrandom/pkg/random/xrerr"
)

const (
	msgNeedFloat   = "invalid array dtype, it must be float64 or float32"
	msgNeedInteger = "invalid array dtype, it must be integer typed array"
)

type floatElem interface {
	float32 | float64
}

type intElem interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64
}

// CheckClass 检查数组元素类型是否满足分布类别。
func CheckClass(a xarray.Array, c xdist.Class) error {
	dt := a.DType()
	if c == xdist.ClassCount {
		if !dt.IsInteger() {
			return xrerr.TypeMismatch(msgNeedInteger)
		}
		return nil
	}
	if !dt.IsFloat() {
		return xrerr.TypeMismatch(msgNeedFloat)
	}
	return nil
}

// Fill 校验后用 d 的样本填满数组 a 的每个逻辑元素。
func Fill(a xarray.Array, d xdist.Distribution, src xbitgen.Source) error {
	if a == nil || d == nil {
		return xrerr.Parameter("array and distribution must not be nil")
	}
	if err := CheckClass(a, d.Kind().Class()); err != nil {
		return err
	}
	d, err := prepare(d)
	if err != nil {
		return err
	}
	switch dist := d.(type) {
	case xdist.Continuous:
		return fillContinuous(a, dist, src)
	case xdist.Count:
		return fillCounts(a, dist, src)
	default:
		return xrerr.Parameter("unsupported distribution: %s", d.Kind())
	}
}

func prepare(d xdist.Distribution) (xdist.Distribution, error) {
	if p, ok := d.(xdist.Preparer); ok {
		return p.Prepare()
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func fillContinuous(a xarray.Array, d xdist.Continuous, src xbitgen.Source) error {
	switch t := a.(type) {
	case xarray.Typed[float64]:
		return fillFloat(t, d, src)
	case xarray.Typed[float32]:
		return fillFloat(t, d, src)
	default:
		return xrerr.TypeMismatch(msgNeedFloat)
	}
}

func fillCounts(a xarray.Array, d xdist.Count, src xbitgen.Source) error {
	switch t := a.(type) {
	case xarray.Typed[int8]:
		return fillCount(t, d, src)
	case xarray.Typed[int16]:
		return fillCount(t, d, src)
	case xarray.Typed[int32]:
		return fillCount(t, d, src)
	case xarray.Typed[int64]:
		return fillCount(t, d, src)
	case xarray.Typed[uint8]:
		return fillCount(t, d, src)
	case xarray.Typed[uint16]:
		return fillCount(t, d, src)
	case xarray.Typed[uint32]:
		return fillCount(t, d, src)
	case xarray.Typed[uint64]:
		return fillCount(t, d, src)
	default:
		return xrerr.TypeMismatch(msgNeedInteger)
	}
}

func fillFloat[T floatElem](a xarray.Typed[T], d xdist.Continuous, src xbitgen.Source) error {
	var zero T
	if _, narrow := any(zero).(float32); narrow {
		if s32, ok := d.(xdist.Float32Sampler); ok {
			return fill(a, func() T { return T(s32.Sample32(src)) })
		}
	}
	return fill(a, func() T { return T(d.Sample(src)) })
}

func fillCount[T intElem](a xarray.Typed[T], d xdist.Count, src xbitgen.Source) error {
	lo, hi := intBounds[T]()
	return fill(a, func() T {
		return T(min(max(d.Sample(src), lo), hi))
	})
}

// fill 先检查布局，再按声明顺序写入。
func fill[T xarray.Element](a xarray.Typed[T], next func() T) error {
	layout := a.Layout()
	data := a.Data()
	if err := layout.Validate(len(data)); err != nil {
		return err
	}
	for off := range layout.Offsets() {
		data[off] = next()
	}
	return nil
}

// intBounds 返回 T 在 int64 中可表示的范围。
func intBounds[T intElem]() (lo, hi int64) {
	var zero T
	switch any(zero).(type) {
	case int8:
		return math.MinInt8, math.MaxInt8
	case int16:
		return math.MinInt16, math.MaxInt16
	case int32:
		return math.MinInt32, math.MaxInt32
	case uint8:
		return 0, math.MaxUint8
	case uint16:
		return 0, math.MaxUint16
	case uint32:
		return 0, math.MaxUint32
	case uint64:
		return 0, math.MaxInt64
	default:
		return math.MinInt64, math.MaxInt64
	}
}
