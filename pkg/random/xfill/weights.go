package xfill

import (
	"errors"

	"github.com/omeyang/xrandom/pkg/random/xarray"
	"github.com/omeyang/xrandom/pkg/random/xbitgen"
	"github.com/omeyang/xrandom/pkg/random/xdist"
	"github.com/omeyang/xrandom/pkg/random/xrerr"
)

// Weights 取出离散分布的权重：必须是一维、非空的浮点数组。
func Weights(w xarray.Array) ([]float64, error) {
	if w == nil || !w.DType().IsFloat() {
		return nil, xrerr.TypeMismatch("weight must be float64 or float32 array")
	}
	layout := w.Layout()
	if layout.NDim() != 1 {
		return nil, xrerr.Shape("weight must be 1-dimensional array")
	}
	if layout.Size() == 0 {
		return nil, xrerr.Shape("length of weight must be > 0")
	}
	values, ok := xarray.Float64s(w)
	if !ok {
		if err := xarray.Validate(w); errors.Is(err, xrerr.ErrShape) {
			return nil, err
		}
		return nil, xrerr.TypeMismatch("weight must be float64 or float32 array")
	}
	return values, nil
}

// FillDiscrete 按 weight 给出的权重向整数数组 a 写入下标。
//
// 检查顺序：目标元素类别、权重类型与形状、权重取值。
func FillDiscrete(a xarray.Array, weight xarray.Array, src xbitgen.Source) error {
	if a == nil {
		return xrerr.Parameter("array and distribution must not be nil")
	}
	if err := CheckClass(a, xdist.ClassCount); err != nil {
		return err
	}
	values, err := Weights(weight)
	if err != nil {
		return err
	}
	return Fill(a, xdist.Categorical{Weights: values}, src)
}
