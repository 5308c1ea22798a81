package xarray

import (
	"strings"

	"github.com/omeyang/xrandom/pkg/random/xrerr"
)

// DType 数组元素类型标签。
type DType uint8

// 支持的元素类型。
const (
	Invalid DType = iota
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
)

var dtypeNames = [...]string{
	Invalid: "invalid",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Float32: "float32",
	Float64: "float64",
}

var dtypeSizes = [...]int{
	Int8: 1, Int16: 2, Int32: 4, Int64: 8,
	Uint8: 1, Uint16: 2, Uint32: 4, Uint64: 8,
	Float32: 4, Float64: 8,
}

var dtypeAliases = map[string]DType{
	"sfloat": Float32,
	"dfloat": Float64,
}

// String 返回类型名称。
func (d DType) String() string {
	if int(d) < len(dtypeNames) {
		return dtypeNames[d]
	}
	return "invalid"
}

// Valid 报告 d 是否为受支持的元素类型。
func (d DType) Valid() bool {
	return d > Invalid && d <= Float64
}

// IsFloat 报告 d 是否为浮点类型。
func (d DType) IsFloat() bool {
	return d == Float32 || d == Float64
}

// IsInteger 报告 d 是否为整数类型（有符号或无符号）。
func (d DType) IsInteger() bool {
	return d >= Int8 && d <= Uint64
}

// Size 返回元素字节数，无效类型返回 0。
func (d DType) Size() int {
	if d.Valid() {
		return dtypeSizes[d]
	}
	return 0
}

// DTypes 返回全部受支持的元素类型。
func DTypes() []DType {
	return []DType{Int8, Int16, Int32, Int64, Uint8, Uint16, Uint32, Uint64, Float32, Float64}
}

// ParseDType 解析类型名称（忽略大小写），未知名称返回参数错误。
func ParseDType(name string) (DType, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if d, ok := dtypeAliases[key]; ok {
		return d, nil
	}
	for _, d := range DTypes() {
		if d.String() == key {
			return d, nil
		}
	}
	return Invalid, xrerr.Parameter("wrong dtype is given: %s", name)
}

// Element 支持的元素类型约束。
type Element interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64
}

// DTypeOf 返回 Go 类型 T 对应的元素类型标签。
func DTypeOf[T Element]() DType {
	var zero T
	switch any(zero).(type) {
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case float32:
		return Float32
	default:
		return Float64
	}
}
