package xrerr

import (
	"errors"
	"fmt"
	"strconv"
)

// 错误分类哨兵，用于 errors.Is 匹配。
var (
	// ErrConfiguration 构造配置错误（如不支持的算法名称）
	ErrConfiguration = errors.New("xrandom: configuration error")

	// ErrParameter 分布参数超出定义域
	ErrParameter = errors.New("xrandom: parameter error")

	// ErrTypeMismatch 数组元素类型与分布要求不匹配
	ErrTypeMismatch = errors.New("xrandom: type mismatch")

	// ErrShape 数组形状不满足要求
	ErrShape = errors.New("xrandom: shape error")
)

// Kind 错误分类。
type Kind uint8

const (
	// KindUnknown 非本包产生的错误
	KindUnknown Kind = iota
	// KindConfiguration 构造配置错误
	KindConfiguration
	// KindParameter 参数错误
	KindParameter
	// KindTypeMismatch 类型不匹配
	KindTypeMismatch
	// KindShape 形状错误
	KindShape
)

// String 返回分类名称。
func (k Kind) String() string {
	switch k {
	case KindUnknown:
		return "unknown"
	case KindConfiguration:
		return "configuration"
	case KindParameter:
		return "parameter"
	case KindTypeMismatch:
		return "type_mismatch"
	case KindShape:
		return "shape"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindConfiguration:
		return ErrConfiguration
	case KindParameter:
		return ErrParameter
	case KindTypeMismatch:
		return ErrTypeMismatch
	case KindShape:
		return ErrShape
	default:
		return nil
	}
}

// Error 引擎返回的具体错误。
//
// Msg 是被违反的约束本身，例如 "p must be > 0 and < 1"，
// 调用方可以直接展示给用户。
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// Is 让 errors.Is(err, ErrParameter) 等分类匹配生效。
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// Configuration 创建构造配置错误。
func Configuration(format string, args ...any) *Error {
	return newError(KindConfiguration, format, args...)
}

// Parameter 创建参数错误。
func Parameter(format string, args ...any) *Error {
	return newError(KindParameter, format, args...)
}

// TypeMismatch 创建类型不匹配错误。
func TypeMismatch(format string, args ...any) *Error {
	return newError(KindTypeMismatch, format, args...)
}

// Shape 创建形状错误。
func Shape(format string, args ...any) *Error {
	return newError(KindShape, format, args...)
}

func newError(kind Kind, format string, args ...any) *Error {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return &Error{Kind: kind, Msg: msg}
}

// KindOf 返回 err 链上第一个 *Error 的分类，没有则返回 KindUnknown。
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
