package xbitgen

import (
	"strings"

	"github.com/omeyang/xrandom/pkg/random/xrerr"
)

// Algorithm 位生成器算法名称。
type Algorithm string

const (
	// PCG32 64 位状态 PCG，XSH-RR 输出
	PCG32 Algorithm = "pcg32"
	// PCG64 128 位状态 PCG，XSL-RR 输出
	PCG64 Algorithm = "pcg64"
	// MT32 32 位 Mersenne Twister
	MT32 Algorithm = "mt32"
	// MT64 64 位 Mersenne Twister
	MT64 Algorithm = "mt64"
)

// DefaultAlgorithm 未指定算法时使用的算法。
const DefaultAlgorithm = PCG64

// String 返回算法名称。
func (a Algorithm) String() string {
	return string(a)
}

// Valid 报告 a 是否为受支持的算法。
func (a Algorithm) Valid() bool {
	switch a {
	case PCG32, PCG64, MT32, MT64:
		return true
	default:
		return false
	}
}

// Algorithms 返回全部受支持的算法。
func Algorithms() []Algorithm {
	return []Algorithm{PCG32, PCG64, MT32, MT64}
}

// ParseAlgorithm 解析算法名称，忽略首尾空白与大小写。
//
// 不支持的名称返回 xrerr.ErrConfiguration 分类的错误，错误信息包含原始输入。
func ParseAlgorithm(name string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	if !a.Valid() {
		return "", invalidAlgorithm(name)
	}
	return a, nil
}

func invalidAlgorithm(name string) error {
	return xrerr.Configuration("invalid algorithm: %q", name)
}
