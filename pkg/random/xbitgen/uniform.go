package xbitgen

import "math/bits"

const (
	float64Unit = 1.0 / (1 << 53)
	float64Max  = (1 << 53) - 1
	float64Half = 1.0 / (1 << 52)
	float32Unit = 1.0 / (1 << 24)
	float32Max  = (1 << 24) - 1
)

// Float64 返回 [0,1) 上的均匀浮点数，取 64 位输出的高 53 位。
func Float64(src Source) float64 {
	return float64(src.Uint64()>>11) * float64Unit
}

// Float64Closed 返回 [0,1] 上的均匀浮点数。
func Float64Closed(src Source) float64 {
	return float64(src.Uint64()>>11) / float64Max
}

// Float64Open 返回 (0,1) 上的均匀浮点数，可安全取对数。
//
// 使用高 52 位加半格偏移，使最大值 1-2^-53 可精确表示。
func Float64Open(src Source) float64 {
	return (float64(src.Uint64()>>12) + 0.5) * float64Half
}

// Float32 返回 [0,1) 上的均匀 float32，取 32 位输出的高 24 位。
func Float32(src Source) float32 {
	return float32(src.Uint32()>>8) * float32Unit
}

// Float32Closed 返回 [0,1] 上的均匀 float32。
func Float32Closed(src Source) float32 {
	return float32(src.Uint32()>>8) / float32Max
}

// Bounded 返回 [0,n) 上的无偏整数（Lemire 乘移位 + 拒绝），n 为 0 时返回 0。
func Bounded(src Source, n uint64) uint64 {
	if n == 0 {
		return 0
	}
	hi, lo := bits.Mul64(src.Uint64(), n)
	if lo < n {
		threshold := -n % n
		for lo < threshold {
			hi, lo = bits.Mul64(src.Uint64(), n)
		}
	}
	return hi
}

// Bounded32 返回 [0,n) 上的无偏 32 位整数，n 为 0 时返回 0。
func Bounded32(src Source, n uint32) uint32 {
	if n == 0 {
		return 0
	}
	m := uint64(src.Uint32()) * uint64(n)
	if uint32(m) < n {
		threshold := -n % n
		for uint32(m) < threshold {
			m = uint64(src.Uint32()) * uint64(n)
		}
	}
	return uint32(m >> 32)
}
