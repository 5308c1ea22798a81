package xbitgen

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math/big"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/omeyang/xrandom/pkg/random/xrerr"
)

// Seed 任意精度的非负整数种子。
//
// 零值表示 0。Seed 是值语义：构造和读取时都会复制底层的 big.Int。
type Seed struct {
	v *big.Int
}

// SeedFromUint64 由 uint64 创建种子。
func SeedFromUint64(u uint64) Seed {
	return Seed{v: new(big.Int).SetUint64(u)}
}

// SeedFromBigInt 由 big.Int 创建种子，负数返回参数错误。
func SeedFromBigInt(b *big.Int) (Seed, error) {
	if b == nil {
		return Seed{}, nil
	}
	if b.Sign() < 0 {
		return Seed{}, xrerr.Parameter("seed must be a non-negative value")
	}
	return Seed{v: new(big.Int).Set(b)}, nil
}

// ParseSeed 解析十进制或带前缀（0x / 0o / 0b）的整数文本。
func ParseSeed(s string) (Seed, error) {
	text := strings.TrimSpace(s)
	b, ok := new(big.Int).SetString(text, 0)
	if !ok {
		return Seed{}, xrerr.Parameter("invalid seed: %q", s)
	}
	return SeedFromBigInt(b)
}

// SeedFromKey 由字符串键派生种子（xxhash64），同一个键在任何进程中得到相同种子。
func SeedFromKey(key string) Seed {
	return SeedFromUint64(xxhash.Sum64String(key))
}

// EntropySeed 从系统熵源读取 64 位种子。
func EntropySeed() (Seed, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return Seed{}, fmt.Errorf("xbitgen: read entropy: %w", err)
	}
	return SeedFromUint64(binary.LittleEndian.Uint64(buf[:])), nil
}

// BigInt 返回种子的副本。
func (s Seed) BigInt() *big.Int {
	if s.v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(s.v)
}

// Uint64 返回种子的低 64 位。
func (s Seed) Uint64() uint64 {
	return s.words64()[0]
}

// BitLen 返回种子的有效位数，0 的位数为 0。
func (s Seed) BitLen() int {
	if s.v == nil {
		return 0
	}
	return s.v.BitLen()
}

// Equal 报告两个种子是否相等。
func (s Seed) Equal(o Seed) bool {
	return s.BigInt().Cmp(o.BigInt()) == 0
}

// String 返回十进制表示。
func (s Seed) String() string {
	if s.v == nil {
		return "0"
	}
	return s.v.String()
}

// MarshalText 实现 encoding.TextMarshaler。
func (s Seed) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler，接受 ParseSeed 支持的格式。
func (s *Seed) UnmarshalText(data []byte) error {
	parsed, err := ParseSeed(string(data))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// words64 按低位在前返回 64 位字，至少包含一个字。
func (s Seed) words64() []uint64 {
	b := s.bytes()
	if len(b) == 0 {
		return []uint64{0}
	}
	words := make([]uint64, (len(b)+7)/8)
	for i := range b {
		words[i/8] |= uint64(b[len(b)-1-i]) << (8 * (i % 8))
	}
	return words
}

// words32 按低位在前返回 32 位字，至少包含一个字。
func (s Seed) words32() []uint32 {
	b := s.bytes()
	if len(b) == 0 {
		return []uint32{0}
	}
	words := make([]uint32, (len(b)+3)/4)
	for i := range b {
		words[i/4] |= uint32(b[len(b)-1-i]) << (8 * (i % 4))
	}
	return words
}

// bytes 返回大端字节序，不含前导零。
func (s Seed) bytes() []byte {
	if s.v == nil {
		return nil
	}
	return s.v.Bytes()
}
