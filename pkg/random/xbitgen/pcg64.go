package xbitgen

import "math/bits"

// 128 位常量按 (高 64 位, 低 64 位) 拆分。
const (
	pcg64MulHi = 2549297995355413924
	pcg64MulLo = 4865540595714422341
	pcg64IncHi = 6364136223846793005
	pcg64IncLo = 1442695040888963407
)

// PCG64Source 128 位状态、64 位输出的 PCG 生成器（XSL-RR）。
type PCG64Source struct {
	hi, lo       uint64
	incHi, incLo uint64
}

// NewPCG64Source 创建并播种 PCG64 生成器。
func NewPCG64Source(seed Seed) *PCG64Source {
	p := new(PCG64Source)
	p.Seed(seed)
	return p
}

// Algorithm 返回 PCG64。
func (p *PCG64Source) Algorithm() Algorithm {
	return PCG64
}

// Seed 第 0、1 个 64 位字组成初始状态，第 2、3 个字（若存在）选择流。
func (p *PCG64Source) Seed(seed Seed) {
	words := make([]uint64, 4)
	copy(words, seed.words64())

	p.incHi, p.incLo = pcg64IncHi, pcg64IncLo
	if seed.BitLen() > 128 {
		p.incHi = words[3]<<1 | words[2]>>63
		p.incLo = words[2]<<1 | 1
	}

	p.hi, p.lo = 0, 0
	p.step()
	var carry uint64
	p.lo, carry = bits.Add64(p.lo, words[0], 0)
	p.hi, _ = bits.Add64(p.hi, words[1], carry)
	p.step()
}

// step state = state*mul + inc (mod 2^128)。
func (p *PCG64Source) step() {
	hi, lo := bits.Mul64(p.lo, pcg64MulLo)
	hi += p.hi*pcg64MulLo + p.lo*pcg64MulHi
	var carry uint64
	lo, carry = bits.Add64(lo, p.incLo, 0)
	hi, _ = bits.Add64(hi, p.incHi, carry)
	p.hi, p.lo = hi, lo
}

// Uint64 对推进前的状态做 XSL-RR 置换。
func (p *PCG64Source) Uint64() uint64 {
	hi, lo := p.hi, p.lo
	p.step()
	return bits.RotateLeft64(hi^lo, -int(hi>>58))
}

// Uint32 截断 64 位输出。
func (p *PCG64Source) Uint32() uint32 {
	return uint32(p.Uint64())
}
