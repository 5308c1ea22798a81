package xbitgen

import "math/bits"

const (
	pcg32Multiplier = 6364136223846793005
	pcg32Increment  = 1442695040888963407
)

// PCG32Source 64 位状态、32 位输出的 PCG 生成器（XSH-RR）。
type PCG32Source struct {
	state uint64
	inc   uint64
}

// NewPCG32Source 创建并播种 PCG32 生成器。
func NewPCG32Source(seed Seed) *PCG32Source {
	p := new(PCG32Source)
	p.Seed(seed)
	return p
}

// Algorithm 返回 PCG32。
func (p *PCG32Source) Algorithm() Algorithm {
	return PCG32
}

// Seed 第 0 个 64 位字作为初始状态，第 1 个字（若存在）选择流。
func (p *PCG32Source) Seed(seed Seed) {
	words := seed.words64()
	inc := uint64(pcg32Increment)
	if len(words) > 1 {
		inc = words[1]<<1 | 1
	}
	p.inc = inc
	p.state = 0
	p.step()
	p.state += words[0]
	p.step()
}

func (p *PCG32Source) step() {
	p.state = p.state*pcg32Multiplier + p.inc
}

// Uint32 对推进前的状态做 XSH-RR 置换。
func (p *PCG32Source) Uint32() uint32 {
	old := p.state
	p.step()
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	return bits.RotateLeft32(xorshifted, -int(old>>59))
}

// Uint64 拼接两次输出，先抽取的在高 32 位。
func (p *PCG32Source) Uint64() uint64 {
	hi := uint64(p.Uint32())
	lo := uint64(p.Uint32())
	return hi<<32 | lo
}
