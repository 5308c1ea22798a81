package xbitgen

import "gonum.org/v1/gonum/mathext/prng"

// MT32Source 32 位 Mersenne Twister（MT19937）。
type MT32Source struct {
	mt *prng.MT19937
}

// NewMT32Source 创建并播种 MT32 生成器。
func NewMT32Source(seed Seed) *MT32Source {
	m := &MT32Source{mt: prng.NewMT19937()}
	m.Seed(seed)
	return m
}

// Algorithm 返回 MT32。
func (m *MT32Source) Algorithm() Algorithm {
	return MT32
}

// Seed 32 位以内的种子走 init_genrand，更长的种子按 32 位字走 init_by_array。
func (m *MT32Source) Seed(seed Seed) {
	words := seed.words32()
	if len(words) == 1 {
		m.mt.Seed(uint64(words[0]))
		return
	}
	m.mt.SeedFromKeys(words)
}

// Uint32 返回原生 32 位输出。
func (m *MT32Source) Uint32() uint32 {
	return m.mt.Uint32()
}

// Uint64 拼接两次 32 位输出。
func (m *MT32Source) Uint64() uint64 {
	return m.mt.Uint64()
}

// MT64Source 64 位 Mersenne Twister（MT19937-64）。
type MT64Source struct {
	mt *prng.MT19937_64
}

// NewMT64Source 创建并播种 MT64 生成器。
func NewMT64Source(seed Seed) *MT64Source {
	m := &MT64Source{mt: prng.NewMT19937_64()}
	m.Seed(seed)
	return m
}

// Algorithm 返回 MT64。
func (m *MT64Source) Algorithm() Algorithm {
	return MT64
}

// Seed 64 位以内的种子走 init_genrand64，更长的种子按 64 位字走 init_by_array64。
func (m *MT64Source) Seed(seed Seed) {
	words := seed.words64()
	if len(words) == 1 {
		m.mt.Seed(words[0])
		return
	}
	m.mt.SeedFromKeys(words)
}

// Uint64 返回原生 64 位输出。
func (m *MT64Source) Uint64() uint64 {
	return m.mt.Uint64()
}

// Uint32 截断 64 位输出。
func (m *MT64Source) Uint32() uint32 {
	return uint32(m.mt.Uint64())
}
