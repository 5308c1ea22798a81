package xdist

import (
	"sort"

	"github.com/omeyang/xrandom/pkg/random/xbitgen"
	"github.com/omeyang/xrandom/pkg/random/xrerr"
)

var (
	_ Count    = Categorical{}
	_ Preparer = Categorical{}
	_ Count    = (*categoricalTable)(nil)
)

// Categorical 按非负权重选择下标的离散分布，权重不需要归一化。
type Categorical struct {
	Weights []float64
}

// Kind 返回 Categorical 对应的分布种类。
func (Categorical) Kind() Kind { return KindDiscrete }

// Validate 权重必须非空且非负，总和为正。
func (d Categorical) Validate() error {
	_, err := newCategoricalTable(d.Weights)
	return err
}

// Prepare 校验权重并构建累积表，返回的分布可重复抽样。
func (d Categorical) Prepare() (Distribution, error) {
	return newCategoricalTable(d.Weights)
}

// Sample 单次抽样，每次都会重建累积表；批量抽样请先 Prepare。
func (d Categorical) Sample(src xbitgen.Source) int64 {
	t, err := newCategoricalTable(d.Weights)
	if err != nil {
		return 0
	}
	return t.Sample(src)
}

type categoricalTable struct {
	cum  []float64
	last int
}

func newCategoricalTable(weights []float64) (*categoricalTable, error) {
	if len(weights) == 0 {
		return nil, xrerr.Shape("length of weight must be > 0")
	}
	cum := make([]float64, len(weights))
	var total float64
	last := -1
	for i, w := range weights {
		if !(w >= 0) {
			return nil, xrerr.Parameter("weight must be non-negative values")
		}
		total += w
		cum[i] = total
		if w > 0 {
			last = i
		}
	}
	if !(total > 0) {
		return nil, xrerr.Parameter("sum of weight must be > 0")
	}
	return &categoricalTable{cum: cum, last: last}, nil
}

func (*categoricalTable) Kind() Kind { return KindDiscrete }

func (*categoricalTable) Validate() error { return nil }

func (t *categoricalTable) Sample(src xbitgen.Source) int64 {
	total := t.cum[len(t.cum)-1]
	u := xbitgen.Float64(src) * total
	i := sort.Search(len(t.cum), func(i int) bool { return t.cum[i] > u })
	if i > t.last {
		i = t.last
	}
	return int64(i)
}
