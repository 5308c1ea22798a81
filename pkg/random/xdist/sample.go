package xdist

import (
	"math"

	"github.com/omeyang/xrandom/pkg/random/xbitgen"
)

// stdNormal 极坐标法，丢弃第二个变量以保持无状态。
func stdNormal(src xbitgen.Source) float64 {
	for {
		x := 2*xbitgen.Float64(src) - 1
		y := 2*xbitgen.Float64(src) - 1
		s := x*x + y*y
		if s > 0 && s < 1 {
			return x * math.Sqrt(-2*math.Log(s)/s)
		}
	}
}

// stdGamma 形状为 k、尺度为 1 的伽马变量。
func stdGamma(src xbitgen.Source, k float64) float64 {
	if k < 1 {
		g := stdGamma(src, k+1)
		return g * math.Pow(xbitgen.Float64Open(src), 1/k)
	}
	d := k - 1.0/3
	c := 1 / math.Sqrt(9*d)
	for {
		var x, v float64
		for {
			x = stdNormal(src)
			v = 1 + c*x
			if v > 0 {
				break
			}
		}
		v = v * v * v
		u := xbitgen.Float64Open(src)
		x2 := x * x
		if u < 1-0.0331*x2*x2 {
			return d * v
		}
		if math.Log(u) < 0.5*x2+d*(1-v+math.Log(v)) {
			return d * v
		}
	}
}

func chiSquare(src xbitgen.Source, df float64) float64 {
	return 2 * stdGamma(src, df/2)
}

// clampInt64 把非负浮点截断为 int64，超出范围时饱和。
func clampInt64(f float64) int64 {
	if f >= math.MaxInt64 {
		return math.MaxInt64
	}
	if f <= 0 || math.IsNaN(f) {
		return 0
	}
	return int64(f)
}

// poissonMeanMax 均值上限，保证 PTRS 的候选值留在 int64 范围内。
var poissonMeanMax = math.MaxInt64 - 10*math.Sqrt(math.MaxInt64)

func poisson(src xbitgen.Source, lam float64) int64 {
	if lam < 10 {
		return poissonMult(src, lam)
	}
	return poissonPTRS(src, lam)
}

// poissonMult Knuth 乘法。
func poissonMult(src xbitgen.Source, lam float64) int64 {
	enlam := math.Exp(-lam)
	var x int64
	prod := 1.0
	for {
		prod *= xbitgen.Float64(src)
		if prod <= enlam {
			return x
		}
		x++
	}
}

// poissonPTRS Hörmann 变换拒绝法。
func poissonPTRS(src xbitgen.Source, lam float64) int64 {
	slam := math.Sqrt(lam)
	loglam := math.Log(lam)
	b := 0.931 + 2.53*slam
	a := -0.059 + 0.02483*b
	invalpha := 1.1239 + 1.1328/(b-3.4)
	vr := 0.9277 - 3.6224/(b-2)
	for {
		u := xbitgen.Float64(src) - 0.5
		v := xbitgen.Float64(src)
		us := 0.5 - math.Abs(u)
		if us <= 0 {
			continue
		}
		kf := math.Floor((2*a/us+b)*u + lam + 0.43)
		if us >= 0.07 && v <= vr {
			return clampInt64(kf)
		}
		if kf < 0 || (us < 0.013 && v > us) {
			continue
		}
		lg, _ := math.Lgamma(kf + 1)
		if math.Log(v)+math.Log(invalpha)-math.Log(a/(us*us)+b) <= -lam+kf*loglam-lg {
			return clampInt64(kf)
		}
	}
}

func binomial(src xbitgen.Source, n int64, p float64) int64 {
	if n == 0 || p == 0 {
		return 0
	}
	if p == 1 {
		return n
	}
	r := min(p, 1-p)
	var k int64
	if float64(n)*r < 30 {
		k = binomialInversion(src, n, r)
	} else {
		k = binomialBTPE(src, n, r)
	}
	if p > 0.5 {
		k = n - k
	}
	return k
}

func binomialInversion(src xbitgen.Source, n int64, p float64) int64 {
	nf := float64(n)
	q := 1 - p
	// p 很小时 1-p 会舍入为 1，用 Log1p 保留 (1-p)^n 的精度
	qn := math.Exp(nf * math.Log1p(-p))
	np := nf * p
	bound := min(nf, np+10*math.Sqrt(np*q+1))

	var x int64
	px := qn
	u := xbitgen.Float64(src)
	for u > px {
		x++
		if float64(x) > bound {
			x = 0
			px = qn
			u = xbitgen.Float64(src)
			continue
		}
		u -= px
		px = (nf - float64(x) + 1) * p * px / (float64(x) * q)
	}
	return x
}

// binomialBTPE Kachitvichyanukul–Schmeiser 三角-平行四边形-指数拒绝法，要求 p <= 0.5。
func binomialBTPE(src xbitgen.Source, n int64, p float64) int64 {
	nf := float64(n)
	r := p
	q := 1 - r
	fm := nf*r + r
	m := math.Floor(fm)
	p1 := math.Floor(2.195*math.Sqrt(nf*r*q)-4.6*q) + 0.5
	xm := m + 0.5
	xl := xm - p1
	xr := xm + p1
	c := 0.134 + 20.5/(15.3+m)
	a := (fm - xl) / (fm - xl*r)
	laml := a * (1 + a/2)
	a = (xr - fm) / (xr * q)
	lamr := a * (1 + a/2)
	p2 := p1 * (1 + 2*c)
	p3 := p2 + c/laml
	p4 := p3 + c/lamr
	nrq := nf * r * q

	for {
		u := xbitgen.Float64(src) * p4
		v := xbitgen.Float64(src)
		var y float64
		switch {
		case u <= p1:
			return int64(math.Floor(xm - p1*v + u))
		case u <= p2:
			x := xl + (u-p1)/c
			v = v*c + 1 - math.Abs(m-x+0.5)/p1
			if v > 1 {
				continue
			}
			y = math.Floor(x)
		case u <= p3:
			y = math.Floor(xl + math.Log(v)/laml)
			if y < 0 || v == 0 {
				continue
			}
			v *= (u - p2) * laml
		default:
			y = math.Floor(xr - math.Log(v)/lamr)
			if y > nf || v == 0 {
				continue
			}
			v *= (u - p3) * lamr
		}
		if btpeAccept(y, v, m, xm, nf, r, q, nrq) {
			return int64(y)
		}
	}
}

func btpeAccept(y, v, m, xm, n, r, q, nrq float64) bool {
	k := math.Abs(y - m)
	if !(k > 20 && k < nrq/2-1) {
		// 显式递推 f(y)/f(m)
		s := r / q
		a := s * (n + 1)
		f := 1.0
		if m < y {
			for i := m + 1; i <= y; i++ {
				f *= a/i - s
			}
		} else if m > y {
			for i := y + 1; i <= m; i++ {
				f /= a/i - s
			}
		}
		return v <= f
	}

	// 挤压
	rho := (k / nrq) * ((k*(k/3+0.625)+1.0/6)/nrq + 0.5)
	t := -k * k / (2 * nrq)
	lv := math.Log(v)
	if lv < t-rho {
		return true
	}
	if lv > t+rho {
		return false
	}

	x1 := y + 1
	f1 := m + 1
	z := n + 1 - m
	w := n - y + 1
	bound := xm*math.Log(f1/x1) +
		(n-m+0.5)*math.Log(z/w) +
		(y-m)*math.Log(w*r/(x1*q)) +
		stirlingTail(f1) + stirlingTail(z) + stirlingTail(x1) + stirlingTail(w)
	return lv <= bound
}

// stirlingTail Stirling 级数修正项。
func stirlingTail(x float64) float64 {
	x2 := x * x
	return (13680 - (462-(132-(99-140/x2)/x2)/x2)/x2) / x / 166320
}
