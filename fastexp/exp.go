package fastexp

import (
	"math"

	"github.com/cwbudde/algo-fastfloat/internal/floatbits"
)

// Float is the set of native floating-point types the approximations accept.
type Float interface {
	float32 | float64
}

// Exponentiable is implemented by wrapped scalars that carry their own
// approximate exponentials. Native floats use [Exp] and [Exp2] directly.
type Exponentiable[S any] interface {
	FastExp() S
	FastExp2() S
}

const (
	ln2 = 0.693147180559945309417232121458

	// minimaxShift moves the linear mantissa down so the relative error at the
	// octave ends equals the error at the interior peak (x = 1/ln2 - 1 + σ).
	minimaxShift = 0.0356018644044898
)

// layout holds the scale and bias constants for one binary format.
type layout struct {
	expScale  float64 // 2^M / ln 2
	exp2Scale float64 // 2^M
	offset    float64 // (B - σ) * 2^M
	limit     float64 // bit pattern of +Inf
	maxBits   uint64
}

func newLayout(f floatbits.Format) layout {
	m := math.Ldexp(1, int(f.MantissaBits))
	return layout{
		expScale:  m / ln2,
		exp2Scale: m,
		offset:    (float64(f.Bias) - minimaxShift) * m,
		limit:     float64(f.InfBits()),
		maxBits:   f.MaxFiniteBits(),
	}
}

var (
	layout32 = newLayout(floatbits.Binary32)
	layout64 = newLayout(floatbits.Binary64)

	expScale32  = float32(layout32.expScale)
	exp2Scale32 = float32(layout32.exp2Scale)
	offset32    = float32(layout32.offset)
	limit32     = float32(layout32.limit)
)

// Exp returns an approximation of e^x with a relative error below 4% inside
// the normal range of T.
func Exp[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(bits32(v*expScale32 + offset32))
	}
	return T(bits64(float64(x)*layout64.expScale + layout64.offset))
}

// Exp2 returns an approximation of 2^x with the same error profile as [Exp].
func Exp2[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(bits32(v*exp2Scale32 + offset32))
	}
	return T(bits64(float64(x)*layout64.exp2Scale + layout64.offset))
}

// bits32 reinterprets the biased, scaled value v as a float32. Values below
// zero flush to +0 and values reaching the infinity pattern saturate.
func bits32(v float32) float32 {
	switch {
	case v <= 0:
		return 0
	case v >= limit32:
		return math.Float32frombits(uint32(layout32.maxBits))
	}
	return math.Float32frombits(uint32(v))
}

func bits64(v float64) float64 {
	switch {
	case v <= 0:
		return 0
	case v >= layout64.limit:
		return math.Float64frombits(layout64.maxBits)
	}
	return math.Float64frombits(uint64(v))
}
