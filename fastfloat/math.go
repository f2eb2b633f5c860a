package fastfloat

import (
	"math"

	"github.com/chewxy/math32"
)

// Abs returns |f|.
func (f Float[T]) Abs() Float[T] {
	return wrap(apply(f.v, math32.Abs, math.Abs))
}

// Ceil returns the least integer value greater than or equal to f.
func (f Float[T]) Ceil() Float[T] {
	return wrap(apply(f.v, math32.Ceil, math.Ceil))
}

// Floor returns the greatest integer value less than or equal to f.
func (f Float[T]) Floor() Float[T] {
	return wrap(apply(f.v, math32.Floor, math.Floor))
}

// Trunc returns the integer value of f, rounding toward zero.
func (f Float[T]) Trunc() Float[T] {
	return wrap(apply(f.v, via64(math.Trunc), math.Trunc))
}

// Round returns the nearest integer, rounding half away from zero.
func (f Float[T]) Round() Float[T] {
	return wrap(apply(f.v, via64(math.Round), math.Round))
}

// Sqrt returns the square root of f. f must not be negative.
func (f Float[T]) Sqrt() Float[T] {
	return wrap(apply(f.v, math32.Sqrt, math.Sqrt))
}

// Exp returns e^f computed by the platform routine. See [Float.FastExp] for
// the approximation.
func (f Float[T]) Exp() Float[T] {
	return wrap(apply(f.v, math32.Exp, math.Exp))
}

// Ln returns the natural logarithm of f. f must be positive.
func (f Float[T]) Ln() Float[T] {
	return wrap(apply(f.v, math32.Log, math.Log))
}

// Powi returns f raised to the integer power n.
func (f Float[T]) Powi(n int) Float[T] {
	return f.Powf(T(n))
}

// Powf returns f raised to the power p.
func (f Float[T]) Powf(p T) Float[T] {
	if x, ok := any(f.v).(float32); ok {
		return wrap(T(math32.Pow(x, float32(p))))
	}
	return wrap(T(math.Pow(float64(f.v), float64(p))))
}

// MulAdd returns f*a + b with a single rounding for float64. For float32 the
// fused float64 result is rounded once more, which can differ from a true
// float32 FMA in the last bit.
func (f Float[T]) MulAdd(a, b Float[T]) Float[T] {
	return wrap(T(math.FMA(float64(f.v), float64(a.v), float64(b.v))))
}
