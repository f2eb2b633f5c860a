package fastfloat

import "math"

// Each result is converted to T explicitly so it is rounded exactly like the
// native operation and never silently fused with a neighbor.

// Add returns f + o.
func (f Float[T]) Add(o Float[T]) Float[T] {
	return wrap(T(f.v + o.v))
}

// Sub returns f - o.
func (f Float[T]) Sub(o Float[T]) Float[T] {
	return wrap(T(f.v - o.v))
}

// Mul returns f * o.
func (f Float[T]) Mul(o Float[T]) Float[T] {
	return wrap(T(f.v * o.v))
}

// Div returns f / o. Division by zero breaks the contract.
func (f Float[T]) Div(o Float[T]) Float[T] {
	return wrap(T(f.v / o.v))
}

// Rem returns the floating-point remainder of f / o with the sign of f,
// as [math.Mod]. A zero divisor breaks the contract.
func (f Float[T]) Rem(o Float[T]) Float[T] {
	return wrap(mod(f.v, o.v))
}

// AddScalar returns f + x.
func (f Float[T]) AddScalar(x T) Float[T] {
	return wrap(T(f.v + x))
}

// SubScalar returns f - x.
func (f Float[T]) SubScalar(x T) Float[T] {
	return wrap(T(f.v - x))
}

// MulScalar returns f * x.
func (f Float[T]) MulScalar(x T) Float[T] {
	return wrap(T(f.v * x))
}

// DivScalar returns f / x.
func (f Float[T]) DivScalar(x T) Float[T] {
	return wrap(T(f.v / x))
}

// RemScalar returns the remainder of f / x, as [Float.Rem].
func (f Float[T]) RemScalar(x T) Float[T] {
	return wrap(mod(f.v, x))
}

// Neg returns -f.
func (f Float[T]) Neg() Float[T] {
	return Float[T]{v: -f.v}
}

func mod[T Native](a, b T) T {
	if x, ok := any(a).(float32); ok {
		// fmod is exact, so the float64 result is representable in float32.
		return T(math.Mod(float64(x), float64(b)))
	}
	return T(math.Mod(float64(a), float64(b)))
}

// apply evaluates the width-specific implementation of a unary function.
func apply[T Native](x T, f32 func(float32) float32, f64 func(float64) float64) T {
	if v, ok := any(x).(float32); ok {
		return T(f32(v))
	}
	return T(f64(float64(x)))
}

// via64 lifts a float64 function to float32 for functions whose float64
// result rounds to the correctly rounded float32 result.
func via64(fn func(float64) float64) func(float32) float32 {
	return func(x float32) float32 {
		return float32(fn(float64(x)))
	}
}
