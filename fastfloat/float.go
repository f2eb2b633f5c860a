package fastfloat

import "github.com/cwbudde/algo-fastfloat/internal/floatbits"

// Native is the set of floating-point types Float can wrap.
type Native interface {
	float32 | float64
}

// Number is the set of built-in numeric types accepted by the named
// conversion constructors.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Float wraps a native float that the caller guarantees to be finite and not NaN.
// The zero value is 0. Float is a plain value and safe for concurrent use.
type Float[T Native] struct {
	v T
}

// F32 and F64 are the two instantiations of Float.
type (
	F32 = Float[float32]
	F64 = Float[float64]
)

// wrap is the single place a Float is built from a raw value.
func wrap[T Native](v T) Float[T] {
	assertFinite(v)
	return Float[T]{v: v}
}

// New wraps v without validation.
func New[T Native](v T) Float[T] {
	return wrap(v)
}

// NewF32 wraps a float32 without validation.
func NewF32(v float32) F32 {
	return wrap(v)
}

// NewF64 wraps a float64 without validation.
func NewF64(v float64) F64 {
	return wrap(v)
}

// F32From converts any integer or float to an F32 with Go's conversion rules.
func F32From[N Number](n N) F32 {
	return wrap(float32(n))
}

// F64From converts any integer or float to an F64 with Go's conversion rules.
func F64From[N Number](n N) F64 {
	return wrap(float64(n))
}

// Zero returns 0.
func Zero[T Native]() Float[T] {
	return Float[T]{}
}

// One returns 1.
func One[T Native]() Float[T] {
	return Float[T]{v: 1}
}

// Value returns the wrapped native value.
func (f Float[T]) Value() T {
	return f.v
}

// F32 converts f to 32-bit width, rounding to nearest.
// Values beyond the float32 range become infinite and break the contract.
func (f Float[T]) F32() F32 {
	return wrap(float32(f.v))
}

// F64 converts f to 64-bit width. The conversion is exact.
func (f Float[T]) F64() F64 {
	return wrap(float64(f.v))
}

// IsZero reports whether f is +0 or -0.
func (f Float[T]) IsZero() bool {
	return f.v == 0
}

// IsOne reports whether f is exactly 1.
func (f Float[T]) IsOne() bool {
	return f.v == 1
}

// IsFinite reports whether the wrapped value actually honors the contract.
// It is meant for diagnostics; correct code never needs it.
func (f Float[T]) IsFinite() bool {
	return floatbits.IsFinite(f.v)
}
