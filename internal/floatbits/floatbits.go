// Package floatbits describes the IEEE-754 binary32 and binary64 layouts and
// reinterprets values as their raw bit patterns.
package floatbits

import "math"

// Float is the set of native binary floating-point types.
type Float interface {
	float32 | float64
}

// Format holds the field widths and exponent bias of a binary format.
type Format struct {
	Width        uint
	MantissaBits uint
	ExponentBits uint
	Bias         int
}

var (
	Binary32 = Format{Width: 32, MantissaBits: 23, ExponentBits: 8, Bias: 127}
	Binary64 = Format{Width: 64, MantissaBits: 52, ExponentBits: 11, Bias: 1023}
)

// FormatOf returns the layout of T.
func FormatOf[T Float]() Format {
	if Is32[T]() {
		return Binary32
	}
	return Binary64
}

// Is32 reports whether T is float32.
func Is32[T Float]() bool {
	var zero T
	_, ok := any(zero).(float32)
	return ok
}

// ExponentMask returns the exponent field mask, already shifted into place.
func (f Format) ExponentMask() uint64 {
	return (uint64(1)<<f.ExponentBits - 1) << f.MantissaBits
}

// InfBits returns the bit pattern of +Inf.
func (f Format) InfBits() uint64 {
	return f.ExponentMask()
}

// MaxFiniteBits returns the bit pattern of the largest finite value.
func (f Format) MaxFiniteBits() uint64 {
	return f.InfBits() - 1
}

// Bits returns the raw bit pattern of x, zero-extended to 64 bits.
func Bits[T Float](x T) uint64 {
	if v, ok := any(x).(float32); ok {
		return uint64(math.Float32bits(v))
	}
	return math.Float64bits(float64(x))
}

// FromBits reinterprets the low Width bits of b as a T.
func FromBits[T Float](b uint64) T {
	if Is32[T]() {
		return T(math.Float32frombits(uint32(b)))
	}
	return T(math.Float64frombits(b))
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite[T Float](x T) bool {
	f := FormatOf[T]()
	return Bits(x)&f.ExponentMask() != f.ExponentMask()
}
