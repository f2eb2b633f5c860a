package fastfloat

import (
	"fmt"
	"strconv"
)

// String formats f like %v formats the native value.
func (f Float[T]) String() string {
	bitSize := 64
	if _, ok := any(f.v).(float32); ok {
		bitSize = 32
	}
	return strconv.FormatFloat(float64(f.v), 'g', -1, bitSize)
}

// Format implements fmt.Formatter by formatting the native value with the
// same verb, flags, width and precision. %s is treated as %v.
func (f Float[T]) Format(s fmt.State, verb rune) {
	if verb == 's' {
		verb = 'v'
	}
	fmt.Fprintf(s, fmt.FormatString(s, verb), f.v)
}
