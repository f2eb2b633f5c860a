package fastfloat

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-fastfloat/internal/floatbits"
)

// ErrNotFinite reports a NaN or infinite value where a Float was expected.
var ErrNotFinite = errors.New("fastfloat: value is not finite")

// NewChecked wraps v after verifying that it is finite and not NaN.
// Use it where values enter from outside the program; inside, use [New].
func NewChecked[T Native](v T) (Float[T], error) {
	if !floatbits.IsFinite(v) {
		return Float[T]{}, fmt.Errorf("%w: %v", ErrNotFinite, v)
	}
	return Float[T]{v: v}, nil
}

// MustNew is like [NewChecked] but panics if v is not finite.
// It simplifies safe initialization of global variables.
func MustNew[T Native](v T) Float[T] {
	f, err := NewChecked(v)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v) failed: %v", v, err))
	}
	return f
}
