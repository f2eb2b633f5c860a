//go:build fastfloatdebug

package fastfloat

import (
	"fmt"

	"github.com/cwbudde/algo-fastfloat/internal/floatbits"
)

const debugChecks = true

func assertFinite[T Native](v T) {
	if !floatbits.IsFinite(v) {
		panic(fmt.Errorf("%w: %v", ErrNotFinite, v))
	}
}
