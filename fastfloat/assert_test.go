//go:build !fastfloatdebug

package fastfloat

import (
	"math"
	"testing"
)

func TestContractViolationDoesNotPanic(t *testing.T) {
	nan := NewF64(math.NaN())
	inf := NewF32(float32(math.Inf(1)))

	// Results are unspecified; the operations only have to return.
	_ = nan.Add(NewF64(1)).Mul(nan).Div(Zero[float64]())
	_ = inf.Sub(inf).Rem(Zero[float32]())
	_ = nan.FastExp()
	_ = inf.FastExp2()
	_ = Sum([]F64{nan, NewF64(1)})
	_ = nan.Cmp(NewF64(0))
	_ = NewF64(-1).Sqrt()
	_ = Zero[float64]().Ln()

	if nan.IsFinite() || inf.IsFinite() {
		t.Fatal("IsFinite should report the violation")
	}
}
