//go:build fastfloatdebug

package fastfloat

import (
	"errors"
	"math"
	"testing"
)

func requireNotFinitePanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrNotFinite) {
			t.Fatalf("%s: recovered %v, want panic wrapping ErrNotFinite", name, r)
		}
	}()
	fn()
}

func TestDebugAssertions(t *testing.T) {
	requireNotFinitePanic(t, "New(NaN)", func() { _ = NewF64(math.NaN()) })
	requireNotFinitePanic(t, "New(+Inf)", func() { _ = NewF32(float32(math.Inf(1))) })
	requireNotFinitePanic(t, "overflowing Mul", func() {
		_ = NewF64(math.MaxFloat64).Mul(NewF64(2))
	})
	requireNotFinitePanic(t, "Div by zero", func() {
		_ = NewF32(1).Div(Zero[float32]())
	})
	requireNotFinitePanic(t, "Sqrt of negative", func() { _ = NewF64(-1).Sqrt() })
	requireNotFinitePanic(t, "overflowing Sum", func() {
		_ = Sum([]F64{NewF64(math.MaxFloat64), NewF64(math.MaxFloat64)})
	})
}

func TestDebugAssertionsAllowFinite(t *testing.T) {
	got := NewF64(1).Add(NewF64(2)).Mul(NewF64(3)).DivScalar(4)
	if got.Value() != 2.25 {
		t.Fatalf("got %v, want 2.25", got)
	}
}
