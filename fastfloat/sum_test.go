package fastfloat

import (
	"slices"
	"testing"

	"github.com/cwbudde/algo-fastfloat/internal/testutil"
)

func TestSumMatchesNativeFold(t *testing.T) {
	vals := testutil.DeterministicMagnitudes(11, -40, 40, 4096)

	wrapped := make([]F64, len(vals))
	var native float64
	for i, v := range vals {
		wrapped[i] = NewF64(v)
		native = float64(native + v)
	}

	testutil.RequireSameBits(t, "Sum", Sum(wrapped).Value(), native)
	testutil.RequireSameBits(t, "SumSeq", SumSeq(slices.Values(wrapped)).Value(), native)
}

func TestSumMatchesNativeFold32(t *testing.T) {
	vals := testutil.DeterministicValues(12, 1000, 4096)

	wrapped := make([]F32, len(vals))
	var native float32
	for i, v := range vals {
		wrapped[i] = NewF32(float32(v))
		native = float32(native + float32(v))
	}

	testutil.RequireSameBits(t, "Sum", Sum(wrapped).Value(), native)
	testutil.RequireSameBits(t, "SumSeq", SumSeq(slices.Values(wrapped)).Value(), native)
}

func TestSumKeepsOrder(t *testing.T) {
	// Summing in this order loses the 1s; a reordering sum would keep them.
	in := []F64{NewF64(1e16), NewF64(1), NewF64(1), NewF64(-1e16)}
	var native float64
	for _, x := range in {
		native = float64(native + x.Value())
	}

	got := Sum(in)
	testutil.RequireSameBits(t, "Sum", got.Value(), native)
	if got.EqualScalar(2) {
		t.Fatalf("Sum = %v; order was not preserved", got)
	}

	reversed := slices.Clone(in)
	slices.Reverse(reversed)
	backward := SumSeq(slices.Values(reversed))
	var nativeBackward float64
	for _, x := range reversed {
		nativeBackward = float64(nativeBackward + x.Value())
	}
	testutil.RequireSameBits(t, "SumSeq reversed", backward.Value(), nativeBackward)
}

func TestSumEmpty(t *testing.T) {
	if got := Sum[float32](nil); !got.IsZero() {
		t.Fatalf("Sum(nil) = %v, want 0", got)
	}
	if got := SumSeq(slices.Values([]F64{})); !got.IsZero() {
		t.Fatalf("SumSeq(empty) = %v, want 0", got)
	}
}
