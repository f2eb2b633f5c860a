package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-fastfloat/internal/floatbits"
)

// RequireSameBits fails t if got and want do not share a bit pattern.
func RequireSameBits[T floatbits.Float](t *testing.T, label string, got, want T) {
	t.Helper()
	if floatbits.Bits(got) != floatbits.Bits(want) {
		t.Fatalf("%s: got %v (%#x), want %v (%#x)", label, got, floatbits.Bits(got), want, floatbits.Bits(want))
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite[T floatbits.Float](t *testing.T, data []T) {
	t.Helper()
	for i, v := range data {
		if !floatbits.IsFinite(v) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RelErr returns |got - want| / |want|, or |got| when want is zero.
func RelErr(got, want float64) float64 {
	diff := math.Abs(got - want)
	if want == 0 {
		return diff
	}
	return diff / math.Abs(want)
}

// RequireRelErr fails t if the relative error of got against want exceeds bound.
func RequireRelErr(t *testing.T, label string, got, want, bound float64) {
	t.Helper()
	if e := RelErr(got, want); e > bound || math.IsNaN(e) {
		t.Fatalf("%s: got %v, want %v (relative error %v > %v)", label, got, want, e, bound)
	}
}

// MaxRelErr returns the largest element-wise relative error between got and want.
// Returns an error if the slices differ in length.
func MaxRelErr(got, want []float64) (float64, error) {
	if len(got) != len(want) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(got), len(want))
	}
	maxErr := 0.0
	for i := range got {
		if e := RelErr(got[i], want[i]); e > maxErr {
			maxErr = e
		}
	}
	return maxErr, nil
}
