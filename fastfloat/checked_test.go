package fastfloat

import (
	"errors"
	"math"
	"testing"
)

func TestNewChecked(t *testing.T) {
	tests := []struct {
		name    string
		v       float64
		wantErr bool
	}{
		{name: "finite", v: 1.25},
		{name: "zero", v: 0},
		{name: "max", v: math.MaxFloat64},
		{name: "nan", v: math.NaN(), wantErr: true},
		{name: "+inf", v: math.Inf(1), wantErr: true},
		{name: "-inf", v: math.Inf(-1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewChecked(tt.v)
			if tt.wantErr {
				if !errors.Is(err, ErrNotFinite) {
					t.Fatalf("NewChecked(%v) error = %v, want ErrNotFinite", tt.v, err)
				}
				if !f.IsZero() {
					t.Fatalf("NewChecked(%v) = %v, want zero value on error", tt.v, f)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewChecked(%v) unexpected error: %v", tt.v, err)
			}
			if f.Value() != tt.v {
				t.Fatalf("NewChecked(%v) = %v", tt.v, f)
			}
		})
	}
}

func TestNewChecked32(t *testing.T) {
	if _, err := NewChecked(float32(math.Inf(1))); !errors.Is(err, ErrNotFinite) {
		t.Fatalf("NewChecked(float32 +Inf) error = %v, want ErrNotFinite", err)
	}
	f, err := NewChecked(float32(3))
	if err != nil || f.Value() != 3 {
		t.Fatalf("NewChecked(float32 3) = %v, %v", f, err)
	}
}

func TestMustNew(t *testing.T) {
	if got := MustNew(2.0).Value(); got != 2 {
		t.Fatalf("MustNew(2) = %v", got)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected MustNew(NaN) to panic")
		}
	}()
	_ = MustNew(math.NaN())
}
