package fastexp

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidDomain is returned when the sampled interval is empty or not finite.
	ErrInvalidDomain = errors.New("fastexp: invalid domain")
	// ErrTooFewSamples is returned when fewer than two samples are requested.
	ErrTooFewSamples = errors.New("fastexp: too few samples")
)

// ErrorStats summarizes the relative error of an approximation on a grid.
type ErrorStats struct {
	Samples    int
	MaxRelErr  float64
	MeanRelErr float64
	RMSRelErr  float64
	WorstInput float64 // input at which MaxRelErr occurred
}

// Option configures [Measure].
type Option func(*config)

type config struct {
	lo, hi  float64
	samples int
}

func defaultConfig() config {
	return config{lo: -10, hi: 10, samples: 20001}
}

// WithDomain sets the closed interval [lo, hi] to sample.
func WithDomain(lo, hi float64) Option {
	return func(cfg *config) {
		cfg.lo = lo
		cfg.hi = hi
	}
}

// WithSamples sets the number of evenly spaced grid points, endpoints included.
func WithSamples(n int) Option {
	return func(cfg *config) {
		cfg.samples = n
	}
}

// Measure evaluates approx against exact on an evenly spaced grid and reports
// the relative error |approx - exact| / |exact|. Where exact is zero the
// absolute error is used instead. The default grid is 20001 points on [-10, 10].
func Measure(approx, exact func(float64) float64, opts ...Option) (ErrorStats, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if math.IsNaN(cfg.lo) || math.IsNaN(cfg.hi) || math.IsInf(cfg.lo, 0) || math.IsInf(cfg.hi, 0) || cfg.lo >= cfg.hi {
		return ErrorStats{}, fmt.Errorf("%w: [%v, %v]", ErrInvalidDomain, cfg.lo, cfg.hi)
	}
	if cfg.samples < 2 {
		return ErrorStats{}, fmt.Errorf("%w: %d", ErrTooFewSamples, cfg.samples)
	}

	stats := ErrorStats{Samples: cfg.samples, WorstInput: cfg.lo}
	step := (cfg.hi - cfg.lo) / float64(cfg.samples-1)

	var sum, sumSq float64
	for i := 0; i < cfg.samples; i++ {
		x := cfg.lo + step*float64(i)
		if i == cfg.samples-1 {
			x = cfg.hi
		}

		want := exact(x)
		rel := math.Abs(approx(x) - want)
		if want != 0 {
			rel /= math.Abs(want)
		}

		sum += rel
		sumSq += rel * rel
		if rel > stats.MaxRelErr {
			stats.MaxRelErr = rel
			stats.WorstInput = x
		}
	}

	n := float64(cfg.samples)
	stats.MeanRelErr = sum / n
	stats.RMSRelErr = math.Sqrt(sumSq / n)

	return stats, nil
}

// Widen32 adapts a float32 function for use with [Measure].
func Widen32(fn func(float32) float32) func(float64) float64 {
	return func(x float64) float64 {
		return float64(fn(float32(x)))
	}
}
