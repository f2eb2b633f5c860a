package main

import (
	"math"
	"sort"

	approx "github.com/meko-christian/algo-approx"

	"github.com/cwbudde/algo-fastfloat/fastexp"
)

type method struct {
	name  string
	width int
	fn    func(float64) float64
	exact func(float64) float64
}

var registry = []method{
	{"exp", 32, fastexp.Widen32(fastexp.Exp[float32]), math.Exp},
	{"exp", 64, fastexp.Exp[float64], math.Exp},
	{"exp2", 32, fastexp.Widen32(fastexp.Exp2[float32]), math.Exp2},
	{"exp2", 64, fastexp.Exp2[float64], math.Exp2},
	{"limit", 32, fastexp.Widen32(fastexp.ExpLimit[float32]), math.Exp},
	{"limit", 64, fastexp.ExpLimit[float64], math.Exp},
	{"algo-approx", 64, func(x float64) float64 { return approx.FastExp(x) }, math.Exp},
}

// methodNames returns the distinct method names in sorted order.
func methodNames() []string {
	seen := make(map[string]bool, len(registry))
	var names []string
	for _, m := range registry {
		if !seen[m.name] {
			seen[m.name] = true
			names = append(names, m.name)
		}
	}
	sort.Strings(names)
	return names
}
