// Command fastexpinfo prints the measured accuracy of the fast exponential
// approximations.
//
// Usage:
//
//	fastexpinfo [flags] [method ...]
//
// Without arguments it measures every known method at both widths.
//
// Examples:
//
//	fastexpinfo exp
//	fastexpinfo --lo -80 --hi 80 --width 32 exp exp2
//	fastexpinfo --samples 100001 limit algo-approx
//	fastexpinfo --list
package main

import (
	"os"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if err := newRootCommand(os.Stdout, logger).Execute(); err != nil {
		logger.Fatal("fastexpinfo failed", zap.Error(err))
	}
}
