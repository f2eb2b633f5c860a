package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-fastfloat/fastexp"
)

var errNoMethods = errors.New("no matching methods")

type options struct {
	lo, hi  float64
	samples int
	width   string
	list    bool
}

func newRootCommand(out io.Writer, logger *zap.Logger) *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:   "fastexpinfo [flags] [method ...]",
		Short: "Print the measured accuracy of the fast exponential approximations",
		Long: "Samples each approximation on an evenly spaced grid and reports the relative\n" +
			"error against math.Exp. Without arguments every method is measured.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.list {
				for _, name := range methodNames() {
					if _, err := fmt.Fprintln(out, name); err != nil {
						return err
					}
				}
				return nil
			}
			return run(out, logger, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&opts.lo, "lo", -10, "lower end of the sampled domain")
	flags.Float64Var(&opts.hi, "hi", 10, "upper end of the sampled domain")
	flags.IntVar(&opts.samples, "samples", 20001, "number of grid points, endpoints included")
	flags.StringVar(&opts.width, "width", "all", "float width to measure: 32, 64 or all")
	flags.BoolVar(&opts.list, "list", false, "list available method names")
	return cmd
}

// resolveMethods selects the registry entries matching names and width.
// Names are matched case-insensitively; names matching no entry are returned
// as unknown rather than treated as an error.
func resolveMethods(names []string, width string) (methods []method, unknown []string, err error) {
	wantWidth := 0
	switch width {
	case "all", "":
	case "32":
		wantWidth = 32
	case "64":
		wantWidth = 64
	default:
		return nil, nil, fmt.Errorf("invalid width %q: want 32, 64 or all", width)
	}

	known := make(map[string]bool, len(registry))
	for _, m := range registry {
		known[m.name] = true
	}

	byName := make(map[string]bool, len(names))
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if !known[key] {
			unknown = append(unknown, name)
			continue
		}
		byName[key] = true
	}

	for _, m := range registry {
		if len(names) > 0 && !byName[m.name] {
			continue
		}
		if wantWidth != 0 && m.width != wantWidth {
			continue
		}
		methods = append(methods, m)
	}
	if len(methods) == 0 {
		return nil, unknown, fmt.Errorf("%w: %v (width %s)", errNoMethods, names, width)
	}
	return methods, unknown, nil
}

func run(out io.Writer, logger *zap.Logger, opts options, names []string) error {
	methods, unknown, err := resolveMethods(names, opts.width)
	for _, name := range unknown {
		logger.Warn("unknown method, use --list to see available", zap.String("method", name))
	}
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Method\tWidth\tSamples\tMax rel err\tMean rel err\tRMS rel err\tWorst x\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "------\t-----\t-------\t-----------\t------------\t-----------\t-------\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, m := range methods {
		stats, err := fastexp.Measure(m.fn, m.exact,
			fastexp.WithDomain(opts.lo, opts.hi),
			fastexp.WithSamples(opts.samples),
		)
		if err != nil {
			return fmt.Errorf("measuring %s/%d: %w", m.name, m.width, err)
		}
		logger.Debug("measured",
			zap.String("method", m.name),
			zap.Int("width", m.width),
			zap.Float64("maxRelErr", stats.MaxRelErr),
			zap.Float64("worstInput", stats.WorstInput),
		)

		if _, err := fmt.Fprintf(tw, "%s\t%d\t%d\t%.4f%%\t%.4f%%\t%.4f%%\t%.4f\n",
			m.name,
			m.width,
			stats.Samples,
			100*stats.MaxRelErr,
			100*stats.MeanRelErr,
			100*stats.RMSRelErr,
			stats.WorstInput,
		); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}
