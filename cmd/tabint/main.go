package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/spf13/cobra"

	tabint "github.com/Maxime2/tabulated-integral"
	"github.com/Maxime2/tabulated-integral/internal/input"
)

type options struct {
	n, h, origin string
	rule         string
	json         bool
	loggerLevel  logger.Level
}

func newCommand() *cobra.Command {
	opts := options{
		rule:        tabint.RuleTrapezoidal.String(),
		loggerLevel: logger.LevelWarning,
	}
	cmd := &cobra.Command{
		Use:   "tabint [flags] <samples.csv|samples.txt>",
		Short: "Integrate a tabulated function with the trapezoidal or Simpson's rule",
		Long: `Reads one "x,f(x)" pair per line and integrates over [origin, origin+n*h].
Values may be decimals, fractions ("1/4") or multiples of pi ("2pi").
Nodes that fall between samples are interpolated with a local quadratic.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := logrus.Default().WithLevel(opts.loggerLevel)
			ctx := logger.CtxWithLogger(cmd.Context(), l)
			logger.Default = func() logger.Logger {
				return l
			}
			defer belt.Flush(ctx)
			return run(ctx, opts, args[0], cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.n, "n", "n", "", "number of subintervals (even for Simpson's rule)")
	flags.StringVar(&opts.h, "h", "", "step size; accepts fractions and multiples of pi")
	flags.StringVar(&opts.origin, "origin", "", "abscissa of the first node (default: first sample)")
	flags.StringVarP(&opts.rule, "rule", "r", opts.rule, "quadrature rule: trapezoidal or simpson")
	flags.BoolVar(&opts.json, "json", false, "print the result as JSON")
	flags.Var(&opts.loggerLevel, "log-level", "Log level")
	_ = cmd.MarkFlagRequired("n")
	_ = cmd.MarkFlagRequired("h")
	return cmd
}

func run(ctx context.Context, opts options, path string, out io.Writer) error {
	rule, err := tabint.ParseRule(opts.rule)
	if err != nil {
		return err
	}
	n, err := input.ParseN(opts.n, rule)
	if err != nil {
		return err
	}
	h, err := input.ParseH(opts.h)
	if err != nil {
		return err
	}

	samples, err := input.ReadFile(path)
	if err != nil {
		return err
	}
	logger.Debugf(ctx, "read %d samples from %s, x in [%v, %v]", samples.GetNdots(), path, samples.GetXmin(), samples.GetXmax())

	origin := samples.GetXmin()
	if opts.origin != "" {
		if origin, err = input.ParseValue(opts.origin); err != nil {
			return fmt.Errorf("%w: origin: %v", tabint.ErrInvalidConfiguration, err)
		}
	}

	req := tabint.Request{N: n, H: h, Rule: rule, Origin: origin}
	logger.Debugf(ctx, "integrating: %+v", req)
	res, err := req.Integrate(samples)
	if err != nil {
		return err
	}

	if end := origin + float64(n)*h; origin < samples.GetXmin() || end > samples.GetXmax() {
		logger.Warnf(ctx, "[%v, %v] extends beyond the samples [%v, %v]; boundary values are extrapolated",
			origin, end, samples.GetXmin(), samples.GetXmax())
	}
	if res.Interpolated > 0 {
		logger.Infof(ctx, "%d of %d nodes were interpolated", res.Interpolated, res.Nodes)
	}

	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	fmt.Fprintf(out, "area: %v\n", math.Round(res.Area*1e6)/1e6)
	for _, p := range res.Graph {
		fmt.Fprintf(out, "%v\t%v\n", p.X, p.Y)
	}
	return nil
}

func main() {
	if err := newCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
