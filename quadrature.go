package tabulatedintegral

import (
	"fmt"
	"math"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gonum.org/v1/gonum/integrate"
)

type Rule int

const (
	RuleTrapezoidal Rule = 0
	RuleSimpson     Rule = 1
)

func (r Rule) String() string {
	switch r {
	case RuleTrapezoidal:
		return "trapezoidal"
	case RuleSimpson:
		return "simpson"
	}
	return fmt.Sprintf("Rule(%d)", int(r))
}

// ParseRule accepts the rule names printed by Rule.String and a few short forms.
func ParseRule(s string) (Rule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trapezoidal", "trapezoid", "trap", "t":
		return RuleTrapezoidal, nil
	case "simpson", "simpsons", "simpson's", "s":
		return RuleSimpson, nil
	}
	return 0, fmt.Errorf("%w: unknown rule %q", ErrInvalidConfiguration, s)
}

// GraphSeriesTarget is the number of interior intervals the graph series is
// thinned down to.
const GraphSeriesTarget = 16

type GraphPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"fx"`
}

// Result bundles the outputs of one integration.
type Result struct {
	Area  float64      `json:"area"`
	Graph []GraphPoint `json:"graph"`
	// Nodes is the number of quadrature nodes evaluated (n+1).
	Nodes int `json:"nodes"`
	// Interpolated counts the nodes whose value was synthesized rather than
	// read from the samples.
	Interpolated int `json:"interpolated"`
}

// Request describes the grid and rule of one integration over
// [Origin, Origin+N*H].
type Request struct {
	N      int
	H      float64
	Rule   Rule
	Origin float64
}

// Validate reports every violated precondition at once.
func (r Request) Validate() error {
	var mErr *multierror.Error
	if r.N < 1 {
		mErr = multierror.Append(mErr, fmt.Errorf("n must be a positive integer, got %d", r.N))
	}
	if !(r.H > 0) || math.IsInf(r.H, 1) {
		mErr = multierror.Append(mErr, fmt.Errorf("h must be a positive finite number, got %v", r.H))
	}
	if math.IsNaN(r.Origin) || math.IsInf(r.Origin, 0) {
		mErr = multierror.Append(mErr, fmt.Errorf("origin must be finite, got %v", r.Origin))
	}
	switch r.Rule {
	case RuleTrapezoidal:
	case RuleSimpson:
		if r.N%2 != 0 {
			mErr = multierror.Append(mErr, fmt.Errorf("n must be even for Simpson's rule, got %d", r.N))
		}
	default:
		mErr = multierror.Append(mErr, fmt.Errorf("unknown rule %v", r.Rule))
	}
	if err := mErr.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	return nil
}

// Integrate integrates the samples from the first sample's abscissa.
func Integrate(s *SampleSet, n int, h float64, rule Rule) (*Result, error) {
	if s.GetNdots() < MinSamples {
		return nil, fmt.Errorf("%w: have %d", ErrInsufficientData, s.GetNdots())
	}
	return IntegrateFrom(s, s.P[0].X, n, h, rule)
}

// IntegrateFrom integrates the samples over [origin, origin+n*h].
func IntegrateFrom(s *SampleSet, origin float64, n int, h float64, rule Rule) (*Result, error) {
	return Request{N: n, H: h, Rule: rule, Origin: origin}.Integrate(s)
}

// Integrate applies the composite rule to the samples. For Simpson's rule N
// must be even; Validate rejects odd N rather than returning a wrong area.
func (r Request) Integrate(s *SampleSet) (*Result, error) {
	if s.GetNdots() < MinSamples {
		return nil, fmt.Errorf("%w: have %d", ErrInsufficientData, s.GetNdots())
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	stride := int(math.Round(float64(r.N) / GraphSeriesTarget))
	if stride < 1 {
		stride = 1
	}

	res := &Result{
		Nodes: r.N + 1,
		Graph: make([]GraphPoint, 0, r.N/stride+2),
	}

	xs := make([]float64, r.N+1)
	fs := make([]float64, r.N+1)
	for k := range xs {
		// Computed from k rather than accumulated, so node k lands on a
		// sample abscissa whenever the grid and the samples agree.
		xk := r.Origin + float64(k)*r.H
		if k > 0 && !(xk > xs[k-1]) {
			return nil, fmt.Errorf("%w: h=%v is below the float64 resolution at x=%v", ErrInvalidConfiguration, r.H, xk)
		}
		fxk, interpolated, err := r.resolve(s, xk)
		if err != nil {
			return nil, err
		}
		if interpolated {
			res.Interpolated++
		}
		xs[k], fs[k] = xk, fxk

		if k == 0 || k == r.N || k%stride == 0 {
			res.Graph = append(res.Graph, GraphPoint{X: round2(xk), Y: round2(fxk)})
		}
	}

	// On a uniform grid these are the composite rules; Validate keeps N
	// even for Simpson's rule.
	switch r.Rule {
	case RuleSimpson:
		res.Area = integrate.Simpsons(xs, fs)
	default:
		res.Area = integrate.Trapezoidal(xs, fs)
	}
	return res, nil
}

func (r Request) resolve(s *SampleSet, x float64) (float64, bool, error) {
	if y, ok := s.Lookup(x); ok {
		return y, false, nil
	}
	w, err := SelectWindow(s, x)
	if err != nil {
		return 0, false, err
	}
	return w.Lagrange(x), true, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
