package tabulatedintegral

import (
	"fmt"
)

// MinSamples is the size of the interpolation window and therefore the
// smallest sample set that can be interpolated or integrated.
const MinSamples = 3

// Window is a contiguous run of three samples starting at P[Start].
type Window struct {
	Start int
	P     [MinSamples]Point
}

// SelectWindow picks the three consecutive samples used to fit a quadratic
// through x. Below the first sample the first three are used, above the last
// sample the last three. Otherwise the window starts at the left end of the
// first bracketing pair, shifted back by one when that would run off the end.
func SelectWindow(s *SampleSet, x float64) (Window, error) {
	l := s.GetNdots()
	if l < MinSamples {
		return Window{}, fmt.Errorf("%w: have %d", ErrInsufficientData, l)
	}

	start := 0
	switch {
	case x < s.P[0].X:
		start = 0
	case x > s.P[l-1].X:
		start = l - MinSamples
	default:
		for i := 0; i < l-1; i++ {
			if s.P[i].X < x && x < s.P[i+1].X {
				if i+2 < l {
					start = i
				} else {
					start = i - 1
				}
				break
			}
		}
	}

	w := Window{Start: start}
	copy(w.P[:], s.P[start:start+MinSamples])
	return w, nil
}

// Lagrange evaluates the quadratic through the window at x.
func (w Window) Lagrange(x float64) float64 {
	var res float64
	for i := range w.P {
		l := 1.0
		for j := range w.P {
			if i == j {
				continue
			}
			l *= (x - w.P[j].X) / (w.P[i].X - w.P[j].X)
		}
		res += l * w.P[i].Y
	}
	return res
}

// Interpolate returns f(x), taking the stored sample when x matches one and
// the local quadratic Lagrange estimate otherwise.
func Interpolate(s *SampleSet, x float64) (float64, error) {
	if s.GetNdots() < MinSamples {
		return 0, fmt.Errorf("%w: have %d", ErrInsufficientData, s.GetNdots())
	}
	if y, ok := s.Lookup(x); ok {
		return y, nil
	}
	w, err := SelectWindow(s, x)
	if err != nil {
		return 0, err
	}
	return w.Lagrange(x), nil
}
