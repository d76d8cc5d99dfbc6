package tabulatedintegral

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Tolerance is the relative tolerance used when matching a quadrature node
// against a sample abscissa.
const Tolerance = 1e-9

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SampleSet is a function known only through its samples. P is kept sorted by X.
type SampleSet struct {
	P []Point
}

// Create
func New() *SampleSet {
	return &SampleSet{}
}

// FromSlices builds a sample set from a pair of parallel arrays.
func FromSlices(xs, ys []float64) (*SampleSet, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d x-values but %d f(x)-values", ErrInvalidConfiguration, len(xs), len(ys))
	}
	s := &SampleSet{P: make([]Point, 0, len(xs))}
	for i := range xs {
		s.AddPoint(xs[i], ys[i])
	}
	return s, nil
}

func comparePoints(a, b Point) int {
	return cmp.Compare(a.X, b.X)
}

func sameX(a, b float64) bool {
	if a == b {
		return true
	}
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= Tolerance*scale
}

// AddPoint inserts (Xn, Yn) keeping P sorted. A point whose X is already
// present, within Tolerance, is merged by averaging, and the merged value is
// returned.
func (s *SampleSet) AddPoint(Xn, Yn float64) float64 {
	if k := s.index(Xn); k >= 0 {
		s.P[k].Y = (s.P[k].Y + Yn) / 2
		return s.P[k].Y
	}
	i, _ := slices.BinarySearchFunc(s.P, Point{X: Xn}, comparePoints)
	s.P = slices.Insert(s.P, i, Point{X: Xn, Y: Yn})
	return Yn
}

// Lookup returns the sample value stored at x, if any.
func (s *SampleSet) Lookup(x float64) (float64, bool) {
	k := s.index(x)
	if k < 0 {
		return 0, false
	}
	return s.P[k].Y, true
}

// index returns the position of the sample matching x, or -1.
func (s *SampleSet) index(x float64) int {
	if s == nil {
		return -1
	}
	l := len(s.P)
	if l == 0 || math.IsNaN(x) {
		return -1
	}
	k, found := slices.BinarySearchFunc(s.P, Point{X: x}, comparePoints)
	if found {
		return k
	}
	// x fell between P[k-1] and P[k]; either may be within tolerance.
	if k < l && sameX(s.P[k].X, x) {
		return k
	}
	if k > 0 && sameX(s.P[k-1].X, x) {
		return k - 1
	}
	return -1
}

func (s *SampleSet) GetXmin() float64 {
	if s.GetNdots() == 0 {
		return 0
	}
	return s.P[0].X
}

func (s *SampleSet) GetXmax() float64 {
	if s.GetNdots() == 0 {
		return 0
	}
	return s.P[len(s.P)-1].X
}

func (s *SampleSet) GetNdots() int {
	if s == nil {
		return 0
	}
	return len(s.P)
}

// Xs returns a copy of the sample abscissae.
func (s *SampleSet) Xs() []float64 {
	xs := make([]float64, len(s.P))
	for i, p := range s.P {
		xs[i] = p.X
	}
	return xs
}

// Ys returns a copy of the sample values.
func (s *SampleSet) Ys() []float64 {
	ys := make([]float64, len(s.P))
	for i, p := range s.P {
		ys[i] = p.Y
	}
	return ys
}

func (s *SampleSet) Clear() {
	s.P = make([]Point, 0)
}

func (s *SampleSet) Assign(src *SampleSet) {
	s.P = slices.Clone(src.P)
}

func (s *SampleSet) Merge(m *SampleSet) {
	for _, p := range m.P {
		s.AddPoint(p.X, p.Y)
	}
}

func (s *SampleSet) String() string {
	str := "\nSample set:\n"
	str = fmt.Sprintf("%s\tndots: %v\n", str, len(s.P))
	str = fmt.Sprintf("%s\txmin: %v; xmax: %v\n", str, s.GetXmin(), s.GetXmax())
	str = fmt.Sprintf("%s\tPoints: %v\n", str, s.P)
	return str
}
