package tabulatedintegral

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_AddPoint(t *testing.T) {
	direct := New()

	direct.AddPoint(2.0494472732002826, 0.1)
	direct.AddPoint(1.156694013301916, 0.5)
	direct.AddPoint(0.46530775203579466, 0.1)
	direct.AddPoint(-1.1237643368175254, 0.1)
	direct.AddPoint(2.5864746065598427, 0.5)
	t.Logf("%v\n", direct)

	require.Equal(t, 5, direct.GetNdots())
	require.Equal(t, []float64{
		-1.1237643368175254,
		0.46530775203579466,
		1.156694013301916,
		2.0494472732002826,
		2.5864746065598427,
	}, direct.Xs())
	assert.Equal(t, -1.1237643368175254, direct.GetXmin())
	assert.Equal(t, 2.5864746065598427, direct.GetXmax())

	y, ok := direct.Lookup(1.156694013301916)
	require.True(t, ok)
	assert.Equal(t, 0.5, y)
}

func Test_AddPointDuplicateAverages(t *testing.T) {
	f := New()
	f.AddPoint(1, 2)
	f.AddPoint(0, 0)
	got := f.AddPoint(1, 4)

	assert.Equal(t, 3.0, got)
	assert.Equal(t, []float64{0, 1}, f.Xs())
	assert.Equal(t, []float64{0, 3}, f.Ys())
}

func Test_AddPointMergesWithinTolerance(t *testing.T) {
	f, err := FromSlices([]float64{0, 1, 1 + 1e-12, 2, 3}, []float64{0, 1, 1.001, 4, 9})
	require.NoError(t, err)

	require.Equal(t, 4, f.GetNdots())
	assert.Equal(t, []float64{0, 1, 2, 3}, f.Xs())
	assert.InDelta(t, 1.0005, f.P[1].Y, 1e-12)

	res, err := Integrate(f, 4, 0.75, RuleTrapezoidal)
	require.NoError(t, err)
	// samples lie close to x^2; the trapezoid rule on x^2 gives 9 + 3*h^2/6
	assert.InDelta(t, 9.28125, res.Area, 0.01)
	for _, p := range res.Graph {
		assert.InDelta(t, p.X*p.X, p.Y, 0.05, "x=%v", p.X)
	}
}

func Test_FromSlices(t *testing.T) {
	f, err := FromSlices([]float64{3, 1, 2}, []float64{30, 10, 20})
	require.NoError(t, err)
	assert.Equal(t, []Point{{1, 10}, {2, 20}, {3, 30}}, f.P)

	_, err = FromSlices([]float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, ErrInvalidConfiguration)
}

func Test_LookupTolerance(t *testing.T) {
	f, err := FromSlices([]float64{0, 0.1, 0.2, 0.3}, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	// 0.1+0.2 is one ULP above 0.3.
	y, ok := f.Lookup(0.1 + 0.2)
	require.True(t, ok)
	assert.Equal(t, 4.0, y)

	_, ok = f.Lookup(0.25)
	assert.False(t, ok)

	_, ok = New().Lookup(0)
	assert.False(t, ok)
}

func Test_MergeAssignClear(t *testing.T) {
	a, err := FromSlices([]float64{0, 2}, []float64{0, 4})
	require.NoError(t, err)
	b, err := FromSlices([]float64{1, 2}, []float64{1, 2})
	require.NoError(t, err)

	a.Merge(b)
	assert.Equal(t, []Point{{0, 0}, {1, 1}, {2, 3}}, a.P)

	c := New()
	c.Assign(a)
	a.Clear()
	assert.Equal(t, 0, a.GetNdots())
	assert.Equal(t, 3, c.GetNdots())
}
