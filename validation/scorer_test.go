package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/shocktube/analytic"
	"github.com/notargets/shocktube/readfiles"
	"github.com/notargets/shocktube/snapshot"
	"github.com/notargets/shocktube/types"
	"github.com/notargets/shocktube/utils"
)

func constCurve(t *testing.T, val float64) *analytic.Curve {
	x := []float64{0, 0.2, 0.4, 0.6, 0.8, 1}
	c, err := analytic.NewCurve("const", x, utils.ConstArray(len(x), val), analytic.NotAKnot)
	require.NoError(t, err)
	return c
}

func TestWindow(t *testing.T) {
	w := DefaultWindow
	assert.True(t, w.Contains(0))
	assert.True(t, w.Contains(1.0))
	assert.False(t, w.Contains(1.0000001))
	assert.False(t, w.Contains(-1.e-12))
	r, v := w.Restrict([]float64{-0.1, 0, 0.5, 1.0, 1.0000001}, []float64{1, 2, 3, 4, 5})
	assert.Equal(t, []float64{0, 0.5, 1.0}, r)
	assert.Equal(t, []float64{2, 3, 4}, v)
}

func TestIntegratedAbsError(t *testing.T) {
	{ // A constant profile against the same constant scores zero for any n > 1
		for n := 2; n <= 9; n++ {
			r := make([]float64, n)
			for i := range r {
				r[i] = float64(i) / float64(n-1)
			}
			diff, err := IntegratedAbsError(r, utils.ConstArray(n, 0.7), constCurve(t, 0.7), DefaultWindow)
			require.NoError(t, err)
			assert.InDelta(t, 0., diff, 1.e-12, "n = %d", n)
		}
	}
	{ // Constant offset over an irregular grid spanning the whole window
		r := []float64{0, 0.1, 0.35, 0.5, 0.8, 1}
		diff, err := IntegratedAbsError(r, utils.ConstArray(len(r), 1.005), constCurve(t, 1), DefaultWindow)
		require.NoError(t, err)
		assert.InDelta(t, 0.005, diff, 1.e-12)
		// The sign of the difference does not matter
		diff, err = IntegratedAbsError(r, utils.ConstArray(len(r), 0.992), constCurve(t, 1), DefaultWindow)
		require.NoError(t, err)
		assert.InDelta(t, 0.008, diff, 1.e-12)
	}
	{ // Points beyond the window do not contribute
		r := []float64{0, 0.5, 1.0, 1.0000001}
		sim := []float64{1.5, 1.5, 1.5, 100}
		c, err := analytic.NewCurve("wide", []float64{0, 0.5, 1, 1.5, 2}, utils.ConstArray(5, 1), analytic.NotAKnot)
		require.NoError(t, err)
		diff, err := IntegratedAbsError(r, sim, c, DefaultWindow)
		require.NoError(t, err)
		assert.InDelta(t, 0.5, diff, 1.e-12)
	}
	{ // Fewer than two points in the window
		_, err := IntegratedAbsError([]float64{0.5, 1.5}, []float64{1, 1}, constCurve(t, 1), DefaultWindow)
		assert.ErrorIs(t, err, ErrEmptyWindow)
	}
	{ // Radii the table does not cover
		c, err := analytic.NewCurve("narrow", []float64{0.1, 0.4, 0.6, 0.9}, utils.ConstArray(4, 1), analytic.NotAKnot)
		require.NoError(t, err)
		_, err = IntegratedAbsError([]float64{0.05, 0.5, 0.95}, []float64{1, 1, 1}, c, DefaultWindow)
		assert.ErrorIs(t, err, ErrOutsideReference)
	}
	{
		_, err := IntegratedAbsError([]float64{0, 1}, []float64{1}, constCurve(t, 1), DefaultWindow)
		assert.ErrorIs(t, err, types.ErrShapeMismatch)
	}
}

func TestSimpson(t *testing.T) {
	{ // Exact for a quadratic on an irregular grid with an even number of intervals
		x := []float64{0, 0.2, 0.5, 0.7, 1}
		f := make([]float64, len(x))
		for i, xi := range x {
			f[i] = xi * xi
		}
		assert.InDelta(t, 1./3., Simpson(x, f), 1.e-12)
	}
	{ // Two points reduce to the trapezoid rule
		assert.InDelta(t, 0.75, Simpson([]float64{0, 0.5}, []float64{1, 2}), 1.e-15)
	}
}

// writeRun lays out a run directory with Nr uniform cells on [r0, r0+1] and the given fields
func writeRun(t *testing.T, dir string, nr, nphi, snap int, r0 float64, cell map[string]float64, vrad float64) {
	var sb strings.Builder
	for i := 0; i <= nr; i++ {
		fmt.Fprintf(&sb, "%.17g\n", r0+float64(i)/float64(nr))
	}
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(snapshot.GridPath(dir), []byte(sb.String()), 0644))
	write := func(name string, data []float64) {
		fn := snapshot.SnapshotPath(dir, snap, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(fn), 0755))
		require.NoError(t, readfiles.WriteFloat64Binary(fn, data))
	}
	for name, val := range cell {
		write(name, utils.ConstArray(nr*nphi, val))
	}
	write(types.Vrad, utils.ConstArray((nr+1)*nphi, vrad))
}

func uniformReference(t *testing.T, vrad, sigma, temp float64) *analytic.Reference {
	var rows [][]float64
	for i := 0; i <= 10; i++ {
		rows = append(rows, []float64{float64(i), 0.1 * float64(i), vrad, sigma, temp})
	}
	ref, err := analytic.NewReference("uniform", rows, analytic.DefaultGamma, analytic.NotAKnot)
	require.NoError(t, err)
	return ref
}

func TestScorer(t *testing.T) {
	var (
		dir = filepath.Join(t.TempDir(), "SN")
		run = types.RunConfig{Name: "SN", OutputDir: dir}
		ref = uniformReference(t, 0, 1, 0.4)
		s   = NewScorer(ref, DefaultWindow, nil)
	)
	// Centers run from 0.05 to 0.95 whatever the inner radius
	writeRun(t, dir, 10, 8, 1, 0.4, map[string]float64{
		types.Sigma:       1.005,
		types.Temperature: 0.4,
		types.Energy:      1,
	}, 0.002)
	{
		diff, p, err := s.ScoreProfile(run, types.QuantityMap[types.Sigma], 1)
		require.NoError(t, err)
		assert.Equal(t, "SN", p.Run)
		assert.Equal(t, 8, p.Nphi)
		assert.InDelta(t, 0.05, p.Radius[0], 1.e-12)
		assert.InDelta(t, 0.005*0.9, diff, 1.e-12)
	}
	{
		diff, err := s.Score(run, types.QuantityMap[types.Temperature], 1)
		require.NoError(t, err)
		assert.InDelta(t, 0, diff, 1.e-12)
	}
	{ // energy reference = 1 * 0.4 / 0.4
		diff, err := s.Score(run, types.QuantityMap[types.Energy], 1)
		require.NoError(t, err)
		assert.InDelta(t, 0, diff, 1.e-12)
	}
	{ // Face centered vrad
		diff, err := s.Score(run, types.QuantityMap[types.Vrad], 1)
		require.NoError(t, err)
		assert.InDelta(t, 0.002*0.9, diff, 1.e-12)
	}
	{ // Scoring is deterministic
		d1, err := s.Score(run, types.QuantityMap[types.Sigma], 1)
		require.NoError(t, err)
		d2, err := s.Score(run, types.QuantityMap[types.Sigma], 1)
		require.NoError(t, err)
		assert.Equal(t, d1, d2)
	}
	{
		_, err := s.Score(run, types.QuantityMap[types.Sigma], 2)
		assert.ErrorIs(t, err, types.ErrMissingSnapshotFile)
		_, err = s.Score(types.RunConfig{Name: "TW", OutputDir: t.TempDir()}, types.QuantityMap[types.Sigma], 1)
		assert.ErrorIs(t, err, types.ErrMissingGridFile)
	}
}
