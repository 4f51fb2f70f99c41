package validation

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/integrate"

	"github.com/notargets/shocktube/analytic"
	"github.com/notargets/shocktube/snapshot"
	"github.com/notargets/shocktube/types"
	"github.com/notargets/shocktube/utils"
)

var (
	ErrEmptyWindow      = errors.New("fewer than two radii inside the error window")
	ErrOutsideReference = errors.New("radius outside the analytic table range")
)

// Window is the closed radial interval [Lo, Hi] the error is integrated over
type Window struct {
	Lo, Hi float64
}

var DefaultWindow = Window{Lo: 0, Hi: 1}

func (w Window) Contains(r float64) bool { return r >= w.Lo && r <= w.Hi }

// Restrict keeps the entries of r and v whose radius lies inside the window
func (w Window) Restrict(r, v []float64) (rw, vw []float64) {
	for i, rr := range r {
		if w.Contains(rr) {
			rw = append(rw, rr)
			vw = append(vw, v[i])
		}
	}
	return
}

// IntegratedAbsError integrates |sim - curve| over the radii of r inside w. Radii need not be
// evenly spaced.
func IntegratedAbsError(r, sim []float64, curve *analytic.Curve, w Window) (diff float64, err error) {
	var (
		rw, vw []float64
	)
	if len(r) != len(sim) {
		return 0, fmt.Errorf("%w: %d radii and %d profile values", types.ErrShapeMismatch, len(r), len(sim))
	}
	rw, vw = w.Restrict(r, sim)
	if len(rw) < 2 {
		return 0, fmt.Errorf("%w: [%v, %v] holds %d points", ErrEmptyWindow, w.Lo, w.Hi, len(rw))
	}
	delta := make([]float64, len(rw))
	for i, rr := range rw {
		if !curve.Covers(rr) {
			lo, hi := curve.Range()
			return 0, fmt.Errorf("%w: r = %v, %s table covers [%v, %v]", ErrOutsideReference, rr, curve.Name, lo, hi)
		}
		delta[i] = math.Abs(vw[i] - curve.Eval(rr))
	}
	return Simpson(rw, delta), nil
}

// Simpson applies composite Simpson's rule over irregularly spaced x. Two points reduce to the
// trapezoid rule.
func Simpson(x, f []float64) float64 {
	if len(x) == 2 {
		return integrate.Trapezoidal(x, f)
	}
	return integrate.Simpsons(x, f)
}

// Scorer computes the integrated absolute error of one run and quantity against the analytic
// reference.
type Scorer struct {
	Reference *analytic.Reference
	Window    Window
	Logger    *zap.Logger
}

func NewScorer(ref *analytic.Reference, w Window, logger *zap.Logger) *Scorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scorer{
		Reference: ref,
		Window:    w,
		Logger:    logger,
	}
}

func (s *Scorer) Score(run types.RunConfig, q types.Quantity, snap int) (diff float64, err error) {
	diff, _, err = s.ScoreProfile(run, q, snap)
	return
}

// ScoreProfile also returns the reduced profile so it can be reused for plotting
func (s *Scorer) ScoreProfile(run types.RunConfig, q types.Quantity, snap int) (diff float64, p *snapshot.Profile, err error) {
	var (
		curve *analytic.Curve
	)
	if curve, err = s.Reference.Curve(q); err != nil {
		return
	}
	if p, err = LoadProfile(run, q, snap); err != nil {
		return
	}
	if !utils.AllFinite(p.Values) {
		s.Logger.Warn("non-finite values in profile", zap.String("run", run.Name), zap.String("quantity", q.Name))
	}
	if diff, err = IntegratedAbsError(p.Radius, p.Values, curve, s.Window); err != nil {
		return 0, p, fmt.Errorf("%s: %w", q.Name, err)
	}
	s.Logger.Debug("scored profile",
		zap.String("run", run.Name),
		zap.String("quantity", q.Name),
		zap.Int("snapshot", snap),
		zap.Int("nr", len(p.Radius)),
		zap.Int("nphi", p.Nphi),
		zap.Float64("error", diff))
	return
}

// LoadProfile reads the grid of a run and the reduced profile of q for one snapshot
func LoadProfile(run types.RunConfig, q types.Quantity, snap int) (p *snapshot.Profile, err error) {
	var (
		g *snapshot.RadialGrid
	)
	if g, err = snapshot.ReadGrid(run.OutputDir); err != nil {
		return
	}
	if p, err = snapshot.Load(run.OutputDir, q, snap, g); err != nil {
		return
	}
	p.Run = run.Name
	return
}
