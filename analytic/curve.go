package analytic

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// Curve maps radius to the analytic value of one quantity. It is only valid inside the radius
// range of the table it was fitted from.
type Curve struct {
	Name   string
	X, Y   []float64
	lo, hi float64
	pred   interp.Predictor
}

func NewCurve(name string, x, y []float64, scheme Scheme) (c *Curve, err error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("curve %s: %d radii and %d values", name, len(x), len(y))
	}
	if len(x) < 2 {
		return nil, fmt.Errorf("curve %s: need at least two points", name)
	}
	fp := scheme.newPredictor(len(x))
	if err = fp.Fit(x, y); err != nil {
		return nil, fmt.Errorf("curve %s: %w", name, err)
	}
	c = &Curve{
		Name: name,
		X:    x,
		Y:    y,
		lo:   x[0],
		hi:   x[len(x)-1],
		pred: fp,
	}
	return
}

func (c *Curve) Eval(r float64) float64 { return c.pred.Predict(r) }

func (c *Curve) Covers(r float64) bool { return r >= c.lo && r <= c.hi }

func (c *Curve) Range() (lo, hi float64) { return c.lo, c.hi }
