package analytic

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/interp"

	"github.com/notargets/shocktube/readfiles"
	"github.com/notargets/shocktube/types"
)

const (
	DefaultGamma  = 1.4
	HeaderRows    = 2
	DefaultScheme = NotAKnot
)

type Scheme string

const (
	NotAKnot       Scheme = "notaknot"
	Akima          Scheme = "akima"
	FritschButland Scheme = "fritsch-butland"
	Natural        Scheme = "natural"
	Linear         Scheme = "linear"
)

func ParseScheme(s string) (Scheme, error) {
	switch sc := Scheme(strings.ToLower(strings.TrimSpace(s))); sc {
	case "":
		return DefaultScheme, nil
	case NotAKnot, Akima, FritschButland, Natural, Linear:
		return sc, nil
	}
	return "", fmt.Errorf("unknown interpolation scheme %q", s)
}

func (s Scheme) newPredictor(npts int) interp.FittablePredictor {
	// Cubic schemes need at least four knots
	if npts < 4 {
		return &interp.PiecewiseLinear{}
	}
	switch s {
	case Akima:
		return &interp.AkimaSpline{}
	case FritschButland:
		return &interp.FritschButland{}
	case Natural:
		return &interp.NaturalCubic{}
	case Linear:
		return &interp.PiecewiseLinear{}
	}
	return &interp.NotAKnotCubic{}
}

// Reference holds the analytic solution table and the curves fitted from it
type Reference struct {
	Filename string
	Gamma    float64
	Scheme   Scheme
	Radius   []float64
	rows     [][]float64
	curves   map[string]*Curve
}

func Load(filename string, gamma float64, scheme Scheme) (ref *Reference, err error) {
	var (
		rows [][]float64
	)
	if rows, err = readfiles.ReadTable(filename, HeaderRows); err != nil {
		return
	}
	return NewReference(filename, rows, gamma, scheme)
}

// NewReference builds a reference from table rows laid out as index, radius, quantities...
// The radius column is assumed to be strictly increasing.
func NewReference(name string, rows [][]float64, gamma float64, scheme Scheme) (ref *Reference, err error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("analytic table %s: need at least two rows, have %d", name, len(rows))
	}
	if gamma <= 1 {
		return nil, fmt.Errorf("analytic table %s: gamma must exceed 1, have %v", name, gamma)
	}
	if scheme == "" {
		scheme = DefaultScheme
	}
	ref = &Reference{
		Filename: name,
		Gamma:    gamma,
		Scheme:   scheme,
		rows:     rows,
		curves:   make(map[string]*Curve),
	}
	if ref.Radius, err = readfiles.Column(rows, types.ColRadius); err != nil {
		return nil, fmt.Errorf("analytic table %s: %w", name, err)
	}
	return
}

// Values returns the reference values of q at the table radii
func (ref *Reference) Values(q types.Quantity) (y []float64, err error) {
	switch q.Rule {
	case types.TableColumn:
		if y, err = readfiles.Column(ref.rows, q.Column); err != nil {
			return nil, fmt.Errorf("%w: %s not in analytic table %s: %v",
				types.ErrUnknownQuantity, q.Name, ref.Filename, err)
		}
	case types.InternalEnergy:
		var sigma, temp []float64
		if sigma, err = readfiles.Column(ref.rows, types.ColSigma); err == nil {
			temp, err = readfiles.Column(ref.rows, types.ColTemperature)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s not derivable from analytic table %s: %v",
				types.ErrUnknownQuantity, q.Name, ref.Filename, err)
		}
		y = make([]float64, len(sigma))
		rDiv := 1. / (ref.Gamma - 1.)
		for i := range y {
			y[i] = sigma[i] * temp[i] * rDiv
		}
	default:
		return nil, fmt.Errorf("%w: %s has no analytic rule", types.ErrUnknownQuantity, q.Name)
	}
	return
}

// Curve returns the interpolant for q, fitting it on first use
func (ref *Reference) Curve(q types.Quantity) (c *Curve, err error) {
	var (
		ok bool
		y  []float64
	)
	if c, ok = ref.curves[q.Name]; ok {
		return
	}
	if y, err = ref.Values(q); err != nil {
		return
	}
	if c, err = NewCurve(q.Name, ref.Radius, y, ref.Scheme); err != nil {
		return nil, fmt.Errorf("analytic table %s: %w", ref.Filename, err)
	}
	ref.curves[q.Name] = c
	return
}
