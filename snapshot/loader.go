package snapshot

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/notargets/shocktube/readfiles"
	"github.com/notargets/shocktube/types"
	"github.com/notargets/shocktube/utils"
)

// Profile is one quantity of one snapshot reduced to a radial profile on the grid's cell centers
type Profile struct {
	Run      string
	Quantity types.Quantity
	Snapshot int
	Nphi     int
	Radius   []float64
	Values   []float64
}

func SnapshotPath(runDir string, snap int, name string) string {
	return filepath.Join(runDir, "snapshots", strconv.Itoa(snap), name+".dat")
}

func readRaw(runDir string, snap int, name string) (data []float64, err error) {
	filename := SnapshotPath(runDir, snap, name)
	if data, err = readfiles.ReadFloat64Binary(filename); err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			err = fmt.Errorf("%w: %s", types.ErrMissingSnapshotFile, filename)
		case errors.Is(err, readfiles.ErrTruncated):
			err = fmt.Errorf("%w: %v", types.ErrShapeMismatch, err)
		}
	}
	return
}

// Nphi infers the azimuthal cell count from the reference quantity of the snapshot
func Nphi(runDir string, snap int, g *RadialGrid) (nphi int, err error) {
	var (
		data []float64
		nr   = g.Nr()
	)
	if data, err = readRaw(runDir, snap, types.ReferenceQuantity.Name); err != nil {
		return
	}
	if len(data) == 0 || len(data)%nr != 0 {
		return 0, fmt.Errorf("%w: %s has %d values, not a multiple of Nr = %d",
			types.ErrShapeMismatch, types.ReferenceQuantity.Name, len(data), nr)
	}
	return len(data) / nr, nil
}

// Load reads quantity q of snapshot snap and reduces it to a radial profile aligned with the
// grid's cell centers.
func Load(runDir string, q types.Quantity, snap int, g *RadialGrid) (p *Profile, err error) {
	var (
		nphi int
		data []float64
	)
	if nphi, err = Nphi(runDir, snap, g); err != nil {
		return
	}
	if data, err = readRaw(runDir, snap, q.Name); err != nil {
		return
	}
	p = &Profile{
		Quantity: q,
		Snapshot: snap,
		Nphi:     nphi,
		Radius:   g.Centers,
	}
	if p.Values, err = Reduce(data, q.Staggering, g.Nr(), nphi); err != nil {
		return nil, fmt.Errorf("%s: %w", q.Name, err)
	}
	return
}

// Reduce averages a (rows, nphi) row-major field over the azimuthal axis. Face centered fields
// have Nr+1 rows and are averaged once more over adjacent faces to land on the cell centers.
func Reduce(data []float64, st types.Staggering, nr, nphi int) (profile []float64, err error) {
	var (
		rows int
	)
	switch st {
	case types.CellCentered:
		rows = nr
	case types.FaceCentered:
		rows = nr + 1
	default:
		return nil, fmt.Errorf("unsupported staggering %v", st)
	}
	if nphi <= 0 || len(data) != rows*nphi {
		return nil, fmt.Errorf("%w: %d values cannot be shaped (%d, %d) for %v data",
			types.ErrShapeMismatch, len(data), rows, nphi, st)
	}
	profile = AzimuthalMean(mat.NewDense(rows, nphi, data))
	if st == types.FaceCentered {
		profile = utils.Midpoints(profile)
	}
	return
}

func AzimuthalMean(field *mat.Dense) (m []float64) {
	rows, _ := field.Dims()
	m = make([]float64, rows)
	for i := range m {
		m[i] = stat.Mean(field.RawRowView(i), nil)
	}
	return
}
