package snapshot

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/notargets/shocktube/readfiles"
	"github.com/notargets/shocktube/types"
	"github.com/notargets/shocktube/utils"
)

const GridFileName = "used_rad.dat"

// RadialGrid holds the radial face coordinates written by the solver and the derived cell
// centers. Centers are shifted so that the inner edge of the domain sits at r = 0.
type RadialGrid struct {
	Faces   []float64 // Nr+1
	Centers []float64 // Nr
}

func GridPath(runDir string) string {
	return filepath.Join(runDir, GridFileName)
}

func ReadGrid(runDir string) (g *RadialGrid, err error) {
	var (
		faces    []float64
		filename = GridPath(runDir)
	)
	if faces, err = readfiles.ReadColumn(filename, 0, 0); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", types.ErrMissingGridFile, filename)
		}
		return nil, err
	}
	return NewRadialGrid(faces)
}

func NewRadialGrid(faces []float64) (g *RadialGrid, err error) {
	if len(faces) < 2 {
		return nil, fmt.Errorf("%w: grid needs at least two faces, have %d", types.ErrShapeMismatch, len(faces))
	}
	g = &RadialGrid{
		Faces:   faces,
		Centers: utils.Shift(utils.Midpoints(faces), faces[0]),
	}
	return
}

func (g *RadialGrid) Nr() int { return len(g.Centers) }
