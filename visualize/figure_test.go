package visualize

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"

	"github.com/notargets/shocktube/analytic"
	"github.com/notargets/shocktube/readfiles"
	"github.com/notargets/shocktube/snapshot"
	"github.com/notargets/shocktube/types"
	"github.com/notargets/shocktube/utils"
)

func writeRun(t *testing.T, dir string, nr, nphi int) {
	var sb strings.Builder
	for i := 0; i <= nr; i++ {
		fmt.Fprintf(&sb, "%.17g\n", float64(i)/float64(nr))
	}
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(snapshot.GridPath(dir), []byte(sb.String()), 0644))
	for _, q := range types.QuantityMap {
		n := nr * nphi
		if q.Staggering == types.FaceCentered {
			n = (nr + 1) * nphi
		}
		fn := snapshot.SnapshotPath(dir, 1, q.Name)
		require.NoError(t, os.MkdirAll(filepath.Dir(fn), 0755))
		require.NoError(t, readfiles.WriteFloat64Binary(fn, utils.ConstArray(n, 0.5)))
	}
}

func testReference(t *testing.T) *analytic.Reference {
	var rows [][]float64
	for i := 0; i <= 10; i++ {
		r := 0.1 * float64(i)
		rows = append(rows, []float64{float64(i), r, r, 1 - 0.5*r, 1})
	}
	ref, err := analytic.NewReference("test", rows, analytic.DefaultGamma, analytic.NotAKnot)
	require.NoError(t, err)
	return ref
}

func TestCollectAndRender(t *testing.T) {
	var (
		root = t.TempDir()
		runs = []types.RunConfig{
			{Name: "SN", OutputDir: filepath.Join(root, "SN"), Color: "red", LineStyle: "--"},
			{Name: "TW", OutputDir: filepath.Join(root, "TW"), Color: "blue", LineStyle: "-."},
		}
		qs = []types.Quantity{
			types.QuantityMap[types.Vrad],
			types.QuantityMap[types.Sigma],
			types.QuantityMap[types.Temperature],
			types.QuantityMap[types.Energy],
		}
	)
	writeRun(t, runs[0].OutputDir, 8, 4)
	panels, err := Collect(testReference(t), runs, qs, 1, nil)
	require.NoError(t, err)
	require.Len(t, panels, 4)
	for i, pn := range panels {
		assert.Equal(t, qs[i].Name, pn.Quantity)
		require.Len(t, pn.Series, 1) // TW has no output
		assert.Equal(t, "SN", pn.Series[0].Run.Name)
		assert.Len(t, pn.Series[0].Profile.Values, 8)
	}
	{
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, ".png", panels))
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
	}
	{ // Odd panel counts leave an empty tile
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, ".JPG", panels[:3]))
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte{0xff, 0xd8}))
	}
	{
		fn := filepath.Join(t.TempDir(), "plot.jpg")
		require.NoError(t, Render(fn, panels))
		fi, err := os.Stat(fn)
		require.NoError(t, err)
		assert.True(t, fi.Size() > 0)
	}
	{
		var buf bytes.Buffer
		assert.Error(t, Write(&buf, ".gif", panels))
		assert.Error(t, Render(filepath.Join(t.TempDir(), "empty.png"), nil))
	}
}

func TestStyles(t *testing.T) {
	assert.Equal(t, colornames.Orange, RunColor("orange"))
	assert.Equal(t, colornames.Red, RunColor("Red"))
	assert.Equal(t, colornames.Gray, RunColor("no-such-color"))
	assert.Nil(t, Dashes("-"))
	assert.Len(t, Dashes("--"), 2)
	assert.Len(t, Dashes("-."), 4)
	assert.Len(t, Dashes(":"), 2)
}
