package readfiles

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var analyticTable = `# Analytic shock tube at t = 0.2
# i r vrad Sigma Temperature
0 0.0 0.0 1.0 1.0

1 0.5 0.92 0.42 0.72
# trailing comment
2   1.0	0.0   0.125 0.8`

func TestReadTable(t *testing.T) {
	{ // Header rows skipped, comments and blank lines ignored, no final newline
		rows, err := readTable(bufio.NewReader(strings.NewReader(analyticTable)), 2)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, []float64{1, 0.5, 0.92, 0.42, 0.72}, rows[1])
		assert.Equal(t, []float64{2, 1.0, 0.0, 0.125, 0.8}, rows[2])
		x, err := Column(rows, 1)
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 0.5, 1}, x)
		_, err = Column(rows, 5)
		assert.Error(t, err)
	}
	{ // Bad number reports its line
		_, err := readTable(bufio.NewReader(strings.NewReader("1 2\n3 x\n")), 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
	}
	{ // Single column grid file
		dir := t.TempDir()
		fn := filepath.Join(dir, "used_rad.dat")
		require.NoError(t, os.WriteFile(fn, []byte("1.0\n1.5\n2.0\n"), 0644))
		x, err := ReadColumn(fn, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 1.5, 2}, x)
		_, err = ReadColumn(filepath.Join(dir, "missing.dat"), 0, 0)
		assert.ErrorIs(t, err, os.ErrNotExist)
	}
}

func TestReadFloat64Binary(t *testing.T) {
	dir := t.TempDir()
	{ // Round trip
		fn := filepath.Join(dir, "Sigma.dat")
		data := []float64{1, -2.5, 3e-12, 0.125}
		require.NoError(t, WriteFloat64Binary(fn, data))
		fi, err := os.Stat(fn)
		require.NoError(t, err)
		assert.Equal(t, int64(8*len(data)), fi.Size())
		back, err := ReadFloat64Binary(fn)
		require.NoError(t, err)
		assert.Equal(t, data, back)
	}
	{ // Partial trailing value
		fn := filepath.Join(dir, "short.dat")
		require.NoError(t, os.WriteFile(fn, make([]byte, 12), 0644))
		_, err := ReadFloat64Binary(fn)
		assert.ErrorIs(t, err, ErrTruncated)
	}
	{
		_, err := ReadFloat64Binary(filepath.Join(dir, "none.dat"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	}
}
