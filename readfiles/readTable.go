package readfiles

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// ReadTable reads a whitespace delimited table of numbers. The first skipRows lines are
// discarded, blank lines and lines starting with '#' are ignored. Rows may have different
// lengths; callers check the columns they use.
func ReadTable(filename string, skipRows int) (rows [][]float64, err error) {
	var (
		file *os.File
	)
	if file, err = os.Open(filename); err != nil {
		return nil, fmt.Errorf("unable to open file %s: %w", filename, err)
	}
	defer file.Close()
	if rows, err = readTable(bufio.NewReader(file), skipRows); err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	return
}

func readTable(reader *bufio.Reader, skipRows int) (rows [][]float64, err error) {
	var (
		line   string
		lineNo int
	)
	skipLines(skipRows, reader)
	lineNo = skipRows
	for {
		line, err = reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		eof := err == io.EOF
		err = nil
		lineNo++
		line = strings.TrimSpace(line)
		if len(line) != 0 && !strings.HasPrefix(line, "#") {
			fields := strings.Fields(line)
			row := make([]float64, len(fields))
			for i, f := range fields {
				if row[i], err = strconv.ParseFloat(f, 64); err != nil {
					return nil, fmt.Errorf("line %d, column %d: %w", lineNo, i, err)
				}
			}
			rows = append(rows, row)
		}
		if eof {
			return
		}
	}
}

// ReadColumn returns column col of every row of the table in filename
func ReadColumn(filename string, skipRows, col int) (x []float64, err error) {
	var rows [][]float64
	if rows, err = ReadTable(filename, skipRows); err != nil {
		return
	}
	return Column(rows, col)
}

func Column(rows [][]float64, col int) (x []float64, err error) {
	x = make([]float64, len(rows))
	for i, row := range rows {
		if col >= len(row) {
			return nil, fmt.Errorf("row %d has %d columns, need column %d", i, len(row), col)
		}
		x[i] = row[col]
	}
	return
}

// ReadFloat64Binary reads a headerless file of native endian 8 byte floats
func ReadFloat64Binary(filename string) (data []float64, err error) {
	var (
		raw []byte
	)
	if raw, err = os.ReadFile(filename); err != nil {
		return nil, fmt.Errorf("unable to read file %s: %w", filename, err)
	}
	if len(raw)%8 != 0 {
		return nil, fmt.Errorf("%w: file %s has %d bytes, not a whole number of float64 values",
			ErrTruncated, filename, len(raw))
	}
	data = make([]float64, len(raw)/8)
	for i := range data {
		data[i] = math.Float64frombits(binary.NativeEndian.Uint64(raw[8*i:]))
	}
	return
}

// WriteFloat64Binary is the inverse of ReadFloat64Binary
func WriteFloat64Binary(filename string, data []float64) (err error) {
	raw := make([]byte, 8*len(data))
	for i, f := range data {
		binary.NativeEndian.PutUint64(raw[8*i:], math.Float64bits(f))
	}
	return os.WriteFile(filename, raw, 0644)
}

var ErrTruncated = errors.New("truncated binary file")

func skipLines(n int, reader *bufio.Reader) {
	for i := 0; i < n; i++ {
		if _, err := reader.ReadString('\n'); err != nil {
			return
		}
	}
}
