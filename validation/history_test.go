package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var appendedLog = `2026-10-16 22:00:00
SUCCESS | SN | Sigma | 0.005
SKIPPED | TW | - | -
2026-10-17 22:00:00
FAIL | SN | Sigma | 0.008
SUCCESS | TW | Sigma | 0.001

`

func TestReadHistory(t *testing.T) {
	sessions, err := ReadHistory(strings.NewReader(appendedLog))
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, 16, sessions[0].Timestamp.Day())
	assert.Len(t, sessions[0].Records, 2)
	assert.Equal(t, Skipped, sessions[0].Records[1].Outcome)
	assert.Equal(t, Fail, sessions[1].Records[0].Outcome)

	trends := Trends(sessions)
	require.Len(t, trends, 2)
	assert.Equal(t, "SN", trends[0].Run)
	assert.Equal(t, []float64{0.005, 0.008}, trends[0].Errors)
	assert.Equal(t, "TW", trends[1].Run)
	assert.Equal(t, []float64{0.001}, trends[1].Errors)

	_, err = ReadHistory(strings.NewReader("SUCCESS | SN | Sigma | 0.005\n"))
	assert.Error(t, err)
	_, err = ReadHistory(strings.NewReader("2026-10-16 22:00:00\nnot a record\n"))
	assert.Error(t, err)
}
