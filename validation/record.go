package validation

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

type Outcome uint8

const (
	Pass Outcome = iota
	Fail
	Skipped
)

var outcomeKeywords = []string{"SUCCESS", "FAIL", "SKIPPED"}

func (o Outcome) String() string {
	if int(o) < len(outcomeKeywords) {
		return outcomeKeywords[o]
	}
	return fmt.Sprintf("Outcome(%d)", uint8(o))
}

func ParseOutcome(s string) (o Outcome, err error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SUCCESS", "PASS":
		return Pass, nil
	case "FAIL":
		return Fail, nil
	case "SKIPPED":
		return Skipped, nil
	}
	return 0, fmt.Errorf("unknown outcome %q", s)
}

// Classify passes an error strictly below the threshold
func Classify(diff, threshold float64) Outcome {
	if diff < threshold {
		return Pass
	}
	return Fail
}

// ErrorRecord is the result for one run and quantity. Skipped records carry only the run name.
type ErrorRecord struct {
	Run       string
	Quantity  string
	Error     float64
	Threshold float64
	Outcome   Outcome
}

const (
	fieldSep    = " | "
	placeholder = "-"
	TimeLayout  = "2006-01-02 15:04:05"
)

func (rec ErrorRecord) String() string {
	if rec.Outcome == Skipped {
		return strings.Join([]string{rec.Outcome.String(), rec.Run, placeholder, placeholder}, fieldSep)
	}
	return strings.Join([]string{
		rec.Outcome.String(),
		rec.Run,
		rec.Quantity,
		strconv.FormatFloat(rec.Error, 'g', -1, 64),
	}, fieldSep)
}

// ParseRecord reads back a line written by RecordLog. The threshold is not part of the line.
func ParseRecord(line string) (rec ErrorRecord, err error) {
	fields := strings.Split(strings.TrimRight(line, "\r\n"), fieldSep)
	if len(fields) != 4 {
		return rec, fmt.Errorf("record %q: want 4 fields, have %d", line, len(fields))
	}
	if rec.Outcome, err = ParseOutcome(fields[0]); err != nil {
		return
	}
	rec.Run = fields[1]
	if rec.Outcome == Skipped {
		return
	}
	rec.Quantity = fields[2]
	if rec.Error, err = strconv.ParseFloat(strings.TrimSpace(fields[3]), 64); err != nil {
		return rec, fmt.Errorf("record %q: %w", line, err)
	}
	return
}

// RecordLog writes the timestamp header and one line per record. Every line goes out in a
// single Write so an aborted run never leaves a partial record behind.
type RecordLog struct {
	w io.Writer
}

func NewRecordLog(w io.Writer) *RecordLog {
	return &RecordLog{w: w}
}

// OpenRecordLog opens filename for appending, creating it when needed
func OpenRecordLog(filename string) (f *os.File, err error) {
	return os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
}

func (l *RecordLog) Header(t time.Time) (err error) {
	_, err = io.WriteString(l.w, t.Format(TimeLayout)+"\n")
	return
}

func (l *RecordLog) Append(rec ErrorRecord) (err error) {
	_, err = io.WriteString(l.w, rec.String()+"\n")
	return
}
