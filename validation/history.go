package validation

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Session is one check invocation read back from the record log
type Session struct {
	Timestamp time.Time
	Records   []ErrorRecord
}

// ReadHistory splits an appended record log into its sessions
func ReadHistory(r io.Reader) (sessions []Session, err error) {
	var (
		scanner = bufio.NewScanner(r)
		lineNo  int
	)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		if ts, terr := time.ParseInLocation(TimeLayout, line, time.Local); terr == nil {
			sessions = append(sessions, Session{Timestamp: ts})
			continue
		}
		if len(sessions) == 0 {
			return nil, fmt.Errorf("line %d: record before any timestamp header", lineNo)
		}
		var rec ErrorRecord
		if rec, err = ParseRecord(line); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		s := &sessions[len(sessions)-1]
		s.Records = append(s.Records, rec)
	}
	err = scanner.Err()
	return
}

func ReadHistoryFile(filename string) (sessions []Session, err error) {
	var f *os.File
	if f, err = os.Open(filename); err != nil {
		return
	}
	defer f.Close()
	return ReadHistory(f)
}

// Trend collects the error of one run and quantity across sessions, oldest first
type Trend struct {
	Run, Quantity string
	Times         []time.Time
	Errors        []float64
}

func (tr *Trend) Add(t time.Time, diff float64) {
	tr.Times = append(tr.Times, t)
	tr.Errors = append(tr.Errors, diff)
}

// Trends groups the scored records of all sessions by run and quantity in first-seen order
func Trends(sessions []Session) (trends []*Trend) {
	byKey := make(map[string]*Trend)
	for _, s := range sessions {
		for _, rec := range s.Records {
			if rec.Outcome == Skipped {
				continue
			}
			key := rec.Run + "\x00" + rec.Quantity
			tr, ok := byKey[key]
			if !ok {
				tr = &Trend{Run: rec.Run, Quantity: rec.Quantity}
				byKey[key] = tr
				trends = append(trends, tr)
			}
			tr.Add(s.Timestamp, rec.Error)
		}
	}
	return
}
