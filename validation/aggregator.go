package validation

import (
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/notargets/shocktube/types"
)

// Case is the test matrix: every run is scored on every quantity for one snapshot
type Case struct {
	Runs       []types.RunConfig
	Quantities []types.Quantity
	Thresholds map[string]float64
	Snapshot   int
}

func (c Case) Validate() (err error) {
	names := make(map[string]bool, len(c.Runs))
	for _, run := range c.Runs {
		if len(run.Name) == 0 {
			return fmt.Errorf("run with output directory %q has no name", run.OutputDir)
		}
		// Run names are a field of the record log line
		if strings.ContainsAny(run.Name, "|\r\n") {
			return fmt.Errorf("run name %q may not contain '|' or line breaks", run.Name)
		}
		if names[run.Name] {
			return fmt.Errorf("duplicate run name %q", run.Name)
		}
		names[run.Name] = true
	}
	if len(c.Quantities) == 0 {
		return fmt.Errorf("no quantities to check")
	}
	for _, q := range c.Quantities {
		if _, ok := c.Thresholds[q.Name]; !ok {
			return fmt.Errorf("no threshold for quantity %s", q.Name)
		}
	}
	if c.Snapshot < 0 {
		return fmt.Errorf("negative snapshot index %d", c.Snapshot)
	}
	return
}

type CaseScorer interface {
	Score(run types.RunConfig, q types.Quantity, snap int) (float64, error)
}

type Aggregator struct {
	Case   Case
	Scorer CaseScorer
	Log    *RecordLog
	Logger *zap.Logger
	Now    func() time.Time
}

// NewAggregator validates the case; w receives the structured record log and may be nil
func NewAggregator(c Case, scorer CaseScorer, w io.Writer, logger *zap.Logger) (a *Aggregator, err error) {
	if err = c.Validate(); err != nil {
		return
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	a = &Aggregator{
		Case:   c,
		Scorer: scorer,
		Logger: logger,
		Now:    time.Now,
	}
	if w != nil {
		a.Log = NewRecordLog(w)
	}
	return
}

type Report struct {
	Timestamp time.Time
	Records   []ErrorRecord
	Verdict   Verdict
}

// Scored returns the records that carry an error value
func (rep *Report) Scored() (recs []ErrorRecord) {
	for _, rec := range rep.Records {
		if rec.Outcome != Skipped {
			recs = append(recs, rec)
		}
	}
	return
}

func (rep *Report) Present() (runs []string) {
	seen := make(map[string]bool)
	for _, rec := range rep.Records {
		if rec.Outcome != Skipped && !seen[rec.Run] {
			seen[rec.Run] = true
			runs = append(runs, rec.Run)
		}
	}
	return
}

// Run scores every present run on every quantity in case order. A missing run directory yields
// a Skipped record; any error inside a present run aborts with a Failure verdict.
func (a *Aggregator) Run() (rep *Report, err error) {
	rep = &Report{Timestamp: a.Now()}
	if a.Log != nil {
		if err = a.Log.Header(rep.Timestamp); err != nil {
			rep.Verdict = Failure
			return rep, fmt.Errorf("writing record log header: %w", err)
		}
	}
	for _, run := range a.Case.Runs {
		var present bool
		if present, err = run.Present(); err != nil {
			rep.Verdict = Failure
			return
		}
		if !present {
			a.Logger.Info("run output not found, skipping",
				zap.String("run", run.Name), zap.String("dir", run.OutputDir))
			if err = a.record(rep, ErrorRecord{Run: run.Name, Outcome: Skipped}); err != nil {
				return
			}
			continue
		}
		for _, q := range a.Case.Quantities {
			var diff float64
			if diff, err = a.Scorer.Score(run, q, a.Case.Snapshot); err != nil {
				rep.Verdict = Failure
				return rep, fmt.Errorf("run %s: %w", run.Name, err)
			}
			threshold := a.Case.Thresholds[q.Name]
			rec := ErrorRecord{
				Run:       run.Name,
				Quantity:  q.Name,
				Error:     diff,
				Threshold: threshold,
				Outcome:   Classify(diff, threshold),
			}
			a.Logger.Debug("record",
				zap.String("run", rec.Run),
				zap.String("quantity", rec.Quantity),
				zap.Float64("error", rec.Error),
				zap.Float64("threshold", rec.Threshold),
				zap.Stringer("outcome", rec.Outcome))
			if err = a.record(rep, rec); err != nil {
				return
			}
		}
	}
	rep.Verdict = Evaluate(rep.Records)
	if rep.Verdict == NoData {
		a.Logger.Warn("no run produced output, verdict is undetermined")
	}
	return
}

func (a *Aggregator) record(rep *Report, rec ErrorRecord) (err error) {
	rep.Records = append(rep.Records, rec)
	if a.Log != nil {
		if err = a.Log.Append(rec); err != nil {
			rep.Verdict = Failure
			return fmt.Errorf("writing record log: %w", err)
		}
	}
	return
}
