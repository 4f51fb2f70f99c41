package report

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/notargets/shocktube/validation"
)

// QuantityStats summarizes the errors of one quantity across all scored runs
type QuantityStats struct {
	Quantity  string
	Runs      int
	Failures  int
	Threshold float64
	Mean      float64
	Median    float64
	Max       float64
}

// Summarize groups scored records by quantity, keeping first-seen quantity order
func Summarize(rep *validation.Report) (qs []QuantityStats, err error) {
	var (
		order  []string
		errs   = make(map[string][]float64)
		byName = make(map[string]*QuantityStats)
	)
	for _, rec := range rep.Scored() {
		st, ok := byName[rec.Quantity]
		if !ok {
			st = &QuantityStats{Quantity: rec.Quantity, Threshold: rec.Threshold}
			byName[rec.Quantity] = st
			order = append(order, rec.Quantity)
		}
		st.Runs++
		if rec.Outcome == validation.Fail {
			st.Failures++
		}
		errs[rec.Quantity] = append(errs[rec.Quantity], rec.Error)
	}
	for _, name := range order {
		st := byName[name]
		data := stats.Float64Data(errs[name])
		if st.Mean, err = stats.Mean(data); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if st.Median, err = stats.Median(data); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if st.Max, err = stats.Max(data); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		qs = append(qs, *st)
	}
	return
}
