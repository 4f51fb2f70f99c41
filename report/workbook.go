package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/notargets/shocktube/validation"
)

const (
	RecordsSheet = "Records"
	SummarySheet = "Summary"
)

// WriteWorkbook exports the records and the per-quantity statistics of rep to an xlsx file
func WriteWorkbook(filename string, rep *validation.Report) (err error) {
	var (
		qs []QuantityStats
	)
	if qs, err = Summarize(rep); err != nil {
		return
	}
	f := excelize.NewFile()
	defer f.Close()
	if err = f.SetSheetName("Sheet1", RecordsSheet); err != nil {
		return
	}
	if _, err = f.NewSheet(SummarySheet); err != nil {
		return
	}
	rows := [][]interface{}{
		{"Timestamp", rep.Timestamp.Format(validation.TimeLayout)},
		{"Verdict", rep.Verdict.String()},
		{},
		{"Outcome", "Run", "Quantity", "Error", "Threshold"},
	}
	for _, rec := range rep.Records {
		if rec.Outcome == validation.Skipped {
			rows = append(rows, []interface{}{rec.Outcome.String(), rec.Run})
			continue
		}
		rows = append(rows, []interface{}{rec.Outcome.String(), rec.Run, rec.Quantity, rec.Error, rec.Threshold})
	}
	if err = setRows(f, RecordsSheet, rows); err != nil {
		return
	}
	rows = [][]interface{}{
		{"Quantity", "Runs", "Failures", "Threshold", "Mean", "Median", "Max"},
	}
	for _, st := range qs {
		rows = append(rows, []interface{}{st.Quantity, st.Runs, st.Failures, st.Threshold, st.Mean, st.Median, st.Max})
	}
	if err = setRows(f, SummarySheet, rows); err != nil {
		return
	}
	if err = f.SaveAs(filename); err != nil {
		return fmt.Errorf("saving workbook %s: %w", filename, err)
	}
	return
}

func setRows(f *excelize.File, sheet string, rows [][]interface{}) (err error) {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		var cell string
		if cell, err = excelize.CoordinatesToCellName(1, i+1); err != nil {
			return
		}
		r := row
		if err = f.SetSheetRow(sheet, cell, &r); err != nil {
			return
		}
	}
	return
}
