package service

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Badsnus/golf-stats/internal/domain/dto"
)

const (
	sheetSummary = "Summary"
	sheetHoles   = "Holes"
	sheetRounds  = "Rounds"
	sheetCourses = "Courses"
)

// ReportToXLSX renders a player report as a workbook with one sheet per view.
func ReportToXLSX(report *dto.PlayerReport) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, err
	}
	for _, sheet := range []string{sheetHoles, sheetRounds, sheetCourses} {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}

	summary := report.Summary
	summaryRows := [][]interface{}{
		{"Player", summary.Name()},
		{"Rounds played", summary.RoundsPlayed},
		{"Average score", cell(summary.AvgScore)},
		{"Best score", cell(summary.BestScore)},
		{"Last played", dateCell(summary.LastPlayed.IsZero(), summary.LastPlayed.String())},
		{"Handicap index", cell(report.Handicap.Index)},
		{"Rounds used for handicap", report.Handicap.RoundsUsed},
	}
	if err := writeRows(f, sheetSummary, summaryRows); err != nil {
		return nil, err
	}

	holeRows := [][]interface{}{{"Hole", "Played", "Avg strokes", "Avg putts", "Fairway %", "GIR %"}}
	for _, h := range report.Holes {
		holeRows = append(holeRows, []interface{}{
			h.HoleNumber, h.HolesPlayed, cell(h.AvgStrokes), cell(h.AvgPutts), cell(h.FairwayPct), cell(h.GIRPct),
		})
	}
	if err := writeRows(f, sheetHoles, holeRows); err != nil {
		return nil, err
	}

	roundRows := [][]interface{}{{"Date", "Course", "Strokes", "Putts", "Fairways", "GIR", "Differential", "Notes"}}
	for _, r := range report.Rounds {
		roundRows = append(roundRows, []interface{}{
			r.DatePlayed.String(), cell(r.CourseName), cell(r.TotalStrokes), cell(r.Putts),
			cell(r.FairwaysHit), cell(r.GIR), cell(r.Differential), cell(r.Notes),
		})
	}
	if err := writeRows(f, sheetRounds, roundRows); err != nil {
		return nil, err
	}

	courseRows := [][]interface{}{{"Course", "Par", "Rounds", "Avg score", "Best score"}}
	for _, c := range report.Courses {
		courseRows = append(courseRows, []interface{}{
			c.CourseName, cell(c.CoursePar), c.RoundsPlayed, cell(c.AvgScore), cell(c.BestScore),
		})
	}
	if err := writeRows(f, sheetCourses, courseRows); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		axis, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err = f.SetSheetRow(sheet, axis, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

// cell unwraps optional values; nil becomes an empty cell.
func cell[T any](v *T) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func dateCell(zero bool, s string) interface{} {
	if zero {
		return nil
	}
	return s
}
