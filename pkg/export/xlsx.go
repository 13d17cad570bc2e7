package export

import (
	"fmt"
	"io"

	"github.com/propwise/propwise/internal/analysis"
	"github.com/propwise/propwise/pkg/constants"
	"github.com/propwise/propwise/pkg/property"
	"github.com/xuri/excelize/v2"
)

// WriteXLSX writes a single-sheet workbook with a header row plus one row per
// outcome. Numeric columns are written as numbers so spreadsheet formulas and
// charts work on them directly.
func WriteXLSX(w io.Writer, inputs []property.Input, outcomes []analysis.Outcome) error {
	if len(inputs) != len(outcomes) {
		return fmt.Errorf("have %d inputs but %d outcomes", len(inputs), len(outcomes))
	}

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	sheet := constants.ExportSheetName
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name worksheet: %w", err)
	}

	for col, header := range property.ColumnHeaders() {
		if err := setCell(f, sheet, col+1, 1, header); err != nil {
			return err
		}
	}

	for i, outcome := range outcomes {
		row := i + 2
		if outcome.Err != nil || outcome.Result == nil {
			in := inputs[i]
			cells := []interface{}{
				in.Name, in.Address, in.ZipCode, in.ImageURL,
				nil, nil, nil, nil, nil, nil, nil, nil,
				nil, fmt.Sprintf("analysis failed: %v", outcome.Err),
			}
			if err := setRow(f, sheet, row, cells); err != nil {
				return err
			}
			continue
		}
		r := outcome.Result
		cells := []interface{}{
			r.Name, r.Address, r.ZipCode, r.ImageURL,
			r.MonthlyCost, r.NetMonthlyRent, r.MonthlyCashFlow, r.AnnualCashFlow,
			r.ROIPercent, r.FlipProfit, r.RentRangeLow, r.RentRangeHigh,
			r.InvestmentType, r.Summary,
		}
		if err := setRow(f, sheet, row, cells); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	for col, value := range cells {
		if value == nil {
			continue
		}
		if err := setCell(f, sheet, col+1, row, value); err != nil {
			return err
		}
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("failed to build cell reference (%d, %d): %w", col, row, err)
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("failed to set cell %s: %w", cell, err)
	}
	return nil
}
