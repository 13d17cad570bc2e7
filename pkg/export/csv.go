// Package export serializes analysis outcomes to tabular formats: CSV and
// XLSX, one row per property in result column order. Failed properties
// keep their row with the error text in the Summary column so a comparison
// export never silently drops a position.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/propwise/propwise/internal/analysis"
	"github.com/propwise/propwise/pkg/property"
)

// WriteCSV writes one header row plus one row per outcome. The inputs slice
// supplies identifying fields for positions whose analysis failed.
func WriteCSV(w io.Writer, inputs []property.Input, outcomes []analysis.Outcome) error {
	records, err := buildRecords(inputs, outcomes)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(property.ColumnHeaders()); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// ReadCSV parses a CSV export back into result records. Numeric cells left
// empty (failed rows) read back as zero.
func ReadCSV(r io.Reader) ([]property.Result, error) {
	reader := csv.NewReader(r)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("CSV export has no header row")
	}

	headers := property.ColumnHeaders()
	if len(rows[0]) != len(headers) {
		return nil, fmt.Errorf("CSV header has %d columns, expected %d", len(rows[0]), len(headers))
	}
	for i, header := range headers {
		if rows[0][i] != header {
			return nil, fmt.Errorf("unexpected CSV column %d: got %q, expected %q", i, rows[0][i], header)
		}
	}

	results := make([]property.Result, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != len(headers) {
			return nil, fmt.Errorf("CSV row has %d columns, expected %d", len(row), len(headers))
		}
		result := property.Result{
			Name:           row[0],
			Address:        row[1],
			ZipCode:        row[2],
			ImageURL:       row[3],
			InvestmentType: row[12],
			Summary:        row[13],
		}
		numeric := []struct {
			cell string
			dest *float64
		}{
			{row[4], &result.MonthlyCost},
			{row[5], &result.NetMonthlyRent},
			{row[6], &result.MonthlyCashFlow},
			{row[7], &result.AnnualCashFlow},
			{row[8], &result.ROIPercent},
			{row[9], &result.FlipProfit},
			{row[10], &result.RentRangeLow},
			{row[11], &result.RentRangeHigh},
		}
		for _, field := range numeric {
			if field.cell == "" {
				continue
			}
			value, err := strconv.ParseFloat(field.cell, 64)
			if err != nil {
				return nil, fmt.Errorf("failed to parse numeric cell %q: %w", field.cell, err)
			}
			*field.dest = value
		}
		results = append(results, result)
	}
	return results, nil
}

// buildRecords renders one string record per outcome in column order.
func buildRecords(inputs []property.Input, outcomes []analysis.Outcome) ([][]string, error) {
	if len(inputs) != len(outcomes) {
		return nil, fmt.Errorf("have %d inputs but %d outcomes", len(inputs), len(outcomes))
	}

	records := make([][]string, 0, len(outcomes))
	for i, outcome := range outcomes {
		if outcome.Err != nil || outcome.Result == nil {
			in := inputs[i]
			records = append(records, []string{
				in.Name, in.Address, in.ZipCode, in.ImageURL,
				"", "", "", "", "", "", "", "",
				"", fmt.Sprintf("analysis failed: %v", outcome.Err),
			})
			continue
		}
		r := outcome.Result
		records = append(records, []string{
			r.Name,
			r.Address,
			r.ZipCode,
			r.ImageURL,
			formatCell(r.MonthlyCost),
			formatCell(r.NetMonthlyRent),
			formatCell(r.MonthlyCashFlow),
			formatCell(r.AnnualCashFlow),
			formatCell(r.ROIPercent),
			formatCell(r.FlipProfit),
			formatCell(r.RentRangeLow),
			formatCell(r.RentRangeHigh),
			r.InvestmentType,
			r.Summary,
		})
	}
	return records, nil
}

func formatCell(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
