package export

import (
	"bytes"
	"testing"

	"github.com/propwise/propwise/internal/analysis"
	"github.com/propwise/propwise/pkg/property"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func exportFixture(t *testing.T) ([]property.Input, []analysis.Outcome) {
	t.Helper()

	inputs := []property.Input{
		{
			Name:                      "Property A",
			Address:                   "123 Main St",
			ZipCode:                   "12345",
			SquareFootage:             1500,
			PurchasePrice:             200000,
			DownPayment:               40000,
			InterestRatePercent:       6.5,
			LoanTermYears:             30,
			AnnualPropertyTax:         3600,
			AnnualInsurance:           1200,
			MonthlyMaintenance:        150,
			VacancyRate:               0.05,
			ExpectedMonthlyRent:       1800,
			AnnualAppreciationPercent: 3.0,
			HoldPeriodYears:           5,
			RehabCost:                 30000,
			TargetResalePrice:         275000,
		},
		{
			// Zero down payment and maintenance: degenerate ROI.
			Name:                "Broken",
			Address:             "456 Oak Ave",
			ZipCode:             "67890",
			SquareFootage:       1000,
			PurchasePrice:       100000,
			InterestRatePercent: 5,
			LoanTermYears:       30,
			VacancyRate:         0.05,
			ExpectedMonthlyRent: 1000,
			HoldPeriodYears:     5,
		},
	}

	analyzer := analysis.NewAnalyzer(nil)
	outcomes := analyzer.AnalyzeAll(inputs)
	require.Len(t, outcomes, 2)
	require.NoError(t, outcomes[0].Err)
	require.Error(t, outcomes[1].Err)
	return inputs, outcomes
}

func TestCSVRoundTrip(t *testing.T) {
	inputs, outcomes := exportFixture(t)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, inputs, outcomes))

	results, err := ReadCSV(&buf)
	require.NoError(t, err)
	require.Len(t, results, 2)

	original := outcomes[0].Result
	readBack := results[0]
	assert.Equal(t, original.Name, readBack.Name)
	assert.Equal(t, original.Address, readBack.Address)
	assert.Equal(t, original.ZipCode, readBack.ZipCode)
	assert.InDelta(t, original.MonthlyCost, readBack.MonthlyCost, 0.005)
	assert.InDelta(t, original.NetMonthlyRent, readBack.NetMonthlyRent, 0.005)
	assert.InDelta(t, original.MonthlyCashFlow, readBack.MonthlyCashFlow, 0.005)
	assert.InDelta(t, original.AnnualCashFlow, readBack.AnnualCashFlow, 0.005)
	assert.InDelta(t, original.ROIPercent, readBack.ROIPercent, 0.005)
	assert.InDelta(t, original.FlipProfit, readBack.FlipProfit, 0.005)
	assert.InDelta(t, original.RentRangeLow, readBack.RentRangeLow, 0.005)
	assert.InDelta(t, original.RentRangeHigh, readBack.RentRangeHigh, 0.005)
	assert.Equal(t, original.InvestmentType, readBack.InvestmentType)
	assert.Equal(t, original.Summary, readBack.Summary)
}

func TestCSVKeepsFailedRows(t *testing.T) {
	inputs, outcomes := exportFixture(t)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, inputs, outcomes))

	results, err := ReadCSV(&buf)
	require.NoError(t, err)
	require.Len(t, results, 2)

	failed := results[1]
	assert.Equal(t, "Broken", failed.Name)
	assert.Equal(t, "456 Oak Ave", failed.Address)
	assert.Contains(t, failed.Summary, "analysis failed")
	assert.Zero(t, failed.ROIPercent)
}

func TestWriteCSVLengthMismatch(t *testing.T) {
	inputs, outcomes := exportFixture(t)

	var buf bytes.Buffer
	err := WriteCSV(&buf, inputs[:1], outcomes)
	assert.Error(t, err)
}

func TestWriteXLSX(t *testing.T) {
	inputs, outcomes := exportFixture(t)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, inputs, outcomes))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() {
		require.NoError(t, f.Close())
	}()

	rows, err := f.GetRows("Properties")
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 properties

	assert.Equal(t, property.ColumnHeaders(), rows[0])
	assert.Equal(t, "Property A", rows[1][0])
	assert.Equal(t, "Broken", rows[2][0])

	roi, err := f.GetCellValue("Properties", "I2")
	require.NoError(t, err)
	assert.NotEmpty(t, roi)
}
