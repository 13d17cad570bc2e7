package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/propwise/propwise/internal/analysis"
	"github.com/propwise/propwise/pkg/property"
)

func outcomesFixture(t *testing.T) ([]property.Input, []analysis.Outcome) {
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
	}
	analyzer := analysis.NewAnalyzer(nil)
	return inputs, analyzer.AnalyzeAll(inputs)
}

func TestPrettyFormat(t *testing.T) {
	inputs, outcomes := outcomesFixture(t)

	var buf bytes.Buffer
	PrettyFormat(&buf, inputs, outcomes)
	got := buf.String()

	for _, want := range []string{"Property A", "123 Main St", "Investment Type:", "Rent Estimate: $1,650.00 - $1,950.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("PrettyFormat() output missing %q:\n%s", want, got)
		}
	}
}

func TestPrettyFormatEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrettyFormat(&buf, nil, nil)

	if !strings.Contains(buf.String(), "No properties") {
		t.Errorf("PrettyFormat() with no outcomes = %q, expected an empty-collection notice", buf.String())
	}
}

func TestPrettyFormatFailedProperty(t *testing.T) {
	inputs := []property.Input{
		{
			Name:                "Broken",
			Address:             "456 Oak Ave",
			ZipCode:             "67890",
			SquareFootage:       1000,
			PurchasePrice:       100000,
			InterestRatePercent: 5,
			LoanTermYears:       30,
			ExpectedMonthlyRent: 1000,
			HoldPeriodYears:     5,
		},
	}
	analyzer := analysis.NewAnalyzer(nil)
	outcomes := analyzer.AnalyzeAll(inputs)

	var buf bytes.Buffer
	PrettyFormat(&buf, inputs, outcomes)
	got := buf.String()

	if !strings.Contains(got, "Broken") || !strings.Contains(got, "Analysis failed") {
		t.Errorf("PrettyFormat() did not report the failed property:\n%s", got)
	}
}

func TestCsvFormat(t *testing.T) {
	inputs, outcomes := outcomesFixture(t)

	var buf bytes.Buffer
	if err := CsvFormat(&buf, inputs, outcomes); err != nil {
		t.Fatalf("CsvFormat() unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("CsvFormat() produced %d lines, expected header plus one row", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Name,Address,ZipCode") {
		t.Errorf("CsvFormat() header = %q", lines[0])
	}
}
