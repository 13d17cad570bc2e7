// Package output provides utilities for formatting and displaying analysis results.
package output

import (
	"fmt"
	"io"

	"github.com/propwise/propwise/internal/analysis"
	"github.com/propwise/propwise/pkg/export"
	"github.com/propwise/propwise/pkg/format"
	"github.com/propwise/propwise/pkg/property"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable comparison.
func PrettyFormat(w io.Writer, inputs []property.Input, outcomes []analysis.Outcome) {
	if len(outcomes) == 0 {
		fmt.Fprintln(w, "No properties to analyze.")
		return
	}

	p := message.NewPrinter(language.English)
	for i, outcome := range outcomes {
		if outcome.Err != nil || outcome.Result == nil {
			in := inputs[i]
			fmt.Fprintf(w, "--- %s (%s) ---\n", in.Name, in.ZipCode)
			fmt.Fprintf(w, "Address: %s\n", in.Address)
			fmt.Fprintf(w, "Analysis failed: %v\n", outcome.Err)
			fmt.Fprintf(w, "\n")
			continue
		}

		r := outcome.Result
		fmt.Fprintf(w, "--- %s (%s) ---\n", r.Name, r.ZipCode)
		fmt.Fprintf(w, "Address: %s\n", r.Address)
		_, _ = p.Fprintf(w, "Monthly Cost: %s | Net Rent: %s | Cash Flow: %s\n",
			format.Currency(r.MonthlyCost), format.Currency(r.NetMonthlyRent), format.Currency(r.MonthlyCashFlow))
		_, _ = p.Fprintf(w, "Annual Profit: %s | ROI: %s | Flip Profit: %s\n",
			format.Currency(r.AnnualCashFlow), format.Percent(r.ROIPercent), format.Currency(r.FlipProfit))
		fmt.Fprintf(w, "Rent Estimate: %s\n", format.CurrencyRange(r.RentRangeLow, r.RentRangeHigh))
		fmt.Fprintf(w, "Investment Type: %s\n", r.InvestmentType)
		fmt.Fprintf(w, "Summary: %s\n", r.Summary)
		fmt.Fprintf(w, "\n")
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(w io.Writer, inputs []property.Input, outcomes []analysis.Outcome) error {
	return export.WriteCSV(w, inputs, outcomes)
}
