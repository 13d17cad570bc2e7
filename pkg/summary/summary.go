// Package summary renders the natural-language synopsis for an analyzed property.
package summary

import "fmt"

// Render produces the fixed-template synopsis sentence. Values are embedded
// with two-decimal precision; there is no branching, only interpolation.
func Render(name string, annualCashFlow, roiPercent, netMonthlyRent float64) string {
	return fmt.Sprintf("%s is projected to generate an annual cash flow of $%.2f "+
		"with an ROI of %.2f%%. The net rent collected is $%.2f per month, "+
		"making it a compelling investment.",
		name, annualCashFlow, roiPercent, netMonthlyRent)
}
