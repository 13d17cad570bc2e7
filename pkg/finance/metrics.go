// Package finance provides the property metrics calculations: carrying cost,
// cash flow, appreciation, return on investment, and flip profit.
package finance

import (
	"fmt"
	"math"

	"github.com/propwise/propwise/pkg/constants"
	"github.com/propwise/propwise/pkg/mathutil"
	"github.com/propwise/propwise/pkg/property"
)

// Metrics holds the derived financial metrics for one property. Values are
// unrounded; rounding happens only at presentation boundaries.
type Metrics struct {
	MonthlyCost      float64
	NetMonthlyRent   float64
	MonthlyCashFlow  float64
	AnnualCashFlow   float64
	FutureValue      float64
	AppreciationGain float64
	TotalInvested    float64
	ROIPercent       float64
	FlipProfit       float64
}

// Compute derives all metrics from a property input and its monthly mortgage
// payment. TotalInvested of zero makes the ROI undefined and is reported as a
// degenerate arithmetic error rather than a non-finite value. Any other
// combination that produces a NaN or infinite metric fails the same way; NaN
// never reaches a result.
func Compute(in property.Input, monthlyMortgage float64) (Metrics, error) {
	var m Metrics

	m.MonthlyCost = monthlyMortgage +
		in.AnnualPropertyTax/constants.MonthsPerYear +
		in.AnnualInsurance/constants.MonthsPerYear +
		in.MonthlyMaintenance
	m.NetMonthlyRent = in.ExpectedMonthlyRent * (1 - in.VacancyRate)
	m.MonthlyCashFlow = m.NetMonthlyRent - m.MonthlyCost
	m.AnnualCashFlow = m.MonthlyCashFlow * constants.MonthsPerYear

	m.FutureValue = in.PurchasePrice * math.Pow(1+in.AnnualAppreciationPercent/constants.PercentageMultiplier, in.HoldPeriodYears)
	m.AppreciationGain = m.FutureValue - in.PurchasePrice

	m.TotalInvested = in.DownPayment + in.MonthlyMaintenance*constants.MonthsPerYear*in.HoldPeriodYears
	if m.TotalInvested == 0 {
		return m, fmt.Errorf("%w: total invested is zero, ROI is undefined (down payment and maintenance are both zero)",
			property.ErrArithmeticDegenerate)
	}
	m.ROIPercent = (m.AnnualCashFlow*in.HoldPeriodYears + m.AppreciationGain) / m.TotalInvested * constants.PercentageMultiplier

	m.FlipProfit = in.TargetResalePrice - in.PurchasePrice - in.RehabCost

	for _, metric := range []float64{
		m.MonthlyCost, m.NetMonthlyRent, m.MonthlyCashFlow, m.AnnualCashFlow,
		m.FutureValue, m.AppreciationGain, m.TotalInvested, m.ROIPercent, m.FlipProfit,
	} {
		if !mathutil.IsFinite(metric) {
			return m, fmt.Errorf("%w: computation produced a non-finite value for property %s",
				property.ErrArithmeticDegenerate, in.Name)
		}
	}

	return m, nil
}
