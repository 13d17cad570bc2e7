// Package recommend classifies properties into investment categories using a
// priority-ordered decision table.
package recommend

import "github.com/propwise/propwise/pkg/constants"

// Investment type labels.
const (
	BestAsRental    = "Best as a Rental"
	GoodForFlipping = "Good for Flipping"
	BadBuy          = "Bad Buy"
	EvaluateFurther = "Depends — Evaluate Further"
)

// rule pairs a predicate with the label it yields when matched.
type rule struct {
	matches func(roiPercent, monthlyCashFlow, flipProfit float64) bool
	label   string
}

// rules is evaluated in order; the first match wins. The ordering is part of
// the classification contract: a high-ROI cash-positive property is a rental
// even when it would also flip profitably.
var rules = []rule{
	{
		matches: func(roi, cashFlow, flipProfit float64) bool {
			return roi >= constants.RentalROIThreshold && cashFlow > 0
		},
		label: BestAsRental,
	},
	{
		matches: func(roi, cashFlow, flipProfit float64) bool {
			return flipProfit > 0 && roi < constants.RentalROIThreshold
		},
		label: GoodForFlipping,
	},
	{
		matches: func(roi, cashFlow, flipProfit float64) bool {
			return roi < constants.BadBuyROIThreshold && cashFlow < 0
		},
		label: BadBuy,
	},
}

// Classify maps a property's ROI, monthly cash flow, and flip profit to an
// investment type label.
func Classify(roiPercent, monthlyCashFlow, flipProfit float64) string {
	for _, r := range rules {
		if r.matches(roiPercent, monthlyCashFlow, flipProfit) {
			return r.label
		}
	}
	return EvaluateFurther
}
