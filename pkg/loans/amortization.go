// Package loans provides fixed-rate mortgage calculations.
package loans

import (
	"fmt"
	"math"

	"github.com/propwise/propwise/pkg/constants"
	"github.com/propwise/propwise/pkg/property"
)

// MonthlyPayment calculates the fixed monthly payment for an amortizing loan.
// A zero interest rate falls back to straight-line repayment of the principal;
// the textbook formula divides by zero there.
func MonthlyPayment(principal, annualRatePercent float64, termMonths int) (float64, error) {
	if principal < 0 {
		return 0, fmt.Errorf("%w: loan principal must not be negative, got %v", property.ErrInvalidInput, principal)
	}
	if annualRatePercent < 0 {
		return 0, fmt.Errorf("%w: interest rate must not be negative, got %v", property.ErrInvalidInput, annualRatePercent)
	}
	if termMonths <= 0 {
		return 0, fmt.Errorf("%w: loan term must be positive, got %d months", property.ErrInvalidInput, termMonths)
	}

	if annualRatePercent == 0 {
		return principal / float64(termMonths), nil
	}

	periodicRate := annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow(1.00+periodicRate, float64(termMonths))
	discountFactor := (power - 1.00) / power
	return principal * periodicRate / discountFactor, nil
}

// InterestPayment calculates the interest portion of one monthly payment.
func InterestPayment(remainingPrincipal, annualRatePercent float64) float64 {
	return remainingPrincipal * annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
}
