// Package property defines the data structures for property analysis inputs
// and results along with the error kinds surfaced by the calculators.
package property

import (
	"errors"
	"fmt"
)

// ErrInvalidInput indicates a structural precondition on a property input was
// violated before any computation took place.
var ErrInvalidInput = errors.New("invalid property input")

// ErrArithmeticDegenerate indicates a computation would divide by zero or
// otherwise produce a non-finite value.
var ErrArithmeticDegenerate = errors.New("degenerate arithmetic input")

// Input holds the user-supplied parameters for one property. Inputs are
// immutable once submitted; analysis never modifies them.
type Input struct {
	Name                      string  `json:"name" yaml:"name"`
	Address                   string  `json:"address" yaml:"address"`
	ZipCode                   string  `json:"zipCode" yaml:"zipCode"`
	ImageURL                  string  `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
	SquareFootage             float64 `json:"squareFootage" yaml:"squareFootage"`
	PurchasePrice             float64 `json:"purchasePrice" yaml:"purchasePrice"`
	DownPayment               float64 `json:"downPayment" yaml:"downPayment"`
	InterestRatePercent       float64 `json:"interestRatePercent" yaml:"interestRatePercent"`
	LoanTermYears             int     `json:"loanTermYears" yaml:"loanTermYears"`
	AnnualPropertyTax         float64 `json:"annualPropertyTax" yaml:"annualPropertyTax"`
	AnnualInsurance           float64 `json:"annualInsurance" yaml:"annualInsurance"`
	MonthlyMaintenance        float64 `json:"monthlyMaintenance" yaml:"monthlyMaintenance"`
	VacancyRate               float64 `json:"vacancyRate" yaml:"vacancyRate"`
	ExpectedMonthlyRent       float64 `json:"expectedMonthlyRent" yaml:"expectedMonthlyRent"`
	AnnualAppreciationPercent float64 `json:"annualAppreciationPercent" yaml:"annualAppreciationPercent"`
	HoldPeriodYears           float64 `json:"holdPeriodYears" yaml:"holdPeriodYears"`
	RehabCost                 float64 `json:"rehabCost" yaml:"rehabCost"`
	TargetResalePrice         float64 `json:"targetResalePrice" yaml:"targetResalePrice"`
}

// Result holds the derived metrics for one property. A Result is a pure
// function of its Input and is recomputed fresh on every analysis run.
// Monetary fields are rounded to two decimals at construction since a Result
// is a presentation-facing record.
type Result struct {
	Name            string  `json:"name"`
	Address         string  `json:"address"`
	ZipCode         string  `json:"zipCode"`
	ImageURL        string  `json:"imageUrl,omitempty"`
	MonthlyCost     float64 `json:"monthlyCost"`
	NetMonthlyRent  float64 `json:"netMonthlyRent"`
	MonthlyCashFlow float64 `json:"monthlyCashFlow"`
	AnnualCashFlow  float64 `json:"annualCashFlow"`
	ROIPercent      float64 `json:"roiPercent"`
	FlipProfit      float64 `json:"flipProfit"`
	RentRangeLow    float64 `json:"rentRangeLow"`
	RentRangeHigh   float64 `json:"rentRangeHigh"`
	InvestmentType  string  `json:"investmentType"`
	Summary         string  `json:"summary"`
}

// Validate checks the structural preconditions on an input. It rejects rather
// than clamps; range constraints beyond these are the caller's responsibility.
func (in *Input) Validate() error {
	if in.SquareFootage <= 0 {
		return fmt.Errorf("%w: square footage must be positive, got %v", ErrInvalidInput, in.SquareFootage)
	}
	if in.PurchasePrice < 0 {
		return fmt.Errorf("%w: purchase price must not be negative, got %v", ErrInvalidInput, in.PurchasePrice)
	}
	if in.DownPayment < 0 || in.DownPayment > in.PurchasePrice {
		return fmt.Errorf("%w: down payment must be between 0 and the purchase price, got %v", ErrInvalidInput, in.DownPayment)
	}
	if in.InterestRatePercent < 0 {
		return fmt.Errorf("%w: interest rate must not be negative, got %v", ErrInvalidInput, in.InterestRatePercent)
	}
	if in.LoanTermYears <= 0 {
		return fmt.Errorf("%w: loan term must be a positive number of years, got %d", ErrInvalidInput, in.LoanTermYears)
	}
	if in.AnnualPropertyTax < 0 {
		return fmt.Errorf("%w: annual property tax must not be negative, got %v", ErrInvalidInput, in.AnnualPropertyTax)
	}
	if in.AnnualInsurance < 0 {
		return fmt.Errorf("%w: annual insurance must not be negative, got %v", ErrInvalidInput, in.AnnualInsurance)
	}
	if in.MonthlyMaintenance < 0 {
		return fmt.Errorf("%w: monthly maintenance must not be negative, got %v", ErrInvalidInput, in.MonthlyMaintenance)
	}
	if in.VacancyRate < 0 || in.VacancyRate > 1 {
		return fmt.Errorf("%w: vacancy rate must be a fraction in [0,1], got %v", ErrInvalidInput, in.VacancyRate)
	}
	if in.ExpectedMonthlyRent < 0 {
		return fmt.Errorf("%w: expected monthly rent must not be negative, got %v", ErrInvalidInput, in.ExpectedMonthlyRent)
	}
	if in.HoldPeriodYears <= 0 {
		return fmt.Errorf("%w: hold period must be positive, got %v", ErrInvalidInput, in.HoldPeriodYears)
	}
	if in.RehabCost < 0 {
		return fmt.Errorf("%w: rehab cost must not be negative, got %v", ErrInvalidInput, in.RehabCost)
	}
	if in.TargetResalePrice < 0 {
		return fmt.Errorf("%w: target resale price must not be negative, got %v", ErrInvalidInput, in.TargetResalePrice)
	}
	return nil
}

// ColumnHeaders returns the tabular column names in Result field order. Export
// and display layers share this ordering.
func ColumnHeaders() []string {
	return []string{
		"Name",
		"Address",
		"ZipCode",
		"ImageUrl",
		"MonthlyCost",
		"NetMonthlyRent",
		"MonthlyCashFlow",
		"AnnualCashFlow",
		"ROIPercent",
		"FlipProfit",
		"RentRangeLow",
		"RentRangeHigh",
		"InvestmentType",
		"Summary",
	}
}
