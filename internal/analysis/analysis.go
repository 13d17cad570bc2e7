// Package analysis runs the per-property calculation pipeline and aggregates
// outcomes across an ordered property collection.
package analysis

import (
	"fmt"

	"github.com/propwise/propwise/pkg/constants"
	"github.com/propwise/propwise/pkg/finance"
	"github.com/propwise/propwise/pkg/loans"
	"github.com/propwise/propwise/pkg/mathutil"
	"github.com/propwise/propwise/pkg/property"
	"github.com/propwise/propwise/pkg/recommend"
	"github.com/propwise/propwise/pkg/rent"
	"github.com/propwise/propwise/pkg/summary"
	"go.uber.org/zap"
)

// Outcome is the per-position result of analyzing one property: either a
// Result or an error, never both. A batch of outcomes has the same length and
// order as its input collection.
type Outcome struct {
	Result *property.Result
	Err    error
}

// Analyzer runs the analysis pipeline. Analyses are pure functions of their
// inputs, so a single Analyzer is safe for concurrent use.
type Analyzer struct {
	logger *zap.Logger
}

// NewAnalyzer creates a new analyzer with the given logger. If logger is nil,
// it will use a no-op logger to prevent panics.
func NewAnalyzer(logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{logger: logger}
}

// Analyze computes the full set of derived metrics for one property.
func (a *Analyzer) Analyze(in property.Input) (property.Result, error) {
	var result property.Result

	if err := in.Validate(); err != nil {
		return result, err
	}

	principal := in.PurchasePrice - in.DownPayment
	mortgage, err := loans.MonthlyPayment(principal, in.InterestRatePercent, in.LoanTermYears*constants.MonthsPerYear)
	if err != nil {
		return result, err
	}

	metrics, err := finance.Compute(in, mortgage)
	if err != nil {
		return result, err
	}

	rentLow, rentHigh := rent.EstimateRange(in.SquareFootage, in.ZipCode)

	a.logger.Debug(fmt.Sprintf("analyzed property %s: cash flow %.2f, ROI %.2f%%", in.Name, metrics.MonthlyCashFlow, metrics.ROIPercent),
		zap.String("op", "analysis.Analyze"),
	)

	result = property.Result{
		Name:            in.Name,
		Address:         in.Address,
		ZipCode:         in.ZipCode,
		ImageURL:        in.ImageURL,
		MonthlyCost:     mathutil.Round(metrics.MonthlyCost),
		NetMonthlyRent:  mathutil.Round(metrics.NetMonthlyRent),
		MonthlyCashFlow: mathutil.Round(metrics.MonthlyCashFlow),
		AnnualCashFlow:  mathutil.Round(metrics.AnnualCashFlow),
		ROIPercent:      mathutil.Round(metrics.ROIPercent),
		FlipProfit:      mathutil.Round(metrics.FlipProfit),
		RentRangeLow:    mathutil.Round(rentLow),
		RentRangeHigh:   mathutil.Round(rentHigh),
		InvestmentType:  recommend.Classify(metrics.ROIPercent, metrics.MonthlyCashFlow, metrics.FlipProfit),
		Summary:         summary.Render(in.Name, metrics.AnnualCashFlow, metrics.ROIPercent, metrics.NetMonthlyRent),
	}
	return result, nil
}

// AnalyzeAll analyzes an ordered property collection. Failures are isolated
// per position; one degenerate property never aborts the batch.
func (a *Analyzer) AnalyzeAll(inputs []property.Input) []Outcome {
	outcomes := make([]Outcome, len(inputs))
	for i, in := range inputs {
		result, err := a.Analyze(in)
		if err != nil {
			a.logger.Warn(fmt.Sprintf("analysis failed for property %s", in.Name),
				zap.String("op", "analysis.AnalyzeAll"),
				zap.Int("position", i),
				zap.Error(err),
			)
			outcomes[i] = Outcome{Err: err}
			continue
		}
		outcomes[i] = Outcome{Result: &result}
	}
	return outcomes
}

// Schedule generates the amortization schedule for one property's loan.
func (a *Analyzer) Schedule(in property.Input) ([]loans.Payment, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	generator := loans.NewScheduleGenerator(a.logger)
	return generator.GenerateSchedule(in.PurchasePrice-in.DownPayment, in.InterestRatePercent, in.LoanTermYears*constants.MonthsPerYear)
}

// ChartSeries extracts the ROI comparison chart data from a batch of
// outcomes: label = property name, value = ROI percent. Failed outcomes are
// omitted from the series.
func ChartSeries(outcomes []Outcome) (labels []string, values []float64) {
	for _, outcome := range outcomes {
		if outcome.Err != nil || outcome.Result == nil {
			continue
		}
		labels = append(labels, outcome.Result.Name)
		values = append(values, outcome.Result.ROIPercent)
	}
	return labels, values
}
