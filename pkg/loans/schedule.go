package loans

import (
	"fmt"

	"github.com/propwise/propwise/pkg/mathutil"
	"go.uber.org/zap"
)

// Payment holds the breakdown of one scheduled monthly payment.
type Payment struct {
	Month              int     `json:"month"`
	Payment            float64 `json:"payment"`
	Principal          float64 `json:"principal"`
	Interest           float64 `json:"interest"`
	RemainingPrincipal float64 `json:"remainingPrincipal"`
}

// ScheduleGenerator produces month-by-month amortization schedules.
type ScheduleGenerator struct {
	logger *zap.Logger
}

// NewScheduleGenerator creates a new generator instance.
func NewScheduleGenerator(logger *zap.Logger) *ScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleGenerator{logger: logger}
}

// GenerateSchedule creates the complete amortization schedule for a loan. The
// final month's remaining principal is forced to zero to absorb machine error.
func (g *ScheduleGenerator) GenerateSchedule(principal, annualRatePercent float64, termMonths int) ([]Payment, error) {
	monthlyPayment, err := MonthlyPayment(principal, annualRatePercent, termMonths)
	if err != nil {
		return nil, err
	}

	g.logger.Debug(fmt.Sprintf("generating %d-month schedule with payment %.2f", termMonths, monthlyPayment),
		zap.String("op", "loans.GenerateSchedule"),
	)

	schedule := make([]Payment, 0, termMonths)
	remaining := principal
	for month := 1; month <= termMonths; month++ {
		var current Payment
		current.Month = month
		current.Payment = monthlyPayment
		current.Interest = InterestPayment(remaining, annualRatePercent)
		current.Principal = monthlyPayment - current.Interest

		if month == termMonths || mathutil.IsZero(remaining-current.Principal) {
			// We will get machine error otherwise so just set to 0.
			current.RemainingPrincipal = 0.00
		} else {
			current.RemainingPrincipal = remaining - current.Principal
		}
		schedule = append(schedule, current)

		if current.RemainingPrincipal == 0 {
			break
		}
		remaining = current.RemainingPrincipal
	}

	return schedule, nil
}
