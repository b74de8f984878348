package deposit

import (
	"github.com/shopspring/decimal"

	"konvert/internal/domain/deposit"
	"konvert/internal/metrics"
	"konvert/pkg/errors"
	"konvert/pkg/logger"
)

// Result is a computed deposit outcome
type Result struct {
	APR    float64
	Income decimal.Decimal
	Total  decimal.Decimal
}

// Service computes deposit income from the static rate tables
type Service struct {
	log *logger.Logger
}

// NewService creates a new deposit service
func NewService(log *logger.Logger) *Service {
	return &Service{
		log: log.With("service", "deposit"),
	}
}

// Flexible computes yearly income for the flexible plan.
// Unknown currencies fall back to the default rate; validated input
// never triggers the fallback.
func (s *Service) Flexible(amount decimal.Decimal, currency string) Result {
	apr, ok := deposit.FlexibleAPR[currency]
	if !ok {
		apr = deposit.DefaultFlexibleAPR
	}

	income := amount.Mul(decimal.NewFromFloat(apr))

	metrics.DepositCalculations.WithLabelValues(string(deposit.PlanFlexible), currency).Inc()

	return Result{
		APR:    apr,
		Income: income,
		Total:  amount.Add(income),
	}
}

// Fixed computes income for a fixed-term deposit.
// Fails with errors.ErrNoRateForTerm when no rate is defined for the term.
func (s *Service) Fixed(amount decimal.Decimal, currency string, termDays int) (Result, error) {
	apr := deposit.FixedAPR[currency][termDays]
	if apr == 0 {
		return Result{}, errors.Wrapf(errors.ErrNoRateForTerm, "%s for %d days", currency, termDays)
	}

	// income = amount * apr * (term / 365)
	yearFraction := decimal.NewFromInt(int64(termDays)).Div(decimal.NewFromInt(365))
	income := amount.Mul(decimal.NewFromFloat(apr)).Mul(yearFraction)

	metrics.DepositCalculations.WithLabelValues(string(deposit.PlanFixed), currency).Inc()

	return Result{
		APR:    apr,
		Income: income,
		Total:  amount.Add(income),
	}, nil
}
