package screener

import (
	"math"

	"github.com/ndewijer/Put-Option-Screener-Backend/internal/apperrors"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/model"
)

// ComputeBudget derives the maximum acceptable put premium from an average
// dividend and the user parameters of an analysis run.
//
// The single-period premium is the chosen percentage of the average dividend;
// the extended premium multiplies that by the number of future periods being
// financed. The strike threshold is the integer part of the current price
// minus the safety offset, floored at 1 so deep price drops never produce a
// zero or negative threshold.
//
// Parameters:
//   - avgDividend: average payment per period, must be ≥ 0
//   - pct: percentage of the dividend to spend per period, 1–100
//   - periods: number of future periods to budget for, ≥ 1
//   - currentPrice: latest close price, must be > 0
//   - strikeOffset: integer safety margin below the price, ≥ 0
//
// Returns:
//   - model.Budget: single and extended premium plus strike threshold
//   - error: a contract-violation sentinel from apperrors on invalid input
func ComputeBudget(avgDividend float64, pct, periods int, currentPrice float64, strikeOffset int) (model.Budget, error) {
	if avgDividend < 0 {
		return model.Budget{}, apperrors.ErrNoDividendData
	}
	if pct < 1 || pct > 100 {
		return model.Budget{}, apperrors.ErrInvalidPercentage
	}
	if periods < 1 {
		return model.Budget{}, apperrors.ErrInvalidPeriods
	}
	if currentPrice <= 0 {
		return model.Budget{}, apperrors.ErrInvalidPrice
	}
	if strikeOffset < 0 {
		return model.Budget{}, apperrors.ErrInvalidStrikeOffset
	}

	single := avgDividend * float64(pct) / 100

	threshold := int(math.Floor(currentPrice)) - strikeOffset
	if threshold < 1 {
		threshold = 1
	}

	return model.Budget{
		SinglePeriodPremium: single,
		ExtendedPremium:     single * float64(periods),
		StrikeThreshold:     threshold,
	}, nil
}
