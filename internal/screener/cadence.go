package screener

import (
	"time"

	"github.com/ndewijer/Put-Option-Screener-Backend/internal/apperrors"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/model"
)

// NextMilestone projects the date of the dividend payment `periodsAhead`
// periods into the future, given a fixed payment cadence.
//
// Starting from the last known dividend date, the cadence is applied until
// the projected date is strictly after asOf; this finds the next expected
// payment even when the history ended long ago. From there, the remaining
// periodsAhead−1 cadence steps land on the milestone.
//
// Both dates are normalized to midnight UTC before comparison, so inputs
// carrying time-of-day components or exchange-local zones are handled
// consistently.
//
// Parameters:
//   - lastDividend: ex-date of the most recent known payment, non-zero
//   - cadenceDays: days between payments, must be ≥ 1
//   - periodsAhead: which future payment to project, must be ≥ 1
//   - asOf: the evaluation date, non-zero
//
// Returns:
//   - time.Time: the projected milestone date at midnight UTC
//   - error: apperrors.ErrInvalidCadence, apperrors.ErrInvalidPeriods or
//     apperrors.ErrInvalidDate on contract violations
func NextMilestone(lastDividend time.Time, cadenceDays, periodsAhead int, asOf time.Time) (time.Time, error) {
	if cadenceDays < 1 {
		return time.Time{}, apperrors.ErrInvalidCadence
	}
	if periodsAhead < 1 {
		return time.Time{}, apperrors.ErrInvalidPeriods
	}
	if lastDividend.IsZero() || asOf.IsZero() {
		return time.Time{}, apperrors.ErrInvalidDate
	}

	next := model.NormalizeDate(lastDividend)
	evaluation := model.NormalizeDate(asOf)

	for !next.After(evaluation) {
		next = next.AddDate(0, 0, cadenceDays)
	}

	return next.AddDate(0, 0, cadenceDays*(periodsAhead-1)), nil
}
