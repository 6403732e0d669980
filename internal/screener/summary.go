// Package screener implements the dividend-capture opportunity pipeline:
// summarizing dividend history, projecting cadence milestones, computing
// premium budgets, classifying option chains and aggregating results across
// symbols. All functions are pure computation; fetching and persistence live
// in the service and repository layers.
package screener

import (
	"sort"

	"github.com/ndewijer/Put-Option-Screener-Backend/internal/apperrors"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/model"
)

// Summarize computes summary statistics over the most recent `lookback`
// dividend records.
//
// The records are sorted descending by ex-date before the lookback window is
// applied, so callers do not need to pre-sort. When fewer records exist than
// requested, the summary is computed over what is available and marked
// Degraded rather than silently averaging down to zero.
//
// Parameters:
//   - records: dividend history in any order
//   - lookback: number of most recent payments to include, must be ≥ 1
//
// Returns:
//   - model.DividendSummary: total, count, average and most recent ex-date
//   - error: apperrors.ErrInvalidLookback for lookback < 1,
//     apperrors.ErrNoDividendData when records is empty
func Summarize(records []model.DividendRecord, lookback int) (model.DividendSummary, error) {
	if lookback < 1 {
		return model.DividendSummary{}, apperrors.ErrInvalidLookback
	}
	if len(records) == 0 {
		return model.DividendSummary{}, apperrors.ErrNoDividendData
	}

	sorted := make([]model.DividendRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ExDate.After(sorted[j].ExDate)
	})

	degraded := len(sorted) < lookback
	if !degraded {
		sorted = sorted[:lookback]
	}

	var total float64
	for _, record := range sorted {
		total += record.Amount
	}

	return model.DividendSummary{
		Symbol:      sorted[0].Symbol,
		TotalAmount: total,
		Count:       len(sorted),
		LastDate:    model.NormalizeDate(sorted[0].ExDate),
		Average:     total / float64(len(sorted)),
		Degraded:    degraded,
	}, nil
}
