package screener

import (
	"errors"
	"testing"
	"time"

	"github.com/ndewijer/Put-Option-Screener-Backend/internal/apperrors"
)

func TestNextMilestone(t *testing.T) {
	t.Run("projects the milestone across a stale history", func(t *testing.T) {
		// Last payment 2025-01-02, 28-day cadence, evaluated on 2025-02-15:
		// 01-30 is not after the evaluation date, 02-27 is, so 02-27 is the
		// next expected payment and two more periods land on 04-24.
		milestone, err := NextMilestone(date(2025, 1, 2), 28, 3, date(2025, 2, 15))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if !milestone.Equal(date(2025, 4, 24)) {
			t.Errorf("Expected milestone 2025-04-24, got %s", milestone.Format("2006-01-02"))
		}
	})

	t.Run("returns the next payment date for a single period", func(t *testing.T) {
		milestone, err := NextMilestone(date(2025, 1, 2), 28, 1, date(2025, 2, 15))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if !milestone.Equal(date(2025, 2, 27)) {
			t.Errorf("Expected next payment 2025-02-27, got %s", milestone.Format("2006-01-02"))
		}
	})

	t.Run("each extra period advances by exactly one cadence", func(t *testing.T) {
		asOf := date(2025, 2, 15)
		last := date(2025, 1, 2)

		previous, err := NextMilestone(last, 28, 1, asOf)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		for periods := 2; periods <= 6; periods++ {
			milestone, err := NextMilestone(last, 28, periods, asOf)
			if err != nil {
				t.Fatalf("Unexpected error at %d periods: %v", periods, err)
			}
			if !milestone.Equal(previous.AddDate(0, 0, 28)) {
				t.Errorf("Expected %s at %d periods, got %s",
					previous.AddDate(0, 0, 28).Format("2006-01-02"), periods, milestone.Format("2006-01-02"))
			}
			previous = milestone
		}
	})

	t.Run("result is strictly after the evaluation date", func(t *testing.T) {
		// Evaluation date exactly on an expected payment date: that payment
		// no longer counts as future.
		milestone, err := NextMilestone(date(2025, 1, 2), 28, 1, date(2025, 1, 30))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if !milestone.Equal(date(2025, 2, 27)) {
			t.Errorf("Expected 2025-02-27, got %s", milestone.Format("2006-01-02"))
		}
	})

	t.Run("normalizes mixed-zone inputs before comparing", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		last := time.Date(2025, 1, 2, 9, 0, 0, 0, tokyo)

		milestone, err := NextMilestone(last, 28, 1, date(2025, 2, 15))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if !milestone.Equal(date(2025, 2, 27)) {
			t.Errorf("Expected 2025-02-27, got %s", milestone.Format("2006-01-02"))
		}
	})

	t.Run("fails fast on non-positive cadence", func(t *testing.T) {
		_, err := NextMilestone(date(2025, 1, 2), 0, 3, date(2025, 2, 15))
		if !errors.Is(err, apperrors.ErrInvalidCadence) {
			t.Errorf("Expected ErrInvalidCadence, got %v", err)
		}
	})

	t.Run("fails fast on non-positive periods", func(t *testing.T) {
		_, err := NextMilestone(date(2025, 1, 2), 28, 0, date(2025, 2, 15))
		if !errors.Is(err, apperrors.ErrInvalidPeriods) {
			t.Errorf("Expected ErrInvalidPeriods, got %v", err)
		}
	})

	t.Run("fails fast on zero dates", func(t *testing.T) {
		_, err := NextMilestone(time.Time{}, 28, 3, date(2025, 2, 15))
		if !errors.Is(err, apperrors.ErrInvalidDate) {
			t.Errorf("Expected ErrInvalidDate, got %v", err)
		}

		_, err = NextMilestone(date(2025, 1, 2), 28, 3, time.Time{})
		if !errors.Is(err, apperrors.ErrInvalidDate) {
			t.Errorf("Expected ErrInvalidDate, got %v", err)
		}
	})
}
