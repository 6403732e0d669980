package screener

import (
	"errors"
	"testing"
	"time"

	"github.com/ndewijer/Put-Option-Screener-Backend/internal/apperrors"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/model"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func record(symbol string, exDate time.Time, amount float64) model.DividendRecord {
	return model.DividendRecord{Symbol: symbol, ExDate: exDate, Amount: amount}
}

func TestSummarize(t *testing.T) {
	t.Run("computes count and last date over the lookback window", func(t *testing.T) {
		records := []model.DividendRecord{
			record("TSLY", date(2025, 1, 2), 0.60),
			record("TSLY", date(2025, 1, 30), 0.40),
			record("TSLY", date(2025, 2, 27), 0.50),
			record("TSLY", date(2024, 12, 5), 0.90),
		}

		summary, err := Summarize(records, 3)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if summary.Count != 3 {
			t.Errorf("Expected count 3, got %d", summary.Count)
		}
		if !summary.LastDate.Equal(date(2025, 2, 27)) {
			t.Errorf("Expected last date 2025-02-27, got %s", summary.LastDate)
		}
		if summary.TotalAmount != 1.50 {
			t.Errorf("Expected total 1.50, got %f", summary.TotalAmount)
		}
		if summary.Average != 0.50 {
			t.Errorf("Expected average 0.50, got %f", summary.Average)
		}
		if summary.Degraded {
			t.Error("Expected non-degraded summary")
		}
	})

	t.Run("sorts unordered input before applying the window", func(t *testing.T) {
		records := []model.DividendRecord{
			record("TSLY", date(2024, 11, 7), 1.00),
			record("TSLY", date(2025, 2, 27), 0.50),
			record("TSLY", date(2024, 12, 5), 1.00),
		}

		summary, err := Summarize(records, 1)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if summary.Average != 0.50 {
			t.Errorf("Expected average over most recent record only, got %f", summary.Average)
		}
		if !summary.LastDate.Equal(date(2025, 2, 27)) {
			t.Errorf("Expected last date 2025-02-27, got %s", summary.LastDate)
		}
	})

	t.Run("returns ErrNoDividendData for empty history", func(t *testing.T) {
		_, err := Summarize(nil, 6)
		if !errors.Is(err, apperrors.ErrNoDividendData) {
			t.Errorf("Expected ErrNoDividendData, got %v", err)
		}
	})

	t.Run("marks summary degraded when lookback exceeds history", func(t *testing.T) {
		records := []model.DividendRecord{
			record("CONY", date(2025, 1, 2), 0.80),
			record("CONY", date(2025, 1, 30), 0.40),
		}

		summary, err := Summarize(records, 6)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if !summary.Degraded {
			t.Error("Expected degraded summary")
		}
		if summary.Count != 2 {
			t.Errorf("Expected count 2, got %d", summary.Count)
		}
		if summary.Average != 0.60 {
			t.Errorf("Expected average 0.60, got %f", summary.Average)
		}
	})

	t.Run("rejects lookback below one", func(t *testing.T) {
		records := []model.DividendRecord{record("TSLY", date(2025, 1, 2), 0.50)}

		_, err := Summarize(records, 0)
		if !errors.Is(err, apperrors.ErrInvalidLookback) {
			t.Errorf("Expected ErrInvalidLookback, got %v", err)
		}
	})

	t.Run("normalizes last date to midnight UTC", func(t *testing.T) {
		loc := time.FixedZone("EST", -5*60*60)
		records := []model.DividendRecord{
			{Symbol: "TSLY", ExDate: time.Date(2025, 2, 27, 16, 30, 0, 0, loc), Amount: 0.50},
		}

		summary, err := Summarize(records, 1)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if !summary.LastDate.Equal(date(2025, 2, 27)) {
			t.Errorf("Expected 2025-02-27 UTC midnight, got %s", summary.LastDate)
		}
	})
}
