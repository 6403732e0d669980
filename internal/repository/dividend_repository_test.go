package repository_test

import (
	"testing"
	"time"

	"github.com/ndewijer/Put-Option-Screener-Backend/internal/repository"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/testutil"
)

func TestDividendRepository(t *testing.T) {
	t.Run("unsynced symbol has empty history and zero last ex-date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewDividendRepository(db)

		records, err := repo.GetHistory("TSLY")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(records) != 0 {
			t.Errorf("Expected empty history, got %d records", len(records))
		}

		lastExDate, err := repo.LastExDate("TSLY")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !lastExDate.IsZero() {
			t.Errorf("Expected zero time, got %s", lastExDate)
		}
	})

	t.Run("stored history round-trips most-recent-first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewDividendRepository(db)

		series := testutil.NewDividendSeries("TSLY").
			WithAmount(0.55).
			EndingOn(2025, 1, 2).
			Count(3).
			Build()
		if err := repo.ReplaceHistory("TSLY", series); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		records, err := repo.GetHistory("TSLY")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(records) != 3 {
			t.Fatalf("Expected 3 records, got %d", len(records))
		}
		if !records[0].ExDate.Equal(time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("Expected most recent ex-date first, got %s", records[0].ExDate.Format("2006-01-02"))
		}
		if records[0].Amount != 0.55 {
			t.Errorf("Expected amount 0.55, got %f", records[0].Amount)
		}

		lastExDate, err := repo.LastExDate("TSLY")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !lastExDate.Equal(records[0].ExDate) {
			t.Errorf("Expected last ex-date %s, got %s", records[0].ExDate, lastExDate)
		}
	})

	t.Run("replace swaps the full history atomically", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewDividendRepository(db)

		stale := testutil.NewDividendSeries("TSLY").EndingOn(2024, 12, 5).Count(6).Build()
		if err := repo.ReplaceHistory("TSLY", stale); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		fresh := testutil.NewDividendSeries("TSLY").EndingOn(2025, 1, 2).Count(2).Build()
		if err := repo.ReplaceHistory("TSLY", fresh); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		records, err := repo.GetHistory("TSLY")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(records) != 2 {
			t.Errorf("Expected old history replaced, got %d records", len(records))
		}
	})

	t.Run("histories are isolated per symbol", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewDividendRepository(db)

		if err := repo.ReplaceHistory("TSLY", testutil.NewDividendSeries("TSLY").Count(4).Build()); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if err := repo.ReplaceHistory("NVDY", testutil.NewDividendSeries("NVDY").Count(2).Build()); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		// Replacing one symbol must not touch the other.
		if err := repo.ReplaceHistory("TSLY", nil); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		records, err := repo.GetHistory("NVDY")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(records) != 2 {
			t.Errorf("Expected NVDY untouched, got %d records", len(records))
		}
	})
}
