package screener

import (
	"testing"
	"time"

	"github.com/ndewijer/Put-Option-Screener-Backend/internal/model"
)

func contract(symbol string, expiration time.Time, strike, lastPrice float64) model.OptionContract {
	return model.OptionContract{Symbol: symbol, Expiration: expiration, Strike: strike, LastPrice: lastPrice}
}

func TestClassify(t *testing.T) {
	budget := model.Budget{
		SinglePeriodPremium: 0.125,
		ExtendedPremium:     0.50,
		StrikeThreshold:     12,
	}
	milestone := date(2025, 4, 24)

	t.Run("keeps contracts within premium budget and above strike threshold", func(t *testing.T) {
		chain := []model.OptionContract{
			contract("TSLY", date(2025, 3, 21), 13, 0.45), // admissible
			contract("TSLY", date(2025, 3, 21), 13, 0.55), // premium too high
			contract("TSLY", date(2025, 3, 21), 11, 0.40), // strike below threshold
			contract("TSLY", date(2025, 5, 16), 12, 0.30), // admissible, beyond milestone
		}

		opportunities := Classify(chain, budget, milestone)

		if len(opportunities) != 2 {
			t.Fatalf("Expected 2 opportunities, got %d", len(opportunities))
		}
		for _, opportunity := range opportunities {
			if !opportunity.WithinBudget {
				t.Errorf("Expected WithinBudget on all survivors, got %+v", opportunity)
			}
		}
	})

	t.Run("highlights expirations at or beyond the milestone", func(t *testing.T) {
		chain := []model.OptionContract{
			contract("TSLY", date(2025, 3, 21), 13, 0.45),
			contract("TSLY", date(2025, 4, 24), 13, 0.40),
			contract("TSLY", date(2025, 5, 16), 13, 0.35),
		}

		opportunities := Classify(chain, budget, milestone)

		if len(opportunities) != 3 {
			t.Fatalf("Expected 3 opportunities, got %d", len(opportunities))
		}

		// Sorted descending: 05-16, 04-24, 03-21.
		if !opportunities[0].Highlighted {
			t.Error("Expected expiration beyond milestone to be highlighted")
		}
		if !opportunities[1].Highlighted {
			t.Error("Expected expiration on the milestone to be highlighted")
		}
		if opportunities[2].Highlighted {
			t.Error("Expected expiration before milestone not to be highlighted")
		}
	})

	t.Run("orders by expiration then last price, both descending", func(t *testing.T) {
		chain := []model.OptionContract{
			contract("TSLY", date(2025, 3, 21), 13, 0.20),
			contract("TSLY", date(2025, 5, 16), 13, 0.10),
			contract("TSLY", date(2025, 5, 16), 14, 0.30),
			contract("TSLY", date(2025, 3, 21), 14, 0.45),
		}

		opportunities := Classify(chain, budget, milestone)

		expected := []struct {
			expiration time.Time
			lastPrice  float64
		}{
			{date(2025, 5, 16), 0.30},
			{date(2025, 5, 16), 0.10},
			{date(2025, 3, 21), 0.45},
			{date(2025, 3, 21), 0.20},
		}

		if len(opportunities) != len(expected) {
			t.Fatalf("Expected %d opportunities, got %d", len(expected), len(opportunities))
		}
		for i, want := range expected {
			if !opportunities[i].Expiration.Equal(want.expiration) || opportunities[i].LastPrice != want.lastPrice {
				t.Errorf("Position %d: expected (%s, %f), got (%s, %f)",
					i, want.expiration.Format("2006-01-02"), want.lastPrice,
					opportunities[i].Expiration.Format("2006-01-02"), opportunities[i].LastPrice)
			}
		}
	})

	t.Run("sort is stable for fully tied contracts", func(t *testing.T) {
		chain := []model.OptionContract{
			contract("TSLY", date(2025, 3, 21), 14, 0.40),
			contract("TSLY", date(2025, 3, 21), 13, 0.40),
		}

		opportunities := Classify(chain, budget, milestone)

		if len(opportunities) != 2 {
			t.Fatalf("Expected 2 opportunities, got %d", len(opportunities))
		}
		if opportunities[0].Strike != 14 || opportunities[1].Strike != 13 {
			t.Errorf("Expected input order preserved on tie, got strikes %f, %f",
				opportunities[0].Strike, opportunities[1].Strike)
		}
	})

	t.Run("reclassifying its own output is a no-op", func(t *testing.T) {
		chain := []model.OptionContract{
			contract("TSLY", date(2025, 5, 16), 13, 0.30),
			contract("TSLY", date(2025, 3, 21), 14, 0.45),
			contract("TSLY", date(2025, 3, 21), 11, 0.10),
		}

		first := Classify(chain, budget, milestone)

		roundTrip := make([]model.OptionContract, len(first))
		for i, opportunity := range first {
			roundTrip[i] = contract(opportunity.Symbol, opportunity.Expiration, opportunity.Strike, opportunity.LastPrice)
		}
		second := Classify(roundTrip, budget, milestone)

		if len(second) != len(first) {
			t.Fatalf("Expected %d opportunities after reclassification, got %d", len(first), len(second))
		}
		for i := range first {
			if first[i] != second[i] {
				t.Errorf("Position %d changed on reclassification: %+v vs %+v", i, first[i], second[i])
			}
		}
	})

	t.Run("empty filtered result is normal, not an error", func(t *testing.T) {
		chain := []model.OptionContract{
			contract("TSLY", date(2025, 3, 21), 11, 0.10),
		}

		opportunities := Classify(chain, budget, milestone)

		if opportunities == nil {
			t.Fatal("Expected non-nil empty slice")
		}
		if len(opportunities) != 0 {
			t.Errorf("Expected no opportunities, got %d", len(opportunities))
		}
	})

	t.Run("normalizes expiration timestamps before comparison", func(t *testing.T) {
		newYork := time.FixedZone("EST", -5*60*60)
		chain := []model.OptionContract{
			{Symbol: "TSLY", Expiration: time.Date(2025, 4, 24, 9, 30, 0, 0, newYork), Strike: 13, LastPrice: 0.40},
		}

		opportunities := Classify(chain, budget, milestone)

		if len(opportunities) != 1 {
			t.Fatalf("Expected 1 opportunity, got %d", len(opportunities))
		}
		if !opportunities[0].Highlighted {
			t.Error("Expected milestone-day expiration to be highlighted after normalization")
		}
	})
}
