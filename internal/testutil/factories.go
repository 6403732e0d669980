package testutil

import (
	"time"

	"github.com/ndewijer/Put-Option-Screener-Backend/internal/model"
)

// DividendSeriesBuilder provides a fluent interface for creating regular
// dividend histories in tests.
//
// Example usage:
//
//	// Six monthly-cadence payments of $0.50 ending 2025-02-27
//	records := testutil.NewDividendSeries("TSLY").
//	    WithAmount(0.50).
//	    EndingOn(2025, 2, 27).
//	    Count(6).
//	    Build()
type DividendSeriesBuilder struct {
	symbol      string
	amount      float64
	lastExDate  time.Time
	cadenceDays int
	count       int
}

// NewDividendSeries creates a builder with sensible defaults: six payments
// of $0.50 on a 28-day cadence ending 2025-02-27.
func NewDividendSeries(symbol string) *DividendSeriesBuilder {
	return &DividendSeriesBuilder{
		symbol:      symbol,
		amount:      0.50,
		lastExDate:  time.Date(2025, 2, 27, 0, 0, 0, 0, time.UTC),
		cadenceDays: 28,
		count:       6,
	}
}

// WithAmount sets the per-payment amount.
func (b *DividendSeriesBuilder) WithAmount(amount float64) *DividendSeriesBuilder {
	b.amount = amount
	return b
}

// EndingOn sets the most recent ex-date of the series.
func (b *DividendSeriesBuilder) EndingOn(year int, month time.Month, day int) *DividendSeriesBuilder {
	b.lastExDate = time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return b
}

// WithCadence sets the days between payments.
func (b *DividendSeriesBuilder) WithCadence(days int) *DividendSeriesBuilder {
	b.cadenceDays = days
	return b
}

// Count sets the number of payments generated.
func (b *DividendSeriesBuilder) Count(count int) *DividendSeriesBuilder {
	b.count = count
	return b
}

// Build generates the series, most-recent-first.
func (b *DividendSeriesBuilder) Build() []model.DividendRecord {
	records := make([]model.DividendRecord, 0, b.count)
	exDate := b.lastExDate
	for i := 0; i < b.count; i++ {
		records = append(records, model.DividendRecord{
			Symbol: b.symbol,
			ExDate: exDate,
			Amount: b.amount,
		})
		exDate = exDate.AddDate(0, 0, -b.cadenceDays)
	}
	return records
}

// PutChainBuilder provides a fluent interface for creating option chains.
//
// Example usage:
//
//	chain := testutil.NewPutChain("TSLY").
//	    Put(2025, 3, 21, 13, 0.45).
//	    Put(2025, 5, 16, 13, 0.30).
//	    Build()
type PutChainBuilder struct {
	symbol    string
	contracts []model.OptionContract
}

// NewPutChain creates an empty chain builder for a symbol.
func NewPutChain(symbol string) *PutChainBuilder {
	return &PutChainBuilder{symbol: symbol}
}

// Put appends a contract with the given expiration, strike and last price.
func (b *PutChainBuilder) Put(year int, month time.Month, day int, strike, lastPrice float64) *PutChainBuilder {
	b.contracts = append(b.contracts, model.OptionContract{
		Symbol:     b.symbol,
		Expiration: time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
		Strike:     strike,
		LastPrice:  lastPrice,
	})
	return b
}

// Build returns the accumulated chain.
func (b *PutChainBuilder) Build() []model.OptionContract {
	return b.contracts
}
