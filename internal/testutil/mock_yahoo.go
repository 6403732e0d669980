package testutil

import (
	"fmt"
	"sync"

	"github.com/ndewijer/Put-Option-Screener-Backend/internal/model"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/yahoo"
)

// MockFinanceClient is a configurable yahoo.Client for tests. Per-symbol
// fixture data is registered up front; symbols without fixtures produce a
// fetch error, which doubles as the feed-failure case.
//
// Example:
//
//	mock := testutil.NewMockFinanceClient()
//	mock.SetDividends("TSLY", records)
//	mock.SetPrice("TSLY", 17.80)
//	mock.SetPuts("TSLY", chain)
type MockFinanceClient struct {
	Dividends map[string][]model.DividendRecord
	Puts      map[string][]model.OptionContract
	Prices    map[string]float64

	// FailDividends, FailPuts and FailPrice force fetch errors per symbol,
	// simulating a feed outage even when fixture data exists.
	FailDividends map[string]bool
	FailPuts      map[string]bool
	FailPrice     map[string]bool

	mu            sync.Mutex
	dividendCalls int
}

var _ yahoo.Client = (*MockFinanceClient)(nil)

// NewMockFinanceClient creates an empty mock feed.
func NewMockFinanceClient() *MockFinanceClient {
	return &MockFinanceClient{
		Dividends:     make(map[string][]model.DividendRecord),
		Puts:          make(map[string][]model.OptionContract),
		Prices:        make(map[string]float64),
		FailDividends: make(map[string]bool),
		FailPuts:      make(map[string]bool),
		FailPrice:     make(map[string]bool),
	}
}

// SetDividends registers dividend history fixture data for a symbol.
func (m *MockFinanceClient) SetDividends(symbol string, records []model.DividendRecord) {
	m.Dividends[symbol] = records
}

// SetPuts registers option chain fixture data for a symbol.
func (m *MockFinanceClient) SetPuts(symbol string, contracts []model.OptionContract) {
	m.Puts[symbol] = contracts
}

// SetPrice registers a current price for a symbol.
func (m *MockFinanceClient) SetPrice(symbol string, price float64) {
	m.Prices[symbol] = price
}

// DividendCalls reports how many history fetches were made, letting tests
// assert that the summary cache short-circuits repeat fetches.
func (m *MockFinanceClient) DividendCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dividendCalls
}

// QueryDividendHistory returns the registered dividend fixtures.
func (m *MockFinanceClient) QueryDividendHistory(symbol string) ([]model.DividendRecord, error) {
	m.mu.Lock()
	m.dividendCalls++
	m.mu.Unlock()
	if m.FailDividends[symbol] {
		return nil, fmt.Errorf("mock feed failure for %s", symbol)
	}
	records, ok := m.Dividends[symbol]
	if !ok {
		return nil, fmt.Errorf("no results returned for symbol %s", symbol)
	}
	return records, nil
}

// QueryPutOptions returns the registered option chain fixtures.
func (m *MockFinanceClient) QueryPutOptions(symbol string) ([]model.OptionContract, error) {
	if m.FailPuts[symbol] {
		return nil, fmt.Errorf("mock feed failure for %s", symbol)
	}
	contracts, ok := m.Puts[symbol]
	if !ok {
		return nil, fmt.Errorf("no option data returned for symbol %s", symbol)
	}
	return contracts, nil
}

// QueryCurrentPrice returns the registered price.
func (m *MockFinanceClient) QueryCurrentPrice(symbol string) (float64, error) {
	if m.FailPrice[symbol] {
		return 0, fmt.Errorf("mock feed failure for %s", symbol)
	}
	price, ok := m.Prices[symbol]
	if !ok {
		return 0, fmt.Errorf("no results returned for symbol %s", symbol)
	}
	return price, nil
}
