package yahoo

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/ndewijer/Put-Option-Screener-Backend/internal/model"
)

// Client is the market-data boundary consumed by the screener services.
// Implementations fetch raw dividend history, put-option chains and current
// prices for a symbol. Tests substitute a mock implementation.
type Client interface {
	QueryDividendHistory(symbol string) ([]model.DividendRecord, error)
	QueryPutOptions(symbol string) ([]model.OptionContract, error)
	QueryCurrentPrice(symbol string) (float64, error)
}

// FinanceClient provides methods for fetching financial data from the Yahoo
// Finance API. It wraps an HTTP client and provides convenient methods for
// querying dividend events, option chains and recent prices.
type FinanceClient struct {
	httpClient *http.Client
}

// NewFinanceClient creates a new Yahoo Finance client with a 30 second
// request timeout.
//
// Returns:
//   - *FinanceClient: A new client instance ready for use
func NewFinanceClient() *FinanceClient {
	return &FinanceClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// QueryDividendHistory fetches the full distribution history for a symbol.
//
// The method uses the chart endpoint with events=div over the maximum
// available range; the price arrays in the response are ignored and only the
// dividend events are extracted. Records are returned most-recent-first.
//
// Parameters:
//   - symbol: Fund ticker symbol (e.g., "TSLY")
//
// Returns:
//   - []model.DividendRecord: dividend payments, descending by ex-date
//   - error: If the HTTP request fails, the API returns an error, or the
//     symbol has no chart data at all
func (c *FinanceClient) QueryDividendHistory(symbol string) ([]model.DividendRecord, error) {
	url := fmt.Sprintf(
		"https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=1mo&range=max&events=div",
		symbol,
	)

	var response ChartResponse
	if err := c.queryYahoo(url, &response); err != nil {
		return nil, err
	}
	if response.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo error: %s", *response.Chart.Error)
	}
	if len(response.Chart.Result) == 0 {
		return nil, fmt.Errorf("no results returned for symbol %s", symbol)
	}

	events := response.Chart.Result[0].Events.Dividends
	records := make([]model.DividendRecord, 0, len(events))
	for _, event := range events {
		records = append(records, model.DividendRecord{
			Symbol: symbol,
			ExDate: model.NormalizeDate(time.Unix(event.Date, 0)),
			Amount: event.Amount,
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].ExDate.After(records[j].ExDate)
	})

	return records, nil
}

// QueryPutOptions fetches every listed put contract for a symbol across all
// available expiration dates.
//
// The v7 options endpoint returns the full expiration list plus one chain
// per request, so the method first fetches the base chain and then requests
// each remaining expiration explicitly.
//
// Parameters:
//   - symbol: Fund ticker symbol
//
// Returns:
//   - []model.OptionContract: all put contracts across expirations
//   - error: If the HTTP request fails, the API returns an error, or no
//     option data exists for the symbol
func (c *FinanceClient) QueryPutOptions(symbol string) ([]model.OptionContract, error) {
	base, err := c.queryOptions(symbol, 0)
	if err != nil {
		return nil, err
	}

	contracts := appendPuts(nil, symbol, base)

	result := base.OptionChain.Result[0]
	fetched := make(map[int64]bool)
	for _, option := range result.Options {
		fetched[option.ExpirationDate] = true
	}

	for _, expiration := range result.ExpirationDates {
		if fetched[expiration] {
			continue
		}
		chain, err := c.queryOptions(symbol, expiration)
		if err != nil {
			return nil, err
		}
		contracts = appendPuts(contracts, symbol, chain)
	}

	return contracts, nil
}

// QueryCurrentPrice fetches the most recent close price for a symbol.
//
// The method requests the last five trading days and takes the final
// non-zero close, which tolerates holidays and weekends.
//
// Parameters:
//   - symbol: Fund ticker symbol
//
// Returns:
//   - float64: the latest available close price
//   - error: If the HTTP request fails, the API returns an error, or no
//     close prices are present
func (c *FinanceClient) QueryCurrentPrice(symbol string) (float64, error) {
	url := fmt.Sprintf(
		"https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=1d&range=5d",
		symbol,
	)

	var response ChartResponse
	if err := c.queryYahoo(url, &response); err != nil {
		return 0, err
	}
	if response.Chart.Error != nil {
		return 0, fmt.Errorf("yahoo error: %s", *response.Chart.Error)
	}
	if len(response.Chart.Result) == 0 {
		return 0, fmt.Errorf("no results returned for symbol %s", symbol)
	}

	quotes := response.Chart.Result[0].Indicators.Quote
	if len(quotes) == 0 || len(quotes[0].Close) == 0 {
		return 0, fmt.Errorf("no close prices returned for symbol %s", symbol)
	}

	closes := quotes[0].Close
	for i := len(closes) - 1; i >= 0; i-- {
		if closes[i] > 0 {
			return closes[i], nil
		}
	}
	return 0, fmt.Errorf("no usable close price for symbol %s", symbol)
}

// queryOptions fetches one options-chain page. An expiration of 0 requests
// the base page, which carries the full expiration-date list.
func (c *FinanceClient) queryOptions(symbol string, expiration int64) (OptionsResponse, error) {
	url := fmt.Sprintf("https://query2.finance.yahoo.com/v7/finance/options/%s", symbol)
	if expiration > 0 {
		url = fmt.Sprintf("%s?date=%d", url, expiration)
	}

	var response OptionsResponse
	if err := c.queryYahoo(url, &response); err != nil {
		return OptionsResponse{}, err
	}
	if response.OptionChain.Error != nil {
		return OptionsResponse{}, fmt.Errorf("yahoo error: %s", *response.OptionChain.Error)
	}
	if len(response.OptionChain.Result) == 0 {
		return OptionsResponse{}, fmt.Errorf("no option data returned for symbol %s", symbol)
	}

	return response, nil
}

// appendPuts converts the put quotes of an options response into contracts.
func appendPuts(contracts []model.OptionContract, symbol string, response OptionsResponse) []model.OptionContract {
	for _, option := range response.OptionChain.Result[0].Options {
		for _, put := range option.Puts {
			expiration := put.Expiration
			if expiration == 0 {
				expiration = option.ExpirationDate
			}
			contracts = append(contracts, model.OptionContract{
				Symbol:     symbol,
				Expiration: model.NormalizeDate(time.Unix(expiration, 0)),
				Strike:     put.Strike,
				LastPrice:  put.LastPrice,
			})
		}
	}
	return contracts
}

// queryYahoo is an internal helper that executes HTTP requests to the Yahoo
// Finance API and decodes the JSON response into target.
//
// The method sets required headers:
//   - User-Agent: Mimics a browser to avoid API blocking
//   - Accept: Requests JSON response format
func (c *FinanceClient) queryYahoo(url string, target any) error {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to decode yahoo response: %w", err)
	}

	return nil
}
