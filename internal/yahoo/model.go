package yahoo

// ChartResponse represents the raw JSON response structure from the Yahoo
// Finance chart API. This type maps directly to the v8 chart endpoint format,
// containing nested structures for metadata, timestamps, price indicators and
// corporate events.
//
// The structure includes:
//   - Chart.Result: Array of result objects (typically contains one element)
//   - Chart.Result[].Meta: Symbol metadata (name, currency, exchange)
//   - Chart.Result[].Timestamp: Unix timestamps for each data point
//   - Chart.Result[].Indicators: Price data arrays (open, close, high, low, volume)
//   - Chart.Result[].Events.Dividends: Distribution events keyed by Unix timestamp
//   - Chart.Error: Optional error message from the Yahoo API
type ChartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency         string `json:"currency"`
				Symbol           string `json:"symbol"`
				ExchangeName     string `json:"exchangeName"`
				FullExchangeName string `json:"fullExchangeName"`
				LongName         string `json:"longName"`
				Shortname        string `json:"shortName"`
			} `json:"meta"`
			Timestamp []int64 `json:"timestamp"`
			Events    struct {
				Dividends map[string]struct {
					Amount float64 `json:"amount"`
					Date   int64   `json:"date"`
				} `json:"dividends"`
			} `json:"events"`
			Indicators struct {
				Quote []struct {
					Open   []float64 `json:"open"`
					Close  []float64 `json:"close"`
					Volume []int64   `json:"volume"`
					High   []float64 `json:"high"`
					Low    []float64 `json:"low"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *string `json:"error"`
	} `json:"chart"`
}

// OptionsResponse represents the raw JSON response structure from the Yahoo
// Finance v7 options endpoint. One request returns the full list of available
// expiration timestamps plus the chain for a single expiration; fetching the
// whole chain means one request per expiration date.
type OptionsResponse struct {
	OptionChain struct {
		Result []struct {
			UnderlyingSymbol string  `json:"underlyingSymbol"`
			ExpirationDates  []int64 `json:"expirationDates"`
			Quote            struct {
				RegularMarketPrice float64 `json:"regularMarketPrice"`
			} `json:"quote"`
			Options []struct {
				ExpirationDate int64         `json:"expirationDate"`
				Puts           []OptionQuote `json:"puts"`
				Calls          []OptionQuote `json:"calls"`
			} `json:"options"`
		} `json:"result"`
		Error *string `json:"error"`
	} `json:"optionChain"`
}

// OptionQuote is a single listed contract within an options response.
type OptionQuote struct {
	ContractSymbol string  `json:"contractSymbol"`
	Strike         float64 `json:"strike"`
	LastPrice      float64 `json:"lastPrice"`
	Bid            float64 `json:"bid"`
	Ask            float64 `json:"ask"`
	Volume         int64   `json:"volume"`
	OpenInterest   int64   `json:"openInterest"`
	Expiration     int64   `json:"expiration"`
}
