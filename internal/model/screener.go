package model

import "time"

// DividendRecord represents a single historical distribution payment for a symbol.
// Records come from the market-data feed (or the local history store) and are
// immutable once fetched.
type DividendRecord struct {
	Symbol string    `json:"symbol"`
	ExDate time.Time `json:"exDate"`
	Amount float64   `json:"amount"`
}

// DividendSummary holds summary statistics derived from the most recent N
// dividend records of a symbol. It is recomputed on every analysis run and
// never stored.
//
// Degraded indicates fewer records existed than the requested lookback; the
// average was computed over what was available and should be trusted less.
type DividendSummary struct {
	Symbol      string    `json:"symbol"`
	TotalAmount float64   `json:"totalAmount"`
	Count       int       `json:"count"`
	LastDate    time.Time `json:"lastDate"`
	Average     float64   `json:"average"`
	Degraded    bool      `json:"degraded"`
}

// OptionContract represents a single listed put contract, sourced verbatim
// from the option-chain feed and read-only to the screener.
type OptionContract struct {
	Symbol     string    `json:"symbol"`
	Expiration time.Time `json:"expiration"`
	Strike     float64   `json:"strike"`
	LastPrice  float64   `json:"lastPrice"`
}

// Budget is the maximum acceptable option premium derived from a dividend
// summary plus the user parameters of a single analysis run.
type Budget struct {
	SinglePeriodPremium float64 `json:"singlePeriodPremium"` // avg dividend × pct/100
	ExtendedPremium     float64 `json:"extendedPremium"`     // single premium × periods
	StrikeThreshold     int     `json:"strikeThreshold"`     // max(1, floor(price) − offset)
}

// ScoredOpportunity is an option contract annotated by the classifier.
// WithinBudget contracts survived the strike/premium filter; Highlighted
// contracts additionally expire at or beyond the projected dividend milestone.
type ScoredOpportunity struct {
	Symbol       string    `json:"symbol"`
	Expiration   time.Time `json:"expiration"`
	Strike       float64   `json:"strike"`
	LastPrice    float64   `json:"lastPrice"`
	WithinBudget bool      `json:"withinBudget"`
	Highlighted  bool      `json:"highlighted"`
}

// AnalyzeParams is the request-scoped parameter object for one analysis run.
// Defaults live in the settings store; every pipeline invocation receives an
// explicit copy, so no state is shared between runs.
type AnalyzeParams struct {
	Lookback     int `json:"lookback"`     // number of past dividends to average, ≥1
	Percentage   int `json:"percentage"`   // percentage of the average dividend per period, 1–100
	Periods      int `json:"periods"`      // number of future dividend periods to budget for, ≥1
	StrikeOffset int `json:"strikeOffset"` // integer subtracted from floor(current price), ≥0
}

// AnalysisSummary is the per-symbol summary block rendered alongside the
// opportunity rows in single-symbol mode.
type AnalysisSummary struct {
	Symbol              string    `json:"symbol"`
	AverageDividend     float64   `json:"averageDividend"`
	LastDividendDate    time.Time `json:"lastDividendDate"`
	DividendCount       int       `json:"dividendCount"`
	Degraded            bool      `json:"degraded"`
	SinglePeriodPremium float64   `json:"singlePeriodPremium"`
	ExtendedPremium     float64   `json:"extendedPremium"`
	CurrentPrice        float64   `json:"currentPrice"`
	StrikeThreshold     int       `json:"strikeThreshold"`
	Milestone           time.Time `json:"milestone"`
}

// SymbolResult pairs one symbol's classified opportunities with its summary.
// Batch aggregation consumes these in universe order so output is
// deterministic regardless of fetch completion order.
type SymbolResult struct {
	Symbol        string              `json:"symbol"`
	Summary       AnalysisSummary     `json:"summary"`
	Opportunities []ScoredOpportunity `json:"opportunities"`
}

// AnalysisResult is the full response of an analysis run.
// In batch mode Summary is zero-valued and Warnings lists the symbols that
// were skipped due to missing data or feed failures.
type AnalysisResult struct {
	Mode          string              `json:"mode"` // "single" or "batch"
	Summary       AnalysisSummary     `json:"summary,omitempty"`
	Opportunities []ScoredOpportunity `json:"opportunities"`
	Warnings      []string            `json:"warnings,omitempty"`
}

// NormalizeDate truncates a timestamp to midnight UTC.
// All date comparisons in the screener happen on normalized dates, so
// feed timestamps carrying exchange-local times or time-of-day components
// compare correctly.
func NormalizeDate(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}
