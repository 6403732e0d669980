package apperrors

import "errors"

// Data availability errors represent symbols for which the feeds or the local
// store returned nothing usable. These are expected outcomes: batch runs skip
// the symbol, single-symbol runs surface a "no data" state. Never fatal.
var (
	// ErrNoDividendData indicates a symbol has no dividend history at all.
	// Callers must distinguish this from a legitimate zero average.
	ErrNoDividendData = errors.New("no dividend history available")

	// ErrNoOptionChain indicates a symbol has no listed put contracts.
	ErrNoOptionChain = errors.New("no option chain available")

	// ErrNoPriceData indicates the feed returned no recent close price.
	ErrNoPriceData = errors.New("no current price available")

	// ErrSymbolNotFound indicates a symbol is not part of the configured universe.
	ErrSymbolNotFound = errors.New("symbol not found in universe")

	// ErrSettingsNotFound indicates the settings store has not been initialized.
	ErrSettingsNotFound = errors.New("analysis settings not found")
)

// Contract violation errors represent invalid pipeline inputs. Pipeline
// computation fails fast on these; they indicate a programming or request
// validation bug, not a data problem.
var (
	// ErrInvalidLookback indicates a lookback count below 1.
	ErrInvalidLookback = errors.New("lookback must be at least 1")

	// ErrInvalidPercentage indicates a premium percentage outside 1–100.
	ErrInvalidPercentage = errors.New("percentage must be between 1 and 100")

	// ErrInvalidPeriods indicates a future-period multiplier below 1.
	ErrInvalidPeriods = errors.New("periods must be at least 1")

	// ErrInvalidStrikeOffset indicates a negative strike offset.
	ErrInvalidStrikeOffset = errors.New("strike offset cannot be negative")

	// ErrInvalidCadence indicates a dividend cadence of zero or fewer days.
	ErrInvalidCadence = errors.New("cadence days must be positive")

	// ErrInvalidPrice indicates a non-positive current price.
	ErrInvalidPrice = errors.New("current price must be positive")

	// ErrInvalidDate indicates a zero or otherwise unusable calendar date
	// reached date arithmetic that requires a normalized value.
	ErrInvalidDate = errors.New("invalid calendar date")
)

// Boundary errors represent failures of external collaborators. They are
// caught at the service layer and converted to per-symbol skip/warn outcomes
// in batch mode.
var (
	// ErrExternalFetch indicates the market-data feed failed for a symbol.
	ErrExternalFetch = errors.New("market data fetch failed")

	// ErrUniverseLoad indicates the symbol universe file could not be read.
	ErrUniverseLoad = errors.New("failed to load symbol universe")
)

// Operation failure errors represent system-level failures when retrieving
// or persisting local data.
var (
	ErrFailedToRetrieveHistory  = errors.New("failed to retrieve stored dividend history")
	ErrFailedToStoreHistory     = errors.New("failed to store dividend history")
	ErrFailedToRetrieveSettings = errors.New("failed to retrieve analysis settings")
	ErrFailedToSaveSettings     = errors.New("failed to save analysis settings")
	ErrFailedToAnalyze          = errors.New("failed to analyze symbol")
)
