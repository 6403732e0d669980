package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ndewijer/Put-Option-Screener-Backend/internal/apperrors"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/cache"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/model"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/screener"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/universe"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/yahoo"
)

// batchFetchLimit caps concurrent per-symbol fetches in batch mode.
const batchFetchLimit = 4

// AnalysisService orchestrates the opportunity pipeline: it resolves
// dividend history into a summary, derives the premium budget and cadence
// milestone, fetches and classifies the put chain, and aggregates results
// across the universe in batch mode.
//
// Every run is self-contained: inputs arrive as an explicit parameter
// object, derived values are recomputed fresh, and nothing is shared between
// runs beyond the injected summary cache.
type AnalysisService struct {
	feed      yahoo.Client
	history   *HistoryService
	universe  *universe.Universe
	summaries *cache.SummaryCache
	now       func() time.Time
}

// NewAnalysisService creates a new AnalysisService with the provided feed,
// history, universe and cache dependencies.
func NewAnalysisService(
	feed yahoo.Client,
	history *HistoryService,
	u *universe.Universe,
	summaries *cache.SummaryCache,
) *AnalysisService {
	return &AnalysisService{
		feed:      feed,
		history:   history,
		universe:  u,
		summaries: summaries,
		now:       time.Now,
	}
}

// WithClock overrides the evaluation-time source. Tests use this to pin
// milestone projection to a fixed date.
func (s *AnalysisService) WithClock(now func() time.Time) *AnalysisService {
	s.now = now
	return s
}

// AnalyzeSymbol runs the full pipeline for one symbol.
//
// Returns apperrors.ErrSymbolNotFound for symbols outside the configured
// universe, apperrors.ErrNoDividendData / ErrNoOptionChain when the feeds
// have nothing for the symbol, and apperrors.ErrExternalFetch on feed
// failures without an archived fallback. An empty opportunity list with a
// populated summary is a normal "no opportunities" outcome, not an error.
func (s *AnalysisService) AnalyzeSymbol(symbol string, params model.AnalyzeParams) (model.SymbolResult, error) {
	if err := ValidateParams(params); err != nil {
		return model.SymbolResult{}, err
	}

	cadenceDays, err := s.universe.Cadence(symbol)
	if err != nil {
		return model.SymbolResult{}, err
	}

	summary, err := s.summarize(symbol, params.Lookback)
	if err != nil {
		return model.SymbolResult{}, err
	}

	currentPrice, err := s.feed.QueryCurrentPrice(symbol)
	if err != nil {
		return model.SymbolResult{}, fmt.Errorf("%w: %v", apperrors.ErrExternalFetch, err)
	}
	if currentPrice <= 0 {
		return model.SymbolResult{}, fmt.Errorf("%w: %s", apperrors.ErrNoPriceData, symbol)
	}

	budget, err := screener.ComputeBudget(
		summary.Average,
		params.Percentage,
		params.Periods,
		currentPrice,
		params.StrikeOffset,
	)
	if err != nil {
		return model.SymbolResult{}, err
	}

	milestone, err := screener.NextMilestone(summary.LastDate, cadenceDays, params.Periods, s.now())
	if err != nil {
		return model.SymbolResult{}, err
	}

	chain, err := s.feed.QueryPutOptions(symbol)
	if err != nil {
		return model.SymbolResult{}, fmt.Errorf("%w: %v", apperrors.ErrExternalFetch, err)
	}
	if len(chain) == 0 {
		return model.SymbolResult{}, fmt.Errorf("%w: %s", apperrors.ErrNoOptionChain, symbol)
	}

	return model.SymbolResult{
		Symbol: symbol,
		Summary: model.AnalysisSummary{
			Symbol:              symbol,
			AverageDividend:     summary.Average,
			LastDividendDate:    summary.LastDate,
			DividendCount:       summary.Count,
			Degraded:            summary.Degraded,
			SinglePeriodPremium: budget.SinglePeriodPremium,
			ExtendedPremium:     budget.ExtendedPremium,
			CurrentPrice:        currentPrice,
			StrikeThreshold:     budget.StrikeThreshold,
			Milestone:           milestone,
		},
		Opportunities: screener.Classify(chain, budget, milestone),
	}, nil
}

// Analyze runs single-symbol mode and wraps the result for presentation,
// including a degraded-history warning when fewer dividends existed than the
// requested lookback.
func (s *AnalysisService) Analyze(symbol string, params model.AnalyzeParams) (model.AnalysisResult, error) {
	result, err := s.AnalyzeSymbol(symbol, params)
	if err != nil {
		return model.AnalysisResult{}, err
	}

	analysis := model.AnalysisResult{
		Mode:          "single",
		Summary:       result.Summary,
		Opportunities: screener.Aggregate([]model.SymbolResult{result}, screener.ModeSingle),
	}
	if result.Summary.Degraded {
		analysis.Warnings = append(analysis.Warnings, fmt.Sprintf(
			"%s: average computed over %d dividends, fewer than the requested %d",
			symbol, result.Summary.DividendCount, params.Lookback,
		))
	}

	return analysis, nil
}

// AnalyzeAll runs the pipeline across the whole universe and keeps only the
// highlighted rows of the combined result.
//
// Symbols are fetched concurrently up to batchFetchLimit, but results are
// collected in fixed universe order so aggregation is deterministic
// regardless of completion order. A failing symbol never aborts the batch:
// it is skipped and reported as a warning.
func (s *AnalysisService) AnalyzeAll(params model.AnalyzeParams) (model.AnalysisResult, error) {
	if err := ValidateParams(params); err != nil {
		return model.AnalysisResult{}, err
	}

	symbols := s.universe.Symbols()
	results := make([]*model.SymbolResult, len(symbols))
	failures := make([]error, len(symbols))

	var group errgroup.Group
	group.SetLimit(batchFetchLimit)

	for i, symbol := range symbols {
		i, symbol := i, symbol
		group.Go(func() error {
			result, err := s.AnalyzeSymbol(symbol, params)
			if err != nil {
				failures[i] = err
				return nil
			}
			results[i] = &result
			return nil
		})
	}
	// Goroutines record outcomes per slot and never return an error, so the
	// only purpose of Wait is to block until the fetch phase is done.
	_ = group.Wait()

	ordered := make([]model.SymbolResult, 0, len(symbols))
	var warnings []string
	for i, symbol := range symbols {
		if failures[i] != nil {
			log.Printf("Batch analysis skipped %s: %v", symbol, failures[i])
			warnings = append(warnings, fmt.Sprintf("%s: %v", symbol, failures[i]))
			continue
		}
		if results[i] != nil {
			ordered = append(ordered, *results[i])
		}
	}

	return model.AnalysisResult{
		Mode:          "batch",
		Opportunities: screener.Aggregate(ordered, screener.ModeBatch),
		Warnings:      warnings,
	}, nil
}

// summarize resolves a dividend summary for (symbol, lookback), consulting
// the TTL cache before touching the history service.
func (s *AnalysisService) summarize(symbol string, lookback int) (model.DividendSummary, error) {
	if cached, ok := s.summaries.Get(symbol, lookback); ok {
		return cached, nil
	}

	records, err := s.history.Records(symbol)
	if err != nil {
		return model.DividendSummary{}, err
	}

	summary, err := screener.Summarize(records, lookback)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoDividendData) {
			return model.DividendSummary{}, fmt.Errorf("%w: %s", apperrors.ErrNoDividendData, symbol)
		}
		return model.DividendSummary{}, err
	}

	s.summaries.Put(symbol, lookback, summary)
	return summary, nil
}
