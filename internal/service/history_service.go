package service

import (
	"fmt"
	"log"

	"github.com/ndewijer/Put-Option-Screener-Backend/internal/apperrors"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/cache"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/model"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/repository"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/yahoo"
)

// HistoryService supplies dividend history for a symbol, keeping the local
// archive in sync with the live feed. Analysis runs read through this
// service so a feed outage degrades to the last synced history instead of
// failing the symbol outright.
type HistoryService struct {
	feed         yahoo.Client
	dividendRepo *repository.DividendRepository
	summaries    *cache.SummaryCache
}

// NewHistoryService creates a new HistoryService with the provided feed,
// repository and cache dependencies.
func NewHistoryService(
	feed yahoo.Client,
	dividendRepo *repository.DividendRepository,
	summaries *cache.SummaryCache,
) *HistoryService {
	return &HistoryService{
		feed:         feed,
		dividendRepo: dividendRepo,
		summaries:    summaries,
	}
}

// Records returns the dividend history for a symbol, most-recent-first.
//
// The live feed is consulted first; a successful fetch is archived to the
// local store and invalidates any cached summaries for the symbol. When the
// feed fails, the stored archive is served instead. Only when both sources
// come up empty does the method return an error: apperrors.ErrNoDividendData
// for a symbol without any distributions, apperrors.ErrExternalFetch when
// the feed failed and nothing was archived.
func (s *HistoryService) Records(symbol string) ([]model.DividendRecord, error) {
	records, err := s.feed.QueryDividendHistory(symbol)
	if err != nil {
		stored, storeErr := s.dividendRepo.GetHistory(symbol)
		if storeErr != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrExternalFetch, err)
		}
		if len(stored) == 0 {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrExternalFetch, err)
		}
		log.Printf("Dividend feed failed for %s, serving %d archived records: %v", symbol, len(stored), err)
		return stored, nil
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrNoDividendData, symbol)
	}

	if err := s.dividendRepo.ReplaceHistory(symbol, records); err != nil {
		// Archiving is best-effort; the fetched records are still good.
		log.Printf("Failed to archive dividend history for %s: %v", symbol, err)
	} else {
		s.summaries.Invalidate(symbol)
	}

	return records, nil
}

// Refresh fetches and archives the history of a single symbol.
func (s *HistoryService) Refresh(symbol string) error {
	records, err := s.feed.QueryDividendHistory(symbol)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrExternalFetch, err)
	}
	if len(records) == 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrNoDividendData, symbol)
	}

	if err := s.dividendRepo.ReplaceHistory(symbol, records); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrFailedToStoreHistory, err)
	}
	s.summaries.Invalidate(symbol)

	return nil
}

// RefreshAll refreshes every given symbol sequentially, continuing past
// per-symbol failures. Returns the number of symbols successfully synced.
func (s *HistoryService) RefreshAll(symbols []string) int {
	synced := 0
	for _, symbol := range symbols {
		if err := s.Refresh(symbol); err != nil {
			log.Printf("History refresh skipped %s: %v", symbol, err)
			continue
		}
		synced++
	}
	return synced
}
