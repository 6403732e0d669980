// Package scheduler runs the background dividend history sync so analysis
// requests keep working from the local archive during feed outages.
package scheduler

import (
	"log"

	"github.com/robfig/cron/v3"

	"github.com/ndewijer/Put-Option-Screener-Backend/internal/service"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/universe"
)

// Scheduler owns the cron runner for periodic history refreshes.
type Scheduler struct {
	cron     *cron.Cron
	history  *service.HistoryService
	universe *universe.Universe
}

// New creates a Scheduler refreshing the given universe on the cron
// expression in schedule. An empty schedule disables the scheduler.
func New(history *service.HistoryService, u *universe.Universe, schedule string) (*Scheduler, error) {
	s := &Scheduler{
		cron:     cron.New(),
		history:  history,
		universe: u,
	}

	if schedule == "" {
		return s, nil
	}

	if _, err := s.cron.AddFunc(schedule, s.refresh); err != nil {
		return nil, err
	}

	return s, nil
}

// Start launches the cron runner in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the cron runner. Already-running jobs finish on their own.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) refresh() {
	symbols := s.universe.Symbols()
	log.Printf("Starting scheduled history refresh for %d symbols", len(symbols))
	synced := s.history.RefreshAll(symbols)
	log.Printf("Scheduled history refresh complete: %d/%d symbols synced", synced, len(symbols))
}
