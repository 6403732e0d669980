package testutil

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ndewijer/Put-Option-Screener-Backend/internal/cache"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/repository"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/service"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/universe"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/yahoo"
)

// TestUniverseYAML is a small universe used across service and handler
// tests: one group of three symbols on the default 28-day cadence.
const TestUniverseYAML = `
default_cadence_days: 28
groups:
  - name: Group A
    symbols: [TSLY, NVDY, CONY]
`

// NewTestUniverse parses TestUniverseYAML.
func NewTestUniverse(t *testing.T) *universe.Universe {
	t.Helper()
	return NewUniverseFromYAML(t, TestUniverseYAML)
}

// NewUniverseFromYAML builds a universe from inline YAML via a temp file.
func NewUniverseFromYAML(t *testing.T, content string) *universe.Universe {
	t.Helper()

	path := writeTempFile(t, "universe.yaml", content)
	u, err := universe.Load(path)
	if err != nil {
		t.Fatalf("Failed to load test universe: %v", err)
	}
	return u
}

// NewTestHistoryService wires a HistoryService against the given database
// and mock feed.
func NewTestHistoryService(t *testing.T, db *sql.DB, feed yahoo.Client, summaries *cache.SummaryCache) *service.HistoryService {
	t.Helper()

	dividendRepo := repository.NewDividendRepository(db)
	return service.NewHistoryService(feed, dividendRepo, summaries)
}

// NewTestAnalysisService wires a full AnalysisService with the test
// universe, a 15 minute summary cache and the given mock feed.
func NewTestAnalysisService(t *testing.T, db *sql.DB, feed yahoo.Client) *service.AnalysisService {
	t.Helper()

	summaries := cache.NewSummaryCache(15 * time.Minute)
	history := NewTestHistoryService(t, db, feed, summaries)
	return service.NewAnalysisService(feed, history, NewTestUniverse(t), summaries)
}

// NewTestSystemService wires a SystemService against the given database.
func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// NewTestSettingsService wires a SettingsService against the given database.
func NewTestSettingsService(t *testing.T, db *sql.DB) *service.SettingsService {
	t.Helper()

	settingsRepo := repository.NewSettingsRepository(db)
	return service.NewSettingsService(settingsRepo)
}

// writeTempFile writes content to a file in a per-test temp directory and
// returns its path.
func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}
