package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ndewijer/Put-Option-Screener-Backend/internal/model"
)

// DividendRepository persists fetched dividend history in the local store.
// The archive lets analysis runs fall back to the last known history when
// the live feed is unavailable, and saves refetching full histories on every
// batch run.
type DividendRepository struct {
	db *sql.DB
}

func NewDividendRepository(db *sql.DB) *DividendRepository {
	return &DividendRepository{db: db}
}

// GetHistory returns all stored dividend records for a symbol,
// most-recent-first. An empty slice means the symbol has never been synced.
func (r *DividendRepository) GetHistory(symbol string) ([]model.DividendRecord, error) {
	query := `
		SELECT symbol, ex_date, amount
		FROM dividend_record
		WHERE symbol = ?
		ORDER BY ex_date DESC
	`

	rows, err := r.db.Query(query, symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to query dividend_record table: %w", err)
	}
	defer rows.Close()

	var records []model.DividendRecord
	for rows.Next() {
		var record model.DividendRecord
		var exDate string
		if err := rows.Scan(&record.Symbol, &exDate, &record.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan dividend record: %w", err)
		}
		record.ExDate, err = ParseTime(exDate)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate dividend records: %w", err)
	}

	return records, nil
}

// ReplaceHistory swaps the stored history of a symbol for a freshly fetched
// one inside a single transaction, so readers never observe a partial sync.
func (r *DividendRepository) ReplaceHistory(symbol string, records []model.DividendRecord) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // Rollback after commit is a no-op

	if _, err := tx.Exec(`DELETE FROM dividend_record WHERE symbol = ?`, symbol); err != nil {
		return fmt.Errorf("failed to clear dividend history for %s: %w", symbol, err)
	}

	insert := `
		INSERT INTO dividend_record (id, symbol, ex_date, amount)
		VALUES (?, ?, ?, ?)
	`
	for _, record := range records {
		_, err := tx.Exec(insert,
			uuid.New().String(),
			symbol,
			record.ExDate.UTC().Format("2006-01-02"),
			record.Amount,
		)
		if err != nil {
			return fmt.Errorf("failed to insert dividend record for %s: %w", symbol, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit dividend history for %s: %w", symbol, err)
	}

	return nil
}

// LastExDate returns the most recent stored ex-date for a symbol, or the
// zero time when no history is stored.
func (r *DividendRepository) LastExDate(symbol string) (time.Time, error) {
	query := `
		SELECT ex_date
		FROM dividend_record
		WHERE symbol = ?
		ORDER BY ex_date DESC
		LIMIT 1
	`

	var exDate string
	err := r.db.QueryRow(query, symbol).Scan(&exDate)
	if err == sql.ErrNoRows {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to query last ex-date: %w", err)
	}

	return ParseTime(exDate)
}
