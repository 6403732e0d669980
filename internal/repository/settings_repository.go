package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ndewijer/Put-Option-Screener-Backend/internal/apperrors"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/model"
)

// settingsRowID is the fixed primary key of the singleton settings row.
const settingsRowID = "default"

// SettingsRepository persists the default analysis parameters. Persistence
// of user preferences is deliberately a separate store: the pipeline itself
// only ever sees an explicit request-scoped parameter object.
type SettingsRepository struct {
	db *sql.DB
}

func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the stored default parameters.
// Returns apperrors.ErrSettingsNotFound when no defaults were ever saved.
func (r *SettingsRepository) Get() (model.AnalyzeParams, error) {
	query := `
		SELECT lookback, percentage, periods, strike_offset
		FROM analysis_settings
		WHERE id = ?
	`

	var params model.AnalyzeParams
	err := r.db.QueryRow(query, settingsRowID).Scan(
		&params.Lookback,
		&params.Percentage,
		&params.Periods,
		&params.StrikeOffset,
	)
	if err == sql.ErrNoRows {
		return model.AnalyzeParams{}, apperrors.ErrSettingsNotFound
	}
	if err != nil {
		return model.AnalyzeParams{}, fmt.Errorf("failed to query analysis settings: %w", err)
	}

	return params, nil
}

// Save upserts the singleton settings row.
func (r *SettingsRepository) Save(params model.AnalyzeParams) error {
	query := `
		INSERT INTO analysis_settings (id, lookback, percentage, periods, strike_offset, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			lookback = excluded.lookback,
			percentage = excluded.percentage,
			periods = excluded.periods,
			strike_offset = excluded.strike_offset,
			updated_at = excluded.updated_at
	`

	_, err := r.db.Exec(query,
		settingsRowID,
		params.Lookback,
		params.Percentage,
		params.Periods,
		params.StrikeOffset,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save analysis settings: %w", err)
	}

	return nil
}
