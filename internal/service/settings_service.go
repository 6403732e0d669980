package service

import (
	"errors"

	"github.com/ndewijer/Put-Option-Screener-Backend/internal/apperrors"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/model"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/repository"
)

// DefaultAnalyzeParams are the parameters applied before any defaults have
// been saved: six payments of history, a quarter of the average dividend per
// period, three future periods and a five point strike safety margin.
var DefaultAnalyzeParams = model.AnalyzeParams{
	Lookback:     6,
	Percentage:   25,
	Periods:      3,
	StrikeOffset: 5,
}

// SettingsService manages the persisted default analysis parameters.
// The pipeline never reads these directly; handlers resolve defaults into an
// explicit request-scoped parameter object before invoking an analysis.
type SettingsService struct {
	settingsRepo *repository.SettingsRepository
}

// NewSettingsService creates a new SettingsService with the provided
// repository dependency.
func NewSettingsService(settingsRepo *repository.SettingsRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
	}
}

// GetDefaults returns the stored default parameters, falling back to the
// built-in defaults when none were ever saved.
func (s *SettingsService) GetDefaults() (model.AnalyzeParams, error) {
	params, err := s.settingsRepo.Get()
	if errors.Is(err, apperrors.ErrSettingsNotFound) {
		return DefaultAnalyzeParams, nil
	}
	if err != nil {
		return model.AnalyzeParams{}, err
	}
	return params, nil
}

// SaveDefaults validates and persists new default parameters.
func (s *SettingsService) SaveDefaults(params model.AnalyzeParams) error {
	if err := ValidateParams(params); err != nil {
		return err
	}
	return s.settingsRepo.Save(params)
}

// ValidateParams checks an analysis parameter object against the pipeline's
// input contracts.
func ValidateParams(params model.AnalyzeParams) error {
	if params.Lookback < 1 {
		return apperrors.ErrInvalidLookback
	}
	if params.Percentage < 1 || params.Percentage > 100 {
		return apperrors.ErrInvalidPercentage
	}
	if params.Periods < 1 {
		return apperrors.ErrInvalidPeriods
	}
	if params.StrikeOffset < 0 {
		return apperrors.ErrInvalidStrikeOffset
	}
	return nil
}
