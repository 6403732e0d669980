package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/Put-Option-Screener-Backend/internal/api/request"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/model"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/service"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/validation"
)

// AnalyzeHandler handles analysis-related HTTP requests
type AnalyzeHandler struct {
	analysisService *service.AnalysisService
	settingsService *service.SettingsService
}

// NewAnalyzeHandler creates a new AnalyzeHandler
func NewAnalyzeHandler(analysisService *service.AnalysisService, settingsService *service.SettingsService) *AnalyzeHandler {
	return &AnalyzeHandler{
		analysisService: analysisService,
		settingsService: settingsService,
	}
}

// AnalyzeSummaryResponse represents the per-symbol summary block
type AnalyzeSummaryResponse struct {
	Symbol              string  `json:"symbol"`
	AverageDividend     float64 `json:"average_dividend"`
	LastDividendDate    string  `json:"last_dividend_date"`
	DividendCount       int     `json:"dividend_count"`
	Degraded            bool    `json:"degraded"`
	SinglePeriodPremium float64 `json:"single_period_premium"`
	ExtendedPremium     float64 `json:"extended_premium"`
	CurrentPrice        float64 `json:"current_price"`
	StrikeThreshold     int     `json:"strike_threshold"`
	Milestone           string  `json:"milestone"`
}

// OpportunityResponse represents one admissible put contract
type OpportunityResponse struct {
	Symbol      string  `json:"symbol"`
	Expiration  string  `json:"expiration"`
	Strike      float64 `json:"strike"`
	LastPrice   float64 `json:"last_price"`
	Highlighted bool    `json:"highlighted"`
}

// AnalyzeResponse represents the analysis response for both modes.
// The summary block is only present in single-symbol mode.
type AnalyzeResponse struct {
	Mode          string                  `json:"mode"`
	Summary       *AnalyzeSummaryResponse `json:"summary,omitempty"`
	Opportunities []OpportunityResponse   `json:"opportunities"`
	Warnings      []string                `json:"warnings,omitempty"`
}

// AnalyzeSymbol handles GET requests to analyze a single symbol.
// Query parameters override the stored default analysis parameters.
//
// Endpoint: GET /api/analyze/{symbol}?lookback=&percentage=&periods=&strike_offset=
// Response: 200 OK with AnalyzeResponse
// Error: 400 invalid symbol or parameters, 404 unknown symbol or no market
// data, 502 upstream feed failure
func (h *AnalyzeHandler) AnalyzeSymbol(w http.ResponseWriter, r *http.Request) {
	symbol := validation.NormalizeSymbol(chi.URLParam(r, "symbol"))
	if err := validation.ValidateSymbol(symbol); err != nil {
		errorResponse := map[string]string{
			"error":  "Invalid symbol",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusBadRequest, errorResponse)
		return
	}

	params, ok := h.resolveParams(w, r)
	if !ok {
		return
	}

	result, err := h.analysisService.Analyze(symbol, params)
	if err != nil {
		respondServiceError(w, "Failed to analyze symbol", err)
		return
	}

	respondJSON(w, http.StatusOK, toAnalyzeResponse(result))
}

// AnalyzeAll handles GET requests to analyze the whole universe.
// Only rows reaching the cadence milestone are returned; symbols that fail
// to analyze are reported as warnings instead of failing the batch.
//
// Endpoint: GET /api/analyze?lookback=&percentage=&periods=&strike_offset=
// Response: 200 OK with AnalyzeResponse
// Error: 400 invalid parameters
func (h *AnalyzeHandler) AnalyzeAll(w http.ResponseWriter, r *http.Request) {
	params, ok := h.resolveParams(w, r)
	if !ok {
		return
	}

	result, err := h.analysisService.AnalyzeAll(params)
	if err != nil {
		respondServiceError(w, "Failed to analyze universe", err)
		return
	}

	respondJSON(w, http.StatusOK, toAnalyzeResponse(result))
}

// resolveParams merges query parameters over the stored defaults, writing an
// error response and returning false when the request is malformed.
func (h *AnalyzeHandler) resolveParams(w http.ResponseWriter, r *http.Request) (model.AnalyzeParams, bool) {
	defaults, err := h.settingsService.GetDefaults()
	if err != nil {
		errorResponse := map[string]string{
			"error":  "Failed to load default parameters",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse)
		return model.AnalyzeParams{}, false
	}

	query := r.URL.Query()
	params, err := request.ParseAnalyzeParams(
		defaults,
		query.Get("lookback"),
		query.Get("percentage"),
		query.Get("periods"),
		query.Get("strike_offset"),
	)
	if err != nil {
		errorResponse := map[string]string{
			"error":  "Invalid query parameters",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusBadRequest, errorResponse)
		return model.AnalyzeParams{}, false
	}

	return params, true
}

func toAnalyzeResponse(result model.AnalysisResult) AnalyzeResponse {
	response := AnalyzeResponse{
		Mode:          result.Mode,
		Opportunities: make([]OpportunityResponse, len(result.Opportunities)),
		Warnings:      result.Warnings,
	}

	if result.Mode == "single" {
		response.Summary = &AnalyzeSummaryResponse{
			Symbol:              result.Summary.Symbol,
			AverageDividend:     result.Summary.AverageDividend,
			LastDividendDate:    result.Summary.LastDividendDate.Format("2006-01-02"),
			DividendCount:       result.Summary.DividendCount,
			Degraded:            result.Summary.Degraded,
			SinglePeriodPremium: result.Summary.SinglePeriodPremium,
			ExtendedPremium:     result.Summary.ExtendedPremium,
			CurrentPrice:        result.Summary.CurrentPrice,
			StrikeThreshold:     result.Summary.StrikeThreshold,
			Milestone:           result.Summary.Milestone.Format("2006-01-02"),
		}
	}

	for i, opportunity := range result.Opportunities {
		response.Opportunities[i] = OpportunityResponse{
			Symbol:      opportunity.Symbol,
			Expiration:  opportunity.Expiration.Format("2006-01-02"),
			Strike:      opportunity.Strike,
			LastPrice:   opportunity.LastPrice,
			Highlighted: opportunity.Highlighted,
		}
	}

	return response
}
