package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ndewijer/Put-Option-Screener-Backend/internal/model"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/service"
)

// SettingsHandler handles analysis settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// SettingsResponse represents the stored default analysis parameters
type SettingsResponse struct {
	Lookback     int `json:"lookback"`
	Percentage   int `json:"percentage"`
	Periods      int `json:"periods"`
	StrikeOffset int `json:"strike_offset"`
}

// Get handles GET requests for the default analysis parameters.
//
// Endpoint: GET /api/settings
// Response: 200 OK with SettingsResponse
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	params, err := h.settingsService.GetDefaults()
	if err != nil {
		errorResponse := map[string]string{
			"error":  "Failed to retrieve settings",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse)
		return
	}

	respondJSON(w, http.StatusOK, SettingsResponse{
		Lookback:     params.Lookback,
		Percentage:   params.Percentage,
		Periods:      params.Periods,
		StrikeOffset: params.StrikeOffset,
	})
}

// Update handles PUT requests to replace the default analysis parameters.
//
// Endpoint: PUT /api/settings
// Request: SettingsResponse shape
// Response: 200 OK with the saved parameters
// Error: 400 malformed body or out-of-range parameters
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var body SettingsResponse
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		errorResponse := map[string]string{
			"error":  "Invalid request body",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusBadRequest, errorResponse)
		return
	}

	params := model.AnalyzeParams{
		Lookback:     body.Lookback,
		Percentage:   body.Percentage,
		Periods:      body.Periods,
		StrikeOffset: body.StrikeOffset,
	}
	if err := h.settingsService.SaveDefaults(params); err != nil {
		respondServiceError(w, "Failed to save settings", err)
		return
	}

	respondJSON(w, http.StatusOK, body)
}
