package handlers

import (
	"net/http"

	"github.com/ndewijer/Put-Option-Screener-Backend/internal/universe"
)

// UniverseHandler handles symbol universe HTTP requests
type UniverseHandler struct {
	universe *universe.Universe
}

// NewUniverseHandler creates a new UniverseHandler
func NewUniverseHandler(u *universe.Universe) *UniverseHandler {
	return &UniverseHandler{
		universe: u,
	}
}

// UniverseSymbolResponse represents one universe member with its cadence
type UniverseSymbolResponse struct {
	Symbol      string `json:"symbol"`
	CadenceDays int    `json:"cadence_days"`
}

// UniverseGroupResponse represents one group of the universe
type UniverseGroupResponse struct {
	Name    string                   `json:"name"`
	Symbols []UniverseSymbolResponse `json:"symbols"`
}

// UniverseResponse represents the configured symbol universe
type UniverseResponse struct {
	DefaultCadenceDays int                     `json:"default_cadence_days"`
	Groups             []UniverseGroupResponse `json:"groups"`
}

// List handles GET requests for the configured universe.
//
// Endpoint: GET /api/universe
// Response: 200 OK with UniverseResponse
func (h *UniverseHandler) List(w http.ResponseWriter, r *http.Request) {
	groups := h.universe.Groups()

	response := UniverseResponse{
		DefaultCadenceDays: h.universe.DefaultCadence(),
		Groups:             make([]UniverseGroupResponse, len(groups)),
	}
	for i, group := range groups {
		symbols := make([]UniverseSymbolResponse, len(group.Symbols))
		for j, symbol := range group.Symbols {
			cadence, err := h.universe.Cadence(symbol)
			if err != nil {
				errorResponse := map[string]string{
					"error":  "Failed to resolve cadence",
					"detail": err.Error(),
				}
				respondJSON(w, http.StatusInternalServerError, errorResponse)
				return
			}
			symbols[j] = UniverseSymbolResponse{
				Symbol:      symbol,
				CadenceDays: cadence,
			}
		}
		response.Groups[i] = UniverseGroupResponse{
			Name:    group.Name,
			Symbols: symbols,
		}
	}

	respondJSON(w, http.StatusOK, response)
}
