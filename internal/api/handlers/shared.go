package handlers

import (
	"errors"
	"net/http"

	"github.com/ndewijer/Put-Option-Screener-Backend/internal/api/response"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/apperrors"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	response.RespondJSON(w, status, data)
}

// respondServiceError maps a service-layer error to an HTTP error response
func respondServiceError(w http.ResponseWriter, message string, err error) {
	response.RespondError(w, statusForError(err), message, err.Error())
}

// statusForError resolves the HTTP status for a service-layer error.
//
// Parameter violations are the caller's fault (400), missing symbols or
// symbols without usable market data are not found (404), and upstream feed
// outages surface as bad gateway (502) so clients can tell them apart from
// our own failures (500).
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrInvalidLookback),
		errors.Is(err, apperrors.ErrInvalidPercentage),
		errors.Is(err, apperrors.ErrInvalidPeriods),
		errors.Is(err, apperrors.ErrInvalidStrikeOffset):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrSymbolNotFound),
		errors.Is(err, apperrors.ErrNoDividendData),
		errors.Is(err, apperrors.ErrNoOptionChain),
		errors.Is(err, apperrors.ErrNoPriceData):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrExternalFetch):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
