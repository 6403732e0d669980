package request

import (
	"fmt"
	"strconv"

	"github.com/ndewijer/Put-Option-Screener-Backend/internal/model"
)

// ParseAnalyzeParams merges analysis query parameters over a set of defaults.
// Converts raw query string parameters into a model.AnalyzeParams struct.
//
// All parameters are optional; an empty string keeps the default for that
// field. Range validation is left to the analysis pipeline, which owns the
// parameter contracts.
//
// Query parameters:
//   - lookback: number of most recent dividends to average
//   - percentage: percent of the average dividend spent per period
//   - periods: number of future dividend periods covered
//   - strike_offset: points subtracted from the current price floor
//
// Returns an error if any supplied parameter is not an integer.
func ParseAnalyzeParams(
	defaults model.AnalyzeParams,
	lookbackParam, percentageParam, periodsParam, strikeOffsetParam string,
) (model.AnalyzeParams, error) {
	params := defaults

	if lookbackParam != "" {
		lookback, err := strconv.Atoi(lookbackParam)
		if err != nil {
			return model.AnalyzeParams{}, fmt.Errorf("invalid lookback: must be a number")
		}
		params.Lookback = lookback
	}

	if percentageParam != "" {
		percentage, err := strconv.Atoi(percentageParam)
		if err != nil {
			return model.AnalyzeParams{}, fmt.Errorf("invalid percentage: must be a number")
		}
		params.Percentage = percentage
	}

	if periodsParam != "" {
		periods, err := strconv.Atoi(periodsParam)
		if err != nil {
			return model.AnalyzeParams{}, fmt.Errorf("invalid periods: must be a number")
		}
		params.Periods = periods
	}

	if strikeOffsetParam != "" {
		strikeOffset, err := strconv.Atoi(strikeOffsetParam)
		if err != nil {
			return model.AnalyzeParams{}, fmt.Errorf("invalid strike_offset: must be a number")
		}
		params.StrikeOffset = strikeOffset
	}

	return params, nil
}
