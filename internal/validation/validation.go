package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// Common validation errors
var (
	ErrInvalidSymbol = fmt.Errorf("invalid ticker symbol")
	ErrEmptySlice    = fmt.Errorf("slice cannot be empty")
)

// symbolPattern matches US-listed ticker symbols: one to six letters with an
// optional class suffix such as BRK.B.
var symbolPattern = regexp.MustCompile(`^[A-Z]{1,6}(\.[A-Z])?$`)

// NormalizeSymbol upper-cases and trims a raw ticker symbol.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// ValidateSymbol checks that a string is a plausible ticker symbol.
// The input is expected to be normalized already.
func ValidateSymbol(symbol string) error {
	if !symbolPattern.MatchString(symbol) {
		return fmt.Errorf("%w: %q", ErrInvalidSymbol, symbol)
	}
	return nil
}

// ValidateSymbols validates a slice of ticker symbols
func ValidateSymbols(symbols []string) error {
	if len(symbols) == 0 {
		return ErrEmptySlice
	}
	for _, symbol := range symbols {
		if err := ValidateSymbol(symbol); err != nil {
			return err
		}
	}
	return nil
}
