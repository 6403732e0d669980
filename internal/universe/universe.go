// Package universe provides the configured set of screenable symbols with
// their distribution cadence and grouping metadata. The universe is
// read-only reference data: it is loaded once at startup from a YAML file
// (or the embedded default) and injected wherever symbol iteration or
// cadence lookup is needed.
package universe

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ndewijer/Put-Option-Screener-Backend/internal/apperrors"
)

//go:embed universe.yaml
var defaultUniverseYAML []byte

// Group is a named set of symbols sharing a distribution schedule week.
type Group struct {
	Name    string   `yaml:"name" json:"name"`
	Symbols []string `yaml:"symbols" json:"symbols"`
}

// fileFormat mirrors the YAML layout of a universe file.
type fileFormat struct {
	DefaultCadenceDays int            `yaml:"default_cadence_days"`
	Groups             []Group        `yaml:"groups"`
	CadenceOverrides   map[string]int `yaml:"cadence_overrides"`
}

// Universe holds the parsed symbol universe. Iteration order is fixed:
// groups in file order, symbols in listed order within each group.
type Universe struct {
	groups         []Group
	defaultCadence int
	cadence        map[string]int
}

// Load reads a universe from the YAML file at path. When path is empty or
// the file does not exist, the embedded default universe is used instead.
func Load(path string) (*Universe, error) {
	data := defaultUniverseYAML
	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %v", apperrors.ErrUniverseLoad, err)
			}
		} else {
			data = fileData
		}
	}
	return parse(data)
}

// Default returns the embedded universe without touching the filesystem.
func Default() *Universe {
	u, err := parse(defaultUniverseYAML)
	if err != nil {
		// The embedded file ships with the binary; failing to parse it is
		// a build defect, not a runtime condition.
		panic(fmt.Sprintf("embedded universe is invalid: %v", err))
	}
	return u
}

func parse(data []byte) (*Universe, error) {
	var file fileFormat
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUniverseLoad, err)
	}
	if file.DefaultCadenceDays < 1 {
		return nil, fmt.Errorf("%w: default_cadence_days must be positive", apperrors.ErrUniverseLoad)
	}
	if len(file.Groups) == 0 {
		return nil, fmt.Errorf("%w: no groups defined", apperrors.ErrUniverseLoad)
	}

	cadence := make(map[string]int)
	for _, group := range file.Groups {
		for _, symbol := range group.Symbols {
			cadence[symbol] = file.DefaultCadenceDays
		}
	}
	for symbol, days := range file.CadenceOverrides {
		if days < 1 {
			return nil, fmt.Errorf("%w: cadence override for %s must be positive", apperrors.ErrUniverseLoad, symbol)
		}
		if _, ok := cadence[symbol]; !ok {
			return nil, fmt.Errorf("%w: cadence override for unknown symbol %s", apperrors.ErrUniverseLoad, symbol)
		}
		cadence[symbol] = days
	}

	return &Universe{
		groups:         file.Groups,
		defaultCadence: file.DefaultCadenceDays,
		cadence:        cadence,
	}, nil
}

// Groups returns the configured groups in file order.
func (u *Universe) Groups() []Group {
	return u.groups
}

// Symbols returns every symbol in fixed group-then-member order.
// Batch analysis iterates this slice, so output ordering is deterministic.
func (u *Universe) Symbols() []string {
	var symbols []string
	for _, group := range u.groups {
		symbols = append(symbols, group.Symbols...)
	}
	return symbols
}

// Contains reports whether a symbol is part of the universe.
func (u *Universe) Contains(symbol string) bool {
	_, ok := u.cadence[symbol]
	return ok
}

// Cadence returns the distribution cadence in days for a symbol.
// Returns apperrors.ErrSymbolNotFound for symbols outside the universe.
func (u *Universe) Cadence(symbol string) (int, error) {
	days, ok := u.cadence[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: %s", apperrors.ErrSymbolNotFound, symbol)
	}
	return days, nil
}

// DefaultCadence returns the cadence applied to symbols without an override.
func (u *Universe) DefaultCadence() int {
	return u.defaultCadence
}
