package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ndewijer/Put-Option-Screener-Backend/internal/testutil"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/universe"
)

func TestUniverseHandler_List(t *testing.T) {
	t.Run("returns the configured groups and cadences", func(t *testing.T) {
		u := testutil.NewUniverseFromYAML(t, `
default_cadence_days: 28
groups:
  - name: Group A
    symbols: [TSLY, NVDY]
  - name: Group B
    symbols: [ULTY]
cadence_overrides:
  ULTY: 7
`)
		handler := NewUniverseHandler(u)

		req := httptest.NewRequest(http.MethodGet, "/api/universe", nil)
		w := httptest.NewRecorder()

		handler.List(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response UniverseResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.DefaultCadenceDays != 28 {
			t.Errorf("Expected default cadence 28, got %d", response.DefaultCadenceDays)
		}
		if len(response.Groups) != 2 {
			t.Fatalf("Expected 2 groups, got %d", len(response.Groups))
		}
		if response.Groups[0].Name != "Group A" || len(response.Groups[0].Symbols) != 2 {
			t.Errorf("Unexpected first group: %+v", response.Groups[0])
		}
		if response.Groups[0].Symbols[0].CadenceDays != 28 {
			t.Errorf("Expected TSLY on the default cadence, got %d", response.Groups[0].Symbols[0].CadenceDays)
		}
		if response.Groups[1].Symbols[0].CadenceDays != 7 {
			t.Errorf("Expected ULTY cadence override 7, got %d", response.Groups[1].Symbols[0].CadenceDays)
		}
	})

	t.Run("embedded default universe serves without configuration", func(t *testing.T) {
		handler := NewUniverseHandler(universe.Default())

		req := httptest.NewRequest(http.MethodGet, "/api/universe", nil)
		w := httptest.NewRecorder()

		handler.List(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response UniverseResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if len(response.Groups) == 0 {
			t.Error("Expected the embedded universe to have groups")
		}
	})
}
