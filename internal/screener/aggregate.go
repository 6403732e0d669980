package screener

import "github.com/ndewijer/Put-Option-Screener-Backend/internal/model"

// Mode selects how Aggregate merges per-symbol results.
type Mode int

const (
	// ModeSingle returns the one symbol's classified rows unchanged.
	ModeSingle Mode = iota
	// ModeBatch concatenates all symbols, keeps highlighted rows only and
	// re-sorts the combined set.
	ModeBatch
)

// Aggregate merges per-symbol classifier output into the final row set.
//
// Results must arrive in universe order (group-then-member); combined with
// the stable sort this makes batch output deterministic no matter in which
// order the per-symbol fetches completed.
//
// In batch mode only highlighted rows survive, re-sorted across the combined
// universe by expiration descending then last price descending. An empty
// batch result means no symbol produced a highlighted opportunity; callers
// render that as a distinct "nothing found" state.
func Aggregate(results []model.SymbolResult, mode Mode) []model.ScoredOpportunity {
	if mode == ModeSingle {
		if len(results) == 0 {
			return []model.ScoredOpportunity{}
		}
		return results[0].Opportunities
	}

	combined := make([]model.ScoredOpportunity, 0)
	for _, result := range results {
		for _, opportunity := range result.Opportunities {
			if opportunity.Highlighted {
				combined = append(combined, opportunity)
			}
		}
	}

	sortOpportunities(combined)
	return combined
}
