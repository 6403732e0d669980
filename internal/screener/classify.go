package screener

import (
	"sort"
	"time"

	"github.com/ndewijer/Put-Option-Screener-Backend/internal/model"
)

// Classify filters an option chain against a computed budget and flags the
// survivors whose expiration reaches the projected dividend milestone.
//
// A contract is admissible when its strike is at or above the budget's strike
// threshold and its last-traded price is within the extended premium. Every
// returned opportunity therefore has WithinBudget set; Highlighted is
// additionally set when the expiration date is on or after the milestone.
//
// Output is ordered by expiration descending, then last price descending.
// The sort is stable: contracts tied on both keys keep their input order, so
// repeated runs over the same chain produce identical output.
//
// An empty result is a normal outcome meaning no contract fit the budget,
// not an error.
func Classify(chain []model.OptionContract, budget model.Budget, milestone time.Time) []model.ScoredOpportunity {
	milestoneDay := model.NormalizeDate(milestone)

	opportunities := make([]model.ScoredOpportunity, 0, len(chain))
	for _, contract := range chain {
		if contract.Strike < float64(budget.StrikeThreshold) {
			continue
		}
		if contract.LastPrice > budget.ExtendedPremium {
			continue
		}

		expiration := model.NormalizeDate(contract.Expiration)
		opportunities = append(opportunities, model.ScoredOpportunity{
			Symbol:       contract.Symbol,
			Expiration:   expiration,
			Strike:       contract.Strike,
			LastPrice:    contract.LastPrice,
			WithinBudget: true,
			Highlighted:  !expiration.Before(milestoneDay),
		})
	}

	sortOpportunities(opportunities)
	return opportunities
}

// sortOpportunities orders rows by expiration descending, then last price
// descending, preserving input order on ties. Shared by Classify and
// Aggregate so both surfaces sort identically.
func sortOpportunities(opportunities []model.ScoredOpportunity) {
	sort.SliceStable(opportunities, func(i, j int) bool {
		if !opportunities[i].Expiration.Equal(opportunities[j].Expiration) {
			return opportunities[i].Expiration.After(opportunities[j].Expiration)
		}
		return opportunities[i].LastPrice > opportunities[j].LastPrice
	})
}
