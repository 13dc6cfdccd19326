package recommendation

import (
	"sort"

	"derlgTravel/domain"
)

// optimizeBudget filters candidates against the budget threshold, ranks the
// affordable set by the blend of recommendation score and value score, and
// appends the two closest over-budget items as flagged alternatives when too
// few qualify.
func (s *Service) optimizeBudget(
	items []domain.Item,
	scores []float64,
	budget float64,
	cfg Config,
) []domain.ScoredItem {

	threshold := budget * cfg.BudgetThreshold

	withinBudget := make([]domain.ScoredItem, 0, len(items))
	overBudget := make([]domain.ScoredItem, 0)

	for idx, item := range items {
		priceUSD := s.currency.NormalizePrice(item.Price, item.Currency)

		scoredItem := domain.ScoredItem{
			Item:                item,
			RecommendationScore: scores[idx],
			PriceUSD:            priceUSD,
			RemainingBudget:     budget - priceUSD,
		}

		// quality per dollar relative to the stated budget
		var valueScore float64
		if priceUSD > 0 && budget > 0 {
			valueScore = clamp01((item.AverageRating / 5.0) / (priceUSD / budget))
		}
		scoredItem.ValueScore = valueScore

		scoredItem.CombinedScore = cfg.WScore*scoredItem.RecommendationScore + cfg.WValue*valueScore

		if priceUSD <= threshold {
			withinBudget = append(withinBudget, scoredItem)
		} else {
			overBudget = append(overBudget, scoredItem)
		}
	}

	sort.SliceStable(withinBudget, func(i, j int) bool {
		return withinBudget[i].CombinedScore > withinBudget[j].CombinedScore
	})

	// tight market: surface the cheapest over-budget items as explicit
	// alternatives rather than returning a thin list
	if len(withinBudget) < cfg.MinWithinReach && len(overBudget) > 0 {
		sort.SliceStable(overBudget, func(i, j int) bool {
			return overBudget[i].PriceUSD < overBudget[j].PriceUSD
		})

		limit := cfg.AlternativeCount
		if limit > len(overBudget) {
			limit = len(overBudget)
		}

		for i := 0; i < limit; i++ {
			alt := overBudget[i]
			alt.IsAlternative = true
			alt.BudgetExceededBy = alt.PriceUSD - threshold
			withinBudget = append(withinBudget, alt)
		}
	}

	return withinBudget
}
