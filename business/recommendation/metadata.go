package recommendation

import (
	"fmt"
	"math"
	"strings"

	"derlgTravel/domain"
)

const (
	TypeEventBased   = "event-based"
	TypeValueFocused = "value-focused"
	TypeHighlyRated  = "highly-rated"
	TypePersonalized = "personalized"
)

// attachMetadata fills confidence, human-readable reasons, and the
// recommendation type for every item, in place.
func attachMetadata(items []domain.ScoredItem, profile domain.UserProfile) {
	for i := range items {
		item := &items[i]

		item.Confidence = int(math.Round(item.CombinedScore * 100))

		var reasons []string

		if item.HasEvents && item.EventBoost > 0 {
			if item.EventCount > 1 {
				reasons = append(reasons, fmt.Sprintf("Near %d cultural events during your visit", item.EventCount))
			} else {
				reasons = append(reasons, "Near cultural events during your visit")
			}
		}

		if item.ValueScore > 0.8 {
			reasons = append(reasons, "Exceptional value for money")
		} else if item.ValueScore > 0.6 {
			reasons = append(reasons, "Great value for money")
		}

		if item.AverageRating >= 4.7 {
			reasons = append(reasons, "Exceptional ratings from travelers")
		} else if item.AverageRating >= 4.3 {
			reasons = append(reasons, "Highly rated by travelers")
		}

		if matching := matchingAmenities(item.Amenities, profile.PreferredAmenities); len(matching) >= 2 {
			if len(matching) > 3 {
				matching = matching[:3]
			}
			reasons = append(reasons, "Has your preferred amenities: "+strings.Join(matching, ", "))
		}

		if item.RemainingBudget > 0 {
			reasons = append(reasons, fmt.Sprintf("Leaves $%.0f in your budget", item.RemainingBudget))
		}

		if item.IsAlternative {
			reasons = append(reasons, fmt.Sprintf("Slightly over budget by $%.0f but highly recommended", item.BudgetExceededBy))
		}

		if len(reasons) == 0 {
			reasons = append(reasons, "Matches your travel preferences")
		}

		item.RecommendationReasons = reasons

		switch {
		case item.HasEvents && item.EventBoost > 0:
			item.RecommendationType = TypeEventBased
		case item.ValueScore > 0.7:
			item.RecommendationType = TypeValueFocused
		case item.AverageRating >= 4.5:
			item.RecommendationType = TypeHighlyRated
		default:
			item.RecommendationType = TypePersonalized
		}
	}
}

// matchingAmenities returns the preferred amenities the item actually has,
// keeping the user's stated order so reason strings are deterministic.
func matchingAmenities(available, preferred []string) []string {
	availableSet := toSet(available)

	var matching []string
	for _, a := range preferred {
		if availableSet[a] {
			matching = append(matching, a)
		}
	}
	return matching
}
