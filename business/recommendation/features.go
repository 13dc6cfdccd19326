package recommendation

import "derlgTravel/domain"

// Canonical feature orders. The amenity order is shared between hotel and
// user vectors so the binary flags line up position for position.
var standardAmenities = []string{
	"wifi", "parking", "pool", "gym", "spa",
	"restaurant", "bar", "breakfast",
}

var standardCategories = []string{
	"cultural", "adventure", "nature", "food", "history",
}

var difficultyLevels = map[string]float64{
	"easy":        0.33,
	"moderate":    0.66,
	"challenging": 1.0,
}

const defaultDifficulty = 0.66

// extractItemFeatures dispatches on the item type. Missing fields encode as
// 0 or a neutral value rather than failing.
func extractItemFeatures(item domain.Item) []float64 {
	if item.Type == domain.ItemTypeTour {
		return extractTourFeatures(item)
	}
	return extractHotelFeatures(item)
}

// Hotel vector: [price/1000, rating/5, 8 amenity flags, norm lat, norm lon].
func extractHotelFeatures(item domain.Item) []float64 {
	features := make([]float64, 0, 4+len(standardAmenities))

	features = append(features, item.Price/1000)
	features = append(features, item.AverageRating/5.0)

	amenities := toSet(item.Amenities)
	for _, a := range standardAmenities {
		if amenities[a] {
			features = append(features, 1.0)
		} else {
			features = append(features, 0.0)
		}
	}

	// Coordinates roughly normalized over Cambodia's bounds; unknown
	// locations encode as the origin.
	if item.Location.Latitude != 0 && item.Location.Longitude != 0 {
		features = append(features, (item.Location.Latitude-10)/5)
		features = append(features, (item.Location.Longitude-102)/5)
	} else {
		features = append(features, 0.0, 0.0)
	}

	return features
}

// Tour vector: [price/500, days/7 capped, difficulty, 5 category flags].
func extractTourFeatures(item domain.Item) []float64 {
	features := make([]float64, 0, 3+len(standardCategories))

	features = append(features, item.Price/500)

	days := item.DurationDays
	if days <= 0 {
		days = 1
	}
	durationNorm := float64(days) / 7.0
	if durationNorm > 1.0 {
		durationNorm = 1.0
	}
	features = append(features, durationNorm)

	difficulty, ok := difficultyLevels[item.Difficulty]
	if !ok {
		difficulty = defaultDifficulty
	}
	features = append(features, difficulty)

	categories := toSet(item.Categories)
	for _, c := range standardCategories {
		if categories[c] {
			features = append(features, 1.0)
		} else {
			features = append(features, 0.0)
		}
	}

	return features
}

// User vector: [budget/1000 capped, 8 amenity flags, 3-way style one-hot].
// The amenity flags follow the same order as the hotel vector.
func extractUserPreferences(profile domain.UserProfile) []float64 {
	features := make([]float64, 0, 4+len(standardAmenities))

	budgetNorm := profile.Budget / 1000
	if budgetNorm > 1.0 {
		budgetNorm = 1.0
	}
	features = append(features, budgetNorm)

	preferred := toSet(profile.PreferredAmenities)
	for _, a := range standardAmenities {
		if preferred[a] {
			features = append(features, 1.0)
		} else {
			features = append(features, 0.0)
		}
	}

	switch profile.TravelStyle {
	case domain.TravelStyleBudget:
		features = append(features, 1.0, 0.0, 0.0)
	case domain.TravelStyleLuxury:
		features = append(features, 0.0, 0.0, 1.0)
	default:
		// balanced, and the neutral fallback for unknown styles
		features = append(features, 0.0, 1.0, 0.0)
	}

	return features
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
