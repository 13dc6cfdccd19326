package recommendation

import (
	"context"

	"derlgTravel/domain"
)

// weights of the hand-tuned feature score
const (
	amenityWeight  = 0.4
	priceWeight    = 0.3
	ratingWeight   = 0.2
	locationWeight = 0.1

	// neutral amenity contribution when the user stated no preferences
	neutralAmenityScore = 0.2
	// location scoring is not implemented; contribute a neutral constant
	neutralLocationScore = 0.5
)

// contentScores ranks candidates by how well their features match the stated
// user preferences.
func (s *Service) contentScores(
	ctx context.Context,
	profile domain.UserProfile,
	items []domain.Item,
) scoreOutcome {

	if err := ctx.Err(); err != nil {
		return degraded("context cancelled")
	}

	userVector := extractUserPreferences(profile)
	scores := make([]float64, len(items))

	for idx, item := range items {
		itemVector := extractItemFeatures(item)

		// cross-type comparison truncates both vectors to the shorter
		// length; tour vectors are shorter than the user vector
		minLen := min(len(userVector), len(itemVector))
		baseSimilarity := cosineSimilarity(userVector[:minLen], itemVector[:minLen])

		featureScore := s.featureScore(profile, item)

		scores[idx] = clamp01(0.7*baseSimilarity + 0.3*featureScore)
	}

	minMaxNormalize(scores)

	return scored(scores)
}

// featureScore blends amenity overlap, price fit, rating, and a neutral
// location constant into one hand-weighted score.
func (s *Service) featureScore(profile domain.UserProfile, item domain.Item) float64 {
	var score float64

	if len(profile.PreferredAmenities) > 0 {
		preferred := toSet(profile.PreferredAmenities)
		available := toSet(item.Amenities)
		matched := 0
		for a := range preferred {
			if available[a] {
				matched++
			}
		}
		overlap := float64(matched) / float64(len(preferred))
		score += amenityWeight * overlap
	} else {
		score += neutralAmenityScore
	}

	priceUSD := s.currency.NormalizePrice(item.Price, item.Currency)
	score += priceWeight * priceFitScore(priceUSD, profile.Budget)

	score += ratingWeight * (item.AverageRating / 5.0)

	score += locationWeight * neutralLocationScore

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// priceFitScore prefers prices in the 60-80% band of the budget. Items over
// budget contribute nothing.
func priceFitScore(price, budget float64) float64 {
	if budget <= 0 || price > budget {
		return 0.0
	}

	ratio := price / budget

	var fit float64
	switch {
	case ratio >= 0.6 && ratio <= 0.8:
		fit = 1.0
	case ratio < 0.6:
		fit = 0.7 + (ratio/0.6)*0.3
	default:
		fit = 1.0 - ((ratio-0.8)/0.2)*0.3
	}

	if fit < 0 {
		fit = 0
	}
	return fit
}
