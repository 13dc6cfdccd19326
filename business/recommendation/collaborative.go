package recommendation

import (
	"context"
	"fmt"
	"sort"

	"derlgTravel/domain"
	"derlgTravel/pkg/logger"
)

// collaborativeScores ranks candidates by what similar users rated highly.
// Every failure path degrades to the uniform neutral vector; this stage must
// never abort a recommendation request.
func (s *Service) collaborativeScores(
	ctx context.Context,
	userID string,
	items []domain.Item,
	cfg Config,
) scoreOutcome {

	interactions, err := s.interactionRepo.GetUserInteractions(ctx, userID)
	if err != nil {
		return degraded(fmt.Sprintf("load interactions: %v", err))
	}
	if len(interactions) == 0 {
		// cold start
		return degraded("no prior interactions")
	}

	matrix, err := s.loadMatrix(ctx)
	if err != nil {
		return degraded(fmt.Sprintf("load interaction matrix: %v", err))
	}
	if len(matrix) == 0 || len(matrix[userID]) == 0 {
		return degraded("user not in interaction matrix")
	}

	neighbors, err := s.findSimilarUsers(ctx, userID, matrix, cfg.TopKNeighbors)
	if err != nil {
		return degraded(fmt.Sprintf("find similar users: %v", err))
	}
	if len(neighbors) == 0 {
		return degraded("no similar users")
	}

	scores := make([]float64, len(items))

	for idx, item := range items {
		var weightedSum, totalWeight float64

		for _, neighbor := range neighbors {
			rating, ok := matrix[neighbor.UserID][item.ID]
			if !ok {
				continue
			}
			weightedSum += neighbor.Similarity * rating
			totalWeight += neighbor.Similarity
		}

		var predicted float64
		if totalWeight > 0 {
			predicted = weightedSum / totalWeight
		} else {
			// no neighbor rated it; fall back to item popularity
			predicted = item.AverageRating
		}

		// map the 1-5 rating scale onto [0, 1]
		scores[idx] = clamp01((predicted - 1) / 4.0)
	}

	minMaxNormalize(scores)

	return scored(scores)
}

// loadMatrix returns the cached interaction matrix, building it from the
// repository on first use.
func (s *Service) loadMatrix(ctx context.Context) (domain.InteractionMatrix, error) {
	if matrix, ok, err := s.cache.GetMatrix(ctx); err == nil && ok {
		return matrix, nil
	}

	matrix, err := s.interactionRepo.GetUserItemMatrix(ctx)
	if err != nil {
		return nil, fmt.Errorf("build user-item matrix: %w", err)
	}

	if err := s.cache.SetMatrix(ctx, matrix); err != nil {
		logger.Warn("failed to cache interaction matrix", "error", err)
	}

	return matrix, nil
}

// findSimilarUsers returns the top K users by cosine similarity computed over
// the intersection of rated items. Users with no overlap are excluded. The
// result is cached per (userID, K).
func (s *Service) findSimilarUsers(
	ctx context.Context,
	userID string,
	matrix domain.InteractionMatrix,
	topK int,
) ([]SimilarityEntry, error) {

	if entries, ok, err := s.cache.GetSimilar(ctx, userID, topK); err == nil && ok {
		return entries, nil
	}

	targetRatings := matrix[userID]
	if len(targetRatings) == 0 {
		return nil, nil
	}

	similarities := make([]SimilarityEntry, 0, len(matrix))

	for otherID, otherRatings := range matrix {
		if otherID == userID {
			continue
		}

		// vectors over the common item set only
		var targetVec, otherVec []float64
		for itemID, rating := range targetRatings {
			if otherRating, ok := otherRatings[itemID]; ok {
				targetVec = append(targetVec, rating)
				otherVec = append(otherVec, otherRating)
			}
		}
		if len(targetVec) == 0 {
			continue
		}

		similarity := cosineSimilarity(targetVec, otherVec)
		if similarity > 0 {
			similarities = append(similarities, SimilarityEntry{
				UserID:     otherID,
				Similarity: similarity,
			})
		}
	}

	// descending by similarity; ties break on user id so map iteration
	// order cannot change the ranking between calls
	sort.Slice(similarities, func(i, j int) bool {
		if similarities[i].Similarity == similarities[j].Similarity {
			return similarities[i].UserID < similarities[j].UserID
		}
		return similarities[i].Similarity > similarities[j].Similarity
	})

	if len(similarities) > topK {
		similarities = similarities[:topK]
	}

	if err := s.cache.SetSimilar(ctx, userID, topK, similarities); err != nil {
		logger.Warn("failed to cache similar users", "user_id", userID, "error", err)
	}

	return similarities, nil
}
