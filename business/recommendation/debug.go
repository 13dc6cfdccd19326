package recommendation

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"derlgTravel/domain"
	"derlgTravel/pkg/logger"
)

// DebugRecommend returns detailed score components for inspection. It runs
// the same stages as GetRecommendations but keeps every candidate, skips the
// budget filter, and reports the per-stage numbers instead of metadata.
func (s *Service) DebugRecommend(ctx context.Context, req Request) ([]domain.DebugScoredItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if req.ItemType == "" {
		req.ItemType = domain.ItemTypeHotel
	}
	req.Profile.UserID = req.UserID
	req.Profile.Budget = req.Budget

	cfg := s.loadConfig(ctx)

	tid := TraceIDFromContext(ctx)
	logger.Debug("debug recommend",
		"trace_id", tid,
		"user_id", req.UserID,
		"item_type", req.ItemType,
	)

	items, err := s.catalogRepo.QueryAvailableItems(ctx, req.ItemType, req.Budget, req.Dates, req.Profile)
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}
	if len(items) == 0 {
		return []domain.DebugScoredItem{}, nil
	}

	cfScores := s.collaborativeScores(ctx, req.UserID, items, cfg).resolve(len(items))
	cbScores := s.contentScores(ctx, req.Profile, items).resolve(len(items))

	userVector := extractUserPreferences(req.Profile)

	var events []domain.Event
	if req.Dates.CheckIn != "" && req.Dates.CheckOut != "" {
		events, _ = s.eventRepo.GetEventsInRange(ctx, req.Dates)
	}

	out := make([]domain.DebugScoredItem, 0, len(items))

	for idx, item := range items {
		blended := cfg.WCollaborative*cfScores[idx] + cfg.WContent*cbScores[idx]

		priceUSD := s.currency.NormalizePrice(item.Price, item.Currency)
		var valueScore float64
		if priceUSD > 0 && req.Budget > 0 {
			valueScore = clamp01((item.AverageRating / 5.0) / (priceUSD / req.Budget))
		}

		combined := cfg.WScore*blended + cfg.WValue*valueScore

		boost := s.eventBoostFor(item.Location, events, cfg)
		combined = combined + boost
		if combined > 1.0 {
			combined = 1.0
		}

		out = append(out, domain.DebugScoredItem{
			ItemID:             item.ID,
			Name:               item.Name,
			CollaborativeScore: cfScores[idx],
			ContentScore:       cbScores[idx],
			BlendedScore:       blended,
			ValueScore:         valueScore,
			EventBoost:         boost,
			CombinedScore:      combined,
			UserVector:         userVector,
			ItemVector:         extractItemFeatures(item),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CombinedScore > out[j].CombinedScore
	})

	if len(out) > cfg.MaxResults {
		out = out[:cfg.MaxResults]
	}

	return out, nil
}

// eventBoostFor computes the boost a location would receive from the given
// events, mirroring the rules in boostEvents.
func (s *Service) eventBoostFor(loc domain.Location, events []domain.Event, cfg Config) float64 {
	if len(events) == 0 {
		return 0
	}

	var sameCity, nearby int
	var festivals int
	for _, e := range events {
		if strings.EqualFold(e.City, loc.City) {
			sameCity++
			if e.EventType == domain.EventTypeFestival {
				festivals++
			}
		} else if strings.EqualFold(e.Province, loc.Province) {
			nearby++
		}
	}

	switch {
	case sameCity > 0:
		boost := cfg.SameCityBoost + float64(festivals)*cfg.FestivalBoost
		if boost > cfg.MaxEventBoost {
			boost = cfg.MaxEventBoost
		}
		return boost
	case nearby > 0:
		return cfg.NearbyBoost
	default:
		return 0
	}
}
