package recommendation

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"derlgTravel/domain"
	"derlgTravel/pkg/logger"
)

// boostEvents raises the combined score of items near events overlapping the
// travel dates and re-ranks. Event enrichment is strictly best-effort: an
// unreachable event source leaves every score unmodified.
func (s *Service) boostEvents(
	ctx context.Context,
	items []domain.ScoredItem,
	dates domain.DateRange,
	cfg Config,
) []domain.ScoredItem {

	if len(items) == 0 || dates.CheckIn == "" || dates.CheckOut == "" {
		return items
	}

	events, err := s.eventRepo.GetEventsInRange(ctx, dates)
	if err != nil {
		logger.Warn("event source unavailable, skipping boost",
			"trace_id", TraceIDFromContext(ctx),
			"error", err,
		)
		for i := range items {
			items[i].HasEvents = false
		}
		return items
	}
	if len(events) == 0 {
		for i := range items {
			items[i].HasEvents = false
		}
		return items
	}

	for i := range items {
		item := &items[i]
		city := item.Location.City
		province := item.Location.Province

		var sameCity, nearby []domain.Event
		for _, e := range events {
			switch {
			case strings.EqualFold(e.City, city):
				sameCity = append(sameCity, e)
			case strings.EqualFold(e.Province, province):
				// same province, different city
				nearby = append(nearby, e)
			}
		}

		if len(sameCity) == 0 && len(nearby) == 0 {
			item.HasEvents = false
			continue
		}

		item.HasEvents = true
		item.EventCount = len(sameCity) + len(nearby)

		var boost float64
		if len(sameCity) > 0 {
			boost = cfg.SameCityBoost
			for _, e := range sameCity {
				if e.EventType == domain.EventTypeFestival {
					boost += cfg.FestivalBoost
				}
			}
			if boost > cfg.MaxEventBoost {
				boost = cfg.MaxEventBoost
			}
		} else {
			boost = cfg.NearbyBoost
		}

		item.EventBoost = boost
		item.CombinedScore = item.CombinedScore + boost
		if item.CombinedScore > 1.0 {
			item.CombinedScore = 1.0
		}

		// same-city events lead the highlight list
		item.EventHighlights = eventHighlights(append(sameCity, nearby...), cfg.MaxHighlights)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CombinedScore > items[j].CombinedScore
	})

	return items
}

func eventHighlights(events []domain.Event, limit int) []domain.EventHighlight {
	if len(events) > limit {
		events = events[:limit]
	}

	highlights := make([]domain.EventHighlight, 0, len(events))
	for _, e := range events {
		highlights = append(highlights, domain.EventHighlight{
			Name:         e.Name,
			Type:         e.EventType,
			Dates:        fmt.Sprintf("%s to %s", e.StartDate, e.EndDate),
			Significance: e.CulturalSignificance,
		})
	}
	return highlights
}
