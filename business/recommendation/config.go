package recommendation

import (
	"context"

	"derlgTravel/domain"
)

type Config struct {
	// hybrid blend; must sum to 1.0
	WCollaborative float64
	WContent       float64

	// budget-stage blend of recommendation score vs value score
	WScore float64
	WValue float64

	TopKNeighbors int
	MaxResults    int

	// fraction of the stated budget recommendations may consume
	BudgetThreshold float64
	// below this many in-budget items, over-budget alternatives are appended
	MinWithinReach   int
	AlternativeCount int

	SameCityBoost float64
	FestivalBoost float64
	MaxEventBoost float64
	NearbyBoost   float64
	MaxHighlights int
}

const (
	defaultWCollaborative   = 0.6
	defaultWContent         = 0.4
	defaultWScore           = 0.7
	defaultWValue           = 0.3
	defaultTopKNeighbors    = 10
	defaultMaxResults       = 10
	defaultBudgetThreshold  = 0.9
	defaultMinWithinReach   = 3
	defaultAlternativeCount = 2
	defaultSameCityBoost    = 0.15
	defaultFestivalBoost    = 0.05
	defaultMaxEventBoost    = 0.25
	defaultNearbyBoost      = 0.10
	defaultMaxHighlights    = 3
)

func DefaultConfig() Config {
	return Config{
		WCollaborative: defaultWCollaborative,
		WContent:       defaultWContent,

		WScore: defaultWScore,
		WValue: defaultWValue,

		TopKNeighbors: defaultTopKNeighbors,
		MaxResults:    defaultMaxResults,

		BudgetThreshold:  defaultBudgetThreshold,
		MinWithinReach:   defaultMinWithinReach,
		AlternativeCount: defaultAlternativeCount,

		SameCityBoost: defaultSameCityBoost,
		FestivalBoost: defaultFestivalBoost,
		MaxEventBoost: defaultMaxEventBoost,
		NearbyBoost:   defaultNearbyBoost,
		MaxHighlights: defaultMaxHighlights,
	}
}

// ConfigRepository reads engine weight overrides from the DB.
type ConfigRepository interface {
	GetConfig(ctx context.Context, name string) (domain.EngineConfig, bool, error)
	UpsertConfig(ctx context.Context, cfg domain.EngineConfig) error
}
