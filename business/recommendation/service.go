package recommendation

import (
	"context"
	"fmt"

	"derlgTravel/domain"
	"derlgTravel/pkg/logger"
)

// ---- Repository interfaces ----

type InteractionRepository interface {
	GetUserItemMatrix(ctx context.Context) (domain.InteractionMatrix, error)
	GetUserInteractions(ctx context.Context, userID string) (map[string]float64, error)
}

type CatalogRepository interface {
	QueryAvailableItems(ctx context.Context, itemType domain.ItemType, budget float64, dates domain.DateRange, profile domain.UserProfile) ([]domain.Item, error)
}

type EventRepository interface {
	GetEventsInRange(ctx context.Context, dates domain.DateRange) ([]domain.Event, error)
}

// ---- Usecase / Service ----

type Request struct {
	UserID   string
	Budget   float64
	ItemType domain.ItemType
	Dates    domain.DateRange
	Profile  domain.UserProfile
}

type Service struct {
	interactionRepo InteractionRepository
	catalogRepo     CatalogRepository
	eventRepo       EventRepository
	cfgRepo         ConfigRepository
	cache           SnapshotCache
	currency        CurrencyNormalizer
	defaultCfg      Config
}

func NewService(
	interactionRepo InteractionRepository,
	catalogRepo CatalogRepository,
	eventRepo EventRepository,
	cfgRepo ConfigRepository,
	cache SnapshotCache,
	currency CurrencyNormalizer,
	defaultCfg Config,
) *Service {
	if cache == nil {
		cache = NewMemoryCache()
	}
	if currency == nil {
		currency = StaticCurrencyNormalizer{}
	}

	return &Service{
		interactionRepo: interactionRepo,
		catalogRepo:     catalogRepo,
		eventRepo:       eventRepo,
		cfgRepo:         cfgRepo,
		cache:           cache,
		currency:        currency,
		defaultCfg:      defaultCfg,
	}
}

// GetRecommendations runs the full hybrid pipeline for one request:
// candidates -> collaborative + content scoring -> blend -> budget
// optimization -> event boosting -> metadata -> top N.
//
// The engine never surfaces a hard failure; the worst case is an empty or
// lower-confidence result list.
func (s *Service) GetRecommendations(ctx context.Context, req Request) ([]domain.ScoredItem, error) {
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
	logger.Info("generating recommendations",
		"trace_id", tid,
		"user_id", req.UserID,
		"budget", req.Budget,
		"item_type", req.ItemType,
	)

	items, err := s.catalogRepo.QueryAvailableItems(ctx, req.ItemType, req.Budget, req.Dates, req.Profile)
	if err != nil {
		logger.Error("candidate fetch failed",
			"trace_id", tid,
			"user_id", req.UserID,
			"error", err,
		)
		return []domain.ScoredItem{}, nil
	}
	if len(items) == 0 {
		logger.Warn("no available items for budget",
			"trace_id", tid,
			"budget", req.Budget,
			"item_type", req.ItemType,
		)
		return []domain.ScoredItem{}, nil
	}

	blended := s.blendedScores(ctx, req, items, cfg)

	optimized := s.optimizeBudget(items, blended, req.Budget, cfg)

	boosted := s.boostEvents(ctx, optimized, req.Dates, cfg)

	attachMetadata(boosted, req.Profile)

	if len(boosted) > cfg.MaxResults {
		boosted = boosted[:cfg.MaxResults]
	}

	logger.Info("generated recommendations",
		"trace_id", tid,
		"user_id", req.UserID,
		"count", len(boosted),
	)

	return boosted, nil
}

// blendedScores runs both scorers and linearly combines their vectors. A
// degraded stage contributes the uniform neutral vector and is counted.
func (s *Service) blendedScores(ctx context.Context, req Request, items []domain.Item, cfg Config) []float64 {
	cfOutcome := s.collaborativeScores(ctx, req.UserID, items, cfg)
	if cfOutcome.degraded {
		StageDegradedTotal.WithLabelValues("collaborative").Inc()
		logger.Info("collaborative stage degraded",
			"trace_id", TraceIDFromContext(ctx),
			"user_id", req.UserID,
			"reason", cfOutcome.reason,
		)
	}

	cbOutcome := s.contentScores(ctx, req.Profile, items)
	if cbOutcome.degraded {
		StageDegradedTotal.WithLabelValues("content").Inc()
		logger.Info("content stage degraded",
			"trace_id", TraceIDFromContext(ctx),
			"user_id", req.UserID,
			"reason", cbOutcome.reason,
		)
	}

	cfScores := cfOutcome.resolve(len(items))
	cbScores := cbOutcome.resolve(len(items))

	blended := make([]float64, len(items))
	for i := range items {
		blended[i] = cfg.WCollaborative*cfScores[i] + cfg.WContent*cbScores[i]
	}

	return blended
}

// ClearCache drops the interaction matrix snapshot and all cached neighbor
// lists; the next request repopulates them.
func (s *Service) ClearCache(ctx context.Context) error {
	if err := s.cache.Clear(ctx); err != nil {
		return fmt.Errorf("clear engine cache: %w", err)
	}
	return nil
}

// GetEngineConfig returns the DB override row, or the compiled defaults when
// none exists.
func (s *Service) GetEngineConfig(ctx context.Context) (domain.EngineConfig, error) {
	if s.cfgRepo != nil {
		dbCfg, ok, err := s.cfgRepo.GetConfig(ctx, configName)
		if err != nil {
			return domain.EngineConfig{}, fmt.Errorf("load engine config: %w", err)
		}
		if ok {
			return dbCfg, nil
		}
	}

	cfg := s.defaultCfg
	return domain.EngineConfig{
		Name:            configName,
		WCollaborative:  cfg.WCollaborative,
		WContent:        cfg.WContent,
		WScore:          cfg.WScore,
		WValue:          cfg.WValue,
		TopKNeighbors:   cfg.TopKNeighbors,
		MaxResults:      cfg.MaxResults,
		BudgetThreshold: cfg.BudgetThreshold,
		SameCityBoost:   cfg.SameCityBoost,
		FestivalBoost:   cfg.FestivalBoost,
		MaxEventBoost:   cfg.MaxEventBoost,
		NearbyBoost:     cfg.NearbyBoost,
		MinWithinReach:  cfg.MinWithinReach,
	}, nil
}

// UpsertEngineConfig writes an override row for the engine weights.
func (s *Service) UpsertEngineConfig(ctx context.Context, cfg domain.EngineConfig) error {
	if s.cfgRepo == nil {
		return fmt.Errorf("config repository not configured")
	}

	cfg.Name = configName
	if err := s.cfgRepo.UpsertConfig(ctx, cfg); err != nil {
		return fmt.Errorf("upsert engine config: %w", err)
	}
	return nil
}
