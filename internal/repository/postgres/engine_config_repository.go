package postgres

import (
	"context"
	"fmt"

	"derlgTravel/business/recommendation"
	"derlgTravel/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EngineConfigRepository struct {
	DB *gorm.DB
}

var _ recommendation.ConfigRepository = (*EngineConfigRepository)(nil)

func NewEngineConfigRepository(db *gorm.DB) *EngineConfigRepository {
	return &EngineConfigRepository{DB: db}
}

func (r *EngineConfigRepository) GetConfig(ctx context.Context, name string) (domain.EngineConfig, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.EngineConfig{}, false, fmt.Errorf("context error: %w", err)
	}

	var cfg domain.EngineConfig
	err := r.DB.WithContext(ctx).
		Where("name = ?", name).
		First(&cfg).Error
	if err == gorm.ErrRecordNotFound {
		return domain.EngineConfig{}, false, nil
	}
	if err != nil {
		return domain.EngineConfig{}, false, fmt.Errorf("failed to query engine_config: %w", err)
	}

	return cfg, true, nil
}

func (r *EngineConfigRepository) UpsertConfig(ctx context.Context, cfg domain.EngineConfig) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"w_collaborative",
				"w_content",
				"w_score",
				"w_value",
				"top_k_neighbors",
				"max_results",
				"budget_threshold",
				"same_city_boost",
				"festival_boost",
				"max_event_boost",
				"nearby_boost",
				"min_within_reach",
			}),
		}).
		Create(&cfg).Error
}
