package domain

// EngineConfig is the DB-backed override row for recommendation weights.
// Missing rows fall back to compiled defaults.
type EngineConfig struct {
	Name string `json:"name" gorm:"column:name;primaryKey"`

	WCollaborative float64 `json:"w_collaborative" gorm:"column:w_collaborative"`
	WContent       float64 `json:"w_content" gorm:"column:w_content"`
	WScore         float64 `json:"w_score" gorm:"column:w_score"`
	WValue         float64 `json:"w_value" gorm:"column:w_value"`

	TopKNeighbors   int     `json:"top_k_neighbors" gorm:"column:top_k_neighbors"`
	MaxResults      int     `json:"max_results" gorm:"column:max_results"`
	BudgetThreshold float64 `json:"budget_threshold" gorm:"column:budget_threshold"`

	SameCityBoost  float64 `json:"same_city_boost" gorm:"column:same_city_boost"`
	FestivalBoost  float64 `json:"festival_boost" gorm:"column:festival_boost"`
	MaxEventBoost  float64 `json:"max_event_boost" gorm:"column:max_event_boost"`
	NearbyBoost    float64 `json:"nearby_boost" gorm:"column:nearby_boost"`
	MinWithinReach int     `json:"min_within_reach" gorm:"column:min_within_reach"`
}

func (EngineConfig) TableName() string {
	return "engine_config"
}
