package recommendation

import "context"

const configName = "default"

// loadConfig reads the engine config row from the repo, falling back to the
// compiled defaults for missing rows, repo errors, or zero-valued fields.
func (s *Service) loadConfig(ctx context.Context) Config {
	if s.cfgRepo == nil {
		return s.defaultCfg
	}

	dbCfg, ok, err := s.cfgRepo.GetConfig(ctx, configName)
	if err != nil || !ok {
		return s.defaultCfg
	}

	// start from defaults to keep sane fallbacks for any missing fields
	cfg := s.defaultCfg

	if dbCfg.WCollaborative > 0 || dbCfg.WContent > 0 {
		cfg.WCollaborative = dbCfg.WCollaborative
		cfg.WContent = dbCfg.WContent
	}
	if dbCfg.WScore > 0 || dbCfg.WValue > 0 {
		cfg.WScore = dbCfg.WScore
		cfg.WValue = dbCfg.WValue
	}

	if dbCfg.TopKNeighbors > 0 {
		cfg.TopKNeighbors = dbCfg.TopKNeighbors
	}
	if dbCfg.MaxResults > 0 {
		cfg.MaxResults = dbCfg.MaxResults
	}
	if dbCfg.BudgetThreshold > 0 {
		cfg.BudgetThreshold = dbCfg.BudgetThreshold
	}
	if dbCfg.MinWithinReach > 0 {
		cfg.MinWithinReach = dbCfg.MinWithinReach
	}

	if dbCfg.SameCityBoost > 0 {
		cfg.SameCityBoost = dbCfg.SameCityBoost
	}
	if dbCfg.FestivalBoost > 0 {
		cfg.FestivalBoost = dbCfg.FestivalBoost
	}
	if dbCfg.MaxEventBoost > 0 {
		cfg.MaxEventBoost = dbCfg.MaxEventBoost
	}
	if dbCfg.NearbyBoost > 0 {
		cfg.NearbyBoost = dbCfg.NearbyBoost
	}

	// the hybrid blend must stay a convex combination
	if !sumsToOne(cfg.WCollaborative, cfg.WContent) {
		cfg.WCollaborative = s.defaultCfg.WCollaborative
		cfg.WContent = s.defaultCfg.WContent
	}
	if !sumsToOne(cfg.WScore, cfg.WValue) {
		cfg.WScore = s.defaultCfg.WScore
		cfg.WValue = s.defaultCfg.WValue
	}

	return cfg
}

func sumsToOne(a, b float64) bool {
	sum := a + b
	return sum > 0.999 && sum < 1.001
}
