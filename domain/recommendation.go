package domain

// TravelStyle influences the one-hot encoding in the user preference vector.
const (
	TravelStyleBudget   = "budget"
	TravelStyleBalanced = "balanced"
	TravelStyleLuxury   = "luxury"
)

// UserProfile is supplied per request; the engine never persists it.
type UserProfile struct {
	UserID             string   `json:"user_id"`
	Budget             float64  `json:"budget"`
	PreferredAmenities []string `json:"preferred_amenities"`
	TravelStyle        string   `json:"travel_style"`
	Destination        string   `json:"destination,omitempty"`
}

// DateRange holds the travel window used for availability and event lookups.
type DateRange struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

type EventHighlight struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	Dates        string `json:"dates"`
	Significance string `json:"significance"`
}

// ScoredItem is the per-request output record of the recommendation pipeline.
type ScoredItem struct {
	Item

	RecommendationScore float64 `json:"recommendation_score"`
	ValueScore          float64 `json:"value_score"`
	CombinedScore       float64 `json:"combined_score"`
	PriceUSD            float64 `json:"price_usd"`
	RemainingBudget     float64 `json:"remaining_budget"`

	Confidence            int      `json:"confidence"`
	RecommendationReasons []string `json:"recommendation_reasons"`
	RecommendationType    string   `json:"recommendation_type"`

	HasEvents       bool             `json:"has_events"`
	EventCount      int              `json:"event_count,omitempty"`
	EventBoost      float64          `json:"event_boost,omitempty"`
	EventHighlights []EventHighlight `json:"event_highlights,omitempty"`

	IsAlternative    bool    `json:"is_alternative,omitempty"`
	BudgetExceededBy float64 `json:"budget_exceeded_by,omitempty"`
}

// DebugScoredItem exposes per-stage score components for inspection.
type DebugScoredItem struct {
	ItemID             string    `json:"item_id"`
	Name               string    `json:"name"`
	CollaborativeScore float64   `json:"collaborative_score"`
	ContentScore       float64   `json:"content_score"`
	BlendedScore       float64   `json:"blended_score"`
	ValueScore         float64   `json:"value_score"`
	EventBoost         float64   `json:"event_boost"`
	CombinedScore      float64   `json:"combined_score"`
	UserVector         []float64 `json:"user_vector,omitempty"`
	ItemVector         []float64 `json:"item_vector,omitempty"`
}
