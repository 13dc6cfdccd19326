package rest

import (
	"context"
	"net/http"
	"time"

	"derlgTravel/business/recommendation"
	"derlgTravel/domain"
	"derlgTravel/pkg/logger"
	"derlgTravel/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RecommendationHandler struct {
		validate   *validator.Validate
		recService RecommendationService
		timeout    time.Duration
	}

	RecommendationService interface {
		GetRecommendations(ctx context.Context, req recommendation.Request) ([]domain.ScoredItem, error)
		DebugRecommend(ctx context.Context, req recommendation.Request) ([]domain.DebugScoredItem, error)
	}

	PreferencesRequest struct {
		Amenities   []string `json:"amenities"`
		TravelStyle string   `json:"travel_style" validate:"omitempty,oneof=budget balanced luxury"`
		Destination string   `json:"destination"`
	}

	RecommendRequest struct {
		UserID      string             `json:"user_id" validate:"required"`
		Budget      float64            `json:"budget" validate:"required,gt=0"`
		ItemType    string             `json:"item_type" validate:"omitempty,oneof=hotel tour"`
		CheckIn     string             `json:"check_in"`
		CheckOut    string             `json:"check_out"`
		Preferences PreferencesRequest `json:"preferences"`
	}

	DebugRecommendQuery struct {
		UserID   string  `query:"user_id" validate:"required"`
		Budget   float64 `query:"budget" validate:"required,gt=0"`
		ItemType string  `query:"item_type" validate:"omitempty,oneof=hotel tour"`
		CheckIn  string  `query:"check_in"`
		CheckOut string  `query:"check_out"`
	}
)

func NewRecommendationHandler(svc RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		validate:   validator.New(),
		recService: svc,
		timeout:    15 * time.Second,
	}
}

// POST /api/v1/recommendations
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	var req RecommendRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	start := time.Now()
	recs, err := h.recService.GetRecommendations(ctx, toEngineRequest(req))
	if err != nil {
		logger.Error("Failed to get recommendations", "user_id", req.UserID, "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.RecommendLatency.Observe(time.Since(start).Seconds())
	metrics.RecommendRequests.Inc()
	metrics.RecommendResultSize.Observe(float64(len(recs)))

	return c.JSON(http.StatusOK, fres.Response.StatusOK(echo.Map{
		"recommendations": recs,
		"total":           len(recs),
	}))
}

// GET /api/v1/recommendations/debug?user_id=u1&budget=150&item_type=hotel
func (h *RecommendationHandler) DebugRecommend(c echo.Context) error {
	var q DebugRecommendQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	req := recommendation.Request{
		UserID:   q.UserID,
		Budget:   q.Budget,
		ItemType: domain.ItemType(q.ItemType),
		Dates:    domain.DateRange{CheckIn: q.CheckIn, CheckOut: q.CheckOut},
	}

	recs, err := h.recService.DebugRecommend(ctx, req)
	if err != nil {
		logger.Error("Failed to debug recommendations", "user_id", q.UserID, "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}

func toEngineRequest(req RecommendRequest) recommendation.Request {
	return recommendation.Request{
		UserID:   req.UserID,
		Budget:   req.Budget,
		ItemType: domain.ItemType(req.ItemType),
		Dates:    domain.DateRange{CheckIn: req.CheckIn, CheckOut: req.CheckOut},
		Profile: domain.UserProfile{
			UserID:             req.UserID,
			Budget:             req.Budget,
			PreferredAmenities: req.Preferences.Amenities,
			TravelStyle:        req.Preferences.TravelStyle,
			Destination:        req.Preferences.Destination,
		},
	}
}
