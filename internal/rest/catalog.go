package rest

import (
	"context"
	"net/http"
	"time"

	"derlgTravel/domain"
	"derlgTravel/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type CatalogService interface {
	GetAllHotels(ctx context.Context) ([]domain.Hotel, error)
	GetHotelByID(ctx context.Context, id string) (*domain.Hotel, error)
	GetAllTours(ctx context.Context) ([]domain.Tour, error)
	GetTourByID(ctx context.Context, id string) (*domain.Tour, error)
	GetEventsInRange(ctx context.Context, dates domain.DateRange) ([]domain.Event, error)
}

type CatalogHandler struct {
	catalogService CatalogService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewCatalogHandler(catalogService CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

type EventsQuery struct {
	CheckIn  string `query:"check_in" validate:"required"`
	CheckOut string `query:"check_out" validate:"required"`
}

func (h *CatalogHandler) GetAllHotels(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	hotels, err := h.catalogService.GetAllHotels(ctx)
	if err != nil {
		logger.Error("Failed to find all hotels", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(echo.Map{
		"hotels": hotels,
		"total":  len(hotels),
	}))
}

func (h *CatalogHandler) GetHotelByID(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "hotel id is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	hotel, err := h.catalogService.GetHotelByID(ctx, id)
	if err != nil {
		if err.Error() == "hotel not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to find hotel by id", "id", id, "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(hotel))
}

func (h *CatalogHandler) GetAllTours(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	tours, err := h.catalogService.GetAllTours(ctx)
	if err != nil {
		logger.Error("Failed to find all tours", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(echo.Map{
		"tours": tours,
		"total": len(tours),
	}))
}

func (h *CatalogHandler) GetTourByID(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "tour id is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	tour, err := h.catalogService.GetTourByID(ctx, id)
	if err != nil {
		if err.Error() == "tour not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to find tour by id", "id", id, "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(tour))
}

// GET /api/v1/events?check_in=2025-04-10&check_out=2025-04-18
func (h *CatalogHandler) GetEvents(c echo.Context) error {
	var q EventsQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	events, err := h.catalogService.GetEventsInRange(ctx, domain.DateRange{
		CheckIn:  q.CheckIn,
		CheckOut: q.CheckOut,
	})
	if err != nil {
		logger.Error("Failed to find events in range", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(echo.Map{
		"events": events,
		"total":  len(events),
	}))
}
