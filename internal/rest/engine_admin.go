package rest

import (
	"context"
	"net/http"

	"derlgTravel/domain"
	"derlgTravel/pkg/logger"

	"github.com/labstack/echo/v4"
)

type EngineAdminService interface {
	GetEngineConfig(ctx context.Context) (domain.EngineConfig, error)
	UpsertEngineConfig(ctx context.Context, cfg domain.EngineConfig) error
	ClearCache(ctx context.Context) error
}

type EngineAdminHandler struct {
	engineService EngineAdminService
}

func NewEngineAdminHandler(engineService EngineAdminService) *EngineAdminHandler {
	return &EngineAdminHandler{engineService: engineService}
}

// GET /api/v1/admin/engine/config
func (h *EngineAdminHandler) GetConfig(c echo.Context) error {
	ctx := c.Request().Context()

	cfg, err := h.engineService.GetEngineConfig(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, cfg)
}

// PUT /api/v1/admin/engine/config
// body: EngineConfig JSON
func (h *EngineAdminHandler) UpsertConfig(c echo.Context) error {
	ctx := c.Request().Context()

	var body domain.EngineConfig
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "invalid body: " + err.Error(),
		})
	}
	if body.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "name is required",
		})
	}

	if err := h.engineService.UpsertEngineConfig(ctx, body); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "ok",
	})
}

// POST /api/v1/admin/engine/cache/clear
func (h *EngineAdminHandler) ClearCache(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.engineService.ClearCache(ctx); err != nil {
		logger.Error("Failed to clear engine cache", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "ok",
	})
}
