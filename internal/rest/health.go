package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type HealthHandler struct {
	appName     string
	environment string
	version     string
}

func NewHealthHandler(appName, environment, version string) *HealthHandler {
	return &HealthHandler{
		appName:     appName,
		environment: environment,
		version:     version,
	}
}

// GET /api/health
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":      "healthy",
		"service":     h.appName,
		"environment": h.environment,
		"version":     h.version,
	})
}
