package middleware

import (
	"derlgTravel/business/recommendation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

// RequestID issues a uuid per request, echoes it back in the response
// header, and carries it through the request context so the engine can
// tag its logs.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(requestIDHeader)
			if traceID == "" {
				traceID = uuid.NewString()
			}

			ctx := recommendation.WithTraceID(c.Request().Context(), traceID)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(requestIDHeader, traceID)

			return next(c)
		}
	}
}
