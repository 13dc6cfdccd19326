package router

import (
	"derlgTravel/internal/middleware"
	"derlgTravel/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler) {
	reco := api.Group("/recommendations", middleware.AuthMiddleware())
	reco.POST("", handler.Recommend)
	reco.GET("/debug", handler.DebugRecommend)
}

func SetCatalogRoutes(api *echo.Group, handler *rest.CatalogHandler) {
	hotels := api.Group("/hotels")
	hotels.GET("", handler.GetAllHotels)
	hotels.GET("/:id", handler.GetHotelByID)

	tours := api.Group("/tours")
	tours.GET("", handler.GetAllTours)
	tours.GET("/:id", handler.GetTourByID)

	api.GET("/events", handler.GetEvents)
}

func SetEngineAdminRoutes(api *echo.Group, handler *rest.EngineAdminHandler) {

	admin := api.Group("/admin/engine", middleware.AuthMiddleware(), middleware.AdminOnly())

	admin.GET("/config", handler.GetConfig)
	admin.PUT("/config", handler.UpsertConfig)
	admin.POST("/cache/clear", handler.ClearCache)
}
