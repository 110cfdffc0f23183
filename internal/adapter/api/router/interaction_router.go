package router

import (
	"github.com/labstack/echo/v4"

	"protegeo/internal/adapter/api/handler"
	"protegeo/internal/adapter/api/middleware"
)

func SetupInteractionRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	interactionHandler := handler.GetInteractionHandler()

	// Aggregate counts are public; mutations require a session.
	e.GET("/v1/reports/:id/interactions", interactionHandler.GetInteractions)

	authenticated := e.Group("/v1/reports")
	authenticated.Use(authMiddleware.Authenticate)

	authenticated.POST("/:id/favorite", interactionHandler.ToggleFavorite)
	authenticated.POST("/:id/resolved-votes", interactionHandler.RecordVote)
}
