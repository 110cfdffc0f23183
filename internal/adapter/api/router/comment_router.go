package router

import (
	"github.com/labstack/echo/v4"

	"protegeo/internal/adapter/api/handler"
	"protegeo/internal/adapter/api/middleware"
)

func SetupCommentRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	commentHandler := handler.GetCommentHandler()

	e.GET("/v1/reports/:id/comments", commentHandler.ListComments)

	authenticated := e.Group("/v1/reports")
	authenticated.Use(authMiddleware.Authenticate)

	authenticated.POST("/:id/comments", commentHandler.AddComment, rateLimitMiddleware.LimitAction("add_comment"))
}
