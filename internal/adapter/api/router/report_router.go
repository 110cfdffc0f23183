package router

import (
	"github.com/labstack/echo/v4"

	"protegeo/internal/adapter/api/handler"
	"protegeo/internal/adapter/api/middleware"
)

func SetupReportRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	reportHandler := handler.GetReportHandler()

	// Public routes: browsing needs no account
	reports := e.Group("/v1/reports")
	reports.GET("", reportHandler.ListReports)
	reports.GET("/:id", reportHandler.GetReport)

	// Protected routes
	authenticated := e.Group("/v1/reports")
	authenticated.Use(authMiddleware.Authenticate)

	authenticated.POST("", reportHandler.CreateReport, rateLimitMiddleware.LimitAction("create_report"))
	authenticated.GET("/mine", reportHandler.ListMyReports)
	authenticated.POST("/:id/approve-resolution", reportHandler.ApproveResolution)
}
