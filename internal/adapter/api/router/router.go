package router

import (
	"github.com/labstack/echo/v4"

	"protegeo/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	SetupHealthRouter(e)
	SetupAuthRouter(e)
	SetupUserRouter(e, authMiddleware)
	SetupReportRouter(e, authMiddleware, rateLimitMiddleware)
	SetupInteractionRouter(e, authMiddleware)
	SetupCommentRouter(e, authMiddleware, rateLimitMiddleware)
	SetupFileRouter(e, authMiddleware)
}
