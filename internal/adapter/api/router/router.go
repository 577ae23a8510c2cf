package router

import (
	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	SetupHealthRouter(e)
	SetupUserRouter(e, authMiddleware)
	SetupItemRouter(e, authMiddleware, rateLimitMiddleware)
	SetupDeliveryRouter(e, authMiddleware)
	SetupAdminRouter(e, authMiddleware, adminMiddleware)
}
