package router

import (
	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/adapter/api/handler"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminHandler := handler.GetAdminHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.POST("/reconcile", adminHandler.ReconcileAll)
	admin.POST("/reconcile/users/:id", adminHandler.ReconcileUser)
	admin.POST("/items/:id/repair-status", adminHandler.RepairItemStatus)
}
