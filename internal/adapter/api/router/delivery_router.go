package router

import (
	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/adapter/api/handler"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupDeliveryRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	deliveryHandler := handler.GetDeliveryHandler()

	e.GET("/v1/delivery/estimate", deliveryHandler.EstimateDistance)

	itemEstimate := e.Group("/v1/items")
	itemEstimate.Use(authMiddleware.Authenticate)
	itemEstimate.GET("/:id/delivery-estimate", deliveryHandler.EstimateItemDistance)
}
