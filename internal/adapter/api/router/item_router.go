package router

import (
	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/adapter/api/handler"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupItemRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	itemHandler := handler.GetItemHandler()
	purchaseHandler := handler.GetPurchaseHandler()

	items := e.Group("/v1/items")
	items.GET("", itemHandler.ListItems)
	items.GET("/:id", itemHandler.GetItem)

	myItems := e.Group("/v1/my-items")
	myItems.Use(authMiddleware.Authenticate)
	myItems.GET("", itemHandler.ListMyItems)
	myItems.POST("", itemHandler.CreateItem, rateLimitMiddleware.LimitAction("create_item"))
	myItems.POST("/:id/delist", itemHandler.DelistItem)
	myItems.POST("/:id/relist", itemHandler.RelistItem)

	purchases := e.Group("/v1/items")
	purchases.Use(authMiddleware.Authenticate)
	purchases.POST("/:id/buy", purchaseHandler.BuyItem, rateLimitMiddleware.LimitAction("buy_item"))
}
