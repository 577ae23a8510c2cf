package router

import (
	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/adapter/api/handler"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()
	watchlistHandler := handler.GetWatchlistHandler()

	users := e.Group("/v1/users")
	users.Use(authMiddleware.Authenticate)
	users.POST("/me", userHandler.CreateProfile)
	users.GET("/me", userHandler.GetProfile)
	users.PATCH("/me", userHandler.UpdateProfile)

	watchlist := e.Group("/v1/watchlist")
	watchlist.Use(authMiddleware.Authenticate)
	watchlist.GET("", watchlistHandler.GetWatchlist)
	watchlist.POST("/:id", watchlistHandler.AddToWatchlist)
	watchlist.DELETE("/:id", watchlistHandler.RemoveFromWatchlist)
}
