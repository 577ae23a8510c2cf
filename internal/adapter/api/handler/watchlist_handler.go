package handler

import (
	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/usecase"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/pkg/response"

	"github.com/labstack/echo/v4"
)

type WatchlistHandler struct {
	watchlistUseCase *usecase.WatchlistUseCase
}

func NewWatchlistHandler(watchlistUseCase *usecase.WatchlistUseCase) *WatchlistHandler {
	return &WatchlistHandler{
		watchlistUseCase: watchlistUseCase,
	}
}

func (h *WatchlistHandler) AddToWatchlist(c echo.Context) error {
	userID := c.Get("uid").(string)

	if err := h.watchlistUseCase.AddToWatchlist(c.Request().Context(), userID, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "added"})
}

func (h *WatchlistHandler) RemoveFromWatchlist(c echo.Context) error {
	userID := c.Get("uid").(string)

	if err := h.watchlistUseCase.RemoveFromWatchlist(c.Request().Context(), userID, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "removed"})
}

func (h *WatchlistHandler) GetWatchlist(c echo.Context) error {
	userID := c.Get("uid").(string)

	entries, err := h.watchlistUseCase.GetWatchlist(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, entries)
}
