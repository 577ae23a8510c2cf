package handler

import (
	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/usecase"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/pkg/response"

	"github.com/labstack/echo/v4"
)

// AdminHandler exposes the operator-facing drift repair operations.
type AdminHandler struct {
	syncUseCase *usecase.SyncUseCase
	itemUseCase *usecase.ItemUseCase
}

func NewAdminHandler(syncUseCase *usecase.SyncUseCase, itemUseCase *usecase.ItemUseCase) *AdminHandler {
	return &AdminHandler{
		syncUseCase: syncUseCase,
		itemUseCase: itemUseCase,
	}
}

func (h *AdminHandler) ReconcileAll(c echo.Context) error {
	result := h.syncUseCase.ReconcileAll(c.Request().Context())
	return response.Success(c, result)
}

func (h *AdminHandler) ReconcileUser(c echo.Context) error {
	result, err := h.syncUseCase.ReconcileUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *AdminHandler) RepairItemStatus(c echo.Context) error {
	item, err := h.itemUseCase.RepairItemStatus(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, item)
}
