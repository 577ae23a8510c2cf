package handler

import (
	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/usecase"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/pkg/response"

	"github.com/labstack/echo/v4"
)

type PurchaseHandler struct {
	purchaseUseCase *usecase.PurchaseUseCase
}

func NewPurchaseHandler(purchaseUseCase *usecase.PurchaseUseCase) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseUseCase: purchaseUseCase,
	}
}

func (h *PurchaseHandler) BuyItem(c echo.Context) error {
	buyerID := c.Get("uid").(string)

	result, err := h.purchaseUseCase.BuyItem(c.Request().Context(), buyerID, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
