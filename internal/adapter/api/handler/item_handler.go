package handler

import (
	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/usecase"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/pkg/response"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/pkg/utils"

	"github.com/labstack/echo/v4"
)

type ItemHandler struct {
	itemUseCase *usecase.ItemUseCase
}

func NewItemHandler(itemUseCase *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{
		itemUseCase: itemUseCase,
	}
}

type createItemRequest struct {
	Name          string   `json:"name" validate:"required"`
	Description   string   `json:"description"`
	Category      string   `json:"category" validate:"required"`
	Photos        []string `json:"photos" validate:"required,min=1,max=4,dive,url"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	MRP           float64  `json:"mrp" validate:"omitempty,gt=0"`
	WorkingStatus string   `json:"working_status"`
}

func (h *ItemHandler) CreateItem(c echo.Context) error {
	var req createItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	sellerID := c.Get("uid").(string)

	item, err := h.itemUseCase.CreateItem(
		c.Request().Context(),
		sellerID,
		usecase.CreateItemInput{
			Name:          req.Name,
			Description:   req.Description,
			Category:      req.Category,
			Photos:        req.Photos,
			Price:         req.Price,
			MRP:           req.MRP,
			WorkingStatus: req.WorkingStatus,
		},
	)

	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, item)
}

func (h *ItemHandler) GetItem(c echo.Context) error {
	item, err := h.itemUseCase.GetItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, item)
}

func (h *ItemHandler) ListItems(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	items, total, err := h.itemUseCase.ListItems(
		c.Request().Context(),
		c.QueryParam("category"),
		pagination.PageSize,
		pagination.Offset,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, items, total, pagination.Page, pagination.PageSize)
}

func (h *ItemHandler) ListMyItems(c echo.Context) error {
	sellerID := c.Get("uid").(string)

	items, err := h.itemUseCase.ListUserItems(c.Request().Context(), sellerID, c.QueryParam("status"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, items)
}

func (h *ItemHandler) DelistItem(c echo.Context) error {
	requesterID := c.Get("uid").(string)

	item, err := h.itemUseCase.DelistItem(c.Request().Context(), c.Param("id"), requesterID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, item)
}

func (h *ItemHandler) RelistItem(c echo.Context) error {
	requesterID := c.Get("uid").(string)

	item, err := h.itemUseCase.RelistItem(c.Request().Context(), c.Param("id"), requesterID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, item)
}
