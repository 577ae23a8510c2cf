package handler

import (
	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/usecase"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/pkg/errors"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/pkg/response"

	"github.com/labstack/echo/v4"
)

type DeliveryHandler struct {
	deliveryUseCase *usecase.DeliveryUseCase
}

func NewDeliveryHandler(deliveryUseCase *usecase.DeliveryUseCase) *DeliveryHandler {
	return &DeliveryHandler{
		deliveryUseCase: deliveryUseCase,
	}
}

type distanceQuery struct {
	From string `query:"from" validate:"required,len=6,numeric"`
	To   string `query:"to" validate:"required,len=6,numeric"`
}

// EstimateDistance quotes the delivery distance between two pincodes given
// as query parameters. Pincodes are validated here; the estimator itself
// never fails.
func (h *DeliveryHandler) EstimateDistance(c echo.Context) error {
	var query distanceQuery
	if err := c.Bind(&query); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&query); err != nil {
		return response.Error(c, err)
	}

	estimate := h.deliveryUseCase.QuoteByPincodes(query.From, query.To)
	return response.Success(c, estimate)
}

// EstimateItemDistance quotes the distance from the item's seller to the
// authenticated buyer using stored pincodes. A missing pincode yields a
// null-distance payload with the error note.
func (h *DeliveryHandler) EstimateItemDistance(c echo.Context) error {
	buyerID := c.Get("uid").(string)

	estimate, err := h.deliveryUseCase.QuoteForItem(c.Request().Context(), c.Param("id"), buyerID)
	if err != nil {
		if errors.Is(err, "RESOLUTION_UNAVAILABLE") {
			return response.Success(c, map[string]interface{}{
				"distance": nil,
				"error":    "Coordinates could not be resolved for both parties",
				"from":     nil,
				"to":       nil,
			})
		}
		return response.Error(c, err)
	}

	return response.Success(c, estimate)
}
