package usecase

import (
	"context"

	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/domain/repository"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/domain/service"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/pkg/errors"
)

// DeliveryUseCase quotes delivery distances between pincodes, resolving
// stored pincodes from user profiles when an item is given.
type DeliveryUseCase struct {
	geo      *service.GeoService
	itemRepo repository.ItemRepository
	userRepo repository.UserRepository
}

func NewDeliveryUseCase(
	geo *service.GeoService,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
) *DeliveryUseCase {
	return &DeliveryUseCase{
		geo:      geo,
		itemRepo: itemRepo,
		userRepo: userRepo,
	}
}

func (uc *DeliveryUseCase) QuoteByPincodes(fromPincode, toPincode string) *service.DistanceEstimate {
	estimate := uc.geo.EstimateDistance(fromPincode, toPincode)
	return &estimate
}

// QuoteForItem estimates the distance between the item's seller and the
// buyer using the pincodes stored on their profiles.
func (uc *DeliveryUseCase) QuoteForItem(ctx context.Context, itemID, buyerID string) (*service.DistanceEstimate, error) {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, errors.NotFound("Item", err)
	}

	seller, err := uc.userRepo.GetByID(ctx, item.SellerID)
	if err != nil {
		return nil, errors.NotFound("Seller", err)
	}

	buyer, err := uc.userRepo.GetByID(ctx, buyerID)
	if err != nil {
		return nil, errors.NotFound("Buyer", err)
	}

	if seller.Pincode == "" || buyer.Pincode == "" {
		return nil, errors.ResolutionUnavailable("Pincode missing on one of the profiles", nil)
	}

	return uc.QuoteByPincodes(seller.Pincode, buyer.Pincode), nil
}
