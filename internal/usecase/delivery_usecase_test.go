package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/domain/entity"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/domain/service"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/pkg/errors"
)

func TestQuoteByPincodes(t *testing.T) {
	stack := newTestStack(nil)
	deliveryUC := NewDeliveryUseCase(service.NewGeoService(), stack.itemRepo, stack.userRepo)

	estimate := deliveryUC.QuoteByPincodes("400001", "400050")

	assert.Equal(t, "400001", estimate.From.Pincode)
	assert.Equal(t, "400050", estimate.To.Pincode)
	assert.Greater(t, estimate.DistanceKm, 0.0)
}

func TestQuoteForItem(t *testing.T) {
	stack := newTestStack(nil)
	deliveryUC := NewDeliveryUseCase(service.NewGeoService(), stack.itemRepo, stack.userRepo)
	ctx := context.Background()

	seller := seedUser(t, stack.userRepo, "seller-1", "asha")
	buyer := seedUser(t, stack.userRepo, "buyer-1", "vikram")
	buyer.Pincode = "400601"
	require.NoError(t, stack.userRepo.Update(ctx, buyer))
	item := seedItem(t, stack.itemRepo, "item-1", seller.ID, entity.ItemStatusAvailable)

	estimate, err := deliveryUC.QuoteForItem(ctx, item.ID, buyer.ID)
	require.NoError(t, err)

	assert.Equal(t, seller.Pincode, estimate.From.Pincode)
	assert.Equal(t, "400601", estimate.To.Pincode)
}

func TestQuoteForItemMissingPincode(t *testing.T) {
	stack := newTestStack(nil)
	deliveryUC := NewDeliveryUseCase(service.NewGeoService(), stack.itemRepo, stack.userRepo)
	ctx := context.Background()

	seller := seedUser(t, stack.userRepo, "seller-1", "asha")
	buyer := seedUser(t, stack.userRepo, "buyer-1", "vikram")
	buyer.Pincode = ""
	require.NoError(t, stack.userRepo.Update(ctx, buyer))
	item := seedItem(t, stack.itemRepo, "item-1", seller.ID, entity.ItemStatusAvailable)

	_, err := deliveryUC.QuoteForItem(ctx, item.ID, buyer.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "RESOLUTION_UNAVAILABLE"))
}

func TestQuoteForItemUnknownItem(t *testing.T) {
	stack := newTestStack(nil)
	deliveryUC := NewDeliveryUseCase(service.NewGeoService(), stack.itemRepo, stack.userRepo)

	_, err := deliveryUC.QuoteForItem(context.Background(), "missing", "buyer-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
