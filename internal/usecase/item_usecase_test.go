package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/domain/entity"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/pkg/errors"
)

func validCreateInput() CreateItemInput {
	return CreateItemInput{
		Name:        "Engineering Mathematics Vol 2",
		Description: "Lightly used, no markings",
		Category:    entity.CategoryBooks,
		Photos:      []string{"https://cdn.example.com/book.jpg"},
		Price:       250,
		MRP:         600,
	}
}

func TestCreateItem(t *testing.T) {
	stack := newTestStack(nil)
	seller := seedUser(t, stack.userRepo, "seller-1", "asha")

	item, err := stack.itemUC.CreateItem(context.Background(), seller.ID, validCreateInput())
	require.NoError(t, err)

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, entity.ItemStatusAvailable, item.Status)
	assert.Equal(t, seller.ID, item.SellerID)

	stored := mustGetItem(t, stack.itemRepo, item.ID)
	assert.Equal(t, entity.ItemStatusAvailable, stored.Status)

	updatedSeller := mustGetUser(t, stack.userRepo, seller.ID)
	assert.Contains(t, updatedSeller.ActiveListings, item.ID)
}

func TestCreateItemValidation(t *testing.T) {
	stack := newTestStack(nil)
	seller := seedUser(t, stack.userRepo, "seller-1", "asha")

	cases := []struct {
		name   string
		mutate func(*CreateItemInput)
		code   string
	}{
		{"no photos", func(in *CreateItemInput) { in.Photos = nil }, "BAD_REQUEST"},
		{"too many photos", func(in *CreateItemInput) {
			in.Photos = []string{"a", "b", "c", "d", "e"}
		}, "BAD_REQUEST"},
		{"unknown category", func(in *CreateItemInput) { in.Category = "Vehicles" }, "BAD_REQUEST"},
		{"device without working status", func(in *CreateItemInput) {
			in.Category = entity.CategoryDevices
			in.WorkingStatus = ""
		}, "BAD_REQUEST"},
		{"art without working status", func(in *CreateItemInput) {
			in.Category = entity.CategoryArt
			in.WorkingStatus = ""
		}, "BAD_REQUEST"},
		{"zero price", func(in *CreateItemInput) { in.Price = 0 }, "BAD_REQUEST"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validCreateInput()
			tc.mutate(&input)

			_, err := stack.itemUC.CreateItem(context.Background(), seller.ID, input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.code))
		})
	}

	t.Run("unknown seller", func(t *testing.T) {
		_, err := stack.itemUC.CreateItem(context.Background(), "nobody", validCreateInput())
		require.Error(t, err)
		assert.True(t, errors.Is(err, "NOT_FOUND"))
	})

	t.Run("working status accepted for devices", func(t *testing.T) {
		input := validCreateInput()
		input.Category = entity.CategoryDevices
		input.WorkingStatus = "Fully working"

		item, err := stack.itemUC.CreateItem(context.Background(), seller.ID, input)
		require.NoError(t, err)
		assert.Equal(t, "Fully working", item.WorkingStatus)
	})
}

func TestDelistAndRelist(t *testing.T) {
	stack := newTestStack(nil)
	seller := seedUser(t, stack.userRepo, "seller-1", "asha")
	seedUser(t, stack.userRepo, "other-1", "vikram")
	item := seedItem(t, stack.itemRepo, "item-1", seller.ID, entity.ItemStatusAvailable)

	ctx := context.Background()
	require.NoError(t, stack.syncUC.OnCreate(ctx, item))

	t.Run("stranger cannot delist", func(t *testing.T) {
		_, err := stack.itemUC.DelistItem(ctx, item.ID, "other-1")
		require.Error(t, err)
		assert.True(t, errors.Is(err, "NOT_OWNER"))
	})

	t.Run("seller delists", func(t *testing.T) {
		delisted, err := stack.itemUC.DelistItem(ctx, item.ID, seller.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.ItemStatusUnavailable, delisted.Status)

		updatedSeller := mustGetUser(t, stack.userRepo, seller.ID)
		assert.NotContains(t, updatedSeller.ActiveListings, item.ID)
	})

	t.Run("delisting twice fails", func(t *testing.T) {
		_, err := stack.itemUC.DelistItem(ctx, item.ID, seller.ID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, "NOT_AVAILABLE"))
	})

	t.Run("relist restores listing", func(t *testing.T) {
		relisted, err := stack.itemUC.RelistItem(ctx, item.ID, seller.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.ItemStatusAvailable, relisted.Status)

		updatedSeller := mustGetUser(t, stack.userRepo, seller.ID)
		assert.Contains(t, updatedSeller.ActiveListings, item.ID)
	})

	t.Run("relisting an available item fails", func(t *testing.T) {
		_, err := stack.itemUC.RelistItem(ctx, item.ID, seller.ID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, "NOT_AVAILABLE"))
	})
}

func TestRepairItemStatus(t *testing.T) {
	stack := newTestStack(nil)
	seller := seedUser(t, stack.userRepo, "seller-1", "asha")
	ctx := context.Background()

	t.Run("buyer set forces sold", func(t *testing.T) {
		item := seedItem(t, stack.itemRepo, "item-drift", seller.ID, entity.ItemStatusAvailable)
		item.BuyerID = "buyer-1"
		require.NoError(t, stack.itemRepo.Update(ctx, item))

		repaired, err := stack.itemUC.RepairItemStatus(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.ItemStatusSold, repaired.Status)
		require.NotNil(t, repaired.SoldAt)

		// Second run is a no-op.
		again, err := stack.itemUC.RepairItemStatus(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.ItemStatusSold, again.Status)
		assert.Equal(t, repaired.SoldAt.Unix(), again.SoldAt.Unix())
	})

	t.Run("no buyer forces available", func(t *testing.T) {
		item := seedItem(t, stack.itemRepo, "item-ghost", seller.ID, entity.ItemStatusSold)

		repaired, err := stack.itemUC.RepairItemStatus(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.ItemStatusAvailable, repaired.Status)
		assert.Nil(t, repaired.SoldAt)
		assert.Empty(t, repaired.SoldTo)
	})

	t.Run("healthy item untouched", func(t *testing.T) {
		item := seedItem(t, stack.itemRepo, "item-ok", seller.ID, entity.ItemStatusAvailable)

		repaired, err := stack.itemUC.RepairItemStatus(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, item.UpdatedAt.Unix(), repaired.UpdatedAt.Unix())
	})

	t.Run("unknown item", func(t *testing.T) {
		_, err := stack.itemUC.RepairItemStatus(ctx, "missing")
		require.Error(t, err)
		assert.True(t, errors.Is(err, "NOT_FOUND"))
	})
}

func TestListItemsFiltersAvailable(t *testing.T) {
	stack := newTestStack(nil)
	seller := seedUser(t, stack.userRepo, "seller-1", "asha")
	seedItem(t, stack.itemRepo, "item-1", seller.ID, entity.ItemStatusAvailable)
	seedItem(t, stack.itemRepo, "item-2", seller.ID, entity.ItemStatusSold)
	seedItem(t, stack.itemRepo, "item-3", seller.ID, entity.ItemStatusUnavailable)

	items, total, err := stack.itemUC.ListItems(context.Background(), "", 10, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "item-1", items[0].ID)
}
