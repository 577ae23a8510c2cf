package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/domain/entity"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/domain/repository"
	"github.com/stretchr/testify/require"
)

type testStack struct {
	itemRepo   *memoryItemRepo
	userRepo   repository.UserRepository
	syncUC     *SyncUseCase
	itemUC     *ItemUseCase
	purchaseUC *PurchaseUseCase
}

func newTestStack(userRepo repository.UserRepository) *testStack {
	itemRepo := newMemoryItemRepo()
	if userRepo == nil {
		userRepo = newMemoryUserRepo()
	}
	syncUC := NewSyncUseCase(itemRepo, userRepo)
	locks := NewItemLockManager()
	return &testStack{
		itemRepo:   itemRepo,
		userRepo:   userRepo,
		syncUC:     syncUC,
		itemUC:     NewItemUseCase(itemRepo, userRepo, syncUC, locks),
		purchaseUC: NewPurchaseUseCase(itemRepo, userRepo, syncUC, locks),
	}
}

func seedUser(t *testing.T, repo repository.UserRepository, id, username string) *entity.User {
	t.Helper()
	now := time.Now()
	user := &entity.User{
		ID:             id,
		Username:       username,
		Name:           username + " kumar",
		Email:          username + "@example.com",
		Pincode:        "400001",
		ActiveListings: []string{},
		SoldItems:      []string{},
		BoughtItems:    []string{},
		Watchlist:      []string{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func seedItem(t *testing.T, repo *memoryItemRepo, id, sellerID, status string) *entity.Item {
	t.Helper()
	now := time.Now()
	item := &entity.Item{
		ID:        id,
		Name:      "Casio FX-991",
		Category:  entity.CategoryStationery,
		Photos:    []string{"https://cdn.example.com/" + id + ".jpg"},
		Price:     450,
		MRP:       1200,
		Status:    status,
		SellerID:  sellerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.Create(context.Background(), item))
	return item
}

func mustGetUser(t *testing.T, repo repository.UserRepository, id string) *entity.User {
	t.Helper()
	user, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	return user
}

func mustGetItem(t *testing.T, repo *memoryItemRepo, id string) *entity.Item {
	t.Helper()
	item, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	return item
}
