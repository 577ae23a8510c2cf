package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/domain/entity"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/domain/repository"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/pkg/errors"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/pkg/logger"
)

// ItemUseCase owns the item lifecycle: listing, delisting, relisting and the
// administrative status repair.
type ItemUseCase struct {
	itemRepo repository.ItemRepository
	userRepo repository.UserRepository
	syncUC   *SyncUseCase
	locks    *ItemLockManager
}

func NewItemUseCase(
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	syncUC *SyncUseCase,
	locks *ItemLockManager,
) *ItemUseCase {
	return &ItemUseCase{
		itemRepo: itemRepo,
		userRepo: userRepo,
		syncUC:   syncUC,
		locks:    locks,
	}
}

type CreateItemInput struct {
	Name          string
	Description   string
	Category      string
	Photos        []string
	Price         float64
	MRP           float64
	WorkingStatus string
}

func (uc *ItemUseCase) CreateItem(ctx context.Context, sellerID string, input CreateItemInput) (*entity.Item, error) {
	if _, err := uc.userRepo.GetByID(ctx, sellerID); err != nil {
		return nil, errors.NotFound("Seller", err)
	}

	if !entity.IsValidCategory(input.Category) {
		return nil, errors.BadRequest(fmt.Sprintf("Invalid category %q", input.Category), nil)
	}

	if len(input.Photos) < 1 || len(input.Photos) > 4 {
		return nil, errors.BadRequest("Item must have between 1 and 4 photos", nil)
	}

	if entity.RequiresWorkingStatus(input.Category) && input.WorkingStatus == "" {
		return nil, errors.BadRequest(fmt.Sprintf("workingStatus is required for category %q", input.Category), nil)
	}

	if input.Price <= 0 {
		return nil, errors.BadRequest("Price must be greater than zero", nil)
	}

	now := time.Now()
	item := &entity.Item{
		ID:            uuid.NewString(),
		Name:          input.Name,
		Description:   input.Description,
		Category:      input.Category,
		Photos:        input.Photos,
		Price:         input.Price,
		MRP:           input.MRP,
		WorkingStatus: input.WorkingStatus,
		Status:        entity.ItemStatusAvailable,
		SellerID:      sellerID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, errors.Internal("Failed to create item", err)
	}

	if err := uc.syncUC.OnCreate(ctx, item); err != nil {
		if deleteErr := uc.itemRepo.Delete(ctx, item.ID); deleteErr != nil {
			logger.Error("Failed to roll back item %s after listing sync failure: %v", item.ID, deleteErr)
		}
		return nil, err
	}

	return item, nil
}

func (uc *ItemUseCase) GetItem(ctx context.Context, itemID string) (*entity.Item, error) {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, errors.NotFound("Item", err)
	}
	return item, nil
}

func (uc *ItemUseCase) ListItems(ctx context.Context, category string, limit, offset int) ([]*entity.Item, int64, error) {
	filter := map[string]interface{}{
		"status": entity.ItemStatusAvailable,
	}
	if category != "" {
		filter["category"] = category
	}

	items, total, err := uc.itemRepo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list items", err)
	}
	return items, total, nil
}

func (uc *ItemUseCase) ListUserItems(ctx context.Context, sellerID, status string) ([]*entity.Item, error) {
	items, err := uc.itemRepo.ListBySellerID(ctx, sellerID, status)
	if err != nil {
		return nil, errors.Internal("Failed to list seller items", err)
	}
	return items, nil
}

// DelistItem takes an available item off the market. Seller only.
func (uc *ItemUseCase) DelistItem(ctx context.Context, itemID, requesterID string) (*entity.Item, error) {
	unlock := uc.locks.Lock(itemID)
	defer unlock()

	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, errors.NotFound("Item", err)
	}

	if item.SellerID != requesterID {
		return nil, errors.NotOwner("Only the seller can delist this item")
	}

	if item.Status != entity.ItemStatusAvailable {
		return nil, errors.NotAvailable("Item is not available for delisting", nil)
	}

	item.Status = entity.ItemStatusUnavailable
	item.UpdatedAt = time.Now()

	if err := uc.itemRepo.UpdateIfStatus(ctx, item, entity.ItemStatusAvailable); err != nil {
		return nil, err
	}

	if err := uc.syncUC.OnDelist(ctx, item); err != nil {
		uc.compensateStatus(ctx, item, entity.ItemStatusAvailable)
		return nil, err
	}

	return item, nil
}

// RelistItem puts a delisted item back on the market. Seller only. Listing
// fields are not re-validated on relist.
func (uc *ItemUseCase) RelistItem(ctx context.Context, itemID, requesterID string) (*entity.Item, error) {
	unlock := uc.locks.Lock(itemID)
	defer unlock()

	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, errors.NotFound("Item", err)
	}

	if item.SellerID != requesterID {
		return nil, errors.NotOwner("Only the seller can relist this item")
	}

	if item.Status != entity.ItemStatusUnavailable {
		return nil, errors.NotAvailable("Only delisted items can be relisted", nil)
	}

	item.Status = entity.ItemStatusAvailable
	item.UpdatedAt = time.Now()

	if err := uc.itemRepo.UpdateIfStatus(ctx, item, entity.ItemStatusUnavailable); err != nil {
		return nil, err
	}

	if err := uc.syncUC.OnRelist(ctx, item); err != nil {
		uc.compensateStatus(ctx, item, entity.ItemStatusUnavailable)
		return nil, err
	}

	return item, nil
}

// RepairItemStatus heals drift between status and buyer linkage on a single
// item. Idempotent; never invents a buyer.
func (uc *ItemUseCase) RepairItemStatus(ctx context.Context, itemID string) (*entity.Item, error) {
	unlock := uc.locks.Lock(itemID)
	defer unlock()

	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, errors.NotFound("Item", err)
	}

	if !item.RepairStatus(time.Now()) {
		return item, nil
	}

	if err := uc.itemRepo.Update(ctx, item); err != nil {
		return nil, errors.Internal("Failed to persist item status repair", err)
	}

	return item, nil
}

func (uc *ItemUseCase) compensateStatus(ctx context.Context, item *entity.Item, status string) {
	item.Status = status
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(ctx, item); err != nil {
		logger.Error("Failed to compensate item %s back to %s: %v", item.ID, status, err)
	}
}
