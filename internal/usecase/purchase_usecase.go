package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/domain/entity"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/domain/repository"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/pkg/errors"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/pkg/logger"
)

// PurchaseUseCase orchestrates a purchase: precondition checks, the ledger
// mutation and the reference synchronization form one logical unit. If the
// synchronization cannot be applied, the item mutation is compensated.
type PurchaseUseCase struct {
	itemRepo repository.ItemRepository
	userRepo repository.UserRepository
	syncUC   *SyncUseCase
	locks    *ItemLockManager
}

func NewPurchaseUseCase(
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	syncUC *SyncUseCase,
	locks *ItemLockManager,
) *PurchaseUseCase {
	return &PurchaseUseCase{
		itemRepo: itemRepo,
		userRepo: userRepo,
		syncUC:   syncUC,
		locks:    locks,
	}
}

type PartyInfo struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

type PurchaseResult struct {
	Message      string       `json:"message"`
	Item         *entity.Item `json:"item"`
	Seller       PartyInfo    `json:"seller"`
	Buyer        PartyInfo    `json:"buyer"`
	PurchaseDate time.Time    `json:"purchaseDate"`
}

// BuyItem sells the item to the buyer. Validation order: item exists, buyer
// exists, item available, buyer is not the seller. A concurrent second
// attempt on the same item observes the committed sale and fails with
// NOT_AVAILABLE.
func (uc *PurchaseUseCase) BuyItem(ctx context.Context, buyerID, itemID string) (*PurchaseResult, error) {
	unlock := uc.locks.Lock(itemID)
	defer unlock()

	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, errors.NotFound("Item", err)
	}

	buyer, err := uc.userRepo.GetByID(ctx, buyerID)
	if err != nil {
		return nil, errors.NotFound("Buyer", err)
	}

	if item.Status != entity.ItemStatusAvailable {
		return nil, errors.NotAvailable("Item is no longer available", nil)
	}

	if item.SellerID == buyerID {
		return nil, errors.SelfPurchase()
	}

	seller, err := uc.userRepo.GetByID(ctx, item.SellerID)
	if err != nil {
		return nil, errors.NotFound("Seller", err)
	}

	now := time.Now()
	item.Status = entity.ItemStatusSold
	item.BuyerID = buyer.ID
	item.SoldAt = &now
	item.SoldTo = fmt.Sprintf("Sold to %s", buyer.Name)
	item.UpdatedAt = now

	if err := uc.itemRepo.UpdateIfStatus(ctx, item, entity.ItemStatusAvailable); err != nil {
		return nil, err
	}

	if err := uc.syncUC.OnPurchase(ctx, item, buyer); err != nil {
		uc.compensatePurchase(ctx, item)
		return nil, err
	}

	logger.Info("Item %s sold by %s to %s", item.ID, seller.Username, buyer.Username)

	return &PurchaseResult{
		Message:      fmt.Sprintf("%s has been sold to %s", item.Name, buyer.Name),
		Item:         item,
		Seller:       PartyInfo{Name: seller.Name, Username: seller.Username},
		Buyer:        PartyInfo{Name: buyer.Name, Username: buyer.Username},
		PurchaseDate: now,
	}, nil
}

// compensatePurchase reverts the ledger mutation after a failed reference
// sync so callers never observe a sold item with stale reference lists.
func (uc *PurchaseUseCase) compensatePurchase(ctx context.Context, item *entity.Item) {
	item.Status = entity.ItemStatusAvailable
	item.BuyerID = ""
	item.SoldAt = nil
	item.SoldTo = ""
	item.UpdatedAt = time.Now()

	if err := uc.itemRepo.Update(ctx, item); err != nil {
		logger.Error("Failed to compensate item %s after sync failure: %v", item.ID, err)
	}
}
