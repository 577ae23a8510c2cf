package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/domain/entity"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/domain/repository"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/pkg/errors"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/pkg/logger"
)

// SyncUseCase keeps the denormalized per-user reference lists (activeListings,
// soldItems, boughtItems, watchlist) consistent with the authoritative items.
type SyncUseCase struct {
	itemRepo repository.ItemRepository
	userRepo repository.UserRepository
}

func NewSyncUseCase(
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
) *SyncUseCase {
	return &SyncUseCase{
		itemRepo: itemRepo,
		userRepo: userRepo,
	}
}

// OnCreate records a freshly listed item on the seller's activeListings.
func (uc *SyncUseCase) OnCreate(ctx context.Context, item *entity.Item) error {
	seller, err := uc.userRepo.GetByID(ctx, item.SellerID)
	if err != nil {
		return errors.SyncFailure("Failed to load seller for listing sync", err)
	}

	listings, added := addToSet(seller.ActiveListings, item.ID)
	if !added {
		return nil
	}

	seller.ActiveListings = listings
	if err := uc.userRepo.UpdateReferenceLists(ctx, seller); err != nil {
		return errors.SyncFailure("Failed to record listing on seller", err)
	}
	return nil
}

// OnPurchase moves the item onto the seller's soldItems and the buyer's
// boughtItems, and purges it from the buyer's watchlist. The seller is
// updated first: if the buyer update then fails, the seller side is reverted
// best-effort and a SYNC_FAILURE is returned so the caller can compensate
// the item mutation.
func (uc *SyncUseCase) OnPurchase(ctx context.Context, item *entity.Item, buyer *entity.User) error {
	seller, err := uc.userRepo.GetByID(ctx, item.SellerID)
	if err != nil {
		return errors.SyncFailure("Failed to load seller for purchase sync", err)
	}

	originalActive := seller.ActiveListings
	originalSold := seller.SoldItems

	seller.ActiveListings = removeFromList(seller.ActiveListings, item.ID)
	seller.SoldItems, _ = addToSet(seller.SoldItems, item.ID)

	if err := uc.userRepo.UpdateReferenceLists(ctx, seller); err != nil {
		return errors.SyncFailure("Failed to update seller references", err)
	}

	buyer.BoughtItems, _ = addToSet(buyer.BoughtItems, item.ID)
	buyer.Watchlist = removeFromList(buyer.Watchlist, item.ID)

	if err := uc.userRepo.UpdateReferenceLists(ctx, buyer); err != nil {
		seller.ActiveListings = originalActive
		seller.SoldItems = originalSold
		if revertErr := uc.userRepo.UpdateReferenceLists(ctx, seller); revertErr != nil {
			logger.LogReconcileError(seller.ID, "revert-seller-references", revertErr)
		}
		return errors.SyncFailure("Failed to update buyer references", err)
	}

	return nil
}

// OnDelist removes the item from the owner's activeListings. No other list
// is touched.
func (uc *SyncUseCase) OnDelist(ctx context.Context, item *entity.Item) error {
	seller, err := uc.userRepo.GetByID(ctx, item.SellerID)
	if err != nil {
		return errors.SyncFailure("Failed to load seller for delist sync", err)
	}

	seller.ActiveListings = removeFromList(seller.ActiveListings, item.ID)
	if err := uc.userRepo.UpdateReferenceLists(ctx, seller); err != nil {
		return errors.SyncFailure("Failed to update seller references", err)
	}
	return nil
}

// OnRelist restores the item to the owner's activeListings.
func (uc *SyncUseCase) OnRelist(ctx context.Context, item *entity.Item) error {
	seller, err := uc.userRepo.GetByID(ctx, item.SellerID)
	if err != nil {
		return errors.SyncFailure("Failed to load seller for relist sync", err)
	}

	seller.ActiveListings, _ = addToSet(seller.ActiveListings, item.ID)
	if err := uc.userRepo.UpdateReferenceLists(ctx, seller); err != nil {
		return errors.SyncFailure("Failed to update seller references", err)
	}
	return nil
}

type ReconcileUserResult struct {
	ActiveListings []string `json:"activeListings"`
	SoldItems      []string `json:"soldItems"`
	FixedCount     int      `json:"fixedCount"`

	Updated   bool `json:"-"`
	ItemsSeen int  `json:"-"`
}

// ReconcileUser recomputes the user's activeListings and soldItems from the
// items they own, repairing item status drift in the same pass. The stored
// lists are only rewritten when they differ as sets from the recomputed ones.
func (uc *SyncUseCase) ReconcileUser(ctx context.Context, userID string) (*ReconcileUserResult, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	items, err := uc.itemRepo.ListBySellerID(ctx, user.ID, "")
	if err != nil {
		return nil, errors.Internal("Failed to list user items", err)
	}

	result := &ReconcileUserResult{
		ActiveListings: []string{},
		SoldItems:      []string{},
		ItemsSeen:      len(items),
	}

	now := time.Now()
	for _, item := range items {
		if item.RepairStatus(now) {
			if err := uc.itemRepo.Update(ctx, item); err != nil {
				return nil, errors.Internal("Failed to persist item status repair", err)
			}
			result.FixedCount++
		}

		switch item.Status {
		case entity.ItemStatusAvailable:
			result.ActiveListings = append(result.ActiveListings, item.ID)
		case entity.ItemStatusSold:
			result.SoldItems = append(result.SoldItems, item.ID)
		}
	}

	if !sameSet(user.ActiveListings, result.ActiveListings) || !sameSet(user.SoldItems, result.SoldItems) {
		user.ActiveListings = result.ActiveListings
		user.SoldItems = result.SoldItems
		if err := uc.userRepo.UpdateReferenceLists(ctx, user); err != nil {
			return nil, errors.Internal("Failed to persist reconciled references", err)
		}
		result.Updated = true
	}

	return result, nil
}

type ReconcileError struct {
	UserID string `json:"userId,omitempty"`
	ItemID string `json:"itemId,omitempty"`
	Error  string `json:"error"`
}

type ReconcileAllResult struct {
	Users               int              `json:"users"`
	Items               int              `json:"items"`
	FixedItemStatuses   int              `json:"fixedItemStatuses"`
	FixedUserReferences int              `json:"fixedUserReferences"`
	Errors              []ReconcileError `json:"errors"`
}

// ReconcileAll is the operator-triggered drift repair: it reconciles every
// user, then walks every sold item to guarantee the buyer's boughtItems holds
// it. Per-entity failures are collected; the sweep itself never fails.
func (uc *SyncUseCase) ReconcileAll(ctx context.Context) *ReconcileAllResult {
	result := &ReconcileAllResult{Errors: []ReconcileError{}}

	users, err := uc.userRepo.ListAll(ctx)
	if err != nil {
		result.Errors = append(result.Errors, ReconcileError{Error: "failed to list users: " + err.Error()})
		return result
	}

	for _, user := range users {
		result.Users++
		userResult, err := uc.ReconcileUser(ctx, user.ID)
		if err != nil {
			logger.LogReconcileError(user.ID, "reconcile-user", err)
			result.Errors = append(result.Errors, ReconcileError{UserID: user.ID, Error: err.Error()})
			continue
		}
		result.Items += userResult.ItemsSeen
		result.FixedItemStatuses += userResult.FixedCount
		if userResult.Updated {
			result.FixedUserReferences++
		}
	}

	soldItems, err := uc.itemRepo.ListByStatus(ctx, entity.ItemStatusSold)
	if err != nil {
		result.Errors = append(result.Errors, ReconcileError{Error: "failed to list sold items: " + err.Error()})
		return result
	}

	for _, item := range soldItems {
		if item.BuyerID == "" {
			continue
		}

		buyer, err := uc.userRepo.GetByID(ctx, item.BuyerID)
		if err != nil {
			logger.LogReconcileError(item.ID, "load-buyer", err)
			result.Errors = append(result.Errors, ReconcileError{ItemID: item.ID, Error: "buyer lookup failed: " + err.Error()})
			continue
		}

		bought, added := addToSet(buyer.BoughtItems, item.ID)
		if !added {
			continue
		}

		buyer.BoughtItems = bought
		if err := uc.userRepo.UpdateReferenceLists(ctx, buyer); err != nil {
			logger.LogReconcileError(item.ID, "backfill-bought-items", err)
			result.Errors = append(result.Errors, ReconcileError{ItemID: item.ID, Error: "buyer update failed: " + err.Error()})
			continue
		}
		result.FixedUserReferences++
	}

	return result
}

func addToSet(list []string, id string) ([]string, bool) {
	for _, existing := range list {
		if existing == id {
			return list, false
		}
	}
	return append(list, id), true
}

func removeFromList(list []string, id string) []string {
	out := make([]string, 0, len(list))
	for _, existing := range list {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}
