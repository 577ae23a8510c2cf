package usecase

import (
	"context"
	"time"

	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/domain/repository"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/pkg/errors"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/pkg/logger"
)

type WatchlistUseCase struct {
	itemRepo repository.ItemRepository
	userRepo repository.UserRepository
}

func NewWatchlistUseCase(
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
) *WatchlistUseCase {
	return &WatchlistUseCase{
		itemRepo: itemRepo,
		userRepo: userRepo,
	}
}

type WatchlistEntry struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Status   string  `json:"status"`
	Photo    string  `json:"photo,omitempty"`
}

func (uc *WatchlistUseCase) AddToWatchlist(ctx context.Context, userID, itemID string) error {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return errors.NotFound("Item", err)
	}

	if item.SellerID == userID {
		return errors.BadRequest("Cannot add your own item to watchlist", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return errors.NotFound("User", err)
	}

	watchlist, added := addToSet(user.Watchlist, itemID)
	if !added {
		return nil
	}

	user.Watchlist = watchlist
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.UpdateReferenceLists(ctx, user); err != nil {
		return errors.Internal("Failed to update watchlist", err)
	}

	logger.Debug("Added item %s to watchlist of user %s", itemID, userID)
	return nil
}

func (uc *WatchlistUseCase) RemoveFromWatchlist(ctx context.Context, userID, itemID string) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return errors.NotFound("User", err)
	}

	trimmed := removeFromList(user.Watchlist, itemID)
	if len(trimmed) == len(user.Watchlist) {
		return errors.NotFound("Watchlist entry", nil)
	}

	user.Watchlist = trimmed
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.UpdateReferenceLists(ctx, user); err != nil {
		return errors.Internal("Failed to update watchlist", err)
	}
	return nil
}

// GetWatchlist returns the user's watchlist hydrated with item summaries.
// Entries whose item has been deleted are skipped.
func (uc *WatchlistUseCase) GetWatchlist(ctx context.Context, userID string) ([]WatchlistEntry, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	entries := []WatchlistEntry{}
	for _, itemID := range user.Watchlist {
		item, err := uc.itemRepo.GetByID(ctx, itemID)
		if err != nil {
			logger.Warn("Watchlist of user %s references missing item %s", userID, itemID)
			continue
		}
		entry := WatchlistEntry{
			ItemID:   item.ID,
			Name:     item.Name,
			Category: item.Category,
			Price:    item.Price,
			Status:   item.Status,
		}
		if len(item.Photos) > 0 {
			entry.Photo = item.Photos[0]
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
