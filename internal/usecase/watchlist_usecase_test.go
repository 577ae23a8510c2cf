package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/domain/entity"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/pkg/errors"
)

func TestWatchlist(t *testing.T) {
	stack := newTestStack(nil)
	watchUC := NewWatchlistUseCase(stack.itemRepo, stack.userRepo)
	ctx := context.Background()

	seller := seedUser(t, stack.userRepo, "seller-1", "asha")
	watcher := seedUser(t, stack.userRepo, "watcher-1", "vikram")
	item := seedItem(t, stack.itemRepo, "item-1", seller.ID, entity.ItemStatusAvailable)

	t.Run("own item rejected", func(t *testing.T) {
		err := watchUC.AddToWatchlist(ctx, seller.ID, item.ID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, "BAD_REQUEST"))
	})

	t.Run("add is duplicate-safe", func(t *testing.T) {
		require.NoError(t, watchUC.AddToWatchlist(ctx, watcher.ID, item.ID))
		require.NoError(t, watchUC.AddToWatchlist(ctx, watcher.ID, item.ID))

		stored := mustGetUser(t, stack.userRepo, watcher.ID)
		assert.Equal(t, []string{item.ID}, stored.Watchlist)
	})

	t.Run("list hydrates items and skips deleted ones", func(t *testing.T) {
		ghost := seedItem(t, stack.itemRepo, "item-ghost", seller.ID, entity.ItemStatusAvailable)
		require.NoError(t, watchUC.AddToWatchlist(ctx, watcher.ID, ghost.ID))
		require.NoError(t, stack.itemRepo.Delete(ctx, ghost.ID))

		entries, err := watchUC.GetWatchlist(ctx, watcher.ID)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, item.ID, entries[0].ItemID)
		assert.Equal(t, item.Name, entries[0].Name)
		assert.Equal(t, item.Photos[0], entries[0].Photo)
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, watchUC.RemoveFromWatchlist(ctx, watcher.ID, item.ID))

		err := watchUC.RemoveFromWatchlist(ctx, watcher.ID, item.ID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, "NOT_FOUND"))
	})
}
