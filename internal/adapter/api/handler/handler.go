package handler

import (
	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/usecase"
)

var (
	userHandler      *UserHandler
	itemHandler      *ItemHandler
	purchaseHandler  *PurchaseHandler
	watchlistHandler *WatchlistHandler
	deliveryHandler  *DeliveryHandler
	adminHandler     *AdminHandler
)

func Setup(
	userUseCase *usecase.UserUseCase,
	itemUseCase *usecase.ItemUseCase,
	purchaseUseCase *usecase.PurchaseUseCase,
	watchlistUseCase *usecase.WatchlistUseCase,
	deliveryUseCase *usecase.DeliveryUseCase,
	syncUseCase *usecase.SyncUseCase,
) {
	userHandler = NewUserHandler(userUseCase)
	itemHandler = NewItemHandler(itemUseCase)
	purchaseHandler = NewPurchaseHandler(purchaseUseCase)
	watchlistHandler = NewWatchlistHandler(watchlistUseCase)
	deliveryHandler = NewDeliveryHandler(deliveryUseCase)
	adminHandler = NewAdminHandler(syncUseCase, itemUseCase)
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetItemHandler() *ItemHandler {
	return itemHandler
}

func GetPurchaseHandler() *PurchaseHandler {
	return purchaseHandler
}

func GetWatchlistHandler() *WatchlistHandler {
	return watchlistHandler
}

func GetDeliveryHandler() *DeliveryHandler {
	return deliveryHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}
