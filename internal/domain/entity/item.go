package entity

import (
	"time"
)

const (
	ItemStatusAvailable   = "available"
	ItemStatusPending     = "pending" // reserved, no transition sets it
	ItemStatusSold        = "sold"
	ItemStatusUnavailable = "unavailable"
)

const (
	CategoryDevices           = "Devices"
	CategoryBooks             = "Books"
	CategoryClothing          = "Clothing"
	CategoryArt               = "Art"
	CategorySportsAccessories = "Sports Accessories"
	CategoryStationery        = "Stationery"
	CategoryFurniture         = "Furniture"
	CategoryOther             = "Other"
)

var ItemCategories = []string{
	CategoryDevices,
	CategoryBooks,
	CategoryClothing,
	CategoryArt,
	CategorySportsAccessories,
	CategoryStationery,
	CategoryFurniture,
	CategoryOther,
}

type Item struct {
	ID            string   `json:"id" firestore:"id"`
	Name          string   `json:"name" firestore:"name"`
	Description   string   `json:"description" firestore:"description"`
	Category      string   `json:"category" firestore:"category"`
	Photos        []string `json:"photos" firestore:"photos"`
	Price         float64  `json:"price" firestore:"price"`
	MRP           float64  `json:"mrp" firestore:"mrp"`
	WorkingStatus string   `json:"working_status,omitempty" firestore:"workingStatus,omitempty"`
	Status        string   `json:"status" firestore:"status"`

	SellerID string     `json:"seller_id" firestore:"sellerId"`
	BuyerID  string     `json:"buyer_id,omitempty" firestore:"buyerId,omitempty"`
	SoldAt   *time.Time `json:"sold_at,omitempty" firestore:"soldAt,omitempty"`
	SoldTo   string     `json:"sold_to_message,omitempty" firestore:"soldTo,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// IsSold reports whether the item has completed a sale. An item is sold
// iff a buyer is recorded; status and soldAt must agree with that.
func (i *Item) IsSold() bool {
	return i.BuyerID != ""
}

// RepairStatus heals drift between status and the buyer linkage: an item
// with a buyer must be sold, an item without one must be available. It never
// invents a buyer. Returns true when anything changed.
func (i *Item) RepairStatus(now time.Time) bool {
	if i.BuyerID != "" && i.Status != ItemStatusSold {
		i.Status = ItemStatusSold
		if i.SoldAt == nil {
			soldAt := now
			i.SoldAt = &soldAt
		}
		i.UpdatedAt = now
		return true
	}
	if i.BuyerID == "" && i.Status != ItemStatusAvailable {
		i.Status = ItemStatusAvailable
		i.SoldAt = nil
		i.SoldTo = ""
		i.UpdatedAt = now
		return true
	}
	return false
}

func IsValidCategory(category string) bool {
	for _, c := range ItemCategories {
		if c == category {
			return true
		}
	}
	return false
}

// RequiresWorkingStatus reports whether workingStatus is mandatory for the
// given category.
func RequiresWorkingStatus(category string) bool {
	return category == CategoryDevices || category == CategoryArt || category == CategorySportsAccessories
}
