package entity

import (
	"time"
)

type User struct {
	ID       string `json:"id" firestore:"id"`
	Email    string `json:"email" firestore:"email"`
	Username string `json:"username" firestore:"username"`
	Name     string `json:"name" firestore:"name"`
	Phone    string `json:"phone,omitempty" firestore:"phone,omitempty"`
	Bio      string `json:"bio,omitempty" firestore:"bio,omitempty"`
	Pincode  string `json:"pincode,omitempty" firestore:"pincode,omitempty"`
	Role     string `json:"role" firestore:"role"`

	AvatarURL string `json:"avatar_url,omitempty" firestore:"avatarURL,omitempty"`

	// Denormalized item references, kept in sync with the items collection.
	ActiveListings []string `json:"active_listings" firestore:"activeListings"`
	SoldItems      []string `json:"sold_items" firestore:"soldItems"`
	BoughtItems    []string `json:"bought_items" firestore:"boughtItems"`
	Watchlist      []string `json:"watchlist" firestore:"watchlist"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
