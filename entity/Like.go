package entity

import (
	"time"
)

// Like is toggled: at most one row per (restaurant, user), enforced by the
// composite unique index. No soft delete — an unlike must free the index
// slot so the next like can insert again.
type Like struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	RestaurantID uint       `gorm:"uniqueIndex:idx_like_restaurant_user;not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
	UserID       uint       `gorm:"uniqueIndex:idx_like_restaurant_user;not null" json:"userId"`
	CreatedAt    time.Time  `json:"createdAt"`
}
