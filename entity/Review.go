package entity

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `json:"comment"`
	Image   string `gorm:"type:text" json:"image,omitempty"`

	// snapshot of the author's name at write time
	UserID   uint   `gorm:"index;not null" json:"userId"`
	UserName string `json:"userName"`

	RestaurantID uint       `gorm:"index;not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
}
