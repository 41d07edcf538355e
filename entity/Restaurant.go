package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Cuisine     string `json:"cuisine"`
	Image       string `json:"image"`

	// location
	Sector string  `json:"sector"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`

	// derived from the current review set, never set by clients
	Rating       float64 `json:"rating"`
	TotalRatings int     `json:"totalRatings"`

	Reviews []Review `json:"-"`
	Likes   []Like   `json:"-"`
}
