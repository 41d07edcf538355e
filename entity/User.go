package entity

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`

	// onboarding preferences
	FoodTypes []string `gorm:"serializer:json" json:"foodTypes"`
	Location  string   `json:"location"`

	IsProfileComplete bool `gorm:"not null;default:false" json:"isProfileComplete"`

	// password reset state; cleared after a successful reset
	ResetCode        *string    `json:"-"`
	ResetToken       *string    `json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`

	// Relations — preload only when needed
	Reviews []Review `json:"-"`
	Likes   []Like   `json:"-"`
}
