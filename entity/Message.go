package entity

import (
	"gorm.io/gorm"
)

// Message is append-only: no update or delete path exists.
type Message struct {
	gorm.Model
	Body string `gorm:"type:text;not null" json:"message"`
	Room string `gorm:"index;not null;default:general" json:"room"`

	UserID   uint   `gorm:"index" json:"userId"`
	UserName string `json:"userName"`
}
