package entities

import (
	"github.com/google/uuid"
)

type Notification struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID  uuid.UUID `gorm:"index" json:"user_id"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	IsRead  bool      `gorm:"default:false" json:"is_read"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
