package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `json:"name"`
	Email       string    `gorm:"uniqueIndex" json:"email"`
	Password    string    `json:"-"`
	CoinBalance int       `json:"coin_balance"`
	AvatarURL   string    `json:"avatar_url,omitempty"`

	// Client preference flags, rehydrated by the front ends on login
	DarkTheme            bool `gorm:"default:false" json:"dark_theme"`
	NotificationsEnabled bool `gorm:"default:true" json:"notifications_enabled"`
	LocationSharing      bool `gorm:"default:true" json:"location_sharing"`

	Transactions []*Transaction `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Timestamp
}
