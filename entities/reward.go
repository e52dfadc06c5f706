package entities

import (
	"github.com/google/uuid"
)

type Reward struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `gorm:"uniqueIndex" json:"name"`
	Description string    `json:"description"`
	CoinCost    int       `json:"coin_cost"`
	Icon        string    `json:"icon"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`

	Timestamp
}
