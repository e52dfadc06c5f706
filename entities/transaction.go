package entities

import (
	"github.com/google/uuid"
)

const (
	TransactionTypeEarn   = "EARN"
	TransactionTypeRedeem = "REDEEM"
)

type Transaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `gorm:"index" json:"user_id"`
	Type        string    `json:"type"` // EARN, REDEEM
	Description string    `json:"description"`
	Amount      int       `json:"amount"`
	Balance     int       `json:"balance"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
