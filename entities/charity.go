package entities

import (
	"github.com/google/uuid"
)

type Charity struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `gorm:"uniqueIndex" json:"name"`
	Description string    `json:"description"`
	Target      int       `json:"target"`
	Current     int       `json:"current"`
	MinDonation int       `json:"min_donation"`
	Impact      string    `json:"impact"`
	ImageURL    string    `json:"image_url,omitempty"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`

	Donations []*Donation `gorm:"foreignKey:CharityID"`
	Timestamp
}

type Donation struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"index" json:"user_id"`
	CharityID uuid.UUID `json:"charity_id"`
	Amount    int       `json:"amount"`

	User    *User    `gorm:"foreignKey:UserID"`
	Charity *Charity `gorm:"foreignKey:CharityID"`
	Timestamp
}
