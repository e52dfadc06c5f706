package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetCharities = "charities retrieved successfully"
	MessageSuccessDonate       = "donation completed successfully"

	MessageFailedGetCharities = "failed to retrieve charities"
	MessageFailedDonate       = "failed to process donation"

	ErrCharityNotFound       = errors.New("charity not found")
	ErrInvalidDonationAmount = errors.New("donation below charity minimum")
)

type (
	Charity struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Target      int    `json:"target"`
		Current     int    `json:"current"`
		MinDonation int    `json:"min_donation"`
		Impact      string `json:"impact"`
		ImageURL    string `json:"image_url,omitempty"`
	}

	DonateRequest struct {
		CharityID string `json:"charity_id" validate:"required,uuid"`
		Amount    int    `json:"amount" validate:"required,min=1"`
	}

	DonateResponse struct {
		CharityName string    `json:"charity_name"`
		Amount      int       `json:"amount"`
		Balance     int       `json:"balance"`
		DonatedAt   time.Time `json:"donated_at"`
	}
)
