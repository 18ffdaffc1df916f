package dto

import (
	"errors"
	"time"
)

type CreateIntentRequestDTO struct {
	ParcelID int     `json:"parcelId" example:"42"`
	Price    float64 `json:"price" example:"1000"`
}

func (d *CreateIntentRequestDTO) Validate() error {
	if d.ParcelID <= 0 {
		return errors.New("parcel id is required")
	}
	return nil
}

type CreateIntentResponseDTO struct {
	ClientSecret string `json:"clientSecret"`
}

type PaymentSuccessRequestDTO struct {
	TransactionID string `json:"transactionId" example:"pi_3MtwBwLkdIwHu7ix28a3tqPa"`
}

func (d *PaymentSuccessRequestDTO) Validate() error {
	if d.TransactionID == "" {
		return errors.New("transaction id is required")
	}
	return nil
}

type PaymentResponseDTO struct {
	ParcelID      int       `json:"parcelId"`
	TransactionID string    `json:"transactionId"`
	UserEmail     string    `json:"userEmail"`
	Amount        float64   `json:"amount"`
	PaymentDate   time.Time `json:"paymentDate"`
}
