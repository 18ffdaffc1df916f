package dto

import (
	"errors"
	"time"
)

type CashoutRequestDTO struct {
	Amount float64 `json:"amount" example:"500"`
}

func (d *CashoutRequestDTO) Validate() error {
	if d.Amount <= 0 {
		return errors.New("amount must be a positive number")
	}
	return nil
}

type CashoutResponseDTO struct {
	ID           int        `json:"id"`
	RiderEmail   string     `json:"riderEmail"`
	Amount       float64    `json:"amount"`
	Status       string     `json:"status"`
	RequestDate  time.Time  `json:"requestDate"`
	ApprovedDate *time.Time `json:"approvedDate,omitempty"`
}

type CashoutsPageResponseDTO struct {
	Items []CashoutResponseDTO `json:"items"`
	Total int                  `json:"total"`
}

type ApproveCashoutResponseDTO struct {
	Message        string `json:"message"`
	SettledParcels int64  `json:"settledParcels"`
}
