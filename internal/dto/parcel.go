package dto

import (
	"errors"
	"time"
)

type BookParcelRequestDTO struct {
	Title            string  `json:"title" example:"Documents"`
	ParcelType       string  `json:"parcelType" example:"document"`
	SenderName       string  `json:"senderName" example:"Rahim Uddin"`
	SenderDistrict   string  `json:"senderDistrict" example:"Dhaka"`
	ReceiverName     string  `json:"receiverName" example:"Karim Mia"`
	ReceiverDistrict string  `json:"receiverDistrict" example:"Chattogram"`
	ReceiverAddress  string  `json:"receiverAddress" example:"12 Agrabad C/A"`
	Weight           float64 `json:"weight" example:"1.5"`
	TotalCharge      float64 `json:"totalCharge" example:"1000"`
}

func (d *BookParcelRequestDTO) Validate() error {
	if d.SenderDistrict == "" || d.ReceiverDistrict == "" {
		return errors.New("sender and receiver districts are required")
	}
	if d.TotalCharge <= 0 {
		return errors.New("total charge must be a positive number")
	}
	if d.Weight < 0 {
		return errors.New("weight cannot be negative")
	}
	return nil
}

type ParcelResponseDTO struct {
	ID               int        `json:"id"`
	UserEmail        string     `json:"userEmail"`
	TracingID        string     `json:"tracingId"`
	Title            string     `json:"title"`
	ParcelType       string     `json:"parcelType"`
	SenderName       string     `json:"senderName"`
	SenderDistrict   string     `json:"senderDistrict"`
	ReceiverName     string     `json:"receiverName"`
	ReceiverDistrict string     `json:"receiverDistrict"`
	ReceiverAddress  string     `json:"receiverAddress"`
	Weight           float64    `json:"weight"`
	TotalCharge      float64    `json:"totalCharge"`
	Status           string     `json:"status"`
	RiderEmail       string     `json:"riderEmail,omitempty"`
	RiderName        string     `json:"riderName,omitempty"`
	DeliveryETA      string     `json:"deliveryEta,omitempty"`
	RiderCommission  float64    `json:"riderCommission,omitempty"`
	AdminCommission  float64    `json:"adminCommission,omitempty"`
	DeliveredDate    *time.Time `json:"deliveredDate,omitempty"`
	IsCashedOut      bool       `json:"isCashedOut"`
	CreatedAt        time.Time  `json:"createdAt"`
}

type ParcelsPageResponseDTO struct {
	Items []ParcelResponseDTO `json:"items"`
	Total int                 `json:"total"`
}

type AssignRiderRequestDTO struct {
	RiderEmail string `json:"riderEmail" example:"rider@dakbox.app"`
	RiderName  string `json:"riderName" example:"Jashim Sheikh"`
	ETA        string `json:"eta" example:"2 days"`
}

func (d *AssignRiderRequestDTO) Validate() error {
	if d.RiderEmail == "" {
		return errors.New("rider email is required")
	}
	return nil
}

type UpdateStatusRequestDTO struct {
	Status  string `json:"status" example:"delivered"`
	Message string `json:"message,omitempty" example:"Handed over to receiver"`
}

func (d *UpdateStatusRequestDTO) Validate() error {
	if d.Status == "" {
		return errors.New("status is required")
	}
	return nil
}

type TrackingEventResponseDTO struct {
	TracingID string    `json:"tracingId"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Time      time.Time `json:"time"`
}

// TrackParcelResponseDTO is the public tracking summary. It deliberately
// hides the owner's email and commission figures.
type TrackParcelResponseDTO struct {
	TracingID        string     `json:"tracingId"`
	Status           string     `json:"status"`
	SenderDistrict   string     `json:"senderDistrict"`
	ReceiverDistrict string     `json:"receiverDistrict"`
	RiderName        string     `json:"riderName,omitempty"`
	DeliveryETA      string     `json:"deliveryEta,omitempty"`
	DeliveredDate    *time.Time `json:"deliveredDate,omitempty"`
}
