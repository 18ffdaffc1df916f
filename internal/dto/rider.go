package dto

import (
	"errors"
	"time"
)

type RiderApplicationRequestDTO struct {
	Email    string `json:"email" example:"rider@dakbox.app"`
	Name     string `json:"name" example:"Jashim Sheikh"`
	District string `json:"district" example:"Dhaka"`
	Phone    string `json:"phone" example:"+8801712345678"`
}

func (d *RiderApplicationRequestDTO) Validate() error {
	if d.Email == "" {
		return errors.New("email is required")
	}
	if d.District == "" {
		return errors.New("district is required")
	}
	return nil
}

type RiderApplicationResponseDTO struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	District  string    `json:"district"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`
	AppliedAt time.Time `json:"appliedAt"`
}

type RiderApplicationsPageResponseDTO struct {
	Items []RiderApplicationResponseDTO `json:"items"`
	Total int                           `json:"total"`
}

type ApproveRiderResponseDTO struct {
	Message     string `json:"message"`
	AppModified int64  `json:"appModified"`
}

type ToggleRiderStatusResponseDTO struct {
	Message   string `json:"message"`
	NewStatus string `json:"newStatus"`
}
