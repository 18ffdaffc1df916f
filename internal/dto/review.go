package dto

import (
	"errors"
	"time"
)

type ReviewRequestDTO struct {
	RiderEmail string `json:"riderEmail" example:"rider@dakbox.app"`
	Rating     int    `json:"rating" example:"5"`
	Comment    string `json:"comment,omitempty" example:"Fast and careful"`
}

func (d *ReviewRequestDTO) Validate() error {
	if d.RiderEmail == "" {
		return errors.New("rider email is required")
	}
	return nil
}

type ReviewResponseDTO struct {
	ID         int       `json:"id"`
	RiderEmail string    `json:"riderEmail"`
	UserEmail  string    `json:"userEmail"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	ReviewDate time.Time `json:"reviewDate"`
}
