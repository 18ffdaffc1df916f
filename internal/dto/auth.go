package dto

import (
	"errors"
	"time"
)

type TokenRequestDTO struct {
	Email string `json:"email" example:"user@dakbox.app"`
}

func (d *TokenRequestDTO) Validate() error {
	if d.Email == "" {
		return errors.New("email is required")
	}
	return nil
}

type TokenResponseDTO struct {
	Token string `json:"token"`
}

type RegisterUserRequestDTO struct {
	Email string `json:"email" example:"user@dakbox.app"`
	Name  string `json:"name" example:"Rahim Uddin"`
}

func (d *RegisterUserRequestDTO) Validate() error {
	if d.Email == "" {
		return errors.New("email is required")
	}
	return nil
}

type RegisterUserResponseDTO struct {
	Message  string `json:"message"`
	Inserted bool   `json:"inserted"`
}

type UserRoleResponseDTO struct {
	Role string `json:"role" example:"rider"`
}

type UserResponseDTO struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type UsersPageResponseDTO struct {
	Items []UserResponseDTO `json:"items"`
	Total int               `json:"total"`
}
