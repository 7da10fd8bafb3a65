package dto

import (
	"time"

	"thrapy-be/internal/entity"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=client therapist admin"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	Id        string          `json:"id"`
	Email     string          `json:"email"`
	FullName  string          `json:"full_name"`
	Role      entity.UserRole `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
}

type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}
