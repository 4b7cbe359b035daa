package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email,max=120"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"     validate:"required,max=100"`
	Role     string `json:"role"     validate:"required,max=50"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=1,max=100"`
	Email    *string `json:"email"    validate:"omitempty,email,max=120"`
	Role     *string `json:"role"     validate:"omitempty,max=50"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}
