package dto

import "github.com/google/uuid"

// ===================== Request DTOs =====================

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Timezone int    `json:"timezone"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ===================== Response DTOs =====================

type RegisterResponse struct {
	UserID uuid.UUID `json:"user_id"`
}

type LoginResponse struct {
	Token    string    `json:"token"`
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Timezone int       `json:"timezone"`
}

type UserSearchResult struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
}

type UsersLikeResponse struct {
	UsersLike []UserSearchResult `json:"users_like"`
}
