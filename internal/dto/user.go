package dto

import (
	"time"

	"github.com/contable-dev/contabilidad_api/internal/core/domain"
)

// RegisterRequest defines the data needed to register a user. The optional
// AuxiliarySystemID (sequence id) binds the user to a tenant; leaving it
// zero creates a global user.
type RegisterRequest struct {
	Name              string `json:"name" binding:"required"`
	Email             string `json:"email" binding:"required,email"`
	Password          string `json:"password" binding:"required,min=8"`
	AuxiliarySystemID int64  `json:"auxiliarySystemID"`
}

// LoginRequest defines the login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleLoginRequest carries a Google-issued ID token for token-based OAuth
// login (the alternative to the redirect flow).
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID            string     `json:"userID"`
	ID                int64      `json:"id"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	AuxiliarySystemID string     `json:"auxiliarySystemID,omitempty"`
	Active            bool       `json:"active"`
	LastAccess        *time.Time `json:"lastAccess,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
}

// AuthResponse carries the signed bearer token plus the authenticated user.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:            u.UserID,
		ID:                u.SequenceID,
		Name:              u.Name,
		Email:             u.Email,
		AuxiliarySystemID: u.AuxiliarySystemID,
		Active:            u.Active,
		LastAccess:        u.LastAccess,
		CreatedAt:         u.CreatedAt,
	}
}
