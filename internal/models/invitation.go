package models

import "time"

// Invitation представляет приглашение пользователя
type Invitation struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Role      string    `json:"role" db:"role"`
	Token     string    `json:"token" db:"token"`
	IsUsed    bool      `json:"isUsed" db:"is_used"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`
}

// CreateInvitationRequest представляет запрос на создание приглашения
type CreateInvitationRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,oneof=admin operator"`
}
