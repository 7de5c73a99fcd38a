package response

import (
	"time"
)

type AuthResponse struct {
	AccountID string    `json:"account_id"`
	DisplayID string    `json:"display_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Token     string    `json:"token,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}
