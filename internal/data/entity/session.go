package entity

import (
	"time"

	"github.com/google/uuid"
)

// session principal roles
const (
	SessionRoleWorker = "worker"
	SessionRoleAdmin  = "admin"
)

type Session struct {
	BaseSimple
	AccountID uuid.UUID  `db:"account_id"`
	Role      string     `db:"role"`
	Email     string     `db:"email"`
	Token     uuid.UUID  `db:"token"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}
