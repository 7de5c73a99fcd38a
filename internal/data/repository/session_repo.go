package repository

import (
	"context"
	"fmt"

	"github.com/jklassic/logistics/internal/data/entity"
	"github.com/jklassic/logistics/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	FindValidSession(ctx context.Context, token string) (*entity.Session, error)
	Revoke(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type sessionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSessionRepository(db database.PgxIface, log *zap.Logger) SessionRepository {
	return &sessionRepository{
		db:  db,
		log: log,
	}
}

func (sr *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	query := `
		INSERT INTO sessions (id, account_id, role, email, token, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := sr.db.Exec(ctx, query,
		session.ID,
		session.AccountID,
		session.Role,
		session.Email,
		session.Token,
		session.ExpiresAt,
		session.CreatedAt,
	)

	if err != nil {
		sr.log.Error("Failed to create session",
			zap.Error(err),
			zap.String("account_id", session.AccountID.String()),
		)
		return fmt.Errorf("create session for %s: %w", session.AccountID.String(), err)
	}

	return nil
}

// FindValidSession returns the session for token if it is unexpired and unrevoked
func (sr *sessionRepository) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	query := `
		SELECT id, account_id, role, email, token, expires_at, revoked_at, created_at
		FROM sessions
		WHERE token = $1 AND expires_at > NOW() AND revoked_at IS NULL
	`

	var session entity.Session
	err := sr.db.QueryRow(ctx, query, token).Scan(
		&session.ID,
		&session.AccountID,
		&session.Role,
		&session.Email,
		&session.Token,
		&session.ExpiresAt,
		&session.RevokedAt,
		&session.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		sr.log.Error("Failed to find session", zap.Error(err))
		return nil, fmt.Errorf("find session: %w", err)
	}

	return &session, nil
}

func (sr *sessionRepository) Revoke(ctx context.Context, token string) error {
	query := `UPDATE sessions SET revoked_at = NOW() WHERE token = $1 AND revoked_at IS NULL`

	result, err := sr.db.Exec(ctx, query, token)
	if err != nil {
		sr.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("revoke session: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("session not found")
	}

	return nil
}

// DeleteExpired removes sessions past expiry or revoked. Run by the cleanup job.
func (sr *sessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM sessions WHERE expires_at <= NOW() OR revoked_at IS NOT NULL`

	result, err := sr.db.Exec(ctx, query)
	if err != nil {
		sr.log.Error("Failed to delete expired sessions", zap.Error(err))
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}

	return result.RowsAffected(), nil
}
