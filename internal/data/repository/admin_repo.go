package repository

import (
	"context"
	"fmt"

	"github.com/jklassic/logistics/internal/data/entity"
	"github.com/jklassic/logistics/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error)
	FindByEmail(ctx context.Context, email string) (*entity.Admin, error)
	FindAll(ctx context.Context) ([]*entity.Admin, error)
}

type adminRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAdminRepository(db database.PgxIface, log *zap.Logger) AdminRepository {
	return &adminRepository{
		db:  db,
		log: log,
	}
}

func (ar *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	query := `
		INSERT INTO admins (id, admin_id, first_name, second_name, email, password,
		                    role, image, image_content_type, approved, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := ar.db.Exec(ctx, query,
		admin.ID,
		admin.AdminID,
		admin.FirstName,
		admin.SecondName,
		admin.Email,
		admin.PasswordHash,
		admin.Role,
		admin.Image,
		admin.ImageContentType,
		admin.Approved,
		admin.CreatedAt,
		admin.UpdatedAt,
	)

	if err != nil {
		ar.log.Error("Failed to create admin",
			zap.Error(err),
			zap.String("email", admin.Email),
		)
		return fmt.Errorf("create admin %s: %w", admin.Email, err)
	}

	return nil
}

func (ar *adminRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	query := `
		SELECT id, admin_id, first_name, second_name, email, password, role,
		       image, image_content_type, approved, created_at, updated_at
		FROM admins
		WHERE id = $1
	`

	var admin entity.Admin
	err := ar.db.QueryRow(ctx, query, id).Scan(
		&admin.ID,
		&admin.AdminID,
		&admin.FirstName,
		&admin.SecondName,
		&admin.Email,
		&admin.PasswordHash,
		&admin.Role,
		&admin.Image,
		&admin.ImageContentType,
		&admin.Approved,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ar.log.Error("Failed to find admin by ID",
			zap.Error(err),
			zap.String("admin_id", id.String()),
		)
		return nil, fmt.Errorf("find admin by ID %s: %w", id.String(), err)
	}

	return &admin, nil
}

func (ar *adminRepository) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	query := `
		SELECT id, admin_id, first_name, second_name, email, password, role,
		       image, image_content_type, approved, created_at, updated_at
		FROM admins
		WHERE email = $1
	`

	var admin entity.Admin
	err := ar.db.QueryRow(ctx, query, email).Scan(
		&admin.ID,
		&admin.AdminID,
		&admin.FirstName,
		&admin.SecondName,
		&admin.Email,
		&admin.PasswordHash,
		&admin.Role,
		&admin.Image,
		&admin.ImageContentType,
		&admin.Approved,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ar.log.Error("Failed to find admin by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find admin by email %s: %w", email, err)
	}

	return &admin, nil
}

// FindAll lists admins newest first, image excluded from the projection
func (ar *adminRepository) FindAll(ctx context.Context) ([]*entity.Admin, error) {
	query := `
		SELECT id, admin_id, first_name, second_name, email, password, role,
		       approved, created_at, updated_at
		FROM admins
		ORDER BY created_at DESC
	`

	rows, err := ar.db.Query(ctx, query)
	if err != nil {
		ar.log.Error("Failed to get all admins", zap.Error(err))
		return nil, fmt.Errorf("find all admins: %w", err)
	}
	defer rows.Close()

	var admins []*entity.Admin
	for rows.Next() {
		var admin entity.Admin
		err := rows.Scan(
			&admin.ID,
			&admin.AdminID,
			&admin.FirstName,
			&admin.SecondName,
			&admin.Email,
			&admin.PasswordHash,
			&admin.Role,
			&admin.Approved,
			&admin.CreatedAt,
			&admin.UpdatedAt,
		)
		if err != nil {
			ar.log.Error("Failed to scan admin row", zap.Error(err))
			return nil, fmt.Errorf("scan admin row: %w", err)
		}
		admins = append(admins, &admin)
	}

	if err := rows.Err(); err != nil {
		ar.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate admin rows: %w", err)
	}

	return admins, nil
}
