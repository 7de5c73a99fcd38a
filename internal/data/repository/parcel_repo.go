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

type ParcelRepository interface {
	Create(ctx context.Context, parcel *entity.Parcel) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Parcel, error)
	Search(ctx context.Context, query string) ([]*entity.Parcel, error)
	Update(ctx context.Context, parcel *entity.Parcel, expectedVersion *int64) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type parcelRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewParcelRepository(db database.PgxIface, log *zap.Logger) ParcelRepository {
	return &parcelRepository{
		db:  db,
		log: log,
	}
}

// Create inserts a new parcel record
func (pr *parcelRepository) Create(ctx context.Context, parcel *entity.Parcel) error {
	query := `
		INSERT INTO parcels (id, tracking_number, sender, sender_email, recipient_email,
		                     receiver, origin, destination, description, status_level,
		                     image, image_content_type, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := pr.db.Exec(ctx, query,
		parcel.ID,
		parcel.TrackingNumber,
		parcel.Sender,
		parcel.SenderEmail,
		parcel.RecipientEmail,
		parcel.Receiver,
		parcel.Origin,
		parcel.Destination,
		parcel.Description,
		parcel.StatusLevel,
		parcel.Image,
		parcel.ImageContentType,
		parcel.Version,
		parcel.CreatedAt,
		parcel.UpdatedAt,
	)

	if err != nil {
		pr.log.Error("Failed to create parcel",
			zap.Error(err),
			zap.String("tracking_number", parcel.TrackingNumber),
		)
		return fmt.Errorf("create parcel %s: %w", parcel.TrackingNumber, err)
	}

	return nil
}

// FindByID retrieves the full record including the image payload
func (pr *parcelRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Parcel, error) {
	query := `
		SELECT id, tracking_number, sender, sender_email, recipient_email,
		       receiver, origin, destination, description, status_level,
		       image, image_content_type, version, created_at, updated_at
		FROM parcels
		WHERE id = $1
	`

	var parcel entity.Parcel
	err := pr.db.QueryRow(ctx, query, id).Scan(
		&parcel.ID,
		&parcel.TrackingNumber,
		&parcel.Sender,
		&parcel.SenderEmail,
		&parcel.RecipientEmail,
		&parcel.Receiver,
		&parcel.Origin,
		&parcel.Destination,
		&parcel.Description,
		&parcel.StatusLevel,
		&parcel.Image,
		&parcel.ImageContentType,
		&parcel.Version,
		&parcel.CreatedAt,
		&parcel.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to find parcel by ID",
			zap.Error(err),
			zap.String("parcel_id", id.String()),
		)
		return nil, fmt.Errorf("find parcel by ID %s: %w", id.String(), err)
	}

	return &parcel, nil
}

// Search returns parcels whose tracking number contains the query
// case-insensitively, newest first. An empty query returns all parcels.
// The image payload is excluded from the list projection.
func (pr *parcelRepository) Search(ctx context.Context, query string) ([]*entity.Parcel, error) {
	sql := `
		SELECT id, tracking_number, sender, sender_email, recipient_email,
		       receiver, origin, destination, description, status_level,
		       version, created_at, updated_at
		FROM parcels
		WHERE tracking_number ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC
	`

	rows, err := pr.db.Query(ctx, sql, query)
	if err != nil {
		pr.log.Error("Failed to search parcels",
			zap.Error(err),
			zap.String("query", query),
		)
		return nil, fmt.Errorf("search parcels %q: %w", query, err)
	}
	defer rows.Close()

	var parcels []*entity.Parcel
	for rows.Next() {
		var parcel entity.Parcel
		err := rows.Scan(
			&parcel.ID,
			&parcel.TrackingNumber,
			&parcel.Sender,
			&parcel.SenderEmail,
			&parcel.RecipientEmail,
			&parcel.Receiver,
			&parcel.Origin,
			&parcel.Destination,
			&parcel.Description,
			&parcel.StatusLevel,
			&parcel.Version,
			&parcel.CreatedAt,
			&parcel.UpdatedAt,
		)
		if err != nil {
			pr.log.Error("Failed to scan parcel row", zap.Error(err))
			return nil, fmt.Errorf("scan parcel row: %w", err)
		}
		parcels = append(parcels, &parcel)
	}

	if err := rows.Err(); err != nil {
		pr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate parcel rows: %w", err)
	}

	return parcels, nil
}

// Update writes the mutable fields and bumps the version counter.
// Tracking number is immutable and never part of the SET list.
// When expectedVersion is given the update only applies if the stored
// version still matches; a stale version yields a mismatch error.
func (pr *parcelRepository) Update(ctx context.Context, parcel *entity.Parcel, expectedVersion *int64) error {
	query := `
		UPDATE parcels
		SET sender = $2, sender_email = $3, recipient_email = $4, receiver = $5,
		    origin = $6, destination = $7, description = $8, status_level = $9,
		    version = version + 1, updated_at = $10
		WHERE id = $1
	`
	args := []any{
		parcel.ID,
		parcel.Sender,
		parcel.SenderEmail,
		parcel.RecipientEmail,
		parcel.Receiver,
		parcel.Origin,
		parcel.Destination,
		parcel.Description,
		parcel.StatusLevel,
		parcel.UpdatedAt,
	}

	if expectedVersion != nil {
		query += ` AND version = $11`
		args = append(args, *expectedVersion)
	}

	result, err := pr.db.Exec(ctx, query, args...)
	if err != nil {
		pr.log.Error("Failed to update parcel",
			zap.Error(err),
			zap.String("parcel_id", parcel.ID.String()),
		)
		return fmt.Errorf("update parcel %s: %w", parcel.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		if expectedVersion != nil {
			return fmt.Errorf("version mismatch for parcel %s", parcel.ID.String())
		}
		return fmt.Errorf("parcel %s not found", parcel.ID.String())
	}

	return nil
}

func (pr *parcelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM parcels WHERE id = $1`

	result, err := pr.db.Exec(ctx, query, id)
	if err != nil {
		pr.log.Error("Failed to delete parcel",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete parcel %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("parcel %s not found", id.String())
	}

	pr.log.Info("Parcel deleted", zap.String("id", id.String()))
	return nil
}
