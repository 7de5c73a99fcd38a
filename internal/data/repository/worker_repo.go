package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jklassic/logistics/internal/data/entity"
	"github.com/jklassic/logistics/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type WorkerRepository interface {
	Create(ctx context.Context, worker *entity.Worker) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Worker, error)
	FindByEmail(ctx context.Context, email string) (*entity.Worker, error)
	FindAll(ctx context.Context) ([]*entity.Worker, error)
	Approve(ctx context.Context, id uuid.UUID) error
	UpdatePassword(ctx context.Context, email, passwordHash string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type workerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewWorkerRepository(db database.PgxIface, log *zap.Logger) WorkerRepository {
	return &workerRepository{
		db:  db,
		log: log,
	}
}

func (wr *workerRepository) Create(ctx context.Context, worker *entity.Worker) error {
	query := `
		INSERT INTO workers (id, worker_id, first_name, second_name, email, phone_no,
		                     branch, password, role, image, image_content_type,
		                     approved, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := wr.db.Exec(ctx, query,
		worker.ID,
		worker.WorkerID,
		worker.FirstName,
		worker.SecondName,
		worker.Email,
		worker.PhoneNo,
		worker.Branch,
		worker.PasswordHash,
		worker.Role,
		worker.Image,
		worker.ImageContentType,
		worker.Approved,
		worker.CreatedAt,
		worker.UpdatedAt,
	)

	if err != nil {
		wr.log.Error("Failed to create worker",
			zap.Error(err),
			zap.String("email", worker.Email),
		)
		return fmt.Errorf("create worker %s: %w", worker.Email, err)
	}

	return nil
}

func (wr *workerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Worker, error) {
	query := `
		SELECT id, worker_id, first_name, second_name, email, phone_no, branch,
		       password, role, image, image_content_type, approved, created_at, updated_at
		FROM workers
		WHERE id = $1
	`

	var worker entity.Worker
	err := wr.db.QueryRow(ctx, query, id).Scan(
		&worker.ID,
		&worker.WorkerID,
		&worker.FirstName,
		&worker.SecondName,
		&worker.Email,
		&worker.PhoneNo,
		&worker.Branch,
		&worker.PasswordHash,
		&worker.Role,
		&worker.Image,
		&worker.ImageContentType,
		&worker.Approved,
		&worker.CreatedAt,
		&worker.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		wr.log.Error("Failed to find worker by ID",
			zap.Error(err),
			zap.String("worker_id", id.String()),
		)
		return nil, fmt.Errorf("find worker by ID %s: %w", id.String(), err)
	}

	return &worker, nil
}

func (wr *workerRepository) FindByEmail(ctx context.Context, email string) (*entity.Worker, error) {
	query := `
		SELECT id, worker_id, first_name, second_name, email, phone_no, branch,
		       password, role, image, image_content_type, approved, created_at, updated_at
		FROM workers
		WHERE email = $1
	`

	var worker entity.Worker
	err := wr.db.QueryRow(ctx, query, email).Scan(
		&worker.ID,
		&worker.WorkerID,
		&worker.FirstName,
		&worker.SecondName,
		&worker.Email,
		&worker.PhoneNo,
		&worker.Branch,
		&worker.PasswordHash,
		&worker.Role,
		&worker.Image,
		&worker.ImageContentType,
		&worker.Approved,
		&worker.CreatedAt,
		&worker.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		wr.log.Error("Failed to find worker by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find worker by email %s: %w", email, err)
	}

	return &worker, nil
}

// FindAll lists workers newest first, image excluded from the projection
func (wr *workerRepository) FindAll(ctx context.Context) ([]*entity.Worker, error) {
	query := `
		SELECT id, worker_id, first_name, second_name, email, phone_no, branch,
		       password, role, approved, created_at, updated_at
		FROM workers
		ORDER BY created_at DESC
	`

	rows, err := wr.db.Query(ctx, query)
	if err != nil {
		wr.log.Error("Failed to get all workers", zap.Error(err))
		return nil, fmt.Errorf("find all workers: %w", err)
	}
	defer rows.Close()

	var workers []*entity.Worker
	for rows.Next() {
		var worker entity.Worker
		err := rows.Scan(
			&worker.ID,
			&worker.WorkerID,
			&worker.FirstName,
			&worker.SecondName,
			&worker.Email,
			&worker.PhoneNo,
			&worker.Branch,
			&worker.PasswordHash,
			&worker.Role,
			&worker.Approved,
			&worker.CreatedAt,
			&worker.UpdatedAt,
		)
		if err != nil {
			wr.log.Error("Failed to scan worker row", zap.Error(err))
			return nil, fmt.Errorf("scan worker row: %w", err)
		}
		workers = append(workers, &worker)
	}

	if err := rows.Err(); err != nil {
		wr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate worker rows: %w", err)
	}

	return workers, nil
}

// Approve flips the sign-in gate for a worker account
func (wr *workerRepository) Approve(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE workers SET approved = TRUE, updated_at = $2 WHERE id = $1`

	result, err := wr.db.Exec(ctx, query, id, time.Now())
	if err != nil {
		wr.log.Error("Failed to approve worker",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("approve worker %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("worker %s not found", id.String())
	}

	wr.log.Info("Worker approved", zap.String("id", id.String()))
	return nil
}

func (wr *workerRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	query := `UPDATE workers SET password = $2, updated_at = $3 WHERE email = $1`

	result, err := wr.db.Exec(ctx, query, email, passwordHash, time.Now())
	if err != nil {
		wr.log.Error("Failed to update worker password",
			zap.Error(err),
			zap.String("email", email),
		)
		return fmt.Errorf("update worker password %s: %w", email, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("worker %s not found", email)
	}

	return nil
}

func (wr *workerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM workers WHERE id = $1`

	result, err := wr.db.Exec(ctx, query, id)
	if err != nil {
		wr.log.Error("Failed to delete worker",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete worker %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("worker %s not found", id.String())
	}

	wr.log.Info("Worker deleted", zap.String("id", id.String()))
	return nil
}
