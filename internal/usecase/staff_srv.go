package usecase

import (
	"context"
	"fmt"

	"github.com/jklassic/logistics/internal/data/entity"
	"github.com/jklassic/logistics/internal/data/repository"
	"github.com/jklassic/logistics/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type StaffService interface {
	ListStaff(ctx context.Context) (*response.StaffListResponse, error)
	GetProfile(ctx context.Context, staffType, id string) (*response.StaffResponse, error)
	GetImage(ctx context.Context, staffType, id string) ([]byte, string, error)
	ApproveWorker(ctx context.Context, id string) error
	DeleteWorker(ctx context.Context, id string) error
}

type staffService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewStaffService(repo *repository.Repository, log *zap.Logger) StaffService {
	return &staffService{
		repo: repo,
		log:  log,
	}
}

// ListStaff returns workers and admins, newest first
func (s *staffService) ListStaff(ctx context.Context) (*response.StaffListResponse, error) {
	workers, err := s.repo.Worker.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list workers", zap.Error(err))
		return nil, fmt.Errorf("failed to list staff")
	}

	admins, err := s.repo.Admin.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list admins", zap.Error(err))
		return nil, fmt.Errorf("failed to list staff")
	}

	result := &response.StaffListResponse{
		Workers: make([]response.StaffResponse, 0, len(workers)),
		Admins:  make([]response.StaffResponse, 0, len(admins)),
	}
	for _, worker := range workers {
		result.Workers = append(result.Workers, response.WorkerToResponse(worker))
	}
	for _, admin := range admins {
		result.Admins = append(result.Admins, response.AdminToResponse(admin))
	}

	return result, nil
}

func (s *staffService) GetProfile(ctx context.Context, staffType, id string) (*response.StaffResponse, error) {
	staffID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid staff id")
	}

	switch staffType {
	case entity.SessionRoleWorker:
		worker, err := s.repo.Worker.FindByID(ctx, staffID)
		if err != nil {
			s.log.Error("Failed to find worker profile", zap.Error(err), zap.String("id", id))
			return nil, fmt.Errorf("failed to find staff")
		}
		if worker == nil {
			return nil, fmt.Errorf("staff not found")
		}
		resp := response.WorkerToResponse(worker)
		return &resp, nil

	case entity.SessionRoleAdmin:
		admin, err := s.repo.Admin.FindByID(ctx, staffID)
		if err != nil {
			s.log.Error("Failed to find admin profile", zap.Error(err), zap.String("id", id))
			return nil, fmt.Errorf("failed to find staff")
		}
		if admin == nil {
			return nil, fmt.Errorf("staff not found")
		}
		resp := response.AdminToResponse(admin)
		return &resp, nil

	default:
		return nil, fmt.Errorf("invalid staff type")
	}
}

// GetImage streams the stored profile image bytes with their content type
func (s *staffService) GetImage(ctx context.Context, staffType, id string) ([]byte, string, error) {
	staffID, err := uuid.Parse(id)
	if err != nil {
		return nil, "", fmt.Errorf("invalid staff id")
	}

	var image []byte
	var contentType *string

	switch staffType {
	case entity.SessionRoleWorker:
		worker, err := s.repo.Worker.FindByID(ctx, staffID)
		if err != nil {
			s.log.Error("Failed to find worker image", zap.Error(err), zap.String("id", id))
			return nil, "", fmt.Errorf("failed to find staff")
		}
		if worker != nil {
			image = worker.Image
			contentType = worker.ImageContentType
		}

	case entity.SessionRoleAdmin:
		admin, err := s.repo.Admin.FindByID(ctx, staffID)
		if err != nil {
			s.log.Error("Failed to find admin image", zap.Error(err), zap.String("id", id))
			return nil, "", fmt.Errorf("failed to find staff")
		}
		if admin != nil {
			image = admin.Image
			contentType = admin.ImageContentType
		}

	default:
		return nil, "", fmt.Errorf("invalid staff type")
	}

	if len(image) == 0 || contentType == nil {
		return nil, "", fmt.Errorf("staff image not found")
	}

	return image, *contentType, nil
}

// ApproveWorker flips the approved gate, enabling sign-in
func (s *staffService) ApproveWorker(ctx context.Context, id string) error {
	workerID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid staff id")
	}

	if err := s.repo.Worker.Approve(ctx, workerID); err != nil {
		s.log.Warn("Failed to approve worker", zap.Error(err), zap.String("id", id))
		return err
	}

	s.log.Info("Worker approved", zap.String("id", id))
	return nil
}

func (s *staffService) DeleteWorker(ctx context.Context, id string) error {
	workerID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid staff id")
	}

	if err := s.repo.Worker.Delete(ctx, workerID); err != nil {
		s.log.Warn("Failed to delete worker", zap.Error(err), zap.String("id", id))
		return err
	}

	return nil
}
