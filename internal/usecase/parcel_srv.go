package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jklassic/logistics/internal/data/entity"
	"github.com/jklassic/logistics/internal/data/repository"
	"github.com/jklassic/logistics/internal/dto/request"
	"github.com/jklassic/logistics/internal/dto/response"
	"github.com/jklassic/logistics/pkg/mailer"
	"github.com/jklassic/logistics/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ParcelService interface {
	Create(ctx context.Context, req *request.CreateParcelRequest, image []byte, contentType string) (*response.ParcelResponse, error)
	Update(ctx context.Context, id string, req *request.UpdateParcelRequest) (*response.ParcelResponse, error)
	Search(ctx context.Context, query string) ([]response.ParcelResponse, error)
	GetByID(ctx context.Context, id string) (*response.ParcelResponse, error)
	GetImage(ctx context.Context, id string) ([]byte, string, error)
	Delete(ctx context.Context, id string) error
}

type parcelService struct {
	repo   *repository.Repository
	mail   mailer.Mailer
	config *utils.Config
	log    *zap.Logger
}

func NewParcelService(
	repo *repository.Repository,
	mail mailer.Mailer,
	config *utils.Config,
	log *zap.Logger,
) ParcelService {
	return &parcelService{
		repo:   repo,
		mail:   mail,
		config: config,
		log:    log,
	}
}

// Create registers a parcel, derives its tracking number from the new id and
// dispatches the parcel-sent notification. Notification failure never fails
// the request; persistence failure does.
func (s *parcelService) Create(ctx context.Context, req *request.CreateParcelRequest, image []byte, contentType string) (*response.ParcelResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create parcel validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Build entity; tracking number comes from the first 6 chars of the id
	// and is never written again after this point
	now := time.Now()
	id := uuid.New()

	parcel := &entity.Parcel{
		Base: entity.Base{
			ID:        id,
			CreatedAt: now,
			UpdatedAt: now,
		},
		TrackingNumber: utils.TrackingNumber(id),
		Sender:         req.Sender,
		SenderEmail:    req.SenderEmail,
		RecipientEmail: req.RecipientEmail,
		Receiver:       req.Receiver,
		Origin:         req.From,
		Destination:    req.To,
		Description:    req.Description,
		StatusLevel:    entity.ParcelStatus(req.StatusLevel),
		Version:        1,
	}

	if len(image) > 0 {
		parcel.Image = image
		parcel.ImageContentType = &contentType
	}

	// 3. Persist
	if err := s.repo.Parcel.Create(ctx, parcel); err != nil {
		s.log.Error("Failed to create parcel", zap.Error(err))
		return nil, fmt.Errorf("failed to register parcel")
	}

	// 4. Notify sender and recipient (async, best-effort)
	go s.notifyParcelSent(parcel)

	s.log.Info("Parcel registered",
		zap.String("parcel_id", parcel.ID.String()),
		zap.String("tracking_number", parcel.TrackingNumber),
		zap.String("status", string(parcel.StatusLevel)))

	resp := response.ParcelToResponse(parcel)
	return &resp, nil
}

// Update applies a partial update and dispatches the status-change
// notification only when the status actually changed. Any enumerated status
// may follow any other.
func (s *parcelService) Update(ctx context.Context, id string, req *request.UpdateParcelRequest) (*response.ParcelResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update parcel validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	parcelID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid parcel id")
	}

	// 2. Load existing record
	parcel, err := s.repo.Parcel.FindByID(ctx, parcelID)
	if err != nil {
		s.log.Error("Failed to load parcel for update", zap.Error(err), zap.String("parcel_id", id))
		return nil, fmt.Errorf("failed to load parcel")
	}
	if parcel == nil {
		return nil, fmt.Errorf("parcel not found")
	}

	oldStatus := parcel.StatusLevel

	// 3. Apply partial update
	if req.Sender != nil {
		parcel.Sender = *req.Sender
	}
	if req.SenderEmail != nil {
		parcel.SenderEmail = *req.SenderEmail
	}
	if req.RecipientEmail != nil {
		parcel.RecipientEmail = *req.RecipientEmail
	}
	if req.Receiver != nil {
		parcel.Receiver = *req.Receiver
	}
	if req.From != nil {
		parcel.Origin = *req.From
	}
	if req.To != nil {
		parcel.Destination = *req.To
	}
	if req.Description != nil {
		parcel.Description = *req.Description
	}
	if req.StatusLevel != nil {
		parcel.StatusLevel = entity.ParcelStatus(*req.StatusLevel)
	}
	parcel.UpdatedAt = time.Now()

	// 4. Persist; with ExpectedVersion set a stale write is rejected
	if err := s.repo.Parcel.Update(ctx, parcel, req.ExpectedVersion); err != nil {
		s.log.Error("Failed to update parcel", zap.Error(err), zap.String("parcel_id", id))
		return nil, err
	}
	parcel.Version++

	// 5. Notify only on an actual status change
	if oldStatus != parcel.StatusLevel {
		go s.notifyStatusUpdate(parcel)
	}

	s.log.Info("Parcel updated",
		zap.String("parcel_id", id),
		zap.String("old_status", string(oldStatus)),
		zap.String("new_status", string(parcel.StatusLevel)))

	resp := response.ParcelToResponse(parcel)
	return &resp, nil
}

// Search lists parcels matching the tracking-number query, newest first.
// Empty query returns everything.
func (s *parcelService) Search(ctx context.Context, query string) ([]response.ParcelResponse, error) {
	parcels, err := s.repo.Parcel.Search(ctx, query)
	if err != nil {
		s.log.Error("Failed to search parcels", zap.Error(err), zap.String("query", query))
		return nil, fmt.Errorf("failed to search parcels")
	}

	return response.ParcelsToResponse(parcels), nil
}

func (s *parcelService) GetByID(ctx context.Context, id string) (*response.ParcelResponse, error) {
	parcelID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid parcel id")
	}

	parcel, err := s.repo.Parcel.FindByID(ctx, parcelID)
	if err != nil {
		s.log.Error("Failed to find parcel", zap.Error(err), zap.String("parcel_id", id))
		return nil, fmt.Errorf("failed to find parcel")
	}
	if parcel == nil {
		return nil, fmt.Errorf("parcel not found")
	}

	resp := response.ParcelToResponse(parcel)
	return &resp, nil
}

// GetImage returns the stored image bytes and content type
func (s *parcelService) GetImage(ctx context.Context, id string) ([]byte, string, error) {
	parcelID, err := uuid.Parse(id)
	if err != nil {
		return nil, "", fmt.Errorf("invalid parcel id")
	}

	parcel, err := s.repo.Parcel.FindByID(ctx, parcelID)
	if err != nil {
		s.log.Error("Failed to find parcel image", zap.Error(err), zap.String("parcel_id", id))
		return nil, "", fmt.Errorf("failed to find parcel")
	}
	if parcel == nil || len(parcel.Image) == 0 || parcel.ImageContentType == nil {
		return nil, "", fmt.Errorf("parcel image not found")
	}

	return parcel.Image, *parcel.ImageContentType, nil
}

func (s *parcelService) Delete(ctx context.Context, id string) error {
	parcelID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid parcel id")
	}

	if err := s.repo.Parcel.Delete(ctx, parcelID); err != nil {
		s.log.Warn("Failed to delete parcel", zap.Error(err), zap.String("parcel_id", id))
		return err
	}

	return nil
}

// ==================== HELPER METHODS ====================

func (s *parcelService) notifyParcelSent(parcel *entity.Parcel) {
	link := utils.TrackingLink(s.config.App.BaseURL, parcel.TrackingNumber)
	msg := mailer.ParcelSentMessage(
		parcel.SenderEmail,
		parcel.RecipientEmail,
		parcel.Sender,
		parcel.Receiver,
		parcel.TrackingNumber,
		string(parcel.StatusLevel),
		link,
	)

	if err := s.mail.Send(msg); err != nil {
		s.log.Error("Failed to send parcel-sent notification",
			zap.Error(err),
			zap.String("tracking_number", parcel.TrackingNumber))
	}
}

func (s *parcelService) notifyStatusUpdate(parcel *entity.Parcel) {
	link := utils.TrackingLink(s.config.App.BaseURL, parcel.TrackingNumber)
	msg := mailer.StatusUpdateMessage(
		parcel.SenderEmail,
		parcel.RecipientEmail,
		parcel.Sender,
		parcel.Receiver,
		parcel.TrackingNumber,
		string(parcel.StatusLevel),
		link,
	)

	if err := s.mail.Send(msg); err != nil {
		s.log.Error("Failed to send status-update notification",
			zap.Error(err),
			zap.String("tracking_number", parcel.TrackingNumber))
	}
}
