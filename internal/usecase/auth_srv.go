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

type AuthService interface {
	RegisterWorker(ctx context.Context, req *request.RegisterWorkerRequest, image []byte, contentType string) (*response.AuthResponse, error)
	RegisterAdmin(ctx context.Context, req *request.RegisterAdminRequest, image []byte, contentType string) (*response.AuthResponse, error)
	SignIn(ctx context.Context, req *request.SignInRequest) (*response.AuthResponse, error)
	SignOut(ctx context.Context, token string) error
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
}

type authService struct {
	repo   *repository.Repository
	mail   mailer.Mailer
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	mail mailer.Mailer,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		mail:   mail,
		config: config,
		log:    log,
	}
}

// RegisterWorker creates a staff account. Workers start unapproved and cannot
// sign in until an admin approves them.
func (s *authService) RegisterWorker(ctx context.Context, req *request.RegisterWorkerRequest, image []byte, contentType string) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Worker register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Reject duplicate email
	existing, err := s.repo.Worker.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check worker email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existing != nil {
		return nil, fmt.Errorf("worker already exists")
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	// 4. Create worker entity
	now := time.Now()
	id := uuid.New()

	worker := &entity.Worker{
		Base: entity.Base{
			ID:        id,
			CreatedAt: now,
			UpdatedAt: now,
		},
		WorkerID:     utils.WorkerDisplayID(id),
		FirstName:    req.FirstName,
		SecondName:   req.SecondName,
		Email:        req.Email,
		PhoneNo:      req.PhoneNo,
		Branch:       req.Branch,
		PasswordHash: hashedPassword,
		Role:         entity.RoleStaff,
		Approved:     false,
	}

	if len(image) > 0 {
		worker.Image = image
		worker.ImageContentType = &contentType
	}

	// 5. Save worker
	if err := s.repo.Worker.Create(ctx, worker); err != nil {
		s.log.Error("Failed to create worker", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create account")
	}

	// 6. Send welcome mail (async)
	go s.sendWelcome(mailer.WelcomeWorkerMessage(worker.Email))

	s.log.Info("Worker registered",
		zap.String("worker_id", worker.WorkerID),
		zap.String("email", worker.Email))

	return &response.AuthResponse{
		AccountID: worker.ID.String(),
		DisplayID: worker.WorkerID,
		Email:     worker.Email,
		Role:      entity.SessionRoleWorker,
	}, nil
}

// RegisterAdmin creates a management account, approved by default
func (s *authService) RegisterAdmin(ctx context.Context, req *request.RegisterAdminRequest, image []byte, contentType string) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Admin register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Reject duplicate email
	existing, err := s.repo.Admin.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check admin email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existing != nil {
		return nil, fmt.Errorf("admin already exists")
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	// 4. Create admin entity
	now := time.Now()
	id := uuid.New()

	admin := &entity.Admin{
		Base: entity.Base{
			ID:        id,
			CreatedAt: now,
			UpdatedAt: now,
		},
		AdminID:      utils.AdminDisplayID(id),
		FirstName:    req.FirstName,
		SecondName:   req.SecondName,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleAdmin,
		Approved:     true,
	}

	if len(image) > 0 {
		admin.Image = image
		admin.ImageContentType = &contentType
	}

	// 5. Save admin
	if err := s.repo.Admin.Create(ctx, admin); err != nil {
		s.log.Error("Failed to create admin", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create account")
	}

	// 6. Send welcome mail (async)
	go s.sendWelcome(mailer.WelcomeAdminMessage(admin.Email))

	s.log.Info("Admin registered",
		zap.String("admin_id", admin.AdminID),
		zap.String("email", admin.Email))

	return &response.AuthResponse{
		AccountID: admin.ID.String(),
		DisplayID: admin.AdminID,
		Email:     admin.Email,
		Role:      entity.SessionRoleAdmin,
	}, nil
}

// SignIn checks the worker store first, then the admin store. Unapproved
// workers are rejected before the password comparison; bad credentials get
// the same generic message either way.
func (s *authService) SignIn(ctx context.Context, req *request.SignInRequest) (*response.AuthResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Sign-in validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Worker store first
	worker, err := s.repo.Worker.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find worker", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to find account")
	}

	if worker != nil {
		if !worker.Approved {
			s.log.Warn("Unapproved worker tried to sign in", zap.String("worker_id", worker.WorkerID))
			return nil, fmt.Errorf("account not approved")
		}

		if !utils.CheckPasswordHash(req.Password, worker.PasswordHash) {
			s.log.Warn("Invalid worker password", zap.String("worker_id", worker.WorkerID))
			return nil, fmt.Errorf("email or password incorrect")
		}

		session, err := s.createSession(ctx, worker.ID, entity.SessionRoleWorker, worker.Email)
		if err != nil {
			s.log.Error("Failed to create session", zap.Error(err), zap.String("worker_id", worker.WorkerID))
			return nil, fmt.Errorf("failed to create session")
		}

		s.log.Info("Worker signed in", zap.String("worker_id", worker.WorkerID))

		return &response.AuthResponse{
			AccountID: worker.ID.String(),
			DisplayID: worker.WorkerID,
			Email:     worker.Email,
			Role:      entity.SessionRoleWorker,
			Token:     session.Token.String(),
			ExpiresAt: session.ExpiresAt,
		}, nil
	}

	// 3. Then the admin store
	admin, err := s.repo.Admin.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find admin", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to find account")
	}
	if admin == nil {
		s.log.Warn("Sign-in for unknown email", zap.String("email", req.Email))
		return nil, fmt.Errorf("email or password incorrect")
	}

	if !utils.CheckPasswordHash(req.Password, admin.PasswordHash) {
		s.log.Warn("Invalid admin password", zap.String("admin_id", admin.AdminID))
		return nil, fmt.Errorf("email or password incorrect")
	}

	session, err := s.createSession(ctx, admin.ID, entity.SessionRoleAdmin, admin.Email)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("admin_id", admin.AdminID))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("Admin signed in", zap.String("admin_id", admin.AdminID))

	return &response.AuthResponse{
		AccountID: admin.ID.String(),
		DisplayID: admin.AdminID,
		Email:     admin.Email,
		Role:      entity.SessionRoleAdmin,
		Token:     session.Token.String(),
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (s *authService) SignOut(ctx context.Context, token string) error {
	// 1. Parse token
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		s.log.Warn("Invalid session token format", zap.Error(err))
		return fmt.Errorf("invalid token format")
	}

	// 2. Revoke session
	if err := s.repo.Session.Revoke(ctx, tokenUUID.String()); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("failed to sign out")
	}

	s.log.Info("Session revoked")
	return nil
}

// ResetPassword updates a worker's password by email. The worker must exist.
func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Reset password validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Worker must exist
	worker, err := s.repo.Worker.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find worker for reset", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("failed to find account")
	}
	if worker == nil {
		return fmt.Errorf("worker not found")
	}

	// 3. Hash and update
	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("failed to process password")
	}

	if err := s.repo.Worker.UpdatePassword(ctx, req.Email, hashedPassword); err != nil {
		s.log.Error("Failed to update password", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("failed to update password")
	}

	s.log.Info("Worker password updated", zap.String("worker_id", worker.WorkerID))
	return nil
}

// ==================== HELPER METHODS ====================

func (s *authService) createSession(ctx context.Context, accountID uuid.UUID, role, email string) (*entity.Session, error) {
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		AccountID: accountID,
		Role:      role,
		Email:     email,
		Token:     uuid.New(),
		ExpiresAt: time.Now().Add(time.Duration(s.config.Session.ExpiryHours) * time.Hour),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *authService) sendWelcome(msg *mailer.Message) {
	if err := s.mail.Send(msg); err != nil {
		s.log.Error("Failed to send welcome mail",
			zap.Error(err),
			zap.Strings("to", msg.To))
	}
}
