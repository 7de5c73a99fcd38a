package wire

import (
	"github.com/jklassic/logistics/internal/adaptor"
	"github.com/jklassic/logistics/internal/data/repository"
	"github.com/jklassic/logistics/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/signup", authHandler.RegisterWorker)
	r.Post("/api/admin/register", authHandler.RegisterAdmin)
	r.Post("/api/signin", authHandler.SignIn)
	r.Put("/api/password-reset", authHandler.ResetPassword)

	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.AuthSession(repo.Session, log)).Post("/api/logout", authHandler.SignOut)
}
