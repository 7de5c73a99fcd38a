package wire

import (
	"github.com/jklassic/logistics/internal/adaptor"
	"github.com/jklassic/logistics/internal/data/entity"
	"github.com/jklassic/logistics/internal/data/repository"
	"github.com/jklassic/logistics/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireStaff(
	r chi.Router,
	staffHandler *adaptor.StaffHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Staff profile and image for rendered views
	r.Get("/api/staff/{type}/{id}", staffHandler.GetProfile)
	r.Get("/api/staff/{type}/{id}/image", staffHandler.GetImage)

	// ==================== ADMIN ROUTES ====================
	// Requires a valid session AND the admin role
	auth := middleware.AuthSession(repo.Session, log)
	admin := middleware.RequireRole(entity.SessionRoleAdmin, log)

	r.With(auth, admin).Get("/api/admin/staff", staffHandler.ListStaff)
	r.With(auth, admin).Put("/api/admin/workers/{id}/approve", staffHandler.ApproveWorker)
	r.With(auth, admin).Delete("/api/admin/workers/{id}", staffHandler.DeleteWorker)
}
