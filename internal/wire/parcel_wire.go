package wire

import (
	"github.com/jklassic/logistics/internal/adaptor"
	"github.com/jklassic/logistics/internal/data/repository"
	"github.com/jklassic/logistics/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireParcel(
	r chi.Router,
	parcelHandler *adaptor.ParcelHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Tracking, search and detail views are open to customers
	r.Get("/api/parcels", parcelHandler.Search)
	r.Get("/api/parcels/{id}", parcelHandler.GetByID)
	r.Get("/api/parcels/{id}/image", parcelHandler.GetImage)

	// ==================== PROTECTED ROUTES ====================
	// Registration and mutation require a signed-in staff member
	auth := middleware.AuthSession(repo.Session, log)
	r.With(auth).Post("/api/parcels", parcelHandler.Create)
	r.With(auth).Put("/api/parcels/{id}", parcelHandler.Update)
	r.With(auth).Delete("/api/parcels/{id}", parcelHandler.Delete)
}
