package adaptor

import (
	"net/http"

	"github.com/jklassic/logistics/internal/usecase"
	"github.com/jklassic/logistics/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type StaffHandler struct {
	service usecase.StaffService
	log     *zap.Logger
}

func NewStaffHandler(service usecase.StaffService, log *zap.Logger) *StaffHandler {
	return &StaffHandler{
		service: service,
		log:     log,
	}
}

// ListStaff handles GET /api/admin/staff (admin only)
func (h *StaffHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.service.ListStaff(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list staff")
		return
	}

	utils.ResponseSuccess(w, "Staff retrieved successfully", staff)
}

// GetProfile handles GET /api/staff/{type}/{id}
func (h *StaffHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	staffType := chi.URLParam(r, "type")
	staffID := chi.URLParam(r, "id")

	profile, err := h.service.GetProfile(r.Context(), staffType, staffID)
	if err != nil {
		handleServiceError(w, h.log, err, "get staff profile")
		return
	}

	utils.ResponseSuccess(w, "Profile retrieved successfully", profile)
}

// GetImage handles GET /api/staff/{type}/{id}/image
func (h *StaffHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	staffType := chi.URLParam(r, "type")
	staffID := chi.URLParam(r, "id")

	image, contentType, err := h.service.GetImage(r.Context(), staffType, staffID)
	if err != nil {
		handleServiceError(w, h.log, err, "get staff image")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(image)
}

// ApproveWorker handles PUT /api/admin/workers/{id}/approve (admin only)
func (h *StaffHandler) ApproveWorker(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "id")
	if workerID == "" {
		utils.ResponseBadRequest(w, "Worker ID is required", nil)
		return
	}

	if err := h.service.ApproveWorker(r.Context(), workerID); err != nil {
		handleServiceError(w, h.log, err, "approve worker")
		return
	}

	utils.ResponseSuccess(w, "Worker approved successfully", nil)
}

// DeleteWorker handles DELETE /api/admin/workers/{id} (admin only)
func (h *StaffHandler) DeleteWorker(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "id")
	if workerID == "" {
		utils.ResponseBadRequest(w, "Worker ID is required", nil)
		return
	}

	if err := h.service.DeleteWorker(r.Context(), workerID); err != nil {
		handleServiceError(w, h.log, err, "delete worker")
		return
	}

	utils.ResponseSuccess(w, "Worker deleted successfully", nil)
}
