package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/jklassic/logistics/internal/dto/request"
	"github.com/jklassic/logistics/internal/usecase"
	"github.com/jklassic/logistics/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ParcelHandler struct {
	service usecase.ParcelService
	config  *utils.Config
	log     *zap.Logger
}

func NewParcelHandler(service usecase.ParcelService, config *utils.Config, log *zap.Logger) *ParcelHandler {
	return &ParcelHandler{
		service: service,
		config:  config,
		log:     log,
	}
}

// Create handles POST /api/parcels (multipart, field "image")
func (h *ParcelHandler) Create(w http.ResponseWriter, r *http.Request) {
	image, contentType, err := readImageUpload(r, h.config.Upload.MaxSizeMB)
	if err != nil {
		h.log.Warn("Parcel image upload rejected", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	req := &request.CreateParcelRequest{
		Sender:         r.FormValue("sender"),
		SenderEmail:    r.FormValue("senderEmail"),
		RecipientEmail: r.FormValue("recipientEmail"),
		Receiver:       r.FormValue("receiver"),
		From:           r.FormValue("from"),
		To:             r.FormValue("to"),
		Description:    r.FormValue("description"),
		StatusLevel:    r.FormValue("statusLevel"),
	}

	parcel, err := h.service.Create(r.Context(), req, image, contentType)
	if err != nil {
		handleServiceError(w, h.log, err, "create parcel")
		return
	}

	utils.ResponseCreated(w, "Parcel registered successfully", parcel)
}

// Update handles PUT /api/parcels/{id}
func (h *ParcelHandler) Update(w http.ResponseWriter, r *http.Request) {
	parcelID := chi.URLParam(r, "id")
	if parcelID == "" {
		utils.ResponseBadRequest(w, "Parcel ID is required", nil)
		return
	}

	var req request.UpdateParcelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	parcel, err := h.service.Update(r.Context(), parcelID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update parcel")
		return
	}

	utils.ResponseSuccess(w, "Parcel updated successfully", parcel)
}

// Search handles GET /api/parcels?q=
func (h *ParcelHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	parcels, err := h.service.Search(r.Context(), query)
	if err != nil {
		handleServiceError(w, h.log, err, "search parcels")
		return
	}

	utils.ResponseSuccess(w, "Parcels retrieved successfully", parcels)
}

// GetByID handles GET /api/parcels/{id}
func (h *ParcelHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	parcelID := chi.URLParam(r, "id")
	if parcelID == "" {
		utils.ResponseBadRequest(w, "Parcel ID is required", nil)
		return
	}

	parcel, err := h.service.GetByID(r.Context(), parcelID)
	if err != nil {
		handleServiceError(w, h.log, err, "get parcel")
		return
	}

	utils.ResponseSuccess(w, "Parcel retrieved successfully", parcel)
}

// GetImage handles GET /api/parcels/{id}/image, streaming the stored bytes
// with the stored content type
func (h *ParcelHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	parcelID := chi.URLParam(r, "id")
	if parcelID == "" {
		utils.ResponseBadRequest(w, "Parcel ID is required", nil)
		return
	}

	image, contentType, err := h.service.GetImage(r.Context(), parcelID)
	if err != nil {
		handleServiceError(w, h.log, err, "get parcel image")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(image)
}

// Delete handles DELETE /api/parcels/{id}
func (h *ParcelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	parcelID := chi.URLParam(r, "id")
	if parcelID == "" {
		utils.ResponseBadRequest(w, "Parcel ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), parcelID); err != nil {
		handleServiceError(w, h.log, err, "delete parcel")
		return
	}

	utils.ResponseSuccess(w, "Parcel deleted successfully", nil)
}
