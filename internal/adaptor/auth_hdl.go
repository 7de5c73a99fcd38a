package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/jklassic/logistics/internal/dto/request"
	"github.com/jklassic/logistics/internal/usecase"
	"github.com/jklassic/logistics/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	config  *utils.Config
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, config *utils.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		config:  config,
		log:     log,
	}
}

// RegisterWorker handles POST /api/signup (multipart, field "image")
func (h *AuthHandler) RegisterWorker(w http.ResponseWriter, r *http.Request) {
	image, contentType, err := readImageUpload(r, h.config.Upload.MaxSizeMB)
	if err != nil {
		h.log.Warn("Worker image upload rejected", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	req := &request.RegisterWorkerRequest{
		FirstName:  r.FormValue("firstName"),
		SecondName: r.FormValue("secondName"),
		Email:      r.FormValue("email"),
		PhoneNo:    r.FormValue("phoneNo"),
		Branch:     r.FormValue("branch"),
		Password:   r.FormValue("password"),
	}

	account, err := h.service.RegisterWorker(r.Context(), req, image, contentType)
	if err != nil {
		handleServiceError(w, h.log, err, "register worker")
		return
	}

	utils.ResponseCreated(w, "Worker registered successfully", account)
}

// RegisterAdmin handles POST /api/admin/register (multipart, field "image")
func (h *AuthHandler) RegisterAdmin(w http.ResponseWriter, r *http.Request) {
	image, contentType, err := readImageUpload(r, h.config.Upload.MaxSizeMB)
	if err != nil {
		h.log.Warn("Admin image upload rejected", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	req := &request.RegisterAdminRequest{
		FirstName:  r.FormValue("firstName"),
		SecondName: r.FormValue("secondName"),
		Email:      r.FormValue("email"),
		Password:   r.FormValue("password"),
	}

	account, err := h.service.RegisterAdmin(r.Context(), req, image, contentType)
	if err != nil {
		handleServiceError(w, h.log, err, "register admin")
		return
	}

	utils.ResponseCreated(w, "Admin registered successfully", account)
}

// SignIn handles POST /api/signin
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req request.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	account, err := h.service.SignIn(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "sign in")
		return
	}

	utils.ResponseSuccess(w, "Signed in successfully", account)
}

// SignOut handles POST /api/logout
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.SignOut(r.Context(), token); err != nil {
		handleServiceError(w, h.log, err, "sign out")
		return
	}

	utils.ResponseSuccess(w, "Signed out successfully", nil)
}

// ResetPassword handles PUT /api/password-reset
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.ResetPassword(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "reset password")
		return
	}

	utils.ResponseSuccess(w, "Password updated successfully", nil)
}
