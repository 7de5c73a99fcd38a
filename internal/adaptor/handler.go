package adaptor

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jklassic/logistics/internal/usecase"
	"github.com/jklassic/logistics/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Parcel *ParcelHandler
	Auth   *AuthHandler
	Staff  *StaffHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Parcel: NewParcelHandler(service.Parcel, config, log),
		Auth:   NewAuthHandler(service.Auth, config, log),
		Staff:  NewStaffHandler(service.Staff, log),
	}
}

// readImageUpload pulls the optional "image" file out of a multipart form.
// Uploads are memory-buffered with maxSizeMB as the cap.
func readImageUpload(r *http.Request, maxSizeMB int64) ([]byte, string, error) {
	maxBytes := maxSizeMB << 20

	if err := r.ParseMultipartForm(maxBytes); err != nil {
		return nil, "", fmt.Errorf("invalid multipart form: %w", err)
	}

	file, header, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("invalid image upload: %w", err)
	}
	defer file.Close()

	if header.Size > maxBytes {
		return nil, "", fmt.Errorf("invalid image upload: file too large")
	}

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("invalid image upload: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, "", fmt.Errorf("invalid image upload: file too large")
	}

	return data, header.Header.Get("Content-Type"), nil
}

// handleServiceError maps usecase error messages onto HTTP status codes
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "incorrect"):
		log.Warn(operation+" failed - bad credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "not approved"):
		log.Warn(operation+" failed - unapproved account", zap.Error(err))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "already exists"):
		log.Warn(operation+" failed - duplicate", zap.Error(err))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "version mismatch"):
		log.Warn(operation+" failed - stale version", zap.Error(err))
		utils.ResponseConflict(w, errMsg)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
