package response

import (
	"time"

	"github.com/jklassic/logistics/internal/data/entity"
)

type ParcelResponse struct {
	ID             string              `json:"id"`
	TrackingNumber string              `json:"tracking_number"`
	Sender         string              `json:"sender"`
	SenderEmail    string              `json:"sender_email"`
	RecipientEmail string              `json:"recipient_email"`
	Receiver       string              `json:"receiver"`
	From           string              `json:"from"`
	To             string              `json:"to"`
	Description    string              `json:"description"`
	StatusLevel    entity.ParcelStatus `json:"status_level"`
	Version        int64               `json:"version"`
	HasImage       bool                `json:"has_image"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// ParcelToResponse converts the entity; image bytes never leave through JSON,
// list projections carry no image so HasImage is only meaningful on details
func ParcelToResponse(parcel *entity.Parcel) ParcelResponse {
	return ParcelResponse{
		ID:             parcel.ID.String(),
		TrackingNumber: parcel.TrackingNumber,
		Sender:         parcel.Sender,
		SenderEmail:    parcel.SenderEmail,
		RecipientEmail: parcel.RecipientEmail,
		Receiver:       parcel.Receiver,
		From:           parcel.Origin,
		To:             parcel.Destination,
		Description:    parcel.Description,
		StatusLevel:    parcel.StatusLevel,
		Version:        parcel.Version,
		HasImage:       len(parcel.Image) > 0,
		CreatedAt:      parcel.CreatedAt,
		UpdatedAt:      parcel.UpdatedAt,
	}
}

func ParcelsToResponse(parcels []*entity.Parcel) []ParcelResponse {
	result := make([]ParcelResponse, 0, len(parcels))
	for _, parcel := range parcels {
		result = append(result, ParcelToResponse(parcel))
	}
	return result
}
