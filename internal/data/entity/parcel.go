package entity

type ParcelStatus string

const (
	StatusPending   ParcelStatus = "PENDING"
	StatusTransit   ParcelStatus = "TRANSIT"
	StatusArrived   ParcelStatus = "ARRIVED"
	StatusDelivered ParcelStatus = "DELIVERED"
)

// Valid reports whether s is one of the four shipment states.
// There is no transition table: any state may follow any other.
func (s ParcelStatus) Valid() bool {
	switch s {
	case StatusPending, StatusTransit, StatusArrived, StatusDelivered:
		return true
	}
	return false
}

type Parcel struct {
	Base
	TrackingNumber   string       `db:"tracking_number"`
	Sender           string       `db:"sender"`
	SenderEmail      string       `db:"sender_email"`
	RecipientEmail   string       `db:"recipient_email"`
	Receiver         string       `db:"receiver"`
	Origin           string       `db:"origin"`
	Destination      string       `db:"destination"`
	Description      string       `db:"description"`
	StatusLevel      ParcelStatus `db:"status_level"`
	Image            []byte       `db:"image"`
	ImageContentType *string      `db:"image_content_type"`
	Version          int64        `db:"version"`
}
