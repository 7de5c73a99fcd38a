package request

type CreateParcelRequest struct {
	Sender         string `json:"sender" validate:"required"`
	SenderEmail    string `json:"senderEmail" validate:"required,email"`
	RecipientEmail string `json:"recipientEmail" validate:"required,email"`
	Receiver       string `json:"receiver" validate:"required"`
	From           string `json:"from" validate:"required"`
	To             string `json:"to" validate:"required"`
	Description    string `json:"description" validate:"required"`
	StatusLevel    string `json:"statusLevel" validate:"required,oneof=PENDING TRANSIT ARRIVED DELIVERED"`
}

// UpdateParcelRequest is a partial update; nil fields keep their stored value.
// ExpectedVersion is optional: when set, the update is rejected on mismatch,
// when omitted the write is last-write-wins.
type UpdateParcelRequest struct {
	Sender          *string `json:"sender,omitempty"`
	SenderEmail     *string `json:"senderEmail,omitempty" validate:"omitempty,email"`
	RecipientEmail  *string `json:"recipientEmail,omitempty" validate:"omitempty,email"`
	Receiver        *string `json:"receiver,omitempty"`
	From            *string `json:"from,omitempty"`
	To              *string `json:"to,omitempty"`
	Description     *string `json:"description,omitempty"`
	StatusLevel     *string `json:"statusLevel,omitempty" validate:"omitempty,oneof=PENDING TRANSIT ARRIVED DELIVERED"`
	ExpectedVersion *int64  `json:"expectedVersion,omitempty"`
}
