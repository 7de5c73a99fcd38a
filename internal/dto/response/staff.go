package response

import (
	"time"

	"github.com/jklassic/logistics/internal/data/entity"
)

type StaffResponse struct {
	ID         string           `json:"id"`
	DisplayID  string           `json:"display_id"`
	FirstName  string           `json:"first_name"`
	SecondName string           `json:"second_name"`
	Email      string           `json:"email"`
	PhoneNo    string           `json:"phone_no,omitempty"`
	Branch     string           `json:"branch,omitempty"`
	Role       entity.StaffRole `json:"role"`
	Approved   bool             `json:"approved"`
	HasImage   bool             `json:"has_image"`
	CreatedAt  time.Time        `json:"created_at"`
}

type StaffListResponse struct {
	Workers []StaffResponse `json:"workers"`
	Admins  []StaffResponse `json:"admins"`
}

func WorkerToResponse(worker *entity.Worker) StaffResponse {
	return StaffResponse{
		ID:         worker.ID.String(),
		DisplayID:  worker.WorkerID,
		FirstName:  worker.FirstName,
		SecondName: worker.SecondName,
		Email:      worker.Email,
		PhoneNo:    worker.PhoneNo,
		Branch:     worker.Branch,
		Role:       worker.Role,
		Approved:   worker.Approved,
		HasImage:   len(worker.Image) > 0,
		CreatedAt:  worker.CreatedAt,
	}
}

func AdminToResponse(admin *entity.Admin) StaffResponse {
	return StaffResponse{
		ID:         admin.ID.String(),
		DisplayID:  admin.AdminID,
		FirstName:  admin.FirstName,
		SecondName: admin.SecondName,
		Email:      admin.Email,
		Role:       admin.Role,
		Approved:   admin.Approved,
		HasImage:   len(admin.Image) > 0,
		CreatedAt:  admin.CreatedAt,
	}
}
