package entity

type StaffRole string

const (
	RoleStaff StaffRole = "STAFF"
	RoleAdmin StaffRole = "ADMIN"
)

// Worker is a registered clerk. Workers start unapproved and cannot sign in
// until an admin flips the flag.
type Worker struct {
	Base
	WorkerID         string    `db:"worker_id"`
	FirstName        string    `db:"first_name"`
	SecondName       string    `db:"second_name"`
	Email            string    `db:"email"`
	PhoneNo          string    `db:"phone_no"`
	Branch           string    `db:"branch"`
	PasswordHash     string    `db:"password"`
	Role             StaffRole `db:"role"`
	Image            []byte    `db:"image"`
	ImageContentType *string   `db:"image_content_type"`
	Approved         bool      `db:"approved"`
}

// Admin is a management account. Approved by default.
type Admin struct {
	Base
	AdminID          string    `db:"admin_id"`
	FirstName        string    `db:"first_name"`
	SecondName       string    `db:"second_name"`
	Email            string    `db:"email"`
	PasswordHash     string    `db:"password"`
	Role             StaffRole `db:"role"`
	Image            []byte    `db:"image"`
	ImageContentType *string   `db:"image_content_type"`
	Approved         bool      `db:"approved"`
}
