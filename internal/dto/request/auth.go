package request

type RegisterWorkerRequest struct {
	FirstName  string `json:"firstName" validate:"required"`
	SecondName string `json:"secondName" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	PhoneNo    string `json:"phoneNo" validate:"required,min=10,max=15"`
	Branch     string `json:"branch" validate:"required"`
	Password   string `json:"password" validate:"required,min=6"`
}

type RegisterAdminRequest struct {
	FirstName  string `json:"firstName" validate:"required"`
	SecondName string `json:"secondName" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}
