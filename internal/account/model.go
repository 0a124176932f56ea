package account

import "time"

type UserStatus string

const (
	UserActive  UserStatus = "Active"
	UserDeleted UserStatus = "Deleted"
)

// User is identified by mobile number; there is no password.
type User struct {
	MobileNumber    string     `json:"mobile_number"`
	Name            string     `json:"name"`
	AltMobileNumber string     `json:"alt_mobile_number"`
	Address         string     `json:"address"`
	Status          UserStatus `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
}

type Admin struct {
	ID           int64
	Username     string
	PasswordHash string
}

// LoginRequest payload of customer login.
// swagger:model LoginRequest
type LoginRequest struct {
	Mobile string `json:"mobile" example:"9876543210"`
}

// LoginResponse tells the client whether the account was just created.
// swagger:model LoginResponse
type LoginResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
	IsNew   bool   `json:"isNew"`
}

// ProfileInput payload of profile update.
// swagger:model ProfileInput
type ProfileInput struct {
	Name      string `json:"name"       example:"Asha"`
	AltMobile string `json:"alt_mobile" example:"9876500000"`
	Address   string `json:"address"    example:"12 MG Road"`
}

// AdminUserInput is the admin edit of a customer. An empty status keeps the current one.
// swagger:model AdminUserInput
type AdminUserInput struct {
	ProfileInput
	Status UserStatus `json:"status" example:"Active"`
}

// AdminLoginRequest payload of admin login.
// swagger:model AdminLoginRequest
type AdminLoginRequest struct {
	Username string `json:"username" example:"ADMIN"`
	Password string `json:"password" example:"Admin143"`
}
