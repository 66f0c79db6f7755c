package models

// User roles recognised by the API.
const (
	RoleSuperadmin = "superadmin"
	RoleVendor     = "vendor"
	RoleOps        = "ops"
	RoleCustomer   = "customer"
)

// User mirrors the profile object returned by the API. The server is the
// source of truth; the client only reads it.
type User struct {
	ID           string  `json:"id" validate:"required"`
	Username     string  `json:"username" validate:"required"`
	Email        string  `json:"email"`
	Role         string  `json:"role" validate:"required,oneof=superadmin vendor ops customer"`
	Balance      float64 `json:"balance"`
	ReferralCode string  `json:"referral_code"`
	IsVerified   bool    `json:"is_verified"`
}

// Credentials is the login/register response: a bearer token plus the
// authenticated user.
type Credentials struct {
	Token string `json:"token" validate:"required"`
	User  User   `json:"user" validate:"required"`
}

// RegisterRequest is the registration payload. ReferralCode is optional and
// links the new account to an affiliate.
type RegisterRequest struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Role         string `json:"role,omitempty"`
	ReferralCode string `json:"referral_code,omitempty"`
}
