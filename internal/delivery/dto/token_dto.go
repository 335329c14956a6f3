package dto

import "time"

type TokenPairResponse struct {
	ServiceRoleKey string    `json:"service_role_key"`
	AnonKey        string    `json:"anon_key"`
	ExpiresAt      time.Time `json:"expires_at"`
}

type VerifyTokenRequest struct {
	Name  string `validate:"required"`
	Token string `validate:"required"`
}

type TokenVerificationResponse struct {
	Name      string    `json:"name"`
	Valid     bool      `json:"valid"`
	Role      string    `json:"role,omitempty"`
	Issuer    string    `json:"issuer,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	Reason    string    `json:"reason,omitempty"`
}
