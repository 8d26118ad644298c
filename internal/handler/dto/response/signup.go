package response

import "time"

type SignupResponse struct {
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
	PIN       string    `json:"pin,omitempty"`
}

type VerifyPINResponse struct {
	Verified     bool      `json:"verified"`
	Email        string    `json:"email"`
	SessionToken string    `json:"sessionToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}
