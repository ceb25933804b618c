package types

import (
	"github.com/go-playground/validator/v10"
)

// DetectRequest is the body of POST /api/detect.
type DetectRequest struct {
	URL string `json:"url" validate:"required"`
}

// ContactRequest is the body of POST /api/contact.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,max=5000"`
}

// TokenResponse is returned by GET /api/token.
type TokenResponse struct {
	Token      string `json:"token"`
	ExpiresIn  int    `json:"expiresIn"`
	IssuedAt   string `json:"issuedAt"`
	OneTimeUse bool   `json:"oneTimeUse"`
}

// ErrorResponse is the JSON body written for failed requests.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Validate validates the DetectRequest using the validator.
func (r *DetectRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ContactRequest using the validator.
func (r *ContactRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
