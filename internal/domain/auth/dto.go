package auth

import (
	"github.com/kimce-studio/workday-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TokenResponse struct {
	AccessToken    string `json:"access_token"`
	ExpiresAt      int64  `json:"expires_at"`
	CollaboratorID string `json:"collaborator_id"`
	FullName       string `json:"full_name"`
	IsAdmin        bool   `json:"is_admin"`

	// Refresh token travels in an HTTP-only cookie, never in the body.
	RefreshToken     string `json:"-"`
	RefreshExpiresAt int64  `json:"-"`
}
