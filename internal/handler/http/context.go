package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/kimce-studio/workday-backend-go/internal/domain/auth"
)

// collaboratorID pulls the authenticated collaborator out of the verified
// token claims.
func collaboratorID(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	id, ok := claims["collaborator_id"].(string)
	if !ok || id == "" {
		return "", auth.ErrInvalidToken
	}
	return id, nil
}

// collaboratorName returns the authenticated collaborator's display name,
// falling back to the identifier.
func collaboratorName(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	if name, ok := claims["full_name"].(string); ok && name != "" {
		return name
	}
	id, _ := claims["collaborator_id"].(string)
	return id
}
