package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/kimce-studio/workday-backend-go/internal/domain/auth"
	"github.com/kimce-studio/workday-backend-go/internal/domain/collaborator"
	"github.com/kimce-studio/workday-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	collaborator.CollaboratorRepository
	jwt.Service
}

func NewAuthService(collaboratorRepository collaborator.CollaboratorRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		CollaboratorRepository: collaboratorRepository,
		Service:                jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	c, err := a.CollaboratorRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, collaborator.ErrCollaboratorNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get collaborator by email: %w", err)
	}

	if c.PasswordHash == "" {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.tokenPair(c)
}

// Refresh implements auth.AuthService. The presented refresh token is revoked
// and replaced, so a token can only be redeemed once.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	collaboratorID, err := a.Service.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	c, err := a.CollaboratorRepository.GetByID(ctx, collaboratorID)
	if err != nil {
		if errors.Is(err, collaborator.ErrCollaboratorNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get collaborator: %w", err)
	}

	a.Service.RevokeToken(refreshToken)

	return a.tokenPair(c)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(_ context.Context, refreshToken string) error {
	if refreshToken != "" {
		a.Service.RevokeToken(refreshToken)
	}
	return nil
}

func (a *AuthServiceImpl) tokenPair(c collaborator.Collaborator) (auth.TokenResponse, error) {
	var resp auth.TokenResponse
	var err error

	resp.AccessToken, resp.ExpiresAt, err = a.Service.GenerateAccessToken(c.ID, c.Email, c.FullName, c.IsAdmin)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	resp.RefreshToken, resp.RefreshExpiresAt, err = a.Service.GenerateRefreshToken(c.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	resp.CollaboratorID = c.ID
	resp.FullName = c.FullName
	resp.IsAdmin = c.IsAdmin
	return resp, nil
}
