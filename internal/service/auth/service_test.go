package auth

import (
	"context"
	"testing"

	"github.com/kimce-studio/workday-backend-go/internal/domain/auth"
	"github.com/kimce-studio/workday-backend-go/internal/domain/collaborator"
	"github.com/kimce-studio/workday-backend-go/internal/pkg/jwt"
	"github.com/kimce-studio/workday-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

func newAuthFixture(t *testing.T) (auth.AuthService, collaborator.Collaborator) {
	t.Helper()

	store := memory.NewStore()
	collaboratorRepo := memory.NewCollaboratorRepository(store)
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	c, err := collaboratorRepo.Create(context.Background(), collaborator.Collaborator{
		FullName:     "Ana López",
		Email:        "ana@example.com",
		PasswordHash: string(hash),
		IsAdmin:      true,
	})
	require.NoError(t, err)

	return NewAuthService(collaboratorRepo, jwtService), c
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, c := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ana@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, c.ID, resp.CollaboratorID)
	assert.Equal(t, "Ana López", resp.FullName)
	assert.True(t, resp.IsAdmin)
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ana@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nadie@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_ValidatesInput(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "not-an-email"})
	require.Error(t, err)
}

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	svc, c := newAuthFixture(t)
	ctx := context.Background()

	loginResp, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "ana@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	refreshResp, err := svc.Refresh(ctx, loginResp.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, c.ID, refreshResp.CollaboratorID)
	assert.NotEmpty(t, refreshResp.AccessToken)

	// The redeemed token was revoked and cannot be reused.
	_, err = svc.Refresh(ctx, loginResp.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	loginResp, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "ana@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, loginResp.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_Logout_RevokesRefreshToken(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	loginResp, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "ana@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, loginResp.RefreshToken))

	_, err = svc.Refresh(ctx, loginResp.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
