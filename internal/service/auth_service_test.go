package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thrapy-be/internal/dto"
	"thrapy-be/internal/entity"
	"thrapy-be/internal/pkg/apperror"
	"thrapy-be/internal/pkg/serverutils"
)

func TestRegisterAndLoginRoundTrip(t *testing.T) {
	userRepo := &fakeUserRepo{}
	svc := NewAuthService(userRepo)

	registered, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "alice@example.com",
		FullName: "Alice",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "bearer", registered.TokenType)
	assert.Equal(t, entity.UserRoleClient, registered.User.Role, "role defaults to client")

	// The stored hash is salted, never the plaintext.
	require.Len(t, userRepo.users, 1)
	assert.NotEqual(t, "secret123", userRepo.users[0].PasswordHash)

	loggedIn, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.User.Id, loggedIn.User.Id)

	// Token resolves back to the same user id.
	userId, err := serverutils.ResolveToken(loggedIn.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.User.Id, userId)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	userRepo := &fakeUserRepo{}
	svc := NewAuthService(userRepo)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "bob@example.com",
		FullName: "Bob",
		Password: "secret123",
	})
	require.NoError(t, err)

	// Same email fails even with different name, password and role.
	_, err = svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "bob@example.com",
		FullName: "Robert",
		Password: "othersecret",
		Role:     "therapist",
	})
	require.Error(t, err)

	appErr, ok := apperror.From(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "Email already registered", appErr.Message)
	assert.Len(t, userRepo.users, 1)
}

func TestRegisterKeepsRequestedRole(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{})

	res, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "t@example.com",
		FullName: "T",
		Password: "secret123",
		Role:     "therapist",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.UserRoleTherapist, res.User.Role)
}

func TestLoginInvalidCredentials(t *testing.T) {
	userRepo := &fakeUserRepo{}
	svc := NewAuthService(userRepo)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "carol@example.com",
		FullName: "Carol",
		Password: "secret123",
	})
	require.NoError(t, err)

	tests := []struct {
		name string
		req  *dto.LoginRequest
	}{
		{"wrong password", &dto.LoginRequest{Email: "carol@example.com", Password: "wrong"}},
		{"unknown email", &dto.LoginRequest{Email: "nobody@example.com", Password: "secret123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.req)
			require.Error(t, err)

			appErr, ok := apperror.From(err)
			require.True(t, ok)
			assert.Equal(t, 401, appErr.Status)
			assert.Equal(t, "Invalid credentials", appErr.Message)
		})
	}
}
