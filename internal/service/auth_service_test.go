package service

import (
	"testing"
	"time"

	"minilink/internal/apperrors"
	"minilink/internal/entities"
	"minilink/internal/models"
	"minilink/internal/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testJWTService() *token.JWTService {
	return token.NewJWTService("test-secret", time.Hour)
}

func TestRegister(t *testing.T) {
	t.Run("creates a regular user and logs them in", func(t *testing.T) {
		repo := new(mockUserRepository)
		repo.On("Create", "new@example.com", mock.AnythingOfType("string"), (*string)(nil), entities.RoleUser).
			Return(&entities.User{ID: "user-1", Email: "new@example.com", Role: entities.RoleUser}, nil)

		svc := NewAuthService(repo, testJWTService())
		resp, err := svc.Register(&models.RegisterRequest{Email: "new@example.com", Password: "password123"})

		require.NoError(t, err)
		assert.Equal(t, "user-1", resp.User.UserID)
		assert.Equal(t, entities.RoleUser, resp.User.Role)
		assert.NotEmpty(t, resp.User.Token)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate email surfaces as ErrEmailTaken", func(t *testing.T) {
		repo := new(mockUserRepository)
		repo.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, apperrors.ErrEmailTaken)

		svc := NewAuthService(repo, testJWTService())
		_, err := svc.Register(&models.RegisterRequest{Email: "dup@example.com", Password: "password123"})

		assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
	})
}

func TestLogin(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	user := &entities.User{ID: "user-1", Email: "u@example.com", PasswordHash: string(hash), Role: entities.RoleUser}

	t.Run("valid credentials yield a token", func(t *testing.T) {
		repo := new(mockUserRepository)
		repo.On("FindByEmail", "u@example.com").Return(user, nil)

		svc := NewAuthService(repo, testJWTService())
		resp, err := svc.Login(&models.LoginRequest{Email: "u@example.com", Password: "correct horse"})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)

		claims, err := testJWTService().ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, entities.RoleUser, claims.Role)
	})

	t.Run("wrong password and unknown email look identical", func(t *testing.T) {
		repo := new(mockUserRepository)
		repo.On("FindByEmail", "u@example.com").Return(user, nil)
		repo.On("FindByEmail", "nobody@example.com").Return(nil, apperrors.ErrNotFound)

		svc := NewAuthService(repo, testJWTService())

		_, errWrongPass := svc.Login(&models.LoginRequest{Email: "u@example.com", Password: "nope"})
		_, errNoUser := svc.Login(&models.LoginRequest{Email: "nobody@example.com", Password: "nope"})

		require.Error(t, errWrongPass)
		require.Error(t, errNoUser)
		assert.Equal(t, errWrongPass.Error(), errNoUser.Error())
	})
}

func TestEnsureAdmin(t *testing.T) {
	t.Run("blank password disables bootstrapping", func(t *testing.T) {
		repo := new(mockUserRepository)

		svc := NewAuthService(repo, testJWTService())
		assert.NoError(t, svc.EnsureAdmin("admin@minilink.at", ""))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("existing account is left alone", func(t *testing.T) {
		repo := new(mockUserRepository)
		repo.On("FindByEmail", "admin@minilink.at").Return(&entities.User{ID: "admin-1"}, nil)

		svc := NewAuthService(repo, testJWTService())
		assert.NoError(t, svc.EnsureAdmin("admin@minilink.at", "hunter22"))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("creates the admin account on first run", func(t *testing.T) {
		repo := new(mockUserRepository)
		repo.On("FindByEmail", "admin@minilink.at").Return(nil, apperrors.ErrNotFound)
		repo.On("Create", "admin@minilink.at", mock.AnythingOfType("string"), mock.AnythingOfType("*string"), entities.RoleAdmin).
			Return(&entities.User{ID: "admin-1", Role: entities.RoleAdmin}, nil)

		svc := NewAuthService(repo, testJWTService())
		assert.NoError(t, svc.EnsureAdmin("admin@minilink.at", "hunter22"))
		repo.AssertExpectations(t)
	})

	t.Run("losing the bootstrap race is fine", func(t *testing.T) {
		repo := new(mockUserRepository)
		repo.On("FindByEmail", "admin@minilink.at").Return(nil, apperrors.ErrNotFound)
		repo.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, apperrors.ErrEmailTaken)

		svc := NewAuthService(repo, testJWTService())
		assert.NoError(t, svc.EnsureAdmin("admin@minilink.at", "hunter22"))
	})
}
