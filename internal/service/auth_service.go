package service

import (
	"errors"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"minilink/internal/apperrors"
	"minilink/internal/entities"
	"minilink/internal/models"
	"minilink/internal/repository"
	"minilink/internal/token"
)

// AuthService defines the interface for authentication and user management
type AuthService interface {
	Register(req *models.RegisterRequest) (*models.RegisterResponse, error)
	Login(req *models.LoginRequest) (*models.AuthResponse, error)
	EnsureAdmin(email, password string) error

	ListUsers() ([]entities.User, error)
	CreateUser(req *models.CreateUserRequest) (*entities.User, error)
	UpdateUser(id string, req *models.UpdateUserRequest) (*entities.User, error)
	DeleteUser(id string) error
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *token.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtService *token.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new user account
func (s *authService) Register(req *models.RegisterRequest) (*models.RegisterResponse, error) {
	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Create user; the email unique index rejects duplicates
	user, err := s.userRepo.Create(req.Email, string(hashedPassword), req.Name, entities.RoleUser)
	if err != nil {
		return nil, err
	}

	// Generate JWT token for automatic login after registration
	tokenString, err := s.jwtService.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.RegisterResponse{
		Message: "User registered successfully",
		User: models.AuthResponse{
			UserID:    user.ID,
			Email:     user.Email,
			Name:      user.Name,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
			Token:     tokenString,
		},
	}, nil
}

// Login authenticates a user and returns user info with JWT token
func (s *authService) Login(req *models.LoginRequest) (*models.AuthResponse, error) {
	// Find user by email
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	// Verify password
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password))
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	// Generate JWT token
	tokenString, err := s.jwtService.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		Token:     tokenString,
	}, nil
}

// EnsureAdmin creates the bootstrap admin account if it does not exist.
// A blank password disables bootstrapping.
func (s *authService) EnsureAdmin(email, password string) error {
	if password == "" {
		return nil
	}
	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	name := "Admin User"
	_, err = s.userRepo.Create(email, string(hashedPassword), &name, entities.RoleAdmin)
	if errors.Is(err, apperrors.ErrEmailTaken) {
		return nil
	}
	if err != nil {
		return err
	}
	log.Printf("created bootstrap admin account %s", email)
	return nil
}

// ListUsers retrieves all user accounts (admin)
func (s *authService) ListUsers() ([]entities.User, error) {
	return s.userRepo.List()
}

// CreateUser creates a user account with an explicit role (admin)
func (s *authService) CreateUser(req *models.CreateUserRequest) (*entities.User, error) {
	role := req.Role
	if role == "" {
		role = entities.RoleUser
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return s.userRepo.Create(req.Email, string(hashedPassword), req.Name, role)
}

// UpdateUser applies a partial update to a user account (admin)
func (s *authService) UpdateUser(id string, req *models.UpdateUserRequest) (*entities.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = req.Name
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hashedPassword)
	}

	return s.userRepo.Update(user)
}

// DeleteUser removes a user account (admin)
func (s *authService) DeleteUser(id string) error {
	return s.userRepo.Delete(id)
}
