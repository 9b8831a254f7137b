package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"airsoft-manager-backend/internal/config"
	"airsoft-manager-backend/internal/models"
	"airsoft-manager-backend/internal/repositories"
	"airsoft-manager-backend/internal/utils"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const tokenValidity = 24 * time.Hour

type AuthService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{userRepo: userRepo, cfg: cfg}
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// GetOrCreateAdmin returns the admin user, seeding it from the configured
// credentials when the table is still empty.
func (s *AuthService) GetOrCreateAdmin() (*models.User, error) {
	user, err := s.userRepo.GetUserByUsername(s.cfg.AdminUsername)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(s.cfg.AdminPassword)
	if err != nil {
		return nil, err
	}

	user = &models.User{
		ID:             uuid.New(),
		Username:       s.cfg.AdminUsername,
		HashedPassword: hashed,
		IsAdmin:        true,
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, err
	}

	logrus.WithField("username", user.Username).Info("admin user created")
	return user, nil
}

func (s *AuthService) Authenticate(username, password string) (*LoginResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required: %w", ErrValidation)
	}

	admin, err := s.GetOrCreateAdmin()
	if err != nil {
		return nil, err
	}

	if username != admin.Username {
		return nil, fmt.Errorf("invalid credentials: %w", ErrUnauthorized)
	}
	if err := utils.CheckPassword(password, admin.HashedPassword); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", ErrUnauthorized)
	}

	token, err := s.generateJWT(admin.Username)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{AccessToken: token, TokenType: "bearer"}, nil
}

func (s *AuthService) ChangePassword(username, currentPassword, newPassword string) error {
	user, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		return fmt.Errorf("user not found: %w", ErrNotFound)
	}

	if err := utils.CheckPassword(currentPassword, user.HashedPassword); err != nil {
		return fmt.Errorf("current password is incorrect: %w", ErrUnauthorized)
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("%s: %w", err.Error(), ErrValidation)
	}

	user.HashedPassword = hashed
	return s.userRepo.UpdateUser(user)
}

func (s *AuthService) generateJWT(username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": username,
		"exp": now.Add(tokenValidity).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
