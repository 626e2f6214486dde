package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"grandstay-backend/models"
	"grandstay-backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrSessionExpired     = errors.New("session_expired")
)

const sessionTTL = 12 * time.Hour

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// Login verifies the password and issues an opaque bearer token.
func (s *AuthService) Login(username, password string) (string, *models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	var user models.User
	if err := s.DB.Where("username = ? AND is_active = ?", username, true).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	expires := time.Now().UTC().Add(sessionTTL)
	session := models.Session{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: &expires,
	}
	if err := s.DB.Create(&session).Error; err != nil {
		return "", nil, fmt.Errorf("failed to create session: %w", err)
	}

	return token, &user, nil
}

// Authenticate resolves a bearer token to its user. Expired or unknown
// tokens fail with ErrSessionExpired; the middleware turns that into a 401.
func (s *AuthService) Authenticate(token string) (*models.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrSessionExpired
	}

	var session models.Session
	err := s.DB.Preload("User").Where("token = ?", token).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}

	if session.ExpiresAt != nil && session.ExpiresAt.Before(time.Now().UTC()) {
		return nil, ErrSessionExpired
	}
	if !session.User.IsActive {
		return nil, ErrSessionExpired
	}
	return &session.User, nil
}

func (s *AuthService) Logout(token string) error {
	return s.DB.Where("token = ?", token).Delete(&models.Session{}).Error
}

// CreateUser provisions a staff account with a bcrypt-hashed password.
func (s *AuthService) CreateUser(username, fullName, password string, role models.UserRole) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username: username,
		FullName: strings.TrimSpace(fullName),
		Password: string(hash),
		Role:     role,
		IsActive: true,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

func (s *AuthService) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Order("id ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *AuthService) UpdateUser(id uint, updates map[string]interface{}) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		return nil, err
	}

	delete(updates, "id")
	delete(updates, "created_at")

	if raw, ok := updates["password"]; ok {
		pw, _ := raw.(string)
		delete(updates, "password")
		if pw != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
			if err != nil {
				return nil, fmt.Errorf("failed to hash password: %w", err)
			}
			updates["password"] = string(hash)
		}
	}

	if len(updates) > 0 {
		if err := s.DB.Model(&user).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}

	var out models.User
	if err := s.DB.First(&out, id).Error; err != nil {
		return nil, err
	}
	return &out, nil
}
