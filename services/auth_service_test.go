package services

import (
	"errors"
	"testing"
	"time"

	"grandstay-backend/models"
	"grandstay-backend/utils"
)

func TestLoginAndAuthenticate(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	if _, err := svc.CreateUser("reception", "Front Desk", "s3cret", models.RoleReceptionist); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	token, user, err := svc.Login("reception", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("expected a session token")
	}
	if user.Role != models.RoleReceptionist {
		t.Errorf("unexpected role %s", user.Role)
	}

	resolved, err := svc.Authenticate(token)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if resolved.Username != "reception" {
		t.Errorf("token resolved to %q", resolved.Username)
	}

	if _, _, err := svc.Login("reception", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login("nobody", "s3cret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestAuthenticateExpiredSession(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	user, err := svc.CreateUser("reception", "Front Desk", "s3cret", models.RoleReceptionist)
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	session := models.Session{
		Token:     "expired-token",
		UserID:    user.ID,
		ExpiresAt: utils.PtrTime(time.Now().UTC().Add(-time.Minute)),
	}
	if err := db.Create(&session).Error; err != nil {
		t.Fatalf("failed to seed session: %v", err)
	}

	if _, err := svc.Authenticate("expired-token"); !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if _, err := svc.Authenticate("never-issued"); !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired for unknown token, got %v", err)
	}
}

func TestLogoutInvalidatesToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	if _, err := svc.CreateUser("reception", "Front Desk", "s3cret", models.RoleReceptionist); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	token, _, err := svc.Login("reception", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if err := svc.Logout(token); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := svc.Authenticate(token); !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired after logout, got %v", err)
	}
}

func TestDeactivatedUserCannotAuthenticate(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	user, err := svc.CreateUser("reception", "Front Desk", "s3cret", models.RoleReceptionist)
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	token, _, err := svc.Login("reception", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if _, err := svc.UpdateUser(user.ID, map[string]interface{}{"is_active": false}); err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if _, err := svc.Authenticate(token); !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired for a deactivated user, got %v", err)
	}
	if _, _, err := svc.Login("reception", "s3cret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for a deactivated user, got %v", err)
	}
}
