package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/elverra/zenika-api/internal/config"
	"github.com/elverra/zenika-api/internal/models"
	"github.com/elverra/zenika-api/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthServiceTest(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:auth_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.UserRole{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	cfg := &config.Config{
		JWT: config.JWTConfig{
			SecretKey:   "0123456789abcdef0123456789abcdef",
			ExpireHours: 24,
		},
	}
	return NewAuthService(cfg, repository.NewUserRepository(db)), db
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	user, err := svc.Register(RegisterInput{
		Email:    " Member@Example.com ",
		Password: "secret1",
		FullName: "Awa Diarra",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Email != "member@example.com" {
		t.Fatalf("email not normalized: %s", user.Email)
	}
	if user.PasswordHash == "secret1" || user.PasswordHash == "" {
		t.Fatalf("password stored in the clear")
	}
	if user.MembershipTier != models.TierBasic {
		t.Fatalf("new member should start on basic, got: %s", user.MembershipTier)
	}

	logged, token, expiresAt, err := svc.Login("member@example.com", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if logged.ID != user.ID || token == "" {
		t.Fatalf("unexpected login result")
	}
	if !expiresAt.After(time.Now()) {
		t.Fatalf("token already expired: %v", expiresAt)
	}
	if logged.LastLoginAt == nil {
		t.Fatalf("last login not recorded")
	}

	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	if _, err := svc.Register(RegisterInput{Email: "dup@example.com", Password: "secret1"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(RegisterInput{Email: "DUP@example.com", Password: "secret2"}); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got: %v", err)
	}
}

func TestRegisterRejectsWeakInput(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	if _, err := svc.Register(RegisterInput{Email: "not-an-email", Password: "secret1"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad email, got: %v", err)
	}
	if _, err := svc.Register(RegisterInput{Email: "ok@example.com", Password: "short"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for short password, got: %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	if _, err := svc.Register(RegisterInput{Email: "who@example.com", Password: "secret1"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, _, _, err := svc.Login("who@example.com", "wrong-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got: %v", err)
	}
	if _, _, _, err := svc.Login("ghost@example.com", "secret1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got: %v", err)
	}
}

func TestParseJWTRejectsForeignToken(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	other := &AuthService{
		cfg: &config.Config{JWT: config.JWTConfig{
			SecretKey:   "another-secret-another-secret-32",
			ExpireHours: 1,
		}},
	}
	token, _, err := other.GenerateJWT(&models.User{ID: 9, Email: "x@example.com"})
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	if _, err := svc.ParseJWT(token); err == nil {
		t.Fatalf("token signed with a different key should fail")
	}
}
