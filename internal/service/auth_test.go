package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func testAuthService(t *testing.T, ttl time.Duration) *AuthService {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	return NewAuthService(AuthServiceConfig{
		Accounts: []SeedAccount{{
			ID:           "usr-1",
			Email:        "asha@example.com",
			Name:         "Asha Verma",
			Role:         "member",
			PasswordHash: string(hash),
		}},
		Secret:   []byte("test-secret"),
		Issuer:   "portal-test",
		TokenTTL: ttl,
	})
}

func TestAuthService_Login_Valid(t *testing.T) {
	t.Parallel()

	svc := testAuthService(t, time.Hour)
	result, err := svc.Login(context.Background(), LoginRequest{
		Email:    "  Asha@Example.com ",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("expected login to succeed, got %v", err)
	}
	if result.Account.ID != "usr-1" {
		t.Errorf("expected usr-1, got %q", result.Account.ID)
	}
	if result.AccessToken == "" {
		t.Error("expected access token")
	}
	if result.ExpiresIn != 3600 {
		t.Errorf("expected 3600s expiry, got %d", result.ExpiresIn)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	t.Parallel()

	svc := testAuthService(t, time.Hour)
	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "asha@example.com",
		Password: "wrong",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmailSameError(t *testing.T) {
	t.Parallel()

	svc := testAuthService(t, time.Hour)
	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct horse",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_ValidateAccessToken(t *testing.T) {
	t.Parallel()

	svc := testAuthService(t, time.Hour)
	result, err := svc.Login(context.Background(), LoginRequest{
		Email:    "asha@example.com",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims, err := svc.ValidateAccessToken(result.AccessToken)
	if err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}
	if claims.UserID != "usr-1" || claims.Email != "asha@example.com" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_ValidateAccessToken_Garbage(t *testing.T) {
	t.Parallel()

	svc := testAuthService(t, time.Hour)
	if _, err := svc.ValidateAccessToken("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_ValidateAccessToken_Expired(t *testing.T) {
	t.Parallel()

	svc := testAuthService(t, -time.Minute)
	result, err := svc.Login(context.Background(), LoginRequest{
		Email:    "asha@example.com",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, err := svc.ValidateAccessToken(result.AccessToken); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestAuthService_GetAccount(t *testing.T) {
	t.Parallel()

	svc := testAuthService(t, time.Hour)
	if _, ok := svc.GetAccount("usr-1"); !ok {
		t.Error("expected to find usr-1")
	}
	if _, ok := svc.GetAccount("usr-404"); ok {
		t.Error("expected usr-404 to be missing")
	}
}
