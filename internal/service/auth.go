package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Account is a club member able to sign in.
type Account struct {
	ID    string
	Email string
	Name  string
	Role  string

	hash []byte
}

// Claims are the token claims the auth middleware extracts.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// AuthService authenticates members against the seeded roster and issues
// HS256 access tokens.
type AuthService struct {
	accounts map[string]*Account // keyed by normalized email
	byID     map[string]*Account
	secret   []byte
	issuer   string
	tokenTTL time.Duration
}

// AuthServiceConfig holds configuration for the auth service
type AuthServiceConfig struct {
	Accounts []SeedAccount
	Secret   []byte
	Issuer   string
	TokenTTL time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	s := &AuthService{
		accounts: make(map[string]*Account, len(cfg.Accounts)),
		byID:     make(map[string]*Account, len(cfg.Accounts)),
		secret:   cfg.Secret,
		issuer:   cfg.Issuer,
		tokenTTL: cfg.TokenTTL,
	}
	for _, seed := range cfg.Accounts {
		acc := &Account{
			ID:    seed.ID,
			Email: normalizeEmail(seed.Email),
			Name:  seed.Name,
			Role:  seed.Role,
			hash:  []byte(seed.PasswordHash),
		}
		s.accounts[acc.Email] = acc
		s.byID[acc.ID] = acc
	}
	return s
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string
	Password string
}

// LoginResult represents a successful login
type LoginResult struct {
	Account     *Account
	AccessToken string
	ExpiresIn   int // seconds
}

// Login verifies the credentials and issues an access token. Unknown
// email and wrong password return the same error.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	acc, ok := s.accounts[normalizeEmail(req.Email)]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(acc.hash, []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.sign(acc)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Account:     acc,
		AccessToken: token,
		ExpiresIn:   int(s.tokenTTL.Seconds()),
	}, nil
}

// GetAccount looks up a member by ID.
func (s *AuthService) GetAccount(id string) (*Account, bool) {
	acc, ok := s.byID[id]
	return acc, ok
}

// ValidateAccessToken parses and verifies a token, returning its claims.
func (s *AuthService) ValidateAccessToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return s.secret, nil
		},
		jwt.WithIssuer(s.issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *AuthService) sign(acc *Account) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: acc.ID,
		Email:  acc.Email,
		Name:   acc.Name,
		Role:   acc.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   acc.ID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
