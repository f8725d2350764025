package handler

import (
	"net/http"

	"github.com/devcell/portal/internal/middleware"
	"github.com/devcell/portal/internal/model"
	"github.com/devcell/portal/internal/service"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// LoginRequest represents the login endpoint request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse represents a token response
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// AccountResponse represents a member account in API responses
type AccountResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if req.Email == "" || req.Password == "" {
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "credentials", Message: "email and password are required"},
		}))
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	response := struct {
		Account AccountResponse `json:"account"`
		Token   TokenResponse   `json:"token"`
	}{
		Account: toAccountResponse(result.Account),
		Token: TokenResponse{
			AccessToken: result.AccessToken,
			TokenType:   "Bearer",
			ExpiresIn:   result.ExpiresIn,
		},
	}

	WriteData(w, http.StatusOK, response, map[string]string{
		"self": "/v1/auth/me",
	})
}

// Logout handles POST /v1/auth/logout
//
// Tokens are stateless, so logout is a client-side discard. The endpoint
// exists so clients have a uniform place to end a session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	WriteNoContent(w)
}

// Me handles GET /v1/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	acc, ok := h.authService.GetAccount(userID)
	if !ok {
		WriteError(w, model.NewNotFoundError("account"))
		return
	}

	WriteData(w, http.StatusOK, toAccountResponse(acc), map[string]string{
		"self": "/v1/auth/me",
	})
}

func toAccountResponse(acc *service.Account) AccountResponse {
	return AccountResponse{
		ID:    acc.ID,
		Email: acc.Email,
		Name:  acc.Name,
		Role:  acc.Role,
	}
}
