package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/devcell/portal/internal/service"
)

// ============================================================================
// Mock TokenValidator
// ============================================================================

type mockValidator struct {
	validateFunc func(token string) (*service.Claims, error)
}

func (m *mockValidator) ValidateAccessToken(token string) (*service.Claims, error) {
	return m.validateFunc(token)
}

// successValidator returns valid claims for any token
func successValidator(userID, email string) *mockValidator {
	return &mockValidator{
		validateFunc: func(token string) (*service.Claims, error) {
			return &service.Claims{
				UserID: userID,
				Email:  email,
			}, nil
		},
	}
}

// errorValidator returns the specified error
func errorValidator(err error) *mockValidator {
	return &mockValidator{
		validateFunc: func(token string) (*service.Claims, error) {
			return nil, err
		},
	}
}

// ============================================================================
// Test Helpers
// ============================================================================

func newTestRequest(authHeader string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	return req
}

// captureHandler captures the request context for inspection
type captureHandler struct {
	called bool
	ctx    context.Context
}

func (h *captureHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.called = true
	h.ctx = r.Context()
	w.WriteHeader(http.StatusOK)
}

// ============================================================================
// Auth() Middleware Tests
// ============================================================================

func TestAuth_MissingAuthorizationHeader_ReturnsUnauthorized(t *testing.T) {
	t.Parallel()
	middleware := Auth(successValidator("usr-123", "test@devcell.club"))
	handler := &captureHandler{}

	req := newTestRequest("") // No auth header
	rr := httptest.NewRecorder()

	middleware(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
	if handler.called {
		t.Error("handler should not have been called")
	}
}

func TestAuth_WrongScheme_ReturnsUnauthorized(t *testing.T) {
	t.Parallel()
	middleware := Auth(successValidator("usr-123", "test@devcell.club"))
	handler := &captureHandler{}

	req := newTestRequest("Basic sometoken")
	rr := httptest.NewRecorder()

	middleware(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
	if handler.called {
		t.Error("handler should not have been called")
	}
}

func TestAuth_OnlyBearer_ReturnsUnauthorized(t *testing.T) {
	t.Parallel()
	middleware := Auth(successValidator("usr-123", "test@devcell.club"))
	handler := &captureHandler{}

	req := newTestRequest("Bearer") // No token
	rr := httptest.NewRecorder()

	middleware(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
	if handler.called {
		t.Error("handler should not have been called")
	}
}

func TestAuth_ValidToken_SetsContext_CallsNext(t *testing.T) {
	t.Parallel()
	middleware := Auth(successValidator("usr-123", "test@devcell.club"))
	handler := &captureHandler{}

	req := newTestRequest("Bearer valid-token")
	rr := httptest.NewRecorder()

	middleware(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !handler.called {
		t.Error("handler should have been called")
	}

	if GetUserID(handler.ctx) != "usr-123" {
		t.Errorf("expected UserID 'usr-123', got %q", GetUserID(handler.ctx))
	}
	if GetUserEmail(handler.ctx) != "test@devcell.club" {
		t.Errorf("expected Email 'test@devcell.club', got %q", GetUserEmail(handler.ctx))
	}
}

func TestAuth_ValidToken_CaseInsensitiveBearer(t *testing.T) {
	t.Parallel()
	middleware := Auth(successValidator("usr-123", "test@devcell.club"))
	handler := &captureHandler{}

	req := newTestRequest("bearer valid-token")
	rr := httptest.NewRecorder()

	middleware(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !handler.called {
		t.Error("handler should have been called")
	}
}

func TestAuth_ExpiredToken_ReturnsUnauthorized(t *testing.T) {
	t.Parallel()
	middleware := Auth(errorValidator(service.ErrTokenExpired))
	handler := &captureHandler{}

	req := newTestRequest("Bearer expired-token")
	rr := httptest.NewRecorder()

	middleware(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
	if handler.called {
		t.Error("handler should not have been called")
	}
}

func TestAuth_InvalidToken_ReturnsUnauthorized(t *testing.T) {
	t.Parallel()
	middleware := Auth(errorValidator(service.ErrInvalidToken))
	handler := &captureHandler{}

	req := newTestRequest("Bearer bad-token")
	rr := httptest.NewRecorder()

	middleware(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
	if handler.called {
		t.Error("handler should not have been called")
	}
}

func TestAuth_SetsClaims_InContext(t *testing.T) {
	t.Parallel()
	expectedClaims := &service.Claims{
		UserID: "usr-456",
		Email:  "member@devcell.club",
		Name:   "Asha Verma",
		Role:   "member",
	}
	middleware := Auth(&mockValidator{
		validateFunc: func(token string) (*service.Claims, error) {
			return expectedClaims, nil
		},
	})
	handler := &captureHandler{}

	req := newTestRequest("Bearer valid-token")
	rr := httptest.NewRecorder()

	middleware(handler).ServeHTTP(rr, req)

	claims := GetClaims(handler.ctx)
	if claims == nil {
		t.Fatal("expected claims in context")
	}
	if claims.UserID != expectedClaims.UserID {
		t.Errorf("UserID: expected %q, got %q", expectedClaims.UserID, claims.UserID)
	}
	if claims.Name != expectedClaims.Name {
		t.Errorf("Name: expected %q, got %q", expectedClaims.Name, claims.Name)
	}
}

// ============================================================================
// Context Helper Tests
// ============================================================================

func TestGetUserID_Present_ReturnsValue(t *testing.T) {
	t.Parallel()
	ctx := context.WithValue(context.Background(), UserIDKey, "usr-999")

	if got := GetUserID(ctx); got != "usr-999" {
		t.Errorf("expected 'usr-999', got %q", got)
	}
}

func TestGetUserID_Missing_ReturnsEmpty(t *testing.T) {
	t.Parallel()

	if got := GetUserID(context.Background()); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestGetUserID_WrongType_ReturnsEmpty(t *testing.T) {
	t.Parallel()
	ctx := context.WithValue(context.Background(), UserIDKey, 12345) // Wrong type

	if got := GetUserID(ctx); got != "" {
		t.Errorf("expected empty string for wrong type, got %q", got)
	}
}

func TestGetClaims_Missing_ReturnsNil(t *testing.T) {
	t.Parallel()

	if got := GetClaims(context.Background()); got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}
