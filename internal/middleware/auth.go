package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/devcell/portal/internal/model"
	"github.com/devcell/portal/internal/service"
)

// TokenValidator defines the interface for access token validation
type TokenValidator interface {
	ValidateAccessToken(token string) (*service.Claims, error)
}

// Auth returns a middleware that validates bearer tokens
func Auth(validator TokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				model.NewUnauthorizedError("missing authorization header").WriteJSON(w)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				model.NewUnauthorizedError("invalid authorization header format").WriteJSON(w)
				return
			}

			claims, err := validator.ValidateAccessToken(parts[1])
			if err != nil {
				switch {
				case errors.Is(err, service.ErrTokenExpired):
					model.NewUnauthorizedError("token expired").WriteJSON(w)
				default:
					model.NewUnauthorizedError("invalid token").WriteJSON(w)
				}
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, UserEmailKey, claims.Email)
			ctx = context.WithValue(ctx, ClaimsKey, claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsKey is the context key for token claims
const ClaimsKey contextKey = "claims"

// UserEmailKey is the context key for user email
const UserEmailKey contextKey = "userEmail"

// GetUserID extracts the user ID from context
func GetUserID(ctx context.Context) string {
	if id, ok := ctx.Value(UserIDKey).(string); ok {
		return id
	}
	return ""
}

// GetUserEmail extracts the user email from context
func GetUserEmail(ctx context.Context) string {
	if email, ok := ctx.Value(UserEmailKey).(string); ok {
		return email
	}
	return ""
}

// GetClaims extracts the token claims from context
func GetClaims(ctx context.Context) *service.Claims {
	if claims, ok := ctx.Value(ClaimsKey).(*service.Claims); ok {
		return claims
	}
	return nil
}
