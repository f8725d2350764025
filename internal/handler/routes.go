package handler

import (
	"net/http"

	"github.com/devcell/portal/internal/middleware"
	"github.com/devcell/portal/internal/service"
)

// RouterConfig holds the services the router wires handlers to.
type RouterConfig struct {
	AuthService    *service.AuthService
	FormService    *service.FormService
	ContentService *service.ContentService
}

// NewRouter builds the route table shared by the server binary and the
// end-to-end tests. Global middleware (logging, CORS, rate limiting) is
// applied by the caller.
func NewRouter(cfg RouterConfig) http.Handler {
	authHandler := NewAuthHandler(cfg.AuthService)
	formHandler := NewFormHandler(cfg.FormService)
	contentHandler := NewContentHandler(cfg.ContentService)

	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", Health)

	// Public content
	mux.HandleFunc("GET /v1/content/home", contentHandler.Home)

	// Auth endpoints (public)
	mux.HandleFunc("POST /v1/auth/login", authHandler.Login)

	// Auth endpoints (protected)
	authMiddleware := middleware.Auth(cfg.AuthService)
	mux.Handle("POST /v1/auth/logout", authMiddleware(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("GET /v1/auth/me", authMiddleware(http.HandlerFunc(authHandler.Me)))

	// Draft profile form endpoints
	mux.Handle("POST /v1/profile/forms", authMiddleware(http.HandlerFunc(formHandler.Create)))
	mux.Handle("GET /v1/profile/forms/{formId}", authMiddleware(http.HandlerFunc(formHandler.Get)))
	mux.Handle("PATCH /v1/profile/forms/{formId}", authMiddleware(http.HandlerFunc(formHandler.UpdateFields)))
	mux.Handle("POST /v1/profile/forms/{formId}/submit", authMiddleware(http.HandlerFunc(formHandler.Submit)))

	// Picture endpoints (registered before the generic section routes so
	// "picture" never parses as a section)
	mux.Handle("PUT /v1/profile/forms/{formId}/picture", authMiddleware(http.HandlerFunc(formHandler.SetPicture)))
	mux.Handle("GET /v1/profile/forms/{formId}/picture", authMiddleware(http.HandlerFunc(formHandler.GetPicture)))
	mux.Handle("DELETE /v1/profile/forms/{formId}/picture", authMiddleware(http.HandlerFunc(formHandler.RemovePicture)))

	// Sub-list row endpoints
	mux.Handle("POST /v1/profile/forms/{formId}/{section}", authMiddleware(http.HandlerFunc(formHandler.AppendRow)))
	mux.Handle("PATCH /v1/profile/forms/{formId}/{section}/{index}", authMiddleware(http.HandlerFunc(formHandler.UpdateRow)))
	mux.Handle("DELETE /v1/profile/forms/{formId}/{section}/{index}", authMiddleware(http.HandlerFunc(formHandler.RemoveRow)))

	return mux
}
