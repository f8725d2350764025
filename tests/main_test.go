// Package tests contains end-to-end acceptance tests for the portal API.
//
// These tests start a real HTTP server with the full middleware chain
// and drive it over the wire, so routing, auth, content negotiation,
// and error mapping are all validated together.
//
// To run tests:
//
//	go test ./tests/...
package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/devcell/portal/internal/handler"
	"github.com/devcell/portal/internal/middleware"
	"github.com/devcell/portal/internal/service"
	"github.com/devcell/portal/internal/testing/fixtures"
	"github.com/devcell/portal/internal/testing/helpers"

	"github.com/stretchr/testify/require"
)

// Roster shared by every test server. The password for both accounts is
// the fixtures default, "testpass123".
const (
	memberEmail = "member@test.local"
	leadEmail   = "lead@test.local"
	password    = "testpass123"
)

// newTestServer starts a server with the full middleware chain and two
// seeded accounts. The server is closed when the test ends.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	accounts := []service.SeedAccount{
		fixtures.SeedAccount(func(o *fixtures.AccountOpts) {
			o.Email = memberEmail
			o.Name = "Test Member"
		}),
		fixtures.SeedAccount(func(o *fixtures.AccountOpts) {
			o.Email = leadEmail
			o.Name = "Test Lead"
			o.Role = "admin"
		}),
	}

	authService := service.NewAuthService(service.AuthServiceConfig{
		Accounts: accounts,
		Secret:   []byte("e2e-test-secret"),
		Issuer:   "portal.devcell.club",
		TokenTTL: time.Hour,
	})
	formService := service.NewFormService(service.FormServiceConfig{
		Pictures: service.NewPictureStore(),
		DraftTTL: time.Hour,
	})

	mux := handler.NewRouter(handler.RouterConfig{
		AuthService:    authService,
		FormService:    formService,
		ContentService: service.NewContentService(),
	})

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Rate:   1000,
		Window: time.Minute,
		Burst:  100,
	})
	t.Cleanup(rateLimiter.Stop)

	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS([]string{"*"}),
		middleware.RateLimit(rateLimiter),
		middleware.Compress,
	)

	server := httptest.NewServer(wrapped)
	t.Cleanup(server.Close)
	return server
}

// login authenticates against the test server and returns the bearer
// token.
func login(t *testing.T, server *httptest.Server, email, pass string) string {
	t.Helper()

	resp := helpers.NewRequest(t, http.MethodPost, server.URL, "/v1/auth/login").
		WithBody(map[string]string{"email": email, "password": pass}).
		Do()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Token struct {
				AccessToken string `json:"access_token"`
			} `json:"token"`
		} `json:"data"`
	}
	helpers.DecodeResponse(t, resp, &body)
	require.NotEmpty(t, body.Data.Token.AccessToken)
	return body.Data.Token.AccessToken
}

// createDraft opens a fresh draft form and returns its ID.
func createDraft(t *testing.T, server *httptest.Server, token string) string {
	t.Helper()

	resp := helpers.NewRequest(t, http.MethodPost, server.URL, "/v1/profile/forms").
		WithToken(token).
		Do()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := helpers.GetDataFromResponse(t, resp)
	id, _ := data["id"].(string)
	require.NotEmpty(t, id)
	return id
}
