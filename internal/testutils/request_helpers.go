package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/aaravmahajanofficial/pod-storefront/internal/api/handlers"
	"github.com/aaravmahajanofficial/pod-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/pod-storefront/internal/models"
	"github.com/google/uuid"
)

func newRequest(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return req.WithContext(context.WithValue(req.Context(), middleware.LoggerKey, logger))
}

func withClaims(req *http.Request, claims *models.Claims) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), middleware.UserContextKey, claims))
}

// CreateTestRequestWithContext builds a request as a signed-in customer.
func CreateTestRequestWithContext(method, target string, body io.Reader, userID uuid.UUID, pathParams map[string]string) *http.Request {
	return withClaims(newRequest(method, target, body, pathParams), &models.Claims{UserID: userID, Email: "test@example.com"})
}

// CreateAdminRequest builds a request carrying admin claims.
func CreateAdminRequest(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	claims := &models.Claims{UserID: uuid.New(), Email: "admin@example.com", Role: models.RoleAdmin}

	return withClaims(newRequest(method, target, body, pathParams), claims)
}

// CreateGuestRequest builds an anonymous request bound to a guest cart session.
func CreateGuestRequest(method, target string, body io.Reader, sessionID string, pathParams map[string]string) *http.Request {
	req := newRequest(method, target, body, pathParams)
	req.Header.Set(handlers.CartSessionHeader, sessionID)

	return req
}

func CreateTestRequestWithoutContext(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	return newRequest(method, target, body, pathParams)
}
