package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	appErrors "github.com/aaravmahajanofficial/pod-storefront/internal/errors"
	"github.com/aaravmahajanofficial/pod-storefront/internal/models"
	"github.com/aaravmahajanofficial/pod-storefront/internal/utils/response"
	"github.com/golang-jwt/jwt/v5"
)

type userContextKey string

const UserContextKey = userContextKey("user")

var (
	errMissingHeader = errors.New("authorization header is required")
	errHeaderFormat  = errors.New("invalid authorization format")
)

type AuthMiddleware struct {
	jwtKey []byte
	parser *jwt.Parser
}

func NewAuthMiddleware(jwtKey []byte) *AuthMiddleware {
	return &AuthMiddleware{
		jwtKey: jwtKey,
		parser: jwt.NewParser(jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}), jwt.WithExpirationRequired()),
	}
}

// ClaimsFromContext returns the verified claims, if the request carried a token.
func ClaimsFromContext(ctx context.Context) (*models.Claims, bool) {
	claims, ok := ctx.Value(UserContextKey).(*models.Claims)
	return claims, ok && claims != nil
}

func (m *AuthMiddleware) parse(r *http.Request) (*models.Claims, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, errMissingHeader
	}

	// "Bearer <token>"
	scheme, tokenString, found := strings.Cut(authHeader, " ")
	if !found || scheme != "Bearer" {
		return nil, errHeaderFormat
	}

	claims := &models.Claims{}

	token, err := m.parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}

		return m.jwtKey, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func (m *AuthMiddleware) withClaims(r *http.Request, claims *models.Claims) *http.Request {
	logger := LoggerFromContext(r.Context()).With(slog.String("userId", claims.UserID.String()))

	ctx := context.WithValue(r.Context(), UserContextKey, claims)
	ctx = context.WithValue(ctx, LoggerKey, logger)

	return r.WithContext(ctx)
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := LoggerFromContext(r.Context())

		claims, err := m.parse(r)
		if err != nil {
			switch {
			case errors.Is(err, errMissingHeader):
				logger.Warn("Missing authorization header")
				response.Error(w, appErrors.UnauthorizedError("Authorization header is required"))
			case errors.Is(err, errHeaderFormat):
				logger.Warn("Invalid authorization header format")
				response.Error(w, appErrors.UnauthorizedError("Invalid authorization format"))
			default:
				logger.Warn("JWT parsing failed", slog.String("error", err.Error()))
				response.Error(w, appErrors.UnauthorizedError("Invalid or expired token"))
			}

			return
		}

		r = m.withClaims(r, claims)
		LoggerFromContext(r.Context()).Debug("User authenticated")

		next.ServeHTTP(w, r)
	}
}

// OptionalAuthenticate attaches claims when a valid token is present and lets
// anonymous requests through. A token that is present but invalid is rejected.
func (m *AuthMiddleware) OptionalAuthenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			next.ServeHTTP(w, r)
			return
		}

		m.Authenticate(next).ServeHTTP(w, r)
	}
}

// RequireAdmin must run after Authenticate.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		if !claims.IsAdmin() {
			LoggerFromContext(r.Context()).Warn("Admin route denied", slog.String("role", claims.Role))
			response.Error(w, appErrors.ForbiddenError("Admin role required"))

			return
		}

		next.ServeHTTP(w, r)
	}
}
