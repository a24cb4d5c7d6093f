package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/pod-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/pod-storefront/internal/repositories/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRateLimit(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	newReq := func() *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/api/newsletter/subscribe", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

		return req
	}

	t.Run("Success - Allowed request reports remaining attempts", func(t *testing.T) {
		limiter := mocks.NewRateLimitRepository(t)
		limiter.On("CheckRateLimit", mock.Anything, "newsletter:203.0.113.7").Return(true, 4, 0, nil).Once()

		rr := httptest.NewRecorder()
		middleware.RateLimit(limiter, "newsletter")(ok).ServeHTTP(rr, newReq())

		assert.Equal(t, http.StatusAccepted, rr.Code)
		assert.Equal(t, "4", rr.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("Fail - Exceeded limit returns 429 with Retry-After", func(t *testing.T) {
		limiter := mocks.NewRateLimitRepository(t)
		limiter.On("CheckRateLimit", mock.Anything, "newsletter:203.0.113.7").Return(false, 0, 42, nil).Once()

		rr := httptest.NewRecorder()
		middleware.RateLimit(limiter, "newsletter")(ok).ServeHTTP(rr, newReq())

		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
		assert.Equal(t, "42", rr.Header().Get("Retry-After"))
		assert.Contains(t, rr.Body.String(), "TOO_MANY_REQUESTS")
	})

	t.Run("Success - Limiter failure lets the request through", func(t *testing.T) {
		limiter := mocks.NewRateLimitRepository(t)
		limiter.On("CheckRateLimit", mock.Anything, mock.Anything).Return(false, 0, 0, errors.New("redis down")).Once()

		rr := httptest.NewRecorder()
		middleware.RateLimit(limiter, "contact")(ok).ServeHTTP(rr, newReq())

		assert.Equal(t, http.StatusAccepted, rr.Code)
	})
}
