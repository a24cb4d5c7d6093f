package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	service "github.com/aaravmahajanofficial/pod-storefront/internal/services"
	"github.com/aaravmahajanofficial/pod-storefront/pkg/exchangerates"
	"github.com/aaravmahajanofficial/pod-storefront/pkg/exchangerates/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var defaultFallback = map[string]float64{"EUR": 1.0, "CZK": 25.0, "GBP": 0.86}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func TestGetRates(t *testing.T) {
	live := map[string]float64{"EUR": 1.0, "CZK": 24.61, "GBP": 0.853}

	t.Run("Success - Second call within TTL is served from cache", func(t *testing.T) {
		// Arrange
		client := mocks.NewClient(t)
		clock := &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
		svc := service.NewExchangeRateService(client, service.NewMemoryRateCache(clock.Now), time.Hour, defaultFallback)

		client.On("Fetch", mock.Anything).Return(live, "https://rates.test", nil).Once()

		// Act
		first := svc.GetRates(t.Context())
		clock.Advance(59 * time.Minute)
		second := svc.GetRates(t.Context())

		// Assert
		assert.True(t, first.Success)
		assert.False(t, first.Cached)
		assert.True(t, second.Success)
		assert.True(t, second.Cached)
		assert.Equal(t, first.Rates, second.Rates)
		client.AssertNumberOfCalls(t, "Fetch", 1)
	})

	t.Run("Success - Cancelled caller does not cancel the shared fetch", func(t *testing.T) {
		// Arrange
		client := mocks.NewClient(t)
		svc := service.NewExchangeRateService(client, service.NewMemoryRateCache(nil), time.Hour, defaultFallback)

		client.On("Fetch", mock.MatchedBy(func(ctx context.Context) bool {
			_, hasDeadline := ctx.Deadline()
			return ctx.Err() == nil && hasDeadline
		})).Return(live, "https://rates.test", nil).Once()

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		// Act
		result := svc.GetRates(ctx)

		// Assert
		assert.True(t, result.Success)
		assert.Equal(t, "https://rates.test", result.Source)
		assert.InDelta(t, 24.61, result.Rates["CZK"], 0.0001)
	})

	t.Run("Success - Expired entry triggers a new fetch", func(t *testing.T) {
		// Arrange
		client := mocks.NewClient(t)
		clock := &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
		svc := service.NewExchangeRateService(client, service.NewMemoryRateCache(clock.Now), time.Hour, defaultFallback)

		client.On("Fetch", mock.Anything).Return(live, "https://rates.test", nil).Twice()

		// Act
		svc.GetRates(t.Context())
		clock.Advance(time.Hour)
		result := svc.GetRates(t.Context())

		// Assert
		assert.False(t, result.Cached)
		client.AssertNumberOfCalls(t, "Fetch", 2)
	})

	t.Run("Fallback - All sources failed", func(t *testing.T) {
		// Arrange
		client := mocks.NewClient(t)
		svc := service.NewExchangeRateService(client, service.NewMemoryRateCache(nil), time.Hour, defaultFallback)

		client.On("Fetch", mock.Anything).Return(nil, "", exchangerates.ErrAllSourcesFailed).Twice()

		// Act
		first := svc.GetRates(t.Context())
		second := svc.GetRates(t.Context())

		// Assert
		require.NotNil(t, first)
		assert.False(t, first.Success)
		assert.Equal(t, "fallback", first.Source)
		assert.InDelta(t, 1.0, first.Rates["EUR"], 0.0001)
		assert.InDelta(t, 25.0, first.Rates["CZK"], 0.0001)
		assert.InDelta(t, 0.86, first.Rates["GBP"], 0.0001)
		assert.False(t, second.Cached, "fallback rates are never cached")
		client.AssertNumberOfCalls(t, "Fetch", 2)
	})

	t.Run("Fallback - Mutating the result does not leak into later calls", func(t *testing.T) {
		client := mocks.NewClient(t)
		svc := service.NewExchangeRateService(client, service.NewMemoryRateCache(nil), time.Hour, defaultFallback)

		client.On("Fetch", mock.Anything).Return(nil, "", errors.New("down"))

		svc.GetRates(t.Context()).Rates["CZK"] = 999

		assert.InDelta(t, 25.0, svc.GetRates(t.Context()).Rates["CZK"], 0.0001)
	})
}

func TestRefreshRates(t *testing.T) {
	// Arrange
	client := mocks.NewClient(t)
	svc := service.NewExchangeRateService(client, service.NewMemoryRateCache(nil), time.Hour, defaultFallback)

	client.On("Fetch", mock.Anything).Return(map[string]float64{"EUR": 1, "CZK": 24}, "a", nil).Once()
	client.On("Fetch", mock.Anything).Return(map[string]float64{"EUR": 1, "CZK": 26}, "b", nil).Once()

	// Act
	svc.GetRates(t.Context())
	refreshed := svc.Refresh(t.Context())
	cached := svc.GetRates(t.Context())

	// Assert
	assert.False(t, refreshed.Cached)
	assert.InDelta(t, 26.0, refreshed.Rates["CZK"], 0.0001)
	assert.True(t, cached.Cached)
	assert.Equal(t, "b", cached.Source)
}
