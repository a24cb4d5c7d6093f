package service

import (
	"context"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/pod-storefront/internal/cache"
	"github.com/aaravmahajanofficial/pod-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/pod-storefront/internal/models"
	"github.com/aaravmahajanofficial/pod-storefront/pkg/exchangerates"
	"golang.org/x/sync/singleflight"
)

// rateFetchTimeout bounds a shared upstream round once it is detached from the
// caller that started it.
const rateFetchTimeout = 30 * time.Second

type CachedRates struct {
	Rates     models.Rates `json:"rates"`
	Source    string       `json:"source"`
	FetchedAt time.Time    `json:"fetched_at"`
}

// RateCache stores the last good rate table until its TTL runs out.
type RateCache interface {
	Get(ctx context.Context) (*CachedRates, bool, error)
	Set(ctx context.Context, rates *CachedRates, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

type memoryRateCache struct {
	mu        sync.RWMutex
	entry     *CachedRates
	expiresAt time.Time
	now       func() time.Time
}

// NewMemoryRateCache keeps rates in process. now may be nil.
func NewMemoryRateCache(now func() time.Time) RateCache {
	if now == nil {
		now = time.Now
	}

	return &memoryRateCache{now: now}
}

func (c *memoryRateCache) Get(_ context.Context) (*CachedRates, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.entry == nil || !c.now().Before(c.expiresAt) {
		return nil, false, nil
	}

	return c.entry, true, nil
}

func (c *memoryRateCache) Set(_ context.Context, rates *CachedRates, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entry = rates
	c.expiresAt = c.now().Add(ttl)

	return nil
}

func (c *memoryRateCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entry = nil

	return nil
}

type redisRateCache struct {
	cache cache.Cache
	key   string
}

// NewRedisRateCache shares one rate table across replicas.
func NewRedisRateCache(c cache.Cache) RateCache {
	return &redisRateCache{cache: c, key: cache.Key(cache.ExchangeRateKeyPrefix, "EUR")}
}

func (c *redisRateCache) Get(ctx context.Context) (*CachedRates, bool, error) {
	var entry CachedRates

	found, err := c.cache.Get(ctx, c.key, &entry)
	if err != nil || !found {
		return nil, false, err
	}

	return &entry, true, nil
}

func (c *redisRateCache) Set(ctx context.Context, rates *CachedRates, ttl time.Duration) error {
	return c.cache.Set(ctx, c.key, rates, ttl)
}

func (c *redisRateCache) Invalidate(ctx context.Context) error {
	return c.cache.Delete(ctx, c.key)
}

type ExchangeRateService interface {
	// GetRates never fails: when every source is down it returns the fallback
	// table with Success=false.
	GetRates(ctx context.Context) *models.RatesResult
	// Refresh drops the cached table and fetches again.
	Refresh(ctx context.Context) *models.RatesResult
}

type exchangeRateService struct {
	client   exchangerates.Client
	cache    RateCache
	ttl      time.Duration
	fallback models.Rates
	now      func() time.Time
	group    singleflight.Group
}

func NewExchangeRateService(client exchangerates.Client, rateCache RateCache, ttl time.Duration, fallback map[string]float64) ExchangeRateService {
	fb := make(models.Rates, len(fallback)+1)
	maps.Copy(fb, fallback)
	fb["EUR"] = 1.0

	return &exchangeRateService{
		client:   client,
		cache:    rateCache,
		ttl:      ttl,
		fallback: fb,
		now:      time.Now,
	}
}

func (s *exchangeRateService) GetRates(ctx context.Context) *models.RatesResult {
	entry, found, err := s.cache.Get(ctx)
	if err != nil {
		slog.Warn("Exchange rate cache read failed", slog.String("error", err.Error()))
	}

	if found {
		metrics.RecordExchangeRateLookup("cache_hit")

		return &models.RatesResult{
			Success:   true,
			Rates:     entry.Rates,
			Cached:    true,
			Source:    entry.Source,
			Timestamp: entry.FetchedAt,
		}
	}

	return s.fetch(ctx)
}

func (s *exchangeRateService) Refresh(ctx context.Context) *models.RatesResult {
	if err := s.cache.Invalidate(ctx); err != nil {
		slog.Warn("Exchange rate cache invalidation failed", slog.String("error", err.Error()))
	}

	return s.fetch(ctx)
}

// fetch collapses concurrent misses into one upstream round. The round outlives
// a cancelled first caller so the other waiters still get live rates.
func (s *exchangeRateService) fetch(ctx context.Context) *models.RatesResult {
	result, _, _ := s.group.Do("rates", func() (any, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), rateFetchTimeout)
		defer cancel()

		rates, source, err := s.client.Fetch(ctx)
		if err != nil {
			slog.Error("All exchange rate sources failed, serving fallback", slog.String("error", err.Error()))
			metrics.RecordExchangeRateLookup("fallback")

			return &models.RatesResult{
				Success:   false,
				Rates:     maps.Clone(s.fallback),
				Source:    "fallback",
				Timestamp: s.now(),
			}, nil
		}

		entry := &CachedRates{Rates: rates, Source: source, FetchedAt: s.now()}
		if err := s.cache.Set(ctx, entry, s.ttl); err != nil {
			slog.Warn("Exchange rate cache write failed", slog.String("error", err.Error()))
		}

		metrics.RecordExchangeRateLookup("fetched")

		return &models.RatesResult{
			Success:   true,
			Rates:     rates,
			Source:    source,
			Timestamp: entry.FetchedAt,
		}, nil
	})

	return result.(*models.RatesResult)
}
