package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/pod-storefront/internal/cache"
	"github.com/aaravmahajanofficial/pod-storefront/internal/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	SessionCartTTL       = 30 * 24 * time.Hour
	sessionCartRetries   = 5
	sessionCartKeyPrefix = cache.CartKeyPrefix + ":session"
)

var ErrCartContention = errors.New("cart was modified concurrently, retries exhausted")

// sessionCartStore keeps anonymous carts as one JSON document per session.
// Writes rewrite the whole document under WATCH.
type sessionCartStore struct {
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionCartStore(client *redis.Client) CartStore {
	return &sessionCartStore{client: client, ttl: SessionCartTTL, now: time.Now}
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func sessionCartKey(sessionID string) string {
	return cache.Key(sessionCartKeyPrefix, sessionID)
}

func (s *sessionCartStore) emptyCart(sessionID string) *models.Cart {
	now := s.now()

	return &models.Cart{ID: uuid.New(), SessionID: sessionID, Items: []models.CartItem{}, CreatedAt: now, UpdatedAt: now}
}

// load treats a missing or unparseable document as an empty cart.
func (s *sessionCartStore) load(ctx context.Context, reader getter, sessionID string) (*models.Cart, error) {
	data, err := reader.Get(ctx, sessionCartKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return s.emptyCart(sessionID), nil
		}

		return nil, fmt.Errorf("failed to read session cart: %w", err)
	}

	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		slog.Warn("Discarding corrupt session cart",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()),
		)

		return s.emptyCart(sessionID), nil
	}

	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}

	cart.SessionID = sessionID

	return &cart, nil
}

func (s *sessionCartStore) GetCart(ctx context.Context, owner models.CartOwner) (*models.Cart, error) {
	if owner.SessionID == "" {
		return nil, ErrMissingCartOwner
	}

	return s.load(ctx, s.client, owner.SessionID)
}

// mutate runs a read-modify-write cycle, retrying when another writer wins the WATCH.
func (s *sessionCartStore) mutate(ctx context.Context, owner models.CartOwner, apply func(*models.Cart)) (*models.Cart, error) {
	if owner.SessionID == "" {
		return nil, ErrMissingCartOwner
	}

	key := sessionCartKey(owner.SessionID)

	var result *models.Cart

	txf := func(tx *redis.Tx) error {
		cart, err := s.load(ctx, tx, owner.SessionID)
		if err != nil {
			return err
		}

		apply(cart)
		cart.Version++
		cart.UpdatedAt = s.now()

		data, err := json.Marshal(cart)
		if err != nil {
			return fmt.Errorf("failed to marshal session cart: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, s.ttl)
			return nil
		})
		if err != nil {
			return err
		}

		result = cart

		return nil
	}

	for range sessionCartRetries {
		err := s.client.Watch(ctx, txf, key)
		if err == nil {
			return result, nil
		}

		if errors.Is(err, redis.TxFailedErr) {
			continue
		}

		return nil, fmt.Errorf("failed to write session cart: %w", err)
	}

	return nil, ErrCartContention
}

func (s *sessionCartStore) AddItem(ctx context.Context, owner models.CartOwner, item models.CartItem) (*models.Cart, error) {
	if item.AddedAt.IsZero() {
		item.AddedAt = s.now()
	}

	return s.mutate(ctx, owner, func(c *models.Cart) { c.Add(item) })
}

func (s *sessionCartStore) UpdateQuantity(ctx context.Context, owner models.CartOwner, variantID int64, quantity int) (*models.Cart, error) {
	return s.mutate(ctx, owner, func(c *models.Cart) { c.UpdateQuantity(variantID, quantity) })
}

func (s *sessionCartStore) RemoveItem(ctx context.Context, owner models.CartOwner, variantID int64) (*models.Cart, error) {
	return s.mutate(ctx, owner, func(c *models.Cart) { c.Remove(variantID) })
}

func (s *sessionCartStore) ClearCart(ctx context.Context, owner models.CartOwner) error {
	if owner.SessionID == "" {
		return ErrMissingCartOwner
	}

	if err := s.client.Del(ctx, sessionCartKey(owner.SessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear session cart: %w", err)
	}

	return nil
}
