package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const WebhookEventTTL = 7 * 24 * time.Hour

// EventStore records processed webhook event ids so redeliveries are acknowledged
// without being applied twice.
type EventStore interface {
	// Claim returns false when the event was already claimed.
	Claim(ctx context.Context, provider, eventID string) (bool, error)
	// Release forgets a claim so the provider's retry is processed again.
	Release(ctx context.Context, provider, eventID string) error
}

type redisEventStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewEventStore(client *redis.Client) EventStore {
	return &redisEventStore{client: client, ttl: WebhookEventTTL}
}

func eventKey(provider, eventID string) string {
	return fmt.Sprintf("webhook_event:%s:%s", provider, eventID)
}

func (s *redisEventStore) Claim(ctx context.Context, provider, eventID string) (bool, error) {
	claimed, err := s.client.SetNX(ctx, eventKey(provider, eventID), time.Now().Unix(), s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim webhook event: %w", err)
	}

	return claimed, nil
}

func (s *redisEventStore) Release(ctx context.Context, provider, eventID string) error {
	if err := s.client.Del(ctx, eventKey(provider, eventID)).Err(); err != nil {
		return fmt.Errorf("failed to release webhook event: %w", err)
	}

	return nil
}
