package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/aaravmahajanofficial/pod-storefront/internal/models"
	"github.com/aaravmahajanofficial/pod-storefront/internal/utils"
)

type SubscriberRepository interface {
	// Subscribe upserts by email and reports whether a new row was created.
	// The stored id and timestamps are written back into subscriber.
	Subscribe(ctx context.Context, subscriber *models.Subscriber) (bool, error)
	// Unsubscribe deletes by email and reports whether a row existed.
	Unsubscribe(ctx context.Context, email string) (bool, error)
}

type subscriberRepository struct {
	DB *sql.DB
}

func NewSubscriberRepo(db *sql.DB) SubscriberRepository {
	return &subscriberRepository{DB: db}
}

func (r *subscriberRepository) Subscribe(ctx context.Context, subscriber *models.Subscriber) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	subscriber.Email = strings.ToLower(strings.TrimSpace(subscriber.Email))

	query := `
		INSERT INTO subscribers (id, email, locale, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (email) DO UPDATE SET locale = EXCLUDED.locale, status = EXCLUDED.status, updated_at = NOW()
		RETURNING id, created_at, updated_at, (xmax = 0) AS inserted
	`

	var inserted bool

	err := r.DB.QueryRowContext(dbCtx, query, subscriber.ID, subscriber.Email, subscriber.Locale, subscriber.Status).
		Scan(&subscriber.ID, &subscriber.CreatedAt, &subscriber.UpdatedAt, &inserted)
	if err != nil {
		return false, fmt.Errorf("failed to upsert subscriber: %w", err)
	}

	return inserted, nil
}

func (r *subscriberRepository) Unsubscribe(ctx context.Context, email string) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM subscribers WHERE email = $1`, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return false, fmt.Errorf("failed to delete subscriber: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get deleted rows: %w", err)
	}

	return deleted > 0, nil
}
