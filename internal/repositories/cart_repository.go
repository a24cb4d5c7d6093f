package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/pod-storefront/internal/models"
	"github.com/aaravmahajanofficial/pod-storefront/internal/utils"
	"github.com/google/uuid"
)

var ErrMissingCartOwner = errors.New("cart owner is not set")

// CartStore persists a cart per owner. A missing cart reads as empty and a
// missing line makes update/remove a no-op.
type CartStore interface {
	GetCart(ctx context.Context, owner models.CartOwner) (*models.Cart, error)
	AddItem(ctx context.Context, owner models.CartOwner, item models.CartItem) (*models.Cart, error)
	UpdateQuantity(ctx context.Context, owner models.CartOwner, variantID int64, quantity int) (*models.Cart, error)
	RemoveItem(ctx context.Context, owner models.CartOwner, variantID int64) (*models.Cart, error)
	ClearCart(ctx context.Context, owner models.CartOwner) error
}

// postgresCartStore keeps authenticated carts. Every mutation is a single
// statement, so concurrent adds of the same variant cannot lose an increment.
type postgresCartStore struct {
	DB *sql.DB
}

func NewPostgresCartStore(db *sql.DB) CartStore {
	return &postgresCartStore{DB: db}
}

func userID(owner models.CartOwner) (uuid.UUID, error) {
	if owner.UserID == nil {
		return uuid.Nil, ErrMissingCartOwner
	}

	return *owner.UserID, nil
}

func (r *postgresCartStore) GetCart(ctx context.Context, owner models.CartOwner) (*models.Cart, error) {
	id, err := userID(owner)
	if err != nil {
		return nil, err
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	cart := &models.Cart{UserID: &id, Items: []models.CartItem{}}

	query := `SELECT id, version, created_at, updated_at FROM carts WHERE user_id = $1`

	err = r.DB.QueryRowContext(dbCtx, query, id).Scan(&cart.ID, &cart.Version, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return cart, nil
		}

		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	query = `
		SELECT variant_id, product_id, name, unit_price, image_url, quantity, added_at
		FROM cart_items
		WHERE cart_id = $1
		ORDER BY added_at, variant_id
	`

	rows, err := r.DB.QueryContext(dbCtx, query, cart.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.CartItem

		if err := rows.Scan(&item.VariantID, &item.ProductID, &item.Name, &item.UnitPrice, &item.ImageURL, &item.Quantity, &item.AddedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}

		cart.Items = append(cart.Items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over the rows: %w", err)
	}

	return cart, nil
}

func (r *postgresCartStore) AddItem(ctx context.Context, owner models.CartOwner, item models.CartItem) (*models.Cart, error) {
	id, err := userID(owner)
	if err != nil {
		return nil, err
	}

	if item.Quantity <= 0 {
		return r.GetCart(ctx, owner)
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		WITH c AS (
			INSERT INTO carts (id, user_id, version, created_at, updated_at)
			VALUES ($1, $2, 1, NOW(), NOW())
			ON CONFLICT (user_id) DO UPDATE SET version = carts.version + 1, updated_at = NOW()
			RETURNING id
		)
		INSERT INTO cart_items (cart_id, variant_id, product_id, name, unit_price, image_url, quantity, added_at)
		SELECT id, $3, $4, $5, $6, $7, $8, NOW() FROM c
		ON CONFLICT (cart_id, variant_id) DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
	`

	_, err = r.DB.ExecContext(dbCtx, query, uuid.New(), id, item.VariantID, item.ProductID, item.Name, item.UnitPrice, item.ImageURL, item.Quantity)
	if err != nil {
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}

	return r.GetCart(ctx, owner)
}

func (r *postgresCartStore) UpdateQuantity(ctx context.Context, owner models.CartOwner, variantID int64, quantity int) (*models.Cart, error) {
	if quantity <= 0 {
		return r.RemoveItem(ctx, owner, variantID)
	}

	id, err := userID(owner)
	if err != nil {
		return nil, err
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		WITH c AS (
			UPDATE carts SET version = version + 1, updated_at = NOW()
			WHERE user_id = $1
			RETURNING id
		)
		UPDATE cart_items SET quantity = $3
		WHERE cart_id = (SELECT id FROM c) AND variant_id = $2
	`

	if _, err := r.DB.ExecContext(dbCtx, query, id, variantID, quantity); err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}

	return r.GetCart(ctx, owner)
}

func (r *postgresCartStore) RemoveItem(ctx context.Context, owner models.CartOwner, variantID int64) (*models.Cart, error) {
	id, err := userID(owner)
	if err != nil {
		return nil, err
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		WITH c AS (
			UPDATE carts SET version = version + 1, updated_at = NOW()
			WHERE user_id = $1
			RETURNING id
		)
		DELETE FROM cart_items
		WHERE cart_id = (SELECT id FROM c) AND variant_id = $2
	`

	if _, err := r.DB.ExecContext(dbCtx, query, id, variantID); err != nil {
		return nil, fmt.Errorf("failed to remove cart item: %w", err)
	}

	return r.GetCart(ctx, owner)
}

func (r *postgresCartStore) ClearCart(ctx context.Context, owner models.CartOwner) error {
	id, err := userID(owner)
	if err != nil {
		return err
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		WITH c AS (
			UPDATE carts SET version = version + 1, updated_at = NOW()
			WHERE user_id = $1
			RETURNING id
		)
		DELETE FROM cart_items WHERE cart_id = (SELECT id FROM c)
	`

	if _, err := r.DB.ExecContext(dbCtx, query, id); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}
