package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/pod-storefront/internal/models"
	"github.com/aaravmahajanofficial/pod-storefront/internal/utils"
	"github.com/google/uuid"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	GetOrderByStripeSession(ctx context.Context, sessionID string) (*models.Order, error)
	GetOrderByProviderOrderID(ctx context.Context, providerOrderID string) (*models.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID uuid.UUID, page, size int) ([]*models.Order, int, error)
	SetStripeSession(ctx context.Context, id uuid.UUID, sessionID string) error
	ApplyStatusChange(ctx context.Context, id uuid.UUID, change models.StatusChange) (*models.Order, error)
	UpdateNotes(ctx context.Context, id uuid.UUID, status models.OrderStatus, notes string) error
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

const orderColumns = `id, customer_id, email, status, currency, subtotal, shipping_fee, total_amount, shipping_info,
		stripe_session_id, payment_intent_id, provider_order_id, tracking_number, tracking_url, notes, created_at, updated_at`

// CreateOrder writes the order and its items in one transaction.
func (r *orderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	shippingInfo, err := json.Marshal(order.ShippingInfo)
	if err != nil {
		return fmt.Errorf("failed to marshal shipping info: %w", err)
	}

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	query := `
		INSERT INTO orders (id, customer_id, email, status, currency, subtotal, shipping_fee, total_amount, shipping_info, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err = tx.QueryRowContext(dbCtx, query, order.ID, order.CustomerID, order.Email, order.Status, order.Currency,
		order.Subtotal, order.ShippingFee, order.TotalAmount, shippingInfo).Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (id, order_id, product_id, variant_id, external_variant_id, name, quantity, unit_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	`

	for i := range order.Items {
		item := &order.Items[i]
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}

		item.OrderID = order.ID

		_, err := tx.ExecContext(dbCtx, itemQuery, item.ID, order.ID, item.ProductID, item.VariantID, item.ExternalVariantID, item.Name, item.Quantity, item.UnitPrice)
		if err != nil {
			return fmt.Errorf("failed to insert an order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}

	return nil
}

func scanOrder(row interface{ Scan(...any) error }) (*models.Order, error) {
	order := &models.Order{}

	var (
		customerID   uuid.NullUUID
		shippingInfo []byte
	)

	err := row.Scan(&order.ID, &customerID, &order.Email, &order.Status, &order.Currency, &order.Subtotal, &order.ShippingFee,
		&order.TotalAmount, &shippingInfo, &order.StripeSessionID, &order.PaymentIntentID, &order.ProviderOrderID,
		&order.TrackingNumber, &order.TrackingURL, &order.Notes, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if customerID.Valid {
		order.CustomerID = &customerID.UUID
	}

	if len(shippingInfo) > 0 && string(shippingInfo) != "null" {
		order.ShippingInfo = &models.ShippingInfo{}
		if err := json.Unmarshal(shippingInfo, order.ShippingInfo); err != nil {
			return nil, fmt.Errorf("failed to unmarshal shipping info: %w", err)
		}
	}

	return order, nil
}

func (r *orderRepository) getOrderBy(ctx context.Context, column string, value any) (*models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + orderColumns + ` FROM orders WHERE ` + column + ` = $1`

	order, err := scanOrder(r.DB.QueryRowContext(dbCtx, query, value))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("failed to get the order: %w", err)
	}

	items, err := r.getItems(dbCtx, order.ID)
	if err != nil {
		return nil, err
	}

	order.Items = items

	return order, nil
}

func (r *orderRepository) getItems(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, variant_id, external_variant_id, name, quantity, unit_price, created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY created_at, id
	`

	rows, err := r.DB.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get the order items: %w", err)
	}
	defer rows.Close()

	items := []models.OrderItem{}

	for rows.Next() {
		var item models.OrderItem

		err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.VariantID, &item.ExternalVariantID, &item.Name, &item.Quantity, &item.UnitPrice, &item.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over the rows: %w", err)
	}

	return items, nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	return r.getOrderBy(ctx, "id", id)
}

func (r *orderRepository) GetOrderByStripeSession(ctx context.Context, sessionID string) (*models.Order, error) {
	if sessionID == "" {
		return nil, ErrNotFound
	}

	return r.getOrderBy(ctx, "stripe_session_id", sessionID)
}

func (r *orderRepository) GetOrderByProviderOrderID(ctx context.Context, providerOrderID string) (*models.Order, error) {
	if providerOrderID == "" {
		return nil, ErrNotFound
	}

	return r.getOrderBy(ctx, "provider_order_id", providerOrderID)
}

// ListOrdersByCustomer returns orders newest first, without items.
func (r *orderRepository) ListOrdersByCustomer(ctx context.Context, customerID uuid.UUID, page, size int) ([]*models.Order, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM orders WHERE customer_id = $1`, customerID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	offset := (page - 1) * size

	query := `SELECT ` + orderColumns + ` FROM orders WHERE customer_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(dbCtx, query, customerID, size, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	orders := []*models.Order{}

	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan order: %w", err)
		}

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating over the rows: %w", err)
	}

	return orders, total, nil
}

func (r *orderRepository) SetStripeSession(ctx context.Context, id uuid.UUID, sessionID string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE orders SET stripe_session_id = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.DB.ExecContext(dbCtx, query, id, sessionID)
	if err != nil {
		return fmt.Errorf("failed to set stripe session: %w", err)
	}

	updated, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if updated == 0 {
		return ErrNotFound
	}

	return nil
}

// ApplyStatusChange moves the order from change.From to change.To only if it is
// still in change.From. Empty optional fields keep their stored value.
func (r *orderRepository) ApplyStatusChange(ctx context.Context, id uuid.UUID, change models.StatusChange) (*models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE orders SET
			status = $3,
			stripe_session_id = COALESCE(NULLIF($4, ''), stripe_session_id),
			payment_intent_id = COALESCE(NULLIF($5, ''), payment_intent_id),
			provider_order_id = COALESCE(NULLIF($6, ''), provider_order_id),
			tracking_number = COALESCE(NULLIF($7, ''), tracking_number),
			tracking_url = COALESCE(NULLIF($8, ''), tracking_url),
			notes = COALESCE(NULLIF($9, ''), notes),
			updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING ` + orderColumns

	order, err := scanOrder(r.DB.QueryRowContext(dbCtx, query, id, change.From, change.To, change.StripeSessionID,
		change.PaymentIntentID, change.ProviderOrderID, change.TrackingNumber, change.TrackingURL, change.Notes))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStatusConflict
		}

		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	items, err := r.getItems(dbCtx, id)
	if err != nil {
		return nil, err
	}

	order.Items = items

	return order, nil
}

// UpdateNotes replaces the notes of an order that is still in status.
func (r *orderRepository) UpdateNotes(ctx context.Context, id uuid.UUID, status models.OrderStatus, notes string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE orders SET notes = $3, updated_at = NOW() WHERE id = $1 AND status = $2`

	result, err := r.DB.ExecContext(dbCtx, query, id, status, notes)
	if err != nil {
		return fmt.Errorf("failed to update order notes: %w", err)
	}

	updated, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if updated == 0 {
		return ErrStatusConflict
	}

	return nil
}
