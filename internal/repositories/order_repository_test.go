package repository_test

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/pod-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/pod-storefront/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderCols = []string{
	"id", "customer_id", "email", "status", "currency", "subtotal", "shipping_fee", "total_amount", "shipping_info",
	"stripe_session_id", "payment_intent_id", "provider_order_id", "tracking_number", "tracking_url", "notes", "created_at", "updated_at",
}

var orderItemCols = []string{"id", "order_id", "product_id", "variant_id", "external_variant_id", "name", "quantity", "unit_price", "created_at"}

const shippingJSON = `{"name":"Jana Nováková","address1":"Dlouhá 1","city":"Praha","country_code":"CZ","zip":"11000","email":"jana@example.com"}`

func setupOrderRepoTest(t *testing.T) (repository.OrderRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	return repository.NewOrderRepo(db), mock
}

func orderRow(id uuid.UUID, status models.OrderStatus, providerID, notes string) *sqlmock.Rows {
	now := time.Now()

	return sqlmock.NewRows(orderCols).AddRow(id.String(), nil, "jana@example.com", string(status), "CZK", 1000.0, 124.99, 1124.99,
		[]byte(shippingJSON), "cs_test_1", "", providerID, "", "", notes, now, now)
}

func TestCreateOrder(t *testing.T) {
	ctx := t.Context()
	customerID := uuid.New()

	newOrder := func() *models.Order {
		return &models.Order{
			ID:          uuid.New(),
			CustomerID:  &customerID,
			Email:       "jana@example.com",
			Status:      models.OrderStatusPending,
			Currency:    "CZK",
			Subtotal:    1000,
			ShippingFee: 124.99,
			TotalAmount: 1124.99,
			ShippingInfo: &models.ShippingInfo{
				Name: "Jana Nováková", Address1: "Dlouhá 1", City: "Praha", CountryCode: "CZ", Zip: "11000", Email: "jana@example.com",
			},
			Items: []models.OrderItem{
				{ProductID: 1, VariantID: 11, ExternalVariantID: "pf-4011", Name: "Classic Tee / M", Quantity: 2, UnitPrice: 500},
			},
		}
	}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo, mock := setupOrderRepoTest(t)
		order := newOrder()
		now := time.Now()

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO orders`)).
			WithArgs(order.ID, order.CustomerID, order.Email, order.Status, order.Currency, order.Subtotal, order.ShippingFee, order.TotalAmount, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO order_items`)).
			WithArgs(sqlmock.AnyArg(), order.ID, int64(1), int64(11), "pf-4011", "Classic Tee / M", 2, 500.0).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		// Act
		err := repo.CreateOrder(ctx, order)

		// Assert
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, order.Items[0].ID)
		assert.Equal(t, order.ID, order.Items[0].OrderID)
		assert.WithinDuration(t, now, order.CreatedAt, time.Second)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Item insert rolls back", func(t *testing.T) {
		// Arrange
		repo, mock := setupOrderRepoTest(t)
		order := newOrder()
		dbErr := errors.New("foreign key violation")

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO orders`)).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(time.Now(), time.Now()))
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO order_items`)).WillReturnError(dbErr)
		mock.ExpectRollback()

		// Act
		err := repo.CreateOrder(ctx, order)

		// Assert
		require.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), "failed to insert an order item")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetOrderByID(t *testing.T) {
	ctx := t.Context()
	orderID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo, mock := setupOrderRepoTest(t)

		mock.ExpectQuery(regexp.QuoteMeta(`FROM orders WHERE id = $1`)).
			WithArgs(orderID).
			WillReturnRows(orderRow(orderID, models.OrderStatusPaid, "", ""))
		mock.ExpectQuery(regexp.QuoteMeta(`FROM order_items`)).
			WithArgs(orderID).
			WillReturnRows(sqlmock.NewRows(orderItemCols).AddRow(uuid.NewString(), orderID.String(), 1, 11, "pf-4011", "Classic Tee / M", 2, 500.0, time.Now()))

		// Act
		order, err := repo.GetOrderByID(ctx, orderID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusPaid, order.Status)
		assert.Nil(t, order.CustomerID)
		require.NotNil(t, order.ShippingInfo)
		assert.Equal(t, "CZ", order.ShippingInfo.CountryCode)
		require.Len(t, order.Items, 1)
		assert.Equal(t, "pf-4011", order.Items[0].ExternalVariantID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Not found", func(t *testing.T) {
		repo, mock := setupOrderRepoTest(t)

		mock.ExpectQuery(regexp.QuoteMeta(`FROM orders WHERE id = $1`)).
			WithArgs(orderID).
			WillReturnRows(sqlmock.NewRows(orderCols))

		_, err := repo.GetOrderByID(ctx, orderID)

		require.ErrorIs(t, err, repository.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Empty provider id short-circuits", func(t *testing.T) {
		repo, mock := setupOrderRepoTest(t)

		_, err := repo.GetOrderByProviderOrderID(ctx, "")

		require.ErrorIs(t, err, repository.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListOrdersByCustomer(t *testing.T) {
	// Arrange
	repo, mock := setupOrderRepoTest(t)
	customerID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM orders WHERE customer_id = $1`)).
		WithArgs(customerID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at DESC LIMIT $2 OFFSET $3`)).
		WithArgs(customerID, 2, 2).
		WillReturnRows(orderRow(uuid.New(), models.OrderStatusShipped, "pf-1", ""))

	// Act
	orders, total, err := repo.ListOrdersByCustomer(t.Context(), customerID, 2, 2)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, orders, 1)
	assert.Equal(t, "pf-1", orders[0].ProviderOrderID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyStatusChange(t *testing.T) {
	ctx := t.Context()
	orderID := uuid.New()

	t.Run("Success - Conditional update", func(t *testing.T) {
		// Arrange
		repo, mock := setupOrderRepoTest(t)
		change := models.StatusChange{From: models.OrderStatusPaid, To: models.OrderStatusProcessing, ProviderOrderID: "pf-77"}

		mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1 AND status = $2`)).
			WithArgs(orderID, change.From, change.To, "", "", "pf-77", "", "", "").
			WillReturnRows(orderRow(orderID, models.OrderStatusProcessing, "pf-77", ""))
		mock.ExpectQuery(regexp.QuoteMeta(`FROM order_items`)).
			WithArgs(orderID).
			WillReturnRows(sqlmock.NewRows(orderItemCols))

		// Act
		order, err := repo.ApplyStatusChange(ctx, orderID, change)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusProcessing, order.Status)
		assert.Equal(t, "pf-77", order.ProviderOrderID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Status moved on", func(t *testing.T) {
		repo, mock := setupOrderRepoTest(t)
		change := models.StatusChange{From: models.OrderStatusPending, To: models.OrderStatusPaid}

		mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1 AND status = $2`)).
			WillReturnRows(sqlmock.NewRows(orderCols))

		_, err := repo.ApplyStatusChange(ctx, orderID, change)

		require.ErrorIs(t, err, repository.ErrStatusConflict)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSetStripeSession(t *testing.T) {
	orderID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		repo, mock := setupOrderRepoTest(t)

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE orders SET stripe_session_id = $2`)).
			WithArgs(orderID, "cs_test_9").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.SetStripeSession(t.Context(), orderID, "cs_test_9"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Unknown order", func(t *testing.T) {
		repo, mock := setupOrderRepoTest(t)

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE orders SET stripe_session_id = $2`)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.ErrorIs(t, repo.SetStripeSession(t.Context(), orderID, "cs"), repository.ErrNotFound)
	})
}

func TestUpdateNotes(t *testing.T) {
	orderID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		repo, mock := setupOrderRepoTest(t)

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE orders SET notes = $3, updated_at = NOW() WHERE id = $1 AND status = $2`)).
			WithArgs(orderID, models.OrderStatusError, "Fulfillment submission failed: address rejected").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateNotes(t.Context(), orderID, models.OrderStatusError, "Fulfillment submission failed: address rejected")

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Status moved on", func(t *testing.T) {
		repo, mock := setupOrderRepoTest(t)

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE orders SET notes = $3`)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateNotes(t.Context(), orderID, models.OrderStatusError, "note")

		require.ErrorIs(t, err, repository.ErrStatusConflict)
	})
}
