package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aaravmahajanofficial/pod-storefront/internal/config"
	"github.com/aaravmahajanofficial/pod-storefront/internal/models"
	"github.com/aaravmahajanofficial/pod-storefront/internal/pricing"
	repository "github.com/aaravmahajanofficial/pod-storefront/internal/repositories"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var storeRates = models.Rates{"EUR": 1.0, "CZK": 25.0, "GBP": 0.86}

func newPricingEngine() *pricing.Engine {
	return pricing.NewEngine(config.Pricing{
		Zones:           config.DefaultZones(),
		DefaultCurrency: "EUR",
		ShippingFeeEUR:  4.99,
	})
}

func newRedisClient(t *testing.T) *redis.Client {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return client
}

// memOrders is an in-memory order repository with the same conditional
// status update semantics as the Postgres one.
type memOrders struct {
	mu     sync.Mutex
	orders map[uuid.UUID]models.Order
	writes int
}

func newMemOrders(orders ...*models.Order) *memOrders {
	m := &memOrders{orders: map[uuid.UUID]models.Order{}}
	for _, o := range orders {
		m.orders[o.ID] = *o
	}

	return m
}

func (m *memOrders) CreateOrder(_ context.Context, order *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.orders[order.ID] = *order
	m.writes++

	return nil
}

func (m *memOrders) GetOrderByID(_ context.Context, id uuid.UUID) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	return &o, nil
}

func (m *memOrders) find(match func(models.Order) bool) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, o := range m.orders {
		if match(o) {
			return &o, nil
		}
	}

	return nil, repository.ErrNotFound
}

func (m *memOrders) GetOrderByStripeSession(_ context.Context, sessionID string) (*models.Order, error) {
	return m.find(func(o models.Order) bool { return o.StripeSessionID == sessionID })
}

func (m *memOrders) GetOrderByProviderOrderID(_ context.Context, providerOrderID string) (*models.Order, error) {
	return m.find(func(o models.Order) bool { return o.ProviderOrderID == providerOrderID })
}

func (m *memOrders) ListOrdersByCustomer(_ context.Context, customerID uuid.UUID, _, _ int) ([]*models.Order, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []*models.Order{}
	for _, o := range m.orders {
		if o.CustomerID != nil && *o.CustomerID == customerID {
			out = append(out, &o)
		}
	}

	return out, len(out), nil
}

func (m *memOrders) SetStripeSession(_ context.Context, id uuid.UUID, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.orders[id]
	if !ok {
		return repository.ErrNotFound
	}

	o.StripeSessionID = sessionID
	m.orders[id] = o
	m.writes++

	return nil
}

func (m *memOrders) ApplyStatusChange(_ context.Context, id uuid.UUID, change models.StatusChange) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	if o.Status != change.From {
		return nil, repository.ErrStatusConflict
	}

	o.Status = change.To

	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&o.StripeSessionID, change.StripeSessionID)
	set(&o.PaymentIntentID, change.PaymentIntentID)
	set(&o.ProviderOrderID, change.ProviderOrderID)
	set(&o.TrackingNumber, change.TrackingNumber)
	set(&o.TrackingURL, change.TrackingURL)
	set(&o.Notes, change.Notes)

	m.orders[id] = o
	m.writes++

	return &o, nil
}

func (m *memOrders) UpdateNotes(_ context.Context, id uuid.UUID, status models.OrderStatus, notes string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.orders[id]
	if !ok || o.Status != status {
		return repository.ErrStatusConflict
	}

	o.Notes = notes
	m.orders[id] = o
	m.writes++

	return nil
}

func (m *memOrders) get(id uuid.UUID) models.Order {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.orders[id]
}

func (m *memOrders) writeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.writes
}

func paidOrder() *models.Order {
	return &models.Order{
		ID:       uuid.New(),
		Email:    "jane@example.com",
		Status:   models.OrderStatusPaid,
		Currency: "EUR",
		Items: []models.OrderItem{
			{VariantID: 11, ExternalVariantID: "4012", Name: "Classic Tee / M", Quantity: 2, UnitPrice: 19.99},
			{VariantID: 12, ExternalVariantID: "sync-abc", Name: "Mug", Quantity: 1, UnitPrice: 12.5},
		},
		ShippingInfo: &models.ShippingInfo{
			Name:        "Jane Doe",
			Address1:    "Main St 1",
			City:        "Berlin",
			CountryCode: "DE",
			Zip:         "10115",
			Email:       "jane@example.com",
		},
	}
}
