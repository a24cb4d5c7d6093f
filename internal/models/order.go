package models

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusError      OrderStatus = "error"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusPaid, OrderStatusCancelled, OrderStatusError},
	OrderStatusPaid:       {OrderStatusProcessing, OrderStatusCancelled, OrderStatusError},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled, OrderStatusError},
	OrderStatusShipped:    {OrderStatusDelivered, OrderStatusError},
	OrderStatusError:      {OrderStatusProcessing, OrderStatusCancelled},
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusError:
		return true
	}

	return false
}

func (s OrderStatus) String() string {
	return string(s)
}

type ShippingInfo struct {
	Name        string `json:"name" validate:"required,max=200"`
	Address1    string `json:"address1" validate:"required,max=200"`
	Address2    string `json:"address2,omitempty" validate:"max=200"`
	City        string `json:"city" validate:"required,max=100"`
	StateCode   string `json:"state_code,omitempty" validate:"max=10"`
	CountryCode string `json:"country_code" validate:"required,iso3166_1_alpha2"`
	Zip         string `json:"zip" validate:"required,max=20"`
	Phone       string `json:"phone,omitempty" validate:"max=40"`
	Email       string `json:"email" validate:"required,email"`
}

type OrderItem struct {
	ID                uuid.UUID `json:"id"`
	OrderID           uuid.UUID `json:"order_id"`
	ProductID         int64     `json:"product_id"`
	VariantID         int64     `json:"variant_id"`
	ExternalVariantID string    `json:"external_variant_id"`
	Name              string    `json:"name"`
	Quantity          int       `json:"quantity"`
	UnitPrice         float64   `json:"unit_price"`
	CreatedAt         time.Time `json:"created_at"`
}

type Order struct {
	ID              uuid.UUID     `json:"id"`
	CustomerID      *uuid.UUID    `json:"customer_id,omitempty"`
	Email           string        `json:"email"`
	Status          OrderStatus   `json:"status"`
	Currency        string        `json:"currency"`
	Subtotal        float64       `json:"subtotal"`
	ShippingFee     float64       `json:"shipping_fee"`
	TotalAmount     float64       `json:"total_amount"`
	Items           []OrderItem   `json:"items"`
	ShippingInfo    *ShippingInfo `json:"shipping_info,omitempty"`
	StripeSessionID string        `json:"stripe_session_id,omitempty"`
	PaymentIntentID string        `json:"payment_intent_id,omitempty"`
	ProviderOrderID string        `json:"provider_order_id,omitempty"`
	TrackingNumber  string        `json:"tracking_number,omitempty"`
	TrackingURL     string        `json:"tracking_url,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// StatusChange describes a conditional status update: it applies only while the
// order is still in From. Optional fields are written when non-empty.
type StatusChange struct {
	From            OrderStatus
	To              OrderStatus
	StripeSessionID string
	PaymentIntentID string
	ProviderOrderID string
	TrackingNumber  string
	TrackingURL     string
	Notes           string
}

type CheckoutItem struct {
	VariantID int64 `json:"variantId" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,min=1,max=100"`
}

type CheckoutRequest struct {
	Items        []CheckoutItem `json:"items" validate:"required,min=1,dive"`
	ShippingInfo ShippingInfo   `json:"shippingInfo" validate:"required"`
	Currency     string         `json:"currency,omitempty" validate:"omitempty,len=3,alpha"`
}

type CheckoutResponse struct {
	URL     string    `json:"url"`
	OrderID uuid.UUID `json:"order_id"`
}

type OrderLookupRequest struct {
	ID    uuid.UUID `json:"id" validate:"required"`
	Email string    `json:"email" validate:"required,email"`
}

type FulfillmentResponse struct {
	OrderID         uuid.UUID   `json:"order_id"`
	ProviderOrderID string      `json:"provider_order_id"`
	Status          OrderStatus `json:"status"`
}

// OrderStatusEvent is published whenever an order changes status.
type OrderStatusEvent struct {
	OrderID         uuid.UUID   `json:"order_id"`
	From            OrderStatus `json:"from"`
	To              OrderStatus `json:"to"`
	ProviderOrderID string      `json:"provider_order_id,omitempty"`
	OccurredAt      time.Time   `json:"occurred_at"`
}
