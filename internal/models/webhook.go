package models

import "github.com/google/uuid"

type WebhookOutcome string

const (
	WebhookProcessed WebhookOutcome = "processed"
	WebhookIgnored   WebhookOutcome = "ignored"
	WebhookDuplicate WebhookOutcome = "duplicate"
)

type WebhookResult struct {
	Outcome   WebhookOutcome `json:"outcome"`
	EventType string         `json:"event_type"`
	OrderID   *uuid.UUID     `json:"order_id,omitempty"`
	Status    OrderStatus    `json:"status,omitempty"`
	Reason    string         `json:"reason,omitempty"`
}

type FulfillmentOrderRef struct {
	ID         int64  `json:"id"`
	ExternalID string `json:"external_id"`
	Status     string `json:"status"`
}

type FulfillmentShipment struct {
	Carrier        string `json:"carrier"`
	Service        string `json:"service"`
	TrackingNumber string `json:"tracking_number"`
	TrackingURL    string `json:"tracking_url"`
}

type FulfillmentEventData struct {
	Order    FulfillmentOrderRef  `json:"order"`
	Shipment *FulfillmentShipment `json:"shipment,omitempty"`
	Reason   string               `json:"reason,omitempty"`
}

// FulfillmentWebhook is the provider's event envelope.
type FulfillmentWebhook struct {
	Type    string               `json:"type"`
	Created int64                `json:"created"`
	Data    FulfillmentEventData `json:"data"`
}
