package service

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/aaravmahajanofficial/pod-storefront/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/pod-storefront/internal/errors"
	"github.com/aaravmahajanofficial/pod-storefront/internal/events"
	"github.com/aaravmahajanofficial/pod-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/pod-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/pod-storefront/internal/repositories"
	"github.com/aaravmahajanofficial/pod-storefront/pkg/printful"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	fulfillmentProvider = "fulfillment"
	resubmittedNote     = "Resubmitted to fulfillment"
)

type FulfillmentService interface {
	// Submit sends a paid (or previously failed) order to the print provider.
	Submit(ctx context.Context, orderID uuid.UUID) (*models.FulfillmentResponse, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) (*models.WebhookResult, error)
}

type fulfillmentService struct {
	orders        repository.OrderRepository
	provider      printful.Client
	eventStore    repository.EventStore
	transitions   *transitioner
	webhookSecret string
	confirm       bool
}

func NewFulfillmentService(orders repository.OrderRepository, provider printful.Client, eventStore repository.EventStore, publisher events.Publisher, webhookSecret string, confirmOrders bool) FulfillmentService {
	return &fulfillmentService{
		orders:        orders,
		provider:      provider,
		eventStore:    eventStore,
		transitions:   &transitioner{orders: orders, publisher: publisher, now: time.Now},
		webhookSecret: webhookSecret,
		confirm:       confirmOrders,
	}
}

func (s *fulfillmentService) Submit(ctx context.Context, orderID uuid.UUID) (*models.FulfillmentResponse, error) {
	logger := middleware.LoggerFromContext(ctx).With(slog.String("orderId", orderID.String()))

	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Order not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to get order").WithError(err)
	}

	if order.ShippingInfo == nil {
		return nil, appErrors.BadRequestError("Order has no shipping information")
	}

	if order.Status != models.OrderStatusPaid && order.Status != models.OrderStatusError {
		return nil, appErrors.ConflictError("Order in status " + order.Status.String() + " cannot be submitted for fulfillment")
	}

	result, err := s.provider.CreateOrder(ctx, s.providerOrder(order))
	if err != nil {
		metrics.RecordFulfillmentSubmission("failed")
		logger.Error("Fulfillment submission failed", slog.String("error", err.Error()))

		s.markFailed(ctx, order, "Fulfillment submission failed: "+err.Error())

		return nil, appErrors.ThirdPartyError("Failed to submit order for fulfillment").
			WithDetail(err.Error()).
			WithError(err)
	}

	metrics.RecordFulfillmentSubmission("submitted")

	change := models.StatusChange{
		From:            order.Status,
		To:              models.OrderStatusProcessing,
		ProviderOrderID: result.ProviderOrderID(),
	}
	if order.Status == models.OrderStatusError {
		change.Notes = resubmittedNote
	}

	updated, err := s.transitions.apply(ctx, order, change)
	if err != nil {
		logger.Error("Order submitted but status was not updated",
			slog.String("providerOrderId", result.ProviderOrderID()),
			slog.String("error", err.Error()),
		)

		return nil, err
	}

	return &models.FulfillmentResponse{
		OrderID:         updated.ID,
		ProviderOrderID: updated.ProviderOrderID,
		Status:          updated.Status,
	}, nil
}

// markFailed moves the order to error. An order already in error keeps its
// status and gets the new reason in its notes.
func (s *fulfillmentService) markFailed(ctx context.Context, order *models.Order, note string) {
	if order.Status == models.OrderStatusError {
		if err := s.orders.UpdateNotes(ctx, order.ID, models.OrderStatusError, note); err != nil {
			middleware.LoggerFromContext(ctx).Error("Failed to record fulfillment failure",
				slog.String("orderId", order.ID.String()),
				slog.String("error", err.Error()),
			)
		}

		return
	}

	if _, err := s.transitions.apply(ctx, order, models.StatusChange{
		From:  order.Status,
		To:    models.OrderStatusError,
		Notes: note,
	}); err != nil {
		middleware.LoggerFromContext(ctx).Error("Failed to mark order as errored",
			slog.String("orderId", order.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}

func (s *fulfillmentService) providerOrder(order *models.Order) *printful.OrderRequest {
	info := order.ShippingInfo

	items := make([]printful.Item, 0, len(order.Items))
	for _, item := range order.Items {
		pi := printful.Item{
			Quantity:    item.Quantity,
			RetailPrice: decimal.NewFromFloat(item.UnitPrice).StringFixed(2),
			Name:        item.Name,
		}

		if id, err := strconv.ParseInt(item.ExternalVariantID, 10, 64); err == nil {
			pi.VariantID = id
		} else {
			pi.ExternalVariantID = item.ExternalVariantID
		}

		items = append(items, pi)
	}

	return &printful.OrderRequest{
		ExternalID: order.ID.String(),
		Recipient: printful.Recipient{
			Name:        info.Name,
			Address1:    info.Address1,
			Address2:    info.Address2,
			City:        info.City,
			StateCode:   info.StateCode,
			CountryCode: info.CountryCode,
			Zip:         info.Zip,
			Phone:       info.Phone,
			Email:       info.Email,
		},
		Items:    items,
		Currency: order.Currency,
		Confirm:  s.confirm,
	}
}

func (s *fulfillmentService) verifySignature(signature string) bool {
	if s.webhookSecret == "" || signature == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(signature), []byte(s.webhookSecret)) == 1
}

// providerTarget maps a provider event type to the status it implies.
func providerTarget(eventType string) (models.OrderStatus, bool) {
	switch eventType {
	case "package_shipped":
		return models.OrderStatusShipped, true
	case "package_delivered":
		return models.OrderStatusDelivered, true
	case "order_failed":
		return models.OrderStatusError, true
	case "order_canceled":
		return models.OrderStatusCancelled, true
	default:
		return "", false
	}
}

func (s *fulfillmentService) HandleWebhook(ctx context.Context, payload []byte, signature string) (*models.WebhookResult, error) {
	logger := middleware.LoggerFromContext(ctx)

	if !s.verifySignature(signature) {
		metrics.RecordWebhookEvent(fulfillmentProvider, "rejected")
		logger.Warn("Fulfillment webhook signature mismatch")

		return nil, appErrors.SignatureError("Invalid webhook signature")
	}

	var event models.FulfillmentWebhook
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, appErrors.BadRequestError("Malformed webhook payload").WithError(err)
	}

	result := &models.WebhookResult{EventType: event.Type}

	target, known := providerTarget(event.Type)
	if !known {
		metrics.RecordWebhookEvent(fulfillmentProvider, "ignored")
		logger.Info("Ignoring fulfillment event", slog.String("eventType", event.Type))

		result.Outcome = models.WebhookIgnored
		result.Reason = "unhandled event type"

		return result, nil
	}

	order, err := s.resolveOrder(ctx, &event)
	if err != nil {
		return nil, err
	}

	result.OrderID = &order.ID
	logger = logger.With(slog.String("orderId", order.ID.String()), slog.String("eventType", event.Type))

	eventKey := fmt.Sprintf("%s:%s:%d", event.Type, order.ID, event.Created)

	claimed, err := s.eventStore.Claim(ctx, fulfillmentProvider, eventKey)
	if err != nil {
		logger.Warn("Webhook idempotency check failed, processing anyway", slog.String("error", err.Error()))
		claimed = true
	}

	if !claimed {
		metrics.RecordWebhookEvent(fulfillmentProvider, "duplicate")

		result.Outcome = models.WebhookDuplicate
		result.Status = order.Status

		return result, nil
	}

	change := models.StatusChange{From: order.Status, To: target}

	switch target {
	case models.OrderStatusShipped:
		if sh := event.Data.Shipment; sh != nil {
			change.TrackingNumber = sh.TrackingNumber
			change.TrackingURL = sh.TrackingURL
		}
	case models.OrderStatusError, models.OrderStatusCancelled:
		if event.Data.Reason != "" {
			change.Notes = "Provider reported " + event.Type + ": " + event.Data.Reason
		}
	}

	updated, err := s.transitions.apply(ctx, order, change)
	if err != nil {
		if isInvalidTransition(err) {
			metrics.RecordWebhookEvent(fulfillmentProvider, "ignored")
			logger.Warn("Fulfillment event does not apply to the order's status",
				slog.String("status", order.Status.String()),
			)

			result.Outcome = models.WebhookIgnored
			result.Status = order.Status
			result.Reason = "transition not allowed from " + order.Status.String()

			return result, nil
		}

		s.release(ctx, eventKey)
		metrics.RecordWebhookEvent(fulfillmentProvider, "failed")

		return nil, err
	}

	metrics.RecordWebhookEvent(fulfillmentProvider, "processed")

	result.Outcome = models.WebhookProcessed
	result.Status = updated.Status

	return result, nil
}

// resolveOrder finds the order by our id first, then by the provider's order id.
func (s *fulfillmentService) resolveOrder(ctx context.Context, event *models.FulfillmentWebhook) (*models.Order, error) {
	if id, err := uuid.Parse(event.Data.Order.ExternalID); err == nil {
		order, err := s.orders.GetOrderByID(ctx, id)
		if err == nil {
			return order, nil
		}

		if !errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.DatabaseError("Failed to get order").WithError(err)
		}
	}

	if event.Data.Order.ID != 0 {
		order, err := s.orders.GetOrderByProviderOrderID(ctx, strconv.FormatInt(event.Data.Order.ID, 10))
		if err == nil {
			return order, nil
		}

		if !errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.DatabaseError("Failed to get order").WithError(err)
		}
	}

	metrics.RecordWebhookEvent(fulfillmentProvider, "unknown_order")

	return nil, appErrors.NotFoundError("Order not found for fulfillment event")
}

func (s *fulfillmentService) release(ctx context.Context, eventKey string) {
	if err := s.eventStore.Release(ctx, fulfillmentProvider, eventKey); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to release webhook claim",
			slog.String("event", eventKey),
			slog.String("error", err.Error()),
		)
	}
}
