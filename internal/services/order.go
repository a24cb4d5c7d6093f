package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/pod-storefront/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/pod-storefront/internal/errors"
	"github.com/aaravmahajanofficial/pod-storefront/internal/events"
	"github.com/aaravmahajanofficial/pod-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/pod-storefront/internal/models"
	"github.com/aaravmahajanofficial/pod-storefront/internal/pricing"
	repository "github.com/aaravmahajanofficial/pod-storefront/internal/repositories"
	"github.com/aaravmahajanofficial/pod-storefront/pkg/stripe"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	stripego "github.com/stripe/stripe-go/v81"
)

const stripeProvider = "stripe"

type CheckoutURLs struct {
	BaseURL     string
	SuccessPath string
	CancelPath  string
}

func (u CheckoutURLs) success(orderID uuid.UUID) string {
	return strings.TrimRight(u.BaseURL, "/") + strings.ReplaceAll(u.SuccessPath, "{ORDER_ID}", orderID.String())
}

func (u CheckoutURLs) cancel() string {
	return strings.TrimRight(u.BaseURL, "/") + u.CancelPath
}

type OrderService interface {
	CreateCheckout(ctx context.Context, owner models.CartOwner, req *models.CheckoutRequest) (*models.CheckoutResponse, error)
	GetOrder(ctx context.Context, id uuid.UUID, customerID uuid.UUID) (*models.Order, error)
	ListOrders(ctx context.Context, customerID uuid.UUID, page, size int) (*models.PaginatedResponse, error)
	// LookupOrder lets guests read an order when they know its id and email.
	LookupOrder(ctx context.Context, id uuid.UUID, email string) (*models.Order, error)
	HandleStripeWebhook(ctx context.Context, payload []byte, signature string) (*models.WebhookResult, error)
}

type OrderDeps struct {
	Orders        repository.OrderRepository
	Products      repository.ProductRepository
	EventStore    repository.EventStore
	Carts         CartService
	Rates         ExchangeRateService
	Engine        *pricing.Engine
	Stripe        stripe.Client
	Fulfillment   FulfillmentService
	Notifications NotificationService
	Publisher     events.Publisher
	URLs          CheckoutURLs
}

type orderService struct {
	OrderDeps
	transitions *transitioner
}

func NewOrderService(deps OrderDeps) OrderService {
	if deps.Publisher == nil {
		deps.Publisher = events.NewNoopPublisher()
	}

	return &orderService{
		OrderDeps:   deps,
		transitions: &transitioner{orders: deps.Orders, publisher: deps.Publisher, now: time.Now},
	}
}

// CreateCheckout prices the items for the shipping country, stores a pending
// order and opens a hosted checkout session for it.
func (s *orderService) CreateCheckout(ctx context.Context, owner models.CartOwner, req *models.CheckoutRequest) (*models.CheckoutResponse, error) {
	logger := middleware.LoggerFromContext(ctx)

	if len(req.Items) == 0 {
		return nil, appErrors.BadRequestError("Checkout needs at least one item")
	}

	quantities := map[int64]int{}
	ids := []int64{}

	for _, item := range req.Items {
		if item.Quantity < 1 {
			return nil, appErrors.BadRequestError(fmt.Sprintf("Quantity for variant %d must be at least 1", item.VariantID))
		}

		if _, seen := quantities[item.VariantID]; !seen {
			ids = append(ids, item.VariantID)
		}

		quantities[item.VariantID] += item.Quantity
	}

	variants, err := s.Products.GetVariantsByIDs(ctx, ids)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to load variants").WithError(err)
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = s.Engine.DefaultCurrency()
	}

	rates := s.Rates.GetRates(ctx).Rates
	country := strings.ToUpper(req.ShippingInfo.CountryCode)

	orderID := uuid.New()
	now := time.Now().UTC()
	subtotal := decimal.Zero
	items := make([]models.OrderItem, 0, len(ids))

	for _, id := range ids {
		variant, ok := variants[id]
		if !ok {
			return nil, appErrors.NotFoundError(fmt.Sprintf("Variant %d not found", id))
		}

		if !variant.Active {
			return nil, appErrors.BadRequestError(fmt.Sprintf("Variant %d is not available", id))
		}

		price := s.Engine.PriceFor(variant.BasePrice, country, currency, rates)
		qty := quantities[id]
		subtotal = subtotal.Add(decimal.NewFromFloat(price.Amount).Mul(decimal.NewFromInt(int64(qty))))

		items = append(items, models.OrderItem{
			ID:                uuid.New(),
			OrderID:           orderID,
			ProductID:         variant.ProductID,
			VariantID:         variant.ID,
			ExternalVariantID: variant.ExternalID,
			Name:              variant.Name,
			Quantity:          qty,
			UnitPrice:         price.Amount,
			CreatedAt:         now,
		})
	}

	shipping := decimal.NewFromFloat(s.Engine.ShippingFee(currency, rates)).Round(2)
	subtotal = subtotal.Round(2)

	info := req.ShippingInfo
	info.CountryCode = country

	order := &models.Order{
		ID:           orderID,
		CustomerID:   owner.UserID,
		Email:        info.Email,
		Status:       models.OrderStatusPending,
		Currency:     currency,
		Subtotal:     subtotal.InexactFloat64(),
		ShippingFee:  shipping.InexactFloat64(),
		TotalAmount:  subtotal.Add(shipping).Round(2).InexactFloat64(),
		Items:        items,
		ShippingInfo: &info,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Orders.CreateOrder(ctx, order); err != nil {
		return nil, appErrors.DatabaseError("Failed to create order").WithError(err)
	}

	logger = logger.With(slog.String("orderId", order.ID.String()))

	lineItems := make([]stripe.LineItem, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, stripe.LineItem{Name: item.Name, UnitPrice: item.UnitPrice, Quantity: int64(item.Quantity)})
	}

	session, err := s.Stripe.CreateCheckoutSession(ctx, &stripe.CheckoutParams{
		OrderID:       order.ID.String(),
		CustomerEmail: order.Email,
		Currency:      currency,
		Items:         lineItems,
		ShippingFee:   order.ShippingFee,
		SuccessURL:    s.URLs.success(order.ID),
		CancelURL:     s.URLs.cancel(),
	})
	if err != nil {
		logger.Error("Checkout session creation failed", slog.String("error", err.Error()))

		if _, tErr := s.transitions.apply(ctx, order, models.StatusChange{
			From:  models.OrderStatusPending,
			To:    models.OrderStatusError,
			Notes: "Checkout session creation failed: " + err.Error(),
		}); tErr != nil {
			logger.Error("Failed to mark order as errored", slog.String("error", tErr.Error()))
		}

		return nil, appErrors.ThirdPartyError("Failed to create checkout session").WithError(err)
	}

	if err := s.Orders.SetStripeSession(ctx, order.ID, session.ID); err != nil {
		return nil, appErrors.DatabaseError("Failed to store checkout session").WithError(err)
	}

	if owner.UserID != nil || owner.SessionID != "" {
		if err := s.Carts.ClearCart(ctx, owner); err != nil {
			logger.Warn("Cart was not cleared after checkout", slog.String("error", err.Error()))
		}
	}

	logger.Info("Checkout session created",
		slog.String("currency", currency),
		slog.Float64("total", order.TotalAmount),
	)

	return &models.CheckoutResponse{URL: session.URL, OrderID: order.ID}, nil
}

func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID, customerID uuid.UUID) (*models.Order, error) {
	order, err := s.getOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.CustomerID == nil || *order.CustomerID != customerID {
		return nil, appErrors.NotFoundError("Order not found")
	}

	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, customerID uuid.UUID, page, size int) (*models.PaginatedResponse, error) {
	page, size = models.NormalizePage(page, size, 10, 10)

	orders, total, err := s.Orders.ListOrdersByCustomer(ctx, customerID, page, size)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return &models.PaginatedResponse{Data: orders, Total: total, Page: page, PageSize: size}, nil
}

func (s *orderService) LookupOrder(ctx context.Context, id uuid.UUID, email string) (*models.Order, error) {
	order, err := s.getOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(strings.TrimSpace(order.Email), strings.TrimSpace(email)) {
		return nil, appErrors.NotFoundError("Order not found")
	}

	return order, nil
}

func (s *orderService) getOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.Orders.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Order not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to get order").WithError(err)
	}

	return order, nil
}

// HandleStripeWebhook verifies and applies one payment event. Each event id is
// processed at most once.
func (s *orderService) HandleStripeWebhook(ctx context.Context, payload []byte, signature string) (*models.WebhookResult, error) {
	logger := middleware.LoggerFromContext(ctx)

	event, err := s.Stripe.VerifyWebhookSignature(payload, signature)
	if err != nil {
		metrics.RecordWebhookEvent(stripeProvider, "rejected")
		logger.Warn("Stripe webhook signature verification failed", slog.String("error", err.Error()))

		return nil, appErrors.SignatureError("Webhook signature verification failed").WithError(err)
	}

	eventType := string(event.Type)
	logger = logger.With(slog.String("eventType", eventType), slog.String("eventId", event.ID))
	ctx = context.WithValue(ctx, middleware.LoggerKey, logger)

	result := &models.WebhookResult{EventType: eventType}

	if !slices.Contains([]string{"checkout.session.completed", "checkout.session.expired", "payment_intent.payment_failed"}, eventType) {
		metrics.RecordWebhookEvent(stripeProvider, "ignored")

		result.Outcome = models.WebhookIgnored
		result.Reason = "unhandled event type"

		return result, nil
	}

	claimed, err := s.EventStore.Claim(ctx, stripeProvider, event.ID)
	if err != nil {
		logger.Warn("Webhook idempotency check failed, processing anyway", slog.String("error", err.Error()))
		claimed = true
	}

	if !claimed {
		metrics.RecordWebhookEvent(stripeProvider, "duplicate")
		result.Outcome = models.WebhookDuplicate

		return result, nil
	}

	switch eventType {
	case "checkout.session.completed":
		err = s.checkoutCompleted(ctx, event, result)
	case "checkout.session.expired":
		err = s.checkoutExpired(ctx, event, result)
	case "payment_intent.payment_failed":
		err = s.paymentFailed(ctx, event, result)
	}

	if err != nil {
		metrics.RecordWebhookEvent(stripeProvider, "failed")
		return nil, err
	}

	metrics.RecordWebhookEvent(stripeProvider, string(result.Outcome))

	return result, nil
}

func (s *orderService) releaseEvent(ctx context.Context, eventID string) {
	if err := s.EventStore.Release(ctx, stripeProvider, eventID); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to release webhook claim", slog.String("error", err.Error()))
	}
}

// orderForSession resolves the order from the session metadata, then by session id.
func (s *orderService) orderForSession(ctx context.Context, session *stripego.CheckoutSession) (*models.Order, error) {
	ref := session.Metadata["order_id"]
	if ref == "" {
		ref = session.ClientReferenceID
	}

	if id, err := uuid.Parse(ref); err == nil {
		order, err := s.Orders.GetOrderByID(ctx, id)
		if err == nil {
			return order, nil
		}

		if !errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.DatabaseError("Failed to get order").WithError(err)
		}
	}

	order, err := s.Orders.GetOrderByStripeSession(ctx, session.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Order not found for checkout session").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to get order").WithError(err)
	}

	return order, nil
}

func (s *orderService) checkoutCompleted(ctx context.Context, event stripe.Event, result *models.WebhookResult) error {
	var session stripego.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		s.releaseEvent(ctx, event.ID)
		return appErrors.BadRequestError("Malformed checkout session payload").WithError(err)
	}

	order, err := s.orderForSession(ctx, &session)
	if err != nil {
		s.releaseEvent(ctx, event.ID)
		return err
	}

	result.OrderID = &order.ID
	logger := middleware.LoggerFromContext(ctx).With(slog.String("orderId", order.ID.String()))

	if session.PaymentStatus == stripego.CheckoutSessionPaymentStatusUnpaid {
		result.Outcome = models.WebhookIgnored
		result.Status = order.Status
		result.Reason = "payment not settled yet"

		return nil
	}

	change := models.StatusChange{
		From:            order.Status,
		To:              models.OrderStatusPaid,
		StripeSessionID: session.ID,
	}
	if session.PaymentIntent != nil {
		change.PaymentIntentID = session.PaymentIntent.ID
	}

	paid, err := s.transitions.apply(ctx, order, change)
	if err != nil {
		if isInvalidTransition(err) || isStatusConflict(err) {
			logger.Warn("Payment event does not apply to the order's status", slog.String("status", order.Status.String()))

			result.Outcome = models.WebhookIgnored
			result.Status = order.Status
			result.Reason = "order is " + order.Status.String()

			return nil
		}

		s.releaseEvent(ctx, event.ID)

		return err
	}

	s.sendConfirmation(ctx, paid)

	fulfilled, err := s.Fulfillment.Submit(ctx, paid.ID)
	if err != nil {
		// the order is already in error; the claim is kept so a redelivery does not resubmit
		logger.Error("Paid order could not be submitted for fulfillment", slog.String("error", err.Error()))

		return err
	}

	result.Outcome = models.WebhookProcessed
	result.Status = fulfilled.Status

	return nil
}

func (s *orderService) checkoutExpired(ctx context.Context, event stripe.Event, result *models.WebhookResult) error {
	var session stripego.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		s.releaseEvent(ctx, event.ID)
		return appErrors.BadRequestError("Malformed checkout session payload").WithError(err)
	}

	order, err := s.orderForSession(ctx, &session)
	if err != nil {
		s.releaseEvent(ctx, event.ID)
		return err
	}

	return s.cancelPending(ctx, event.ID, order, "Checkout session expired", result)
}

func (s *orderService) paymentFailed(ctx context.Context, event stripe.Event, result *models.WebhookResult) error {
	var intent stripego.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		s.releaseEvent(ctx, event.ID)
		return appErrors.BadRequestError("Malformed payment intent payload").WithError(err)
	}

	id, err := uuid.Parse(intent.Metadata["order_id"])
	if err != nil {
		result.Outcome = models.WebhookIgnored
		result.Reason = "payment intent carries no order reference"

		return nil
	}

	order, err := s.getOrder(ctx, id)
	if err != nil {
		s.releaseEvent(ctx, event.ID)
		return err
	}

	note := "Payment failed"
	if intent.LastPaymentError != nil && intent.LastPaymentError.Msg != "" {
		note += ": " + intent.LastPaymentError.Msg
	}

	return s.cancelPending(ctx, event.ID, order, note, result)
}

func (s *orderService) cancelPending(ctx context.Context, eventID string, order *models.Order, note string, result *models.WebhookResult) error {
	result.OrderID = &order.ID

	if order.Status != models.OrderStatusPending {
		result.Outcome = models.WebhookIgnored
		result.Status = order.Status
		result.Reason = "order is " + order.Status.String()

		return nil
	}

	updated, err := s.transitions.apply(ctx, order, models.StatusChange{
		From:  models.OrderStatusPending,
		To:    models.OrderStatusCancelled,
		Notes: note,
	})
	if err != nil {
		if isStatusConflict(err) {
			result.Outcome = models.WebhookIgnored
			result.Reason = "order status changed concurrently"

			return nil
		}

		s.releaseEvent(ctx, eventID)

		return err
	}

	result.Outcome = models.WebhookProcessed
	result.Status = updated.Status

	return nil
}

func (s *orderService) sendConfirmation(ctx context.Context, order *models.Order) {
	if s.Notifications == nil {
		return
	}

	var lines strings.Builder
	for _, item := range order.Items {
		fmt.Fprintf(&lines, "%d x %s  %s\n", item.Quantity, item.Name, s.Engine.Format(item.UnitPrice, order.Currency))
	}

	content := fmt.Sprintf("Thanks for your order %s.\n\n%s\nShipping: %s\nTotal: %s\n",
		order.ID,
		lines.String(),
		s.Engine.Format(order.ShippingFee, order.Currency),
		s.Engine.Format(order.TotalAmount, order.Currency),
	)

	_, err := s.Notifications.SendEmail(ctx, &models.EmailNotificationRequest{
		To:       order.Email,
		Subject:  "Order confirmation " + order.ID.String()[:8],
		Content:  content,
		Metadata: map[string]string{"kind": "order_confirmation", "order_id": order.ID.String()},
	})
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Order confirmation email failed",
			slog.String("orderId", order.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}
